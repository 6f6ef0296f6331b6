package implementation

import (
	"context"

	"campusai-be/internal/entity"
	"campusai-be/internal/mapper"
	"campusai-be/internal/model"
	"campusai-be/internal/repository/contract"
	"campusai-be/internal/repository/specification"

	"gorm.io/gorm"
)

type FaqRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.FaqMapper
}

func NewFaqRepository(db *gorm.DB) contract.FaqRepository {
	return &FaqRepositoryImpl{
		db:     db,
		mapper: mapper.NewFaqMapper(),
	}
}

func (r *FaqRepositoryImpl) Create(ctx context.Context, faq *entity.Faq) error {
	m := r.mapper.ToModel(faq)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*faq = *r.mapper.ToEntity(m)
	return nil
}

func (r *FaqRepositoryImpl) FindAll(ctx context.Context) ([]*entity.Faq, error) {
	return r.findAll(ctx, specification.OrderBy{Field: "id"})
}

func (r *FaqRepositoryImpl) FindAllByCategory(ctx context.Context, category string) ([]*entity.Faq, error) {
	return r.findAll(ctx,
		specification.ByCategory{Category: category},
		specification.OrderBy{Field: "id"},
	)
}

func (r *FaqRepositoryImpl) findAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Faq, error) {
	var models []*model.Faq
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
