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

type DashboardWidgetRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.DashboardMapper
}

func NewDashboardWidgetRepository(db *gorm.DB) contract.DashboardWidgetRepository {
	return &DashboardWidgetRepositoryImpl{
		db:     db,
		mapper: mapper.NewDashboardMapper(),
	}
}

func (r *DashboardWidgetRepositoryImpl) Create(ctx context.Context, widget *entity.DashboardWidget) error {
	m := r.mapper.ToModel(widget)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*widget = *r.mapper.ToEntity(m)
	return nil
}

func (r *DashboardWidgetRepositoryImpl) FindAll(ctx context.Context) ([]*entity.DashboardWidget, error) {
	return r.findAll(ctx, specification.OrderBy{Field: "position"})
}

func (r *DashboardWidgetRepositoryImpl) FindAllByKind(ctx context.Context, kind string) ([]*entity.DashboardWidget, error) {
	return r.findAll(ctx,
		specification.ByKind{Kind: kind},
		specification.OrderBy{Field: "position"},
	)
}

func (r *DashboardWidgetRepositoryImpl) findAll(ctx context.Context, specs ...specification.Specification) ([]*entity.DashboardWidget, error) {
	var models []*model.DashboardWidget
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
