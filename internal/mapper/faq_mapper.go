package mapper

import (
	"campusai-be/internal/entity"
	"campusai-be/internal/model"
)

type FaqMapper struct{}

func NewFaqMapper() *FaqMapper {
	return &FaqMapper{}
}

func (m *FaqMapper) ToEntity(f *model.Faq) *entity.Faq {
	if f == nil {
		return nil
	}
	return &entity.Faq{
		Id:       f.Id,
		Question: f.Question,
		Answer:   f.Answer,
		Category: f.Category,
	}
}

func (m *FaqMapper) ToModel(f *entity.Faq) *model.Faq {
	if f == nil {
		return nil
	}
	return &model.Faq{
		Id:       f.Id,
		Question: f.Question,
		Answer:   f.Answer,
		Category: f.Category,
	}
}

func (m *FaqMapper) ToEntities(models []*model.Faq) []*entity.Faq {
	entities := make([]*entity.Faq, len(models))
	for i, f := range models {
		entities[i] = m.ToEntity(f)
	}
	return entities
}
