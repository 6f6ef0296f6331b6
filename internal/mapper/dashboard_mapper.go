package mapper

import (
	"campusai-be/internal/entity"
	"campusai-be/internal/model"

	"gorm.io/datatypes"
)

type DashboardMapper struct{}

func NewDashboardMapper() *DashboardMapper {
	return &DashboardMapper{}
}

func (m *DashboardMapper) ToEntity(w *model.DashboardWidget) *entity.DashboardWidget {
	if w == nil {
		return nil
	}
	return &entity.DashboardWidget{
		Id:       w.Id,
		Kind:     w.Kind,
		Title:    w.Title,
		Payload:  []byte(w.Payload),
		Position: w.Position,
	}
}

func (m *DashboardMapper) ToModel(w *entity.DashboardWidget) *model.DashboardWidget {
	if w == nil {
		return nil
	}
	return &model.DashboardWidget{
		Id:       w.Id,
		Kind:     w.Kind,
		Title:    w.Title,
		Payload:  datatypes.JSON(w.Payload),
		Position: w.Position,
	}
}

func (m *DashboardMapper) ToEntities(models []*model.DashboardWidget) []*entity.DashboardWidget {
	entities := make([]*entity.DashboardWidget, len(models))
	for i, w := range models {
		entities[i] = m.ToEntity(w)
	}
	return entities
}
