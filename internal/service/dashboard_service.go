package service

import (
	"context"

	"campusai-be/internal/apperror"
	"campusai-be/internal/dto"
	"campusai-be/internal/entity"
	"campusai-be/internal/repository/unitofwork"
)

type IDashboardService interface {
	// GetWidgets returns the seeded dashboard blocks, all of them or only
	// those of one kind, ordered by position.
	GetWidgets(ctx context.Context, kind string) ([]dto.DashboardWidgetResponse, error)
}

type dashboardService struct {
	factory unitofwork.RepositoryFactory
}

func NewDashboardService(factory unitofwork.RepositoryFactory) IDashboardService {
	return &dashboardService{factory: factory}
}

func (s *dashboardService) GetWidgets(ctx context.Context, kind string) ([]dto.DashboardWidgetResponse, error) {
	uow := s.factory.NewUnitOfWork(ctx)

	var (
		widgets []*entity.DashboardWidget
		err     error
	)
	if kind == "" {
		widgets, err = uow.DashboardWidgetRepository().FindAll(ctx)
	} else {
		widgets, err = uow.DashboardWidgetRepository().FindAllByKind(ctx, kind)
	}
	if err != nil {
		return nil, apperror.NewStorage("failed to load dashboard widgets", err)
	}

	out := make([]dto.DashboardWidgetResponse, 0, len(widgets))
	for _, w := range widgets {
		out = append(out, dto.DashboardWidgetResponse{
			Id:       w.Id,
			Kind:     w.Kind,
			Title:    w.Title,
			Position: w.Position,
			Payload:  w.Payload,
		})
	}
	return out, nil
}
