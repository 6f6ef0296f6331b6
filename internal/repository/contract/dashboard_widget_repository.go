package contract

import (
	"context"

	"campusai-be/internal/entity"
)

type DashboardWidgetRepository interface {
	Create(ctx context.Context, widget *entity.DashboardWidget) error
	FindAll(ctx context.Context) ([]*entity.DashboardWidget, error)
	FindAllByKind(ctx context.Context, kind string) ([]*entity.DashboardWidget, error)
}
