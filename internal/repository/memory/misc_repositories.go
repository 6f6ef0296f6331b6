package memory

import (
	"context"
	"sort"

	"campusai-be/internal/entity"
	"campusai-be/internal/repository/contract"
)

type ContactMessageRepository struct {
	store *Store
}

func NewContactMessageRepository(store *Store) contract.ContactMessageRepository {
	return &ContactMessageRepository{store: store}
}

func (r *ContactMessageRepository) Create(_ context.Context, message *entity.ContactMessage) error {
	r.store.insertContact(message)
	return nil
}

type DashboardWidgetRepository struct {
	store *Store
}

func NewDashboardWidgetRepository(store *Store) contract.DashboardWidgetRepository {
	return &DashboardWidgetRepository{store: store}
}

func (r *DashboardWidgetRepository) Create(_ context.Context, widget *entity.DashboardWidget) error {
	r.store.insertWidget(widget)
	return nil
}

func (r *DashboardWidgetRepository) FindAll(_ context.Context) ([]*entity.DashboardWidget, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	result := make([]*entity.DashboardWidget, 0, len(r.store.widgets))
	for i := range r.store.widgets {
		widget := r.store.widgets[i]
		result = append(result, &widget)
	}
	sortWidgets(result)
	return result, nil
}

func (r *DashboardWidgetRepository) FindAllByKind(_ context.Context, kind string) ([]*entity.DashboardWidget, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	var result []*entity.DashboardWidget
	for i := range r.store.widgets {
		if r.store.widgets[i].Kind == kind {
			widget := r.store.widgets[i]
			result = append(result, &widget)
		}
	}
	sortWidgets(result)
	return result, nil
}

func sortWidgets(widgets []*entity.DashboardWidget) {
	sort.SliceStable(widgets, func(i, j int) bool {
		return widgets[i].Position < widgets[j].Position
	})
}
