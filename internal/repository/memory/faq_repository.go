package memory

import (
	"context"

	"campusai-be/internal/entity"
	"campusai-be/internal/repository/contract"
)

type FaqRepository struct {
	store *Store
}

func NewFaqRepository(store *Store) contract.FaqRepository {
	return &FaqRepository{store: store}
}

func (r *FaqRepository) Create(_ context.Context, faq *entity.Faq) error {
	r.store.insertFaq(faq)
	return nil
}

func (r *FaqRepository) FindAll(_ context.Context) ([]*entity.Faq, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	result := make([]*entity.Faq, 0, len(r.store.faqs))
	for i := range r.store.faqs {
		faq := r.store.faqs[i]
		result = append(result, &faq)
	}
	return result, nil
}

func (r *FaqRepository) FindAllByCategory(_ context.Context, category string) ([]*entity.Faq, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	var result []*entity.Faq
	for i := range r.store.faqs {
		if r.store.faqs[i].Category == category {
			faq := r.store.faqs[i]
			result = append(result, &faq)
		}
	}
	return result, nil
}
