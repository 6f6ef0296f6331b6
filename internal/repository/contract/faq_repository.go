package contract

import (
	"context"

	"campusai-be/internal/entity"
)

type FaqRepository interface {
	Create(ctx context.Context, faq *entity.Faq) error
	FindAll(ctx context.Context) ([]*entity.Faq, error)
	FindAllByCategory(ctx context.Context, category string) ([]*entity.Faq, error)
}
