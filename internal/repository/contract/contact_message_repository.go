package contract

import (
	"context"

	"campusai-be/internal/entity"
)

type ContactMessageRepository interface {
	Create(ctx context.Context, message *entity.ContactMessage) error
}
