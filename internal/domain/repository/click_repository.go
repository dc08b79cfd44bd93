package repository

import (
	"context"

	"loopcard/internal/domain/entity"

	"github.com/google/uuid"
)

// ClickRepository persists public card interactions. Clicks are append-only.
type ClickRepository interface {
	// Create inserts click and fills in its ID and timestamp.
	Create(ctx context.Context, click *entity.Click) error

	// FindByCardID returns all clicks of a card newest first.
	FindByCardID(ctx context.Context, cardID uuid.UUID) ([]*entity.Click, error)
}
