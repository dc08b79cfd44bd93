package repository

import (
	"context"

	"loopcard/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrCardNotFound is returned when no card row matches.
var ErrCardNotFound = errors.New("card not found")

// CardRepository persists business cards.
type CardRepository interface {
	// Create inserts card and fills in its ID and timestamps.
	Create(ctx context.Context, card *entity.Card) error

	// Update overwrites every mutable column of card.
	Update(ctx context.Context, card *entity.Card) error

	// UpdateQRLink writes the QR URL and state of the second creation phase.
	UpdateQRLink(ctx context.Context, id uuid.UUID, qrURL string, state entity.QRState) error

	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Card, error)

	// FindByUserID returns the user's cards newest first.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Card, error)

	CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error)

	// FindUnlinkedByUserID returns cards stuck between the two creation phases.
	FindUnlinkedByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Card, error)
}
