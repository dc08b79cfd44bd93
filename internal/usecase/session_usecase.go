package usecase

import (
	"context"

	"loopcard/internal/domain/session"

	"github.com/google/uuid"
)

// SessionUsecase owns the in-memory card mirror of signed-in users.
type SessionUsecase interface {
	// Hydrate opens a fresh store for userID and loads the profile and cards.
	// A missing profile fails and leaves no store behind.
	Hydrate(ctx context.Context, userID uuid.UUID) (*session.Snapshot, error)
	// Current returns the store snapshot, hydrating on first use.
	Current(ctx context.Context, userID uuid.UUID) (*session.Snapshot, error)
	// End drops the store of userID.
	End(ctx context.Context, userID uuid.UUID)
	// Shutdown drops every store.
	Shutdown(ctx context.Context)
}
