// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"loopcard/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrProfileNotFound is returned when no profile row matches.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileRepository persists account profiles and their tier.
type ProfileRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByIDForUpdate is FindByID holding a row lock until the enclosing
	// transaction ends. Writers that depend on per-user counts take it first.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// Create inserts the profile and fills in its ID and timestamps.
	Create(ctx context.Context, user *entity.User) error

	// UpdateTier changes the subscription tier and returns the stored row.
	UpdateTier(ctx context.Context, id uuid.UUID, tier entity.Tier) (*entity.User, error)
}
