// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"loopcard/internal/domain/entity"
	"loopcard/internal/domain/policy"
	"loopcard/internal/domain/session"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// SignUpInput defines the data required to open an account.
type SignUpInput struct {
	Email    string
	Password string
	Tier     entity.Tier // Optional, defaults to Free.
}

// SignInInput defines the data required for a user to sign in.
type SignInInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// AuthOutput is returned by every operation that starts a session.
type AuthOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
	Capabilities policy.Capabilities
	Session      *session.Snapshot
}

// AccountUsecase defines the account and session-token operations.
type AccountUsecase interface {
	SignUp(ctx context.Context, input *SignUpInput) (*AuthOutput, error)
	SignIn(ctx context.Context, input *SignInInput) (*AuthOutput, error)
	SignInWithIdentityToken(ctx context.Context, idToken string) (*AuthOutput, error)
	RefreshToken(ctx context.Context, refreshToken string) (*AuthOutput, error)
	SignOut(ctx context.Context, userID uuid.UUID, refreshToken string) error
	ChangeTier(ctx context.Context, userID uuid.UUID, tier entity.Tier) (*entity.User, error)
}
