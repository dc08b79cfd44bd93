package usecase

import (
	"context"

	"loopcard/internal/domain/analytics"
	"loopcard/internal/domain/entity"

	"github.com/google/uuid"
)

// InsightsPlaceholder is returned when the model could not answer.
const InsightsPlaceholder = "There was an error generating AI insights. Please try again later."

// SuggestUsernamesInput describes the person a handle is suggested for.
// Blank fields are filled from the card.
type SuggestUsernamesInput struct {
	CardID       uuid.UUID
	FullName     string
	Role         string
	BusinessName string
	Platform     entity.Platform
}

// InsightUsecase defines the AI features. Both are Pro-only.
type InsightUsecase interface {
	GenerateInsights(ctx context.Context, userID, cardID uuid.UUID, window analytics.Window) (string, error)
	SuggestUsernames(ctx context.Context, userID uuid.UUID, input *SuggestUsernamesInput) ([]string, error)
}
