package usecase

import (
	"context"
	"time"

	"loopcard/internal/domain/analytics"
	"loopcard/internal/domain/entity"

	"github.com/google/uuid"
)

// RecordClickInput describes one visitor interaction.
type RecordClickInput struct {
	CardID    uuid.UUID
	Type      string
	TargetURL string
}

// SummaryInput selects the analytics view of a card.
type SummaryInput struct {
	UserID   uuid.UUID
	CardID   uuid.UUID
	Window   analytics.Window
	Location *time.Location // nil means UTC.
}

// AnalyticsUsecase defines click tracking and aggregation.
type AnalyticsUsecase interface {
	// RecordClick stores the click in the background. It never fails.
	RecordClick(ctx context.Context, input *RecordClickInput)
	// ListClicks returns the clicks of a card newest first, empty on error.
	ListClicks(ctx context.Context, cardID uuid.UUID) []*entity.Click
	Summary(ctx context.Context, input *SummaryInput) (*analytics.Summary, error)
}
