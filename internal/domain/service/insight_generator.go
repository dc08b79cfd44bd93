package service

import (
	"context"

	"github.com/pkg/errors"
)

// ErrGeneratorDisabled is returned when no language model is configured.
var ErrGeneratorDisabled = errors.New("text generator disabled")

// InsightGenerator sends prompts to a hosted language model.
type InsightGenerator interface {
	// GenerateText returns the model's free-text answer to prompt.
	GenerateText(ctx context.Context, prompt string) (string, error)

	// GenerateList asks for a JSON array of strings and returns it decoded.
	GenerateList(ctx context.Context, prompt string) ([]string, error)
}
