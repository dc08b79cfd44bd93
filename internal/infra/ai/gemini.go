// Package ai talks to the hosted Gemini model.
package ai

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"loopcard/config"
	"loopcard/internal/domain/service"

	"github.com/pkg/errors"
	"google.golang.org/genai"
)

type geminiGenerator struct {
	client  *genai.Client
	model   string
	timeout time.Duration
	logger  *slog.Logger
}

// NewInsightGenerator returns a Gemini-backed generator, or a disabled one
// when no API key is configured.
func NewInsightGenerator(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.InsightGenerator, error) {
	if cfg.AI == nil || cfg.AI.APIKey == "" {
		logger.Info("AI generator not configured, insights are disabled")

		return disabledGenerator{}, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.AI.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, errors.Wrap(err, "genai.NewClient")
	}

	logger.Info("AI generator enabled", slog.String("model", cfg.AI.Model))

	return &geminiGenerator{
		client:  client,
		model:   cfg.AI.Model,
		timeout: cfg.AI.Timeout,
		logger:  logger,
	}, nil
}

func (g *geminiGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), &genai.GenerateContentConfig{
		Temperature: genai.Ptr[float32](0.7),
	})
	if err != nil {
		return "", errors.Wrap(err, "generate content")
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", errors.New("model returned no text")
	}

	return text, nil
}

// GenerateList constrains the model to a JSON array of strings.
func (g *geminiGenerator) GenerateList(ctx context.Context, prompt string) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), &genai.GenerateContentConfig{
		Temperature:      genai.Ptr[float32](0.9),
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type:  genai.TypeArray,
			Items: &genai.Schema{Type: genai.TypeString},
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "generate content")
	}

	return decodeList(resp.Text())
}

// decodeList parses a JSON string array, tolerating a markdown code fence
// around it, and drops blank entries.
func decodeList(raw string) ([]string, error) {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimPrefix(raw, "```")
	raw = strings.TrimSuffix(raw, "```")

	var items []string
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &items); err != nil {
		return nil, errors.Wrap(err, "decode list response")
	}

	out := make([]string, 0, len(items))
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}

	return out, nil
}

type disabledGenerator struct{}

func (disabledGenerator) GenerateText(context.Context, string) (string, error) {
	return "", service.ErrGeneratorDisabled
}

func (disabledGenerator) GenerateList(context.Context, string) ([]string, error) {
	return nil, service.ErrGeneratorDisabled
}
