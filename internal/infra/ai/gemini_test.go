package ai

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"loopcard/config"
	"loopcard/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeList(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    []string
		wantErr bool
	}{
		{"plain array", `["janedoe", "jane.builds"]`, []string{"janedoe", "jane.builds"}, false},
		{"fenced array", "```json\n[\"jd_design\"]\n```", []string{"jd_design"}, false},
		{"blank entries dropped", `["a", " ", ""]`, []string{"a"}, false},
		{"empty array", `[]`, []string{}, false},
		{"not json", `here are some ideas`, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decodeList(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewInsightGenerator_DisabledWithoutKey(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	gen, err := NewInsightGenerator(context.Background(), &config.Config{AI: &config.AIConfig{}}, logger)
	require.NoError(t, err)

	_, err = gen.GenerateText(context.Background(), "prompt")
	assert.True(t, errors.Is(err, service.ErrGeneratorDisabled))

	_, err = gen.GenerateList(context.Background(), "prompt")
	assert.True(t, errors.Is(err, service.ErrGeneratorDisabled))
}
