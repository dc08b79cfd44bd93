package cardlink

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublicURL(t *testing.T) {
	id := uuid.MustParse("0190a3b4-7c1e-7d2f-8a9b-0c1d2e3f4a5b")

	assert.Equal(t, "https://loopcard.app/#/card/"+id.String(), PublicURL("https://loopcard.app/", id))
	assert.Equal(t, "https://loopcard.app/#/card/"+id.String(), PublicURL("https://loopcard.app", id))
}

func TestQRImageURL(t *testing.T) {
	id := uuid.New()

	assert.Equal(t, "https://api.loopcard.app/public/cards/"+id.String()+"/qr.png", QRImageURL("https://api.loopcard.app/", id))
}

func TestParseScanned(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name    string
		payload string
		wantErr bool
	}{
		{"Public URL", PublicURL("https://loopcard.app", id), false},
		{"Legacy URL with path", "https://loopcard.app/index.html#/card/" + id.String(), false},
		{"Trailing query", "https://loopcard.app/#/card/" + id.String() + "?ref=qr", false},
		{"Bare ID", id.String(), false},
		{"Other site", "https://example.com/profile", true},
		{"Broken ID", "https://loopcard.app/#/card/not-a-uuid", true},
		{"Empty", "  ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseScanned(tt.payload)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrNotCardLink)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, id, got)
		})
	}
}
