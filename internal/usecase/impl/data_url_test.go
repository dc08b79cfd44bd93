package impl

import (
	"encoding/base64"
	"testing"

	domainerrors "loopcard/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodeDataURL(contentType string, data []byte) string {
	return "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(data)
}

func TestDecodeImageDataURL(t *testing.T) {
	png := []byte(pngSignature + "pixels")

	image, err := decodeImageDataURL(encodeDataURL("image/PNG", png), 1024)

	require.NoError(t, err)
	assert.Equal(t, "image/png", image.contentType)
	assert.Equal(t, "png", image.extension)
	assert.Equal(t, png, image.data)
}

func TestDecodeImageDataURL_Rejects(t *testing.T) {
	png := []byte(pngSignature + "pixels")

	tests := []struct {
		name    string
		dataURL string
		want    error
	}{
		{"plain url", "https://example.com/a.png", domainerrors.ErrInvalidAsset},
		{"not base64 encoded", "data:image/png,rawbytes", domainerrors.ErrInvalidAsset},
		{"unsupported type", encodeDataURL("image/svg+xml", []byte("<svg/>")), domainerrors.ErrInvalidAsset},
		{"malformed payload", "data:image/png;base64,***", domainerrors.ErrInvalidAsset},
		{"empty payload", "data:image/png;base64,", domainerrors.ErrInvalidAsset},
		{"declared type mismatch", encodeDataURL("image/jpeg", png), domainerrors.ErrInvalidAsset},
		{"over the limit", encodeDataURL("image/png", append(png, make([]byte, 64)...)), domainerrors.ErrAssetTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := decodeImageDataURL(tt.dataURL, 32)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}
