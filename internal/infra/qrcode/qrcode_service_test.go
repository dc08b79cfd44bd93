package qrcode

import (
	"bytes"
	"image/png"
	"testing"

	"loopcard/config"

	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRecoveryLevel(t *testing.T) {
	tests := []struct {
		level string
		want  qrcode.RecoveryLevel
	}{
		{"L", qrcode.Low},
		{"m", qrcode.Medium},
		{"Q", qrcode.High},
		{"H", qrcode.Highest},
		{"invalid", qrcode.Medium},
		{"", qrcode.Medium},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			assert.Equal(t, tt.want, parseRecoveryLevel(tt.level))
		})
	}
}

func TestQRCodeService_GenerateCardQR(t *testing.T) {
	tests := []struct {
		name string
		size int
		want int
	}{
		{"Default size", 0, defaultSize},
		{"Small QR", 128, 128},
		{"Large QR", 640, 640},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewQRCodeService(&config.Config{QRCode: &config.QRCodeConfig{Size: tt.size, ErrorCorrectionLevel: "M"}})

			pngBytes, err := svc.GenerateCardQR("https://loopcard.app/#/card/0b6f7a3e-4a57-4f55-9d8c-5e0b1f1b6a21")
			require.NoError(t, err)

			img, err := png.DecodeConfig(bytes.NewReader(pngBytes))
			require.NoError(t, err)
			assert.Equal(t, tt.want, img.Width)
			assert.Equal(t, tt.want, img.Height)
		})
	}
}

func TestQRCodeService_GenerateCardQR_EmptyContent(t *testing.T) {
	svc := NewQRCodeService(&config.Config{})

	_, err := svc.GenerateCardQR("")
	assert.Error(t, err)
}
