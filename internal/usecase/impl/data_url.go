package impl

import (
	"encoding/base64"
	"net/http"
	"strings"

	domainerrors "loopcard/internal/domain/errors"
	"loopcard/internal/util"
)

// imageExtensions lists the accepted upload types and their file extension.
var imageExtensions = map[string]string{
	"image/png":  "png",
	"image/jpeg": "jpeg",
	"image/gif":  "gif",
	"image/webp": "webp",
}

type decodedImage struct {
	contentType string
	extension   string
	data        []byte
}

// decodeImageDataURL decodes a base64 "data:image/...;base64," URL and
// checks that the payload really is the declared image type.
func decodeImageDataURL(dataURL string, maxBytes int) (*decodedImage, error) {
	header, payload, ok := strings.Cut(strings.TrimSpace(dataURL), ",")
	if !ok || !strings.HasPrefix(header, "data:") || !strings.HasSuffix(header, ";base64") {
		return nil, domainerrors.ErrInvalidAsset.WithDetails("expected a base64 data URL")
	}

	contentType := strings.ToLower(strings.TrimSuffix(strings.TrimPrefix(header, "data:"), ";base64"))
	ext, ok := imageExtensions[contentType]
	if !ok {
		return nil, domainerrors.ErrInvalidAsset.WithDetails("unsupported type " + contentType)
	}

	if maxBytes > 0 && base64.StdEncoding.DecodedLen(len(payload)) > maxBytes+2 {
		return nil, tooLarge(maxBytes)
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, domainerrors.ErrInvalidAsset.WithDetails("malformed base64 payload")
	}
	if len(data) == 0 {
		return nil, domainerrors.ErrInvalidAsset.WithDetails("empty payload")
	}
	if maxBytes > 0 && len(data) > maxBytes {
		return nil, tooLarge(maxBytes)
	}

	if sniffed := http.DetectContentType(data); sniffed != contentType {
		return nil, domainerrors.ErrInvalidAsset.WithDetails("content does not match " + contentType)
	}

	return &decodedImage{contentType: contentType, extension: ext, data: data}, nil
}

func tooLarge(maxBytes int) error {
	return domainerrors.ErrAssetTooLarge.WithDetails("images are limited to " + util.FormatBytes(int64(maxBytes)))
}
