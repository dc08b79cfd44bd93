// Package cardlink builds and parses the public links of a card.
package cardlink

import (
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const fragmentMarker = "#/card/"

// ErrNotCardLink is returned when a scanned payload does not point at a card.
var ErrNotCardLink = errors.New("payload is not a card link")

// PublicURL is the address a visitor opens: <origin>/#/card/<id>.
func PublicURL(origin string, cardID uuid.UUID) string {
	return strings.TrimRight(origin, "/") + "/" + fragmentMarker + cardID.String()
}

// QRImageURL is the PNG endpoint stored on the card as its QR link.
func QRImageURL(apiBaseURL string, cardID uuid.UUID) string {
	return strings.TrimRight(apiBaseURL, "/") + "/public/cards/" + cardID.String() + "/qr.png"
}

// ParseScanned extracts the card ID from a scanned QR payload. It accepts a
// full public URL or a bare card ID.
func ParseScanned(payload string) (uuid.UUID, error) {
	payload = strings.TrimSpace(payload)
	if payload == "" {
		return uuid.Nil, errors.Wrap(ErrNotCardLink, "empty payload")
	}

	if id, err := uuid.Parse(payload); err == nil {
		return id, nil
	}

	idx := strings.Index(payload, fragmentMarker)
	if idx < 0 {
		return uuid.Nil, errors.Wrapf(ErrNotCardLink, "missing %s", fragmentMarker)
	}

	raw := payload[idx+len(fragmentMarker):]
	if end := strings.IndexAny(raw, "/?#"); end >= 0 {
		raw = raw[:end]
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errors.Wrapf(ErrNotCardLink, "invalid card id %q", raw)
	}

	return id, nil
}
