package entity

import (
	"time"

	"github.com/google/uuid"
)

// Well-known click types. Social links record their platform name instead.
const (
	ClickTypePhone       = "phone"
	ClickTypeWhatsApp    = "whatsapp"
	ClickTypeEmail       = "email"
	ClickTypeWebsite     = "website"
	ClickTypeAddress     = "address"
	ClickTypeSaveContact = "save_contact"
)

// Click is an immutable interaction event on a public card.
type Click struct {
	ID        uuid.UUID `json:"id"`         // Assigned on insert.
	CardID    uuid.UUID `json:"card_id"`    // Card the visitor interacted with.
	Type      string    `json:"type"`       // Free-form label, grouped case-insensitively.
	TargetURL string    `json:"target_url"` // Where the visitor was sent.
	CreatedAt time.Time `json:"created_at"` // Assigned on insert.
}
