package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// QRState tracks the two-phase card creation. A card is first inserted
// without a QR link because the link embeds the server-assigned ID.
type QRState string

const (
	// QRStatePending is a validated card that has not been written yet.
	QRStatePending QRState = "pending"
	// QRStateCreated is a stored card whose QR link has not been written.
	QRStateCreated QRState = "created"
	// QRStateLinked is a stored card with its QR link in place.
	QRStateLinked QRState = "qr_linked"
)

// ErrInvalidQRTransition is returned when a card is moved out of order
// through the creation states.
var ErrInvalidQRTransition = errors.New("invalid qr state transition")

// Contact holds the direct contact channels of a card.
type Contact struct {
	Phone    string `json:"phone"`
	WhatsApp string `json:"whatsapp"`
	Email    string `json:"email"`
	Website  string `json:"website"`
}

// EnabledFields toggles the visibility of optional sections on the public view.
type EnabledFields struct {
	Phone    bool `json:"phone"`
	WhatsApp bool `json:"whatsapp"`
	Email    bool `json:"email"`
	Website  bool `json:"website"`
	Address  bool `json:"address"`
	Gallery  bool `json:"gallery"`
}

// DefaultEnabledFields returns the toggles a new card starts with.
// Gallery defaults on only where the tier may show it.
func DefaultEnabledFields(galleryAllowed bool) EnabledFields {
	return EnabledFields{
		Phone:    true,
		WhatsApp: true,
		Email:    true,
		Website:  true,
		Address:  true,
		Gallery:  galleryAllowed,
	}
}

// Card is a digital business card owned by a single user.
type Card struct {
	ID            uuid.UUID     `json:"id"`
	UserID        uuid.UUID     `json:"user_id"`
	ProfilePhoto  string        `json:"profile_photo"`
	BannerPhoto   string        `json:"banner_photo"`
	FullName      string        `json:"full_name"`
	BusinessName  string        `json:"business_name,omitempty"`
	Role          string        `json:"role,omitempty"`
	Tagline       string        `json:"tagline,omitempty"`
	Contact       Contact       `json:"contact"`
	Socials       []SocialLink  `json:"socials"`
	Address       string        `json:"address,omitempty"`
	Gallery       []string      `json:"gallery"`
	QRCodeURL     string        `json:"qr_code_url"`
	EnabledFields EnabledFields `json:"enabled_fields"`
	QRState       QRState       `json:"qr_state"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// Normalize trims free-text fields and replaces nil slices so the card
// serialises with empty arrays.
func (c *Card) Normalize() {
	c.FullName = strings.TrimSpace(c.FullName)
	c.BusinessName = strings.TrimSpace(c.BusinessName)
	c.Role = strings.TrimSpace(c.Role)
	c.Tagline = strings.TrimSpace(c.Tagline)
	c.Address = strings.TrimSpace(c.Address)
	if c.Socials == nil {
		c.Socials = []SocialLink{}
	}
	if c.Gallery == nil {
		c.Gallery = []string{}
	}
}

// HasFullName reports whether the one mandatory field is present.
func (c *Card) HasFullName() bool {
	return strings.TrimSpace(c.FullName) != ""
}

// MarkCreated records that the row exists in storage.
func (c *Card) MarkCreated() error {
	if c.QRState != QRStatePending && c.QRState != "" {
		return errors.Wrapf(ErrInvalidQRTransition, "%s -> %s", c.QRState, QRStateCreated)
	}
	c.QRState = QRStateCreated
	c.QRCodeURL = ""

	return nil
}

// LinkQR stores the QR URL. Linking an already linked card replaces the URL.
func (c *Card) LinkQR(qrURL string) error {
	if c.QRState != QRStateCreated && c.QRState != QRStateLinked {
		return errors.Wrapf(ErrInvalidQRTransition, "%s -> %s", c.QRState, QRStateLinked)
	}
	c.QRCodeURL = qrURL
	c.QRState = QRStateLinked

	return nil
}

// NeedsQRLink reports whether the second creation phase is outstanding.
func (c *Card) NeedsQRLink() bool {
	return c.QRState == QRStateCreated
}

// PublicView returns a copy with every disabled section removed, as a
// visitor should see it.
func (c *Card) PublicView() *Card {
	view := *c
	fields := c.EnabledFields

	if !fields.Phone {
		view.Contact.Phone = ""
	}
	if !fields.WhatsApp {
		view.Contact.WhatsApp = ""
	}
	if !fields.Email {
		view.Contact.Email = ""
	}
	if !fields.Website {
		view.Contact.Website = ""
	}
	if !fields.Address {
		view.Address = ""
	}

	view.Gallery = []string{}
	if fields.Gallery {
		view.Gallery = append(view.Gallery, c.Gallery...)
	}

	view.Socials = make([]SocialLink, 0, len(c.Socials))
	for _, s := range c.Socials {
		if s.Enabled && strings.TrimSpace(s.Username) != "" {
			view.Socials = append(view.Socials, s)
		}
	}

	return &view
}
