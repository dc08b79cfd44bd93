package usecase

import (
	"context"

	"loopcard/internal/domain/entity"

	"github.com/google/uuid"
)

// CardInput carries the editable fields of a card.
type CardInput struct {
	ProfilePhoto  string
	BannerPhoto   string
	FullName      string
	BusinessName  string
	Role          string
	Tagline       string
	Contact       entity.Contact
	Socials       []entity.SocialLink
	Address       string
	Gallery       []string
	EnabledFields *entity.EnabledFields // nil selects the tier defaults on create.
}

// RepairOutput reports the result of a QR link repair pass.
type RepairOutput struct {
	Repaired int
	Failed   int
}

// VCardOutput is an encoded contact ready to download.
type VCardOutput struct {
	FileName    string
	ContentType string
	Data        []byte
}

// CardUsecase defines the card management operations.
type CardUsecase interface {
	ListCards(ctx context.Context, userID uuid.UUID) ([]*entity.Card, error)
	CreateCard(ctx context.Context, userID uuid.UUID, input *CardInput) (*entity.Card, error)
	UpdateCard(ctx context.Context, userID, cardID uuid.UUID, input *CardInput) (*entity.Card, error)
	DeleteCard(ctx context.Context, userID, cardID uuid.UUID) error
	// GetCardByID returns the public view of a card, or nil when there is
	// nothing to show.
	GetCardByID(ctx context.Context, cardID uuid.UUID) *entity.Card
	RepairQRLinks(ctx context.Context, userID uuid.UUID) (*RepairOutput, error)
	UploadAsset(ctx context.Context, userID uuid.UUID, dataURL string) (string, error)
	ExportVCard(ctx context.Context, cardID uuid.UUID) (*VCardOutput, error)
	RenderQRCode(ctx context.Context, cardID uuid.UUID) ([]byte, error)
	ResolveScan(ctx context.Context, payload string) (*entity.Card, error)
}
