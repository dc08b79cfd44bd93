package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCard_QRStateTransitions(t *testing.T) {
	card := &Card{FullName: "Jane", QRState: QRStatePending}

	require.NoError(t, card.MarkCreated())
	assert.Equal(t, QRStateCreated, card.QRState)
	assert.True(t, card.NeedsQRLink())

	require.NoError(t, card.LinkQR("https://api.example.com/public/cards/1/qr.png"))
	assert.Equal(t, QRStateLinked, card.QRState)
	assert.False(t, card.NeedsQRLink())

	err := card.MarkCreated()
	assert.ErrorIs(t, err, ErrInvalidQRTransition)
}

func TestCard_LinkQR_RequiresStoredCard(t *testing.T) {
	card := &Card{QRState: QRStatePending}

	err := card.LinkQR("https://example.com/qr.png")

	assert.ErrorIs(t, err, ErrInvalidQRTransition)
	assert.Empty(t, card.QRCodeURL)
}

func TestCard_Normalize(t *testing.T) {
	card := &Card{FullName: "  Jane Doe ", Role: " CTO "}

	card.Normalize()

	assert.Equal(t, "Jane Doe", card.FullName)
	assert.Equal(t, "CTO", card.Role)
	assert.NotNil(t, card.Socials)
	assert.NotNil(t, card.Gallery)
	assert.False(t, (&Card{FullName: "   "}).HasFullName())
}

func TestCard_PublicView(t *testing.T) {
	card := &Card{
		FullName: "Jane",
		Contact:  Contact{Phone: "+1", WhatsApp: "+2", Email: "j@example.com", Website: "jane.dev"},
		Address:  "1 Main St",
		Gallery:  []string{"a.png"},
		Socials: []SocialLink{
			{ID: "1", Platform: PlatformGitHub, Username: "jane", Enabled: true},
			{ID: "2", Platform: PlatformTwitter, Username: "jane", Enabled: false},
			{ID: "3", Platform: PlatformLinkedIn, Username: " ", Enabled: true},
		},
		EnabledFields: EnabledFields{Phone: true, Email: true},
	}

	view := card.PublicView()

	assert.Equal(t, "+1", view.Contact.Phone)
	assert.Empty(t, view.Contact.WhatsApp)
	assert.Equal(t, "j@example.com", view.Contact.Email)
	assert.Empty(t, view.Contact.Website)
	assert.Empty(t, view.Address)
	assert.Empty(t, view.Gallery)
	require.Len(t, view.Socials, 1)
	assert.Equal(t, "1", view.Socials[0].ID)

	// The source card is untouched.
	assert.Equal(t, "+2", card.Contact.WhatsApp)
	assert.Len(t, card.Socials, 3)
}

func TestParseTier(t *testing.T) {
	tier, ok := ParseTier("small business")
	assert.True(t, ok)
	assert.Equal(t, TierSmallBusiness, tier)

	_, ok = ParseTier("Platinum")
	assert.False(t, ok)

	assert.True(t, TierEnterprise.Valid())
	assert.False(t, Tier("pro").Valid())
}
