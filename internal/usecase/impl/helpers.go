// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"crypto/sha256"
	"encoding/hex"

	"loopcard/internal/domain/cardlink"
	"loopcard/internal/domain/entity"
	domainerrors "loopcard/internal/domain/errors"
	"loopcard/internal/domain/policy"
	"loopcard/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// hashToken returns the stored form of a refresh token.
func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))

	return hex.EncodeToString(sum[:])
}

// findProfile loads the profile of userID, mapping absence to USER_NOT_FOUND.
func findProfile(ctx context.Context, repo repository.ProfileRepository, userID uuid.UUID) (*entity.User, error) {
	return profileLookup(repo.FindByID(ctx, userID))
}

// lockProfile is findProfile holding the profile row lock until the
// transaction behind repo ends.
func lockProfile(ctx context.Context, repo repository.ProfileRepository, userID uuid.UUID) (*entity.User, error) {
	return profileLookup(repo.FindByIDForUpdate(ctx, userID))
}

func profileLookup(user *entity.User, err error) (*entity.User, error) {
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("profile does not exist")
		}

		return nil, errors.Wrap(err, "failed to find profile")
	}

	return user, nil
}

// findOwnedCard loads cardID and checks that userID owns it.
func findOwnedCard(ctx context.Context, repo repository.CardRepository, userID, cardID uuid.UUID) (*entity.Card, error) {
	card, err := repo.FindByID(ctx, cardID)
	if err != nil {
		if errors.Is(err, repository.ErrCardNotFound) {
			return nil, domainerrors.ErrCardNotFound.WrapMessage("card does not exist")
		}

		return nil, errors.Wrap(err, "failed to find card")
	}

	if card.UserID != userID {
		return nil, domainerrors.ErrCardOwnershipViolation.WrapMessage("card belongs to another user")
	}

	return card, nil
}

// applyTierGates enforces the tier limits on the visibility toggles of card.
// The gallery data itself is kept so an upgrade brings it back.
func applyTierGates(card *entity.Card, tier entity.Tier) {
	if !policy.Resolve(tier).CanUseGallery {
		card.EnabledFields.Gallery = false
	}
}

// qrLinker runs the second phase of card creation.
type qrLinker struct {
	cardRepo   repository.CardRepository
	apiBaseURL string
}

// link writes the QR URL of a card in the created state and moves it to
// qr_linked. The card is left untouched on error.
func (l *qrLinker) link(ctx context.Context, card *entity.Card) error {
	qrURL := cardlink.QRImageURL(l.apiBaseURL, card.ID)
	if err := l.cardRepo.UpdateQRLink(ctx, card.ID, qrURL, entity.QRStateLinked); err != nil {
		return errors.Wrap(err, "failed to write qr link")
	}

	return card.LinkQR(qrURL)
}
