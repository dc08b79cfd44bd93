package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"loopcard/config"
	deliverycontext "loopcard/internal/delivery/context"
	"loopcard/internal/domain/cardlink"
	"loopcard/internal/domain/entity"
	domainerrors "loopcard/internal/domain/errors"
	"loopcard/internal/domain/policy"
	"loopcard/internal/domain/repository"
	"loopcard/internal/domain/service"
	"loopcard/internal/domain/session"
	"loopcard/internal/domain/vcard"
	"loopcard/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// cardService implements the CardUsecase interface.
type cardService struct {
	txManager      repository.TransactionManager
	profileRepo    repository.ProfileRepository
	cardRepo       repository.CardRepository
	qrCodeService  service.QRCodeService
	assetStorage   service.AssetStorage
	eventPublisher service.EventPublisher
	registry       *session.Registry
	linker         *qrLinker
	appOrigin      string
	maxUploadBytes int
	now            func() time.Time
	logger         *slog.Logger
}

// CardServiceParams holds dependencies for CardService, injected by Fx.
type CardServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	ProfileRepo    repository.ProfileRepository
	CardRepo       repository.CardRepository
	QRCodeService  service.QRCodeService
	AssetStorage   service.AssetStorage
	EventPublisher service.EventPublisher
	Registry       *session.Registry
	Config         *config.Config
	Logger         *slog.Logger
}

// NewCardService is the constructor for cardService.
func NewCardService(params CardServiceParams) usecase.CardUsecase {
	return &cardService{
		txManager:      params.TxManager,
		profileRepo:    params.ProfileRepo,
		cardRepo:       params.CardRepo,
		qrCodeService:  params.QRCodeService,
		assetStorage:   params.AssetStorage,
		eventPublisher: params.EventPublisher,
		registry:       params.Registry,
		linker:         &qrLinker{cardRepo: params.CardRepo, apiBaseURL: params.Config.App.APIBaseURL},
		appOrigin:      params.Config.App.Origin,
		maxUploadBytes: params.Config.Storage.MaxUploadBytes,
		now:            time.Now,
		logger:         params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *cardService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *cardService) ListCards(ctx context.Context, userID uuid.UUID) ([]*entity.Card, error) {
	cards, err := srv.cardRepo.FindByUserID(ctx, userID)
	if err != nil {
		srv.log(ctx).Error("Failed to list cards", slog.Any("user_id", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list cards")
	}

	return cards, nil
}

// CreateCard inserts the card and then writes its QR link. The card limit
// is checked inside the insert transaction while the owner's profile row is
// locked, so concurrent creates for one user are counted one after the
// other. A loaded session mirror already at the limit fails fast without
// touching the database. When the second write fails the card stays in the
// created state and a repair event is published. The session mirror is left
// unchanged; hydrate or RepairQRLinks brings the card in later.
func (srv *cardService) CreateCard(ctx context.Context, userID uuid.UUID, input *usecase.CardInput) (*entity.Card, error) {
	card := buildCard(input)
	if !card.HasFullName() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("full_name is required")
	}
	card.UserID = userID
	card.QRState = entity.QRStatePending

	if err := srv.checkMirroredLimit(userID); err != nil {
		srv.log(ctx).Warn("Card limit reached", slog.Any("user_id", userID))

		return nil, err
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cardRepo := repoFactory.CardRepo()

		user, err := lockProfile(ctx, repoFactory.ProfileRepo(), userID)
		if err != nil {
			return err
		}

		owned, err := cardRepo.CountByUserID(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to count cards")
		}

		caps := policy.Resolve(user.Tier)
		if !policy.CanCreateCard(user.Tier, int(owned)) {
			return cardLimitReached(user.Tier)
		}

		if input.EnabledFields == nil {
			card.EnabledFields = entity.DefaultEnabledFields(caps.CanUseGallery)
		}
		applyTierGates(card, user.Tier)

		if err := card.MarkCreated(); err != nil {
			return err
		}

		return cardRepo.Create(ctx, card)
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to create card", slog.Any("user_id", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create card")
	}

	if err := srv.linker.link(ctx, card); err != nil {
		srv.log(ctx).Error("Card created without qr link", slog.Any("card_id", card.ID), slog.Any("error", err))
		srv.publishQRLinkPending(ctx, card)

		return nil, errors.Wrap(err, "failed to link card qr code")
	}

	srv.registry.Dispatch(userID, session.CardCreated{Card: card})
	srv.log(ctx).Info("Card created", slog.Any("user_id", userID), slog.Any("card_id", card.ID))

	return card, nil
}

// checkMirroredLimit rejects a create when the loaded session of userID
// already holds the plan's maximum. Without a loaded session it passes and
// the transaction decides.
func (srv *cardService) checkMirroredLimit(userID uuid.UUID) error {
	store, ok := srv.registry.Get(userID)
	if !ok {
		return nil
	}

	tier, ok := store.Tier()
	if !ok {
		return nil
	}

	if !policy.CanCreateCard(tier, store.CardCount()) {
		return cardLimitReached(tier)
	}

	return nil
}

func cardLimitReached(tier entity.Tier) error {
	return domainerrors.ErrCardLimitReached.WithDetails(
		fmt.Sprintf("the %s plan allows %d cards", tier, policy.Resolve(tier).MaxCards))
}

func (srv *cardService) publishQRLinkPending(ctx context.Context, card *entity.Card) {
	event := &service.CardEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		Type:      service.CardEventQRLinkPending,
		CardID:    card.ID.String(),
		UserID:    card.UserID.String(),
	}
	if err := srv.eventPublisher.PublishCardEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish qr link repair event", slog.Any("card_id", card.ID), slog.Any("error", err))
	}
}

// UpdateCard replaces the editable fields of an owned card. QR state,
// owner and creation time are kept.
func (srv *cardService) UpdateCard(ctx context.Context, userID, cardID uuid.UUID, input *usecase.CardInput) (*entity.Card, error) {
	updated := buildCard(input)
	if !updated.HasFullName() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("full_name is required")
	}

	existing, err := findOwnedCard(ctx, srv.cardRepo, userID, cardID)
	if err != nil {
		return nil, err
	}

	user, err := findProfile(ctx, srv.profileRepo, userID)
	if err != nil {
		return nil, err
	}

	updated.ID = existing.ID
	updated.UserID = existing.UserID
	updated.QRCodeURL = existing.QRCodeURL
	updated.QRState = existing.QRState
	updated.CreatedAt = existing.CreatedAt
	if input.EnabledFields == nil {
		updated.EnabledFields = existing.EnabledFields
	}
	applyTierGates(updated, user.Tier)

	if err := srv.cardRepo.Update(ctx, updated); err != nil {
		srv.log(ctx).Error("Failed to update card", slog.Any("card_id", cardID), slog.Any("error", err))
		if errors.Is(err, repository.ErrCardNotFound) {
			return nil, domainerrors.ErrCardNotFound.WrapMessage("card was deleted")
		}

		return nil, errors.Wrap(err, "failed to update card")
	}

	srv.registry.Dispatch(userID, session.CardUpdated{Card: updated})

	return updated, nil
}

func (srv *cardService) DeleteCard(ctx context.Context, userID, cardID uuid.UUID) error {
	if _, err := findOwnedCard(ctx, srv.cardRepo, userID, cardID); err != nil {
		return err
	}

	if err := srv.cardRepo.Delete(ctx, cardID); err != nil {
		srv.log(ctx).Error("Failed to delete card", slog.Any("card_id", cardID), slog.Any("error", err))
		if errors.Is(err, repository.ErrCardNotFound) {
			return domainerrors.ErrCardNotFound.WrapMessage("card was already deleted")
		}

		return errors.Wrap(err, "failed to delete card")
	}

	srv.registry.Dispatch(userID, session.CardDeleted{CardID: cardID})
	srv.log(ctx).Info("Card deleted", slog.Any("user_id", userID), slog.Any("card_id", cardID))

	return nil
}

// GetCardByID degrades every lookup failure to absence.
func (srv *cardService) GetCardByID(ctx context.Context, cardID uuid.UUID) *entity.Card {
	card, err := srv.cardRepo.FindByID(ctx, cardID)
	if err != nil {
		if errors.Is(err, repository.ErrCardNotFound) {
			srv.log(ctx).Debug("Card not found", slog.Any("card_id", cardID))
		} else {
			srv.log(ctx).Error("Error fetching card by ID", slog.Any("card_id", cardID), slog.Any("error", err))
		}

		return nil
	}

	return card.PublicView()
}

// RepairQRLinks finishes every card of userID stuck in the created state.
func (srv *cardService) RepairQRLinks(ctx context.Context, userID uuid.UUID) (*usecase.RepairOutput, error) {
	cards, err := srv.cardRepo.FindUnlinkedByUserID(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find unlinked cards")
	}

	output := &usecase.RepairOutput{}
	for _, card := range cards {
		if err := srv.linker.link(ctx, card); err != nil {
			output.Failed++
			srv.log(ctx).Warn("Failed to repair card qr link", slog.Any("card_id", card.ID), slog.Any("error", err))

			continue
		}
		output.Repaired++
		srv.registry.Dispatch(userID, session.CardUpdated{Card: card})
	}

	if len(cards) > 0 {
		srv.log(ctx).Info("QR link repair finished",
			slog.Any("user_id", userID), slog.Int("repaired", output.Repaired), slog.Int("failed", output.Failed))
	}

	return output, nil
}

// UploadAsset stores an image data URL under <user-id>/<unix-ms>.<ext> and
// returns its public URL.
func (srv *cardService) UploadAsset(ctx context.Context, userID uuid.UUID, dataURL string) (string, error) {
	image, err := decodeImageDataURL(dataURL, srv.maxUploadBytes)
	if err != nil {
		srv.log(ctx).Warn("Rejected asset upload", slog.Any("user_id", userID), slog.Any("error", err))

		return "", err
	}

	key := fmt.Sprintf("%s/%d.%s", userID, srv.now().UnixMilli(), image.extension)
	url, err := srv.assetStorage.Upload(ctx, &service.Asset{
		Key:         key,
		ContentType: image.contentType,
		Data:        image.data,
	})
	if err != nil {
		srv.log(ctx).Error("Failed to upload asset", slog.String("key", key), slog.Any("error", err))

		return "", errors.Wrap(domainerrors.ErrAssetUploadFailed, err.Error())
	}

	return url, nil
}

func (srv *cardService) ExportVCard(ctx context.Context, cardID uuid.UUID) (*usecase.VCardOutput, error) {
	card := srv.GetCardByID(ctx, cardID)
	if card == nil {
		return nil, domainerrors.ErrCardNotFound
	}

	data, err := vcard.Encode(card)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode vcard")
	}

	return &usecase.VCardOutput{
		FileName:    vcard.FileName(card),
		ContentType: vcard.ContentType,
		Data:        data,
	}, nil
}

// RenderQRCode encodes the public URL of the card as a PNG.
func (srv *cardService) RenderQRCode(ctx context.Context, cardID uuid.UUID) ([]byte, error) {
	if card := srv.GetCardByID(ctx, cardID); card == nil {
		return nil, domainerrors.ErrCardNotFound
	}

	png, err := srv.qrCodeService.GenerateCardQR(cardlink.PublicURL(srv.appOrigin, cardID))
	if err != nil {
		srv.log(ctx).Error("Failed to render qr code", slog.Any("card_id", cardID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to render qr code")
	}

	return png, nil
}

// ResolveScan maps a scanned QR payload to the card it points at.
func (srv *cardService) ResolveScan(ctx context.Context, payload string) (*entity.Card, error) {
	cardID, err := cardlink.ParseScanned(payload)
	if err != nil {
		return nil, domainerrors.ErrInvalidScanPayload.WithDetails(err.Error())
	}

	card := srv.GetCardByID(ctx, cardID)
	if card == nil {
		return nil, domainerrors.ErrCardNotFound
	}

	return card, nil
}

func buildCard(input *usecase.CardInput) *entity.Card {
	card := &entity.Card{
		ProfilePhoto: input.ProfilePhoto,
		BannerPhoto:  input.BannerPhoto,
		FullName:     input.FullName,
		BusinessName: input.BusinessName,
		Role:         input.Role,
		Tagline:      input.Tagline,
		Contact:      input.Contact,
		Socials:      append([]entity.SocialLink(nil), input.Socials...),
		Address:      input.Address,
		Gallery:      append([]string(nil), input.Gallery...),
	}
	if input.EnabledFields != nil {
		card.EnabledFields = *input.EnabledFields
	}
	card.Normalize()

	return card
}
