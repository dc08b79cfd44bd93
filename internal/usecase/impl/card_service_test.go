package impl

import (
	"context"
	"encoding/base64"
	"testing"
	"time"

	"loopcard/internal/domain/entity"
	domainerrors "loopcard/internal/domain/errors"
	"loopcard/internal/domain/policy"
	"loopcard/internal/domain/repository"
	"loopcard/internal/domain/service"
	"loopcard/internal/domain/session"
	mockRepo "loopcard/internal/mocks/repository"
	mockSvc "loopcard/internal/mocks/service"
	"loopcard/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const pngSignature = "\x89PNG\r\n\x1a\n"

// cardServiceFixtures holds all test dependencies for card service tests.
type cardServiceFixtures struct {
	service        usecase.CardUsecase
	txManager      *mockRepo.MockTransactionManager
	profileRepo    *mockRepo.MockProfileRepository
	cardRepo       *mockRepo.MockCardRepository
	qrCodeService  *mockSvc.MockQRCodeService
	assetStorage   *mockSvc.MockAssetStorage
	eventPublisher *mockSvc.MockEventPublisher
	registry       *session.Registry
}

func createTestCardService(t *testing.T) cardServiceFixtures {
	fx := cardServiceFixtures{
		txManager:      mockRepo.NewMockTransactionManager(t),
		profileRepo:    mockRepo.NewMockProfileRepository(t),
		cardRepo:       mockRepo.NewMockCardRepository(t),
		qrCodeService:  mockSvc.NewMockQRCodeService(t),
		assetStorage:   mockSvc.NewMockAssetStorage(t),
		eventPublisher: mockSvc.NewMockEventPublisher(t),
		registry:       session.NewRegistry(),
	}

	fx.service = NewCardService(CardServiceParams{
		TxManager:      fx.txManager,
		ProfileRepo:    fx.profileRepo,
		CardRepo:       fx.cardRepo,
		QRCodeService:  fx.qrCodeService,
		AssetStorage:   fx.assetStorage,
		EventPublisher: fx.eventPublisher,
		Registry:       fx.registry,
		Config:         newTestConfig(),
		Logger:         newDiscardLogger(),
	})

	return fx
}

// openSession hydrates a session store for user with no cards.
func (fx cardServiceFixtures) openSession(user *entity.User) *session.Store {
	store := fx.registry.Open(user.ID)
	store.Apply(session.SignedIn{User: user, Cards: []*entity.Card{}})

	return store
}

// expectCreateTx expects the insert transaction of CreateCard for user
// owning owned cards. The inserted card gets cardID.
func (fx cardServiceFixtures) expectCreateTx(t *testing.T, user *entity.User, owned int64, cardID uuid.UUID) {
	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		txProfileRepo := mockRepo.NewMockProfileRepository(t)
		txCardRepo := mockRepo.NewMockCardRepository(t)
		factory.EXPECT().ProfileRepo().Return(txProfileRepo)
		factory.EXPECT().CardRepo().Return(txCardRepo)

		txProfileRepo.EXPECT().FindByIDForUpdate(mock.Anything, user.ID).Return(user, nil)
		txCardRepo.EXPECT().CountByUserID(mock.Anything, user.ID).Return(owned, nil)
		if !policy.CanCreateCard(user.Tier, int(owned)) {
			return
		}
		txCardRepo.EXPECT().
			Create(mock.Anything, mock.AnythingOfType("*entity.Card")).
			Run(func(ctx context.Context, card *entity.Card) {
				assert.Equal(t, entity.QRStateCreated, card.QRState)
				assert.Empty(t, card.QRCodeURL)
				card.ID = cardID
			}).
			Return(nil)
	})
}

func newCardInput() *usecase.CardInput {
	return &usecase.CardInput{
		FullName:     "  Jane Doe ",
		Role:         "Engineer",
		BusinessName: "Acme",
		Contact:      entity.Contact{Phone: "+15550100", Email: "jane@example.com"},
		Socials:      []entity.SocialLink{{Platform: entity.PlatformLinkedIn, Username: "janedoe", Enabled: true}},
		Gallery:      []string{"https://cdn.example.com/a.png"},
	}
}

func TestCardService_CreateCard_Success(t *testing.T) {
	fx := createTestCardService(t)

	ctx := context.Background()
	user := newTestUser(entity.TierFree)
	store := fx.openSession(user)
	cardID := uuid.New()
	qrURL := testAPIBaseURL + "/public/cards/" + cardID.String() + "/qr.png"

	fx.expectCreateTx(t, user, 1, cardID)
	fx.cardRepo.EXPECT().UpdateQRLink(ctx, cardID, qrURL, entity.QRStateLinked).Return(nil)

	card, err := fx.service.CreateCard(ctx, user.ID, newCardInput())

	require.NoError(t, err)
	assert.Equal(t, cardID, card.ID)
	assert.Equal(t, user.ID, card.UserID)
	assert.Equal(t, "Jane Doe", card.FullName)
	assert.Equal(t, entity.QRStateLinked, card.QRState)
	assert.Equal(t, qrURL, card.QRCodeURL)
	assert.False(t, card.EnabledFields.Gallery, "free tier cannot show a gallery")
	assert.True(t, card.EnabledFields.Phone)
	assert.Len(t, card.Gallery, 1, "gallery data is kept")

	snapshot := store.Snapshot()
	require.Len(t, snapshot.Cards, 1)
	assert.Equal(t, cardID, snapshot.Cards[0].ID)
	assert.Equal(t, entity.QRStateLinked, snapshot.Cards[0].QRState)
}

func TestCardService_CreateCard_PaidTierGalleryDefaultsOn(t *testing.T) {
	fx := createTestCardService(t)

	ctx := context.Background()
	user := newTestUser(entity.TierSmallBusiness)
	cardID := uuid.New()

	fx.expectCreateTx(t, user, 4, cardID)
	fx.cardRepo.EXPECT().UpdateQRLink(ctx, cardID, mock.Anything, entity.QRStateLinked).Return(nil)

	card, err := fx.service.CreateCard(ctx, user.ID, newCardInput())

	require.NoError(t, err)
	assert.True(t, card.EnabledFields.Gallery)
}

func TestCardService_CreateCard_BlankName(t *testing.T) {
	fx := createTestCardService(t)

	input := newCardInput()
	input.FullName = "   "

	card, err := fx.service.CreateCard(context.Background(), uuid.New(), input)

	assert.Nil(t, card)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestCardService_CreateCard_LimitReached(t *testing.T) {
	fx := createTestCardService(t)

	user := newTestUser(entity.TierFree)
	fx.expectCreateTx(t, user, 2, uuid.New())

	card, err := fx.service.CreateCard(context.Background(), user.ID, newCardInput())

	assert.Nil(t, card)
	assert.True(t, errors.Is(err, domainerrors.ErrCardLimitReached))
	assert.Contains(t, err.Error(), "the Free plan allows 2 cards")
}

func TestCardService_CreateCard_MirroredLimitSkipsTransaction(t *testing.T) {
	fx := createTestCardService(t)

	user := newTestUser(entity.TierFree)
	store := fx.registry.Open(user.ID)
	store.Apply(session.SignedIn{User: user, Cards: []*entity.Card{
		newStoredCard(user.ID, entity.QRStateLinked),
		newStoredCard(user.ID, entity.QRStateLinked),
	}})

	card, err := fx.service.CreateCard(context.Background(), user.ID, newCardInput())

	assert.Nil(t, card)
	assert.True(t, errors.Is(err, domainerrors.ErrCardLimitReached))
	assert.Contains(t, err.Error(), "the Free plan allows 2 cards")
	fx.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
	assert.Equal(t, 2, store.CardCount())
}

func TestCardService_CreateCard_LinkFailurePublishesRepair(t *testing.T) {
	fx := createTestCardService(t)

	ctx := context.Background()
	user := newTestUser(entity.TierPro)
	store := fx.openSession(user)
	cardID := uuid.New()

	fx.expectCreateTx(t, user, 0, cardID)
	fx.cardRepo.EXPECT().
		UpdateQRLink(ctx, cardID, mock.Anything, entity.QRStateLinked).
		Return(errors.New("connection reset"))
	fx.eventPublisher.EXPECT().
		PublishCardEvent(ctx, mock.MatchedBy(func(event *service.CardEvent) bool {
			return event.Type == service.CardEventQRLinkPending &&
				event.CardID == cardID.String() &&
				event.UserID == user.ID.String()
		})).
		Return(nil)

	card, err := fx.service.CreateCard(ctx, user.ID, newCardInput())

	require.Error(t, err)
	assert.Nil(t, card)

	assert.Empty(t, store.Snapshot().Cards, "a failed create leaves the session cards unchanged")
}

func TestCardService_UpdateCard_Success(t *testing.T) {
	fx := createTestCardService(t)

	ctx := context.Background()
	user := newTestUser(entity.TierFree)
	existing := newStoredCard(user.ID, entity.QRStateLinked)
	store := fx.openSession(user)
	store.Apply(session.CardCreated{Card: existing})

	input := newCardInput()
	input.Tagline = "Building things"
	input.EnabledFields = &entity.EnabledFields{Phone: true, Gallery: true}

	fx.cardRepo.EXPECT().FindByID(ctx, existing.ID).Return(existing, nil)
	fx.profileRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.cardRepo.EXPECT().
		Update(ctx, mock.MatchedBy(func(card *entity.Card) bool {
			return card.ID == existing.ID && card.QRCodeURL == existing.QRCodeURL && !card.EnabledFields.Gallery
		})).
		Return(nil)

	card, err := fx.service.UpdateCard(ctx, user.ID, existing.ID, input)

	require.NoError(t, err)
	assert.Equal(t, "Building things", card.Tagline)
	assert.Equal(t, entity.QRStateLinked, card.QRState)
	assert.Equal(t, existing.CreatedAt, card.CreatedAt)
	assert.True(t, card.EnabledFields.Phone)
	assert.False(t, card.EnabledFields.Email)

	snapshot := store.Snapshot()
	require.Len(t, snapshot.Cards, 1)
	assert.Equal(t, "Building things", snapshot.Cards[0].Tagline)
}

func TestCardService_UpdateCard_KeepsTogglesWhenOmitted(t *testing.T) {
	fx := createTestCardService(t)

	ctx := context.Background()
	user := newTestUser(entity.TierPro)
	existing := newStoredCard(user.ID, entity.QRStateLinked)
	existing.EnabledFields.Address = false

	fx.cardRepo.EXPECT().FindByID(ctx, existing.ID).Return(existing, nil)
	fx.profileRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.cardRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Card")).Return(nil)

	card, err := fx.service.UpdateCard(ctx, user.ID, existing.ID, newCardInput())

	require.NoError(t, err)
	assert.Equal(t, existing.EnabledFields, card.EnabledFields)
}

func TestCardService_UpdateCard_NotOwner(t *testing.T) {
	fx := createTestCardService(t)

	ctx := context.Background()
	existing := newStoredCard(uuid.New(), entity.QRStateLinked)
	fx.cardRepo.EXPECT().FindByID(ctx, existing.ID).Return(existing, nil)

	_, err := fx.service.UpdateCard(ctx, uuid.New(), existing.ID, newCardInput())

	assert.True(t, errors.Is(err, domainerrors.ErrCardOwnershipViolation))
}

func TestCardService_DeleteCard(t *testing.T) {
	fx := createTestCardService(t)

	ctx := context.Background()
	user := newTestUser(entity.TierFree)
	existing := newStoredCard(user.ID, entity.QRStateLinked)
	store := fx.openSession(user)
	store.Apply(session.CardCreated{Card: existing})

	fx.cardRepo.EXPECT().FindByID(ctx, existing.ID).Return(existing, nil)
	fx.cardRepo.EXPECT().Delete(ctx, existing.ID).Return(nil)

	require.NoError(t, fx.service.DeleteCard(ctx, user.ID, existing.ID))
	assert.Equal(t, 0, store.CardCount())
}

func TestCardService_DeleteCard_Missing(t *testing.T) {
	fx := createTestCardService(t)

	ctx := context.Background()
	cardID := uuid.New()
	fx.cardRepo.EXPECT().FindByID(ctx, cardID).Return(nil, repository.ErrCardNotFound)

	err := fx.service.DeleteCard(ctx, uuid.New(), cardID)

	assert.True(t, errors.Is(err, domainerrors.ErrCardNotFound))
}

func TestCardService_GetCardByID(t *testing.T) {
	t.Run("public view", func(t *testing.T) {
		fx := createTestCardService(t)
		ctx := context.Background()

		card := newStoredCard(uuid.New(), entity.QRStateLinked)
		card.EnabledFields.Phone = false
		fx.cardRepo.EXPECT().FindByID(ctx, card.ID).Return(card, nil)

		view := fx.service.GetCardByID(ctx, card.ID)

		require.NotNil(t, view)
		assert.Empty(t, view.Contact.Phone)
		assert.Equal(t, "jane@example.com", view.Contact.Email)
	})

	t.Run("not found", func(t *testing.T) {
		fx := createTestCardService(t)
		ctx := context.Background()

		cardID := uuid.New()
		fx.cardRepo.EXPECT().FindByID(ctx, cardID).Return(nil, repository.ErrCardNotFound)

		assert.Nil(t, fx.service.GetCardByID(ctx, cardID))
	})

	t.Run("storage error degrades to absence", func(t *testing.T) {
		fx := createTestCardService(t)
		ctx := context.Background()

		cardID := uuid.New()
		fx.cardRepo.EXPECT().FindByID(ctx, cardID).Return(nil, errors.New("connection refused"))

		assert.Nil(t, fx.service.GetCardByID(ctx, cardID))
	})
}

func TestCardService_RepairQRLinks(t *testing.T) {
	fx := createTestCardService(t)

	ctx := context.Background()
	user := newTestUser(entity.TierPro)
	fixed := newStoredCard(user.ID, entity.QRStateCreated)
	broken := newStoredCard(user.ID, entity.QRStateCreated)
	store := fx.openSession(user)
	store.Apply(session.CardCreated{Card: fixed})

	fx.cardRepo.EXPECT().FindUnlinkedByUserID(ctx, user.ID).Return([]*entity.Card{fixed, broken}, nil)
	fx.cardRepo.EXPECT().UpdateQRLink(ctx, fixed.ID, mock.Anything, entity.QRStateLinked).Return(nil)
	fx.cardRepo.EXPECT().UpdateQRLink(ctx, broken.ID, mock.Anything, entity.QRStateLinked).Return(errors.New("timeout"))

	output, err := fx.service.RepairQRLinks(ctx, user.ID)

	require.NoError(t, err)
	assert.Equal(t, 1, output.Repaired)
	assert.Equal(t, 1, output.Failed)
	assert.Equal(t, entity.QRStateCreated, broken.QRState)

	snapshot := store.Snapshot()
	require.Len(t, snapshot.Cards, 1)
	assert.Equal(t, entity.QRStateLinked, snapshot.Cards[0].QRState)
}

func TestCardService_UploadAsset(t *testing.T) {
	fx := createTestCardService(t)
	srv := fx.service.(*cardService)
	srv.now = func() time.Time { return time.UnixMilli(1700000000000) }

	ctx := context.Background()
	userID := uuid.New()
	data := []byte(pngSignature + "pixels")
	dataURL := "data:image/png;base64," + base64.StdEncoding.EncodeToString(data)

	fx.assetStorage.EXPECT().
		Upload(ctx, &service.Asset{Key: userID.String() + "/1700000000000.png", ContentType: "image/png", Data: data}).
		Return("https://cdn.example.com/card_assets/x.png", nil)

	url, err := fx.service.UploadAsset(ctx, userID, dataURL)

	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/card_assets/x.png", url)
}

func TestCardService_UploadAsset_StorageFailure(t *testing.T) {
	fx := createTestCardService(t)

	ctx := context.Background()
	dataURL := "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte(pngSignature+"pixels"))
	fx.assetStorage.EXPECT().Upload(ctx, mock.AnythingOfType("*service.Asset")).Return("", errors.New("bucket unavailable"))

	_, err := fx.service.UploadAsset(ctx, uuid.New(), dataURL)

	assert.True(t, errors.Is(err, domainerrors.ErrAssetUploadFailed))
}

func TestCardService_UploadAsset_Rejected(t *testing.T) {
	fx := createTestCardService(t)
	ctx := context.Background()

	_, err := fx.service.UploadAsset(ctx, uuid.New(), "https://example.com/photo.png")
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidAsset))

	tooLarge := make([]byte, 2048)
	copy(tooLarge, pngSignature)
	_, err = fx.service.UploadAsset(ctx, uuid.New(), "data:image/png;base64,"+base64.StdEncoding.EncodeToString(tooLarge))
	assert.True(t, errors.Is(err, domainerrors.ErrAssetTooLarge))
}

func TestCardService_ExportVCard(t *testing.T) {
	fx := createTestCardService(t)

	ctx := context.Background()
	card := newStoredCard(uuid.New(), entity.QRStateLinked)
	fx.cardRepo.EXPECT().FindByID(ctx, card.ID).Return(card, nil)

	output, err := fx.service.ExportVCard(ctx, card.ID)

	require.NoError(t, err)
	assert.Equal(t, "Jane_Doe.vcf", output.FileName)
	assert.Equal(t, "text/vcard; charset=utf-8", output.ContentType)
	assert.Contains(t, string(output.Data), "FN:Jane Doe")
}

func TestCardService_RenderQRCode(t *testing.T) {
	fx := createTestCardService(t)

	ctx := context.Background()
	card := newStoredCard(uuid.New(), entity.QRStateLinked)
	fx.cardRepo.EXPECT().FindByID(ctx, card.ID).Return(card, nil)
	fx.qrCodeService.EXPECT().
		GenerateCardQR(testOrigin + "/#/card/" + card.ID.String()).
		Return([]byte(pngSignature), nil)

	png, err := fx.service.RenderQRCode(ctx, card.ID)

	require.NoError(t, err)
	assert.Equal(t, []byte(pngSignature), png)
}

func TestCardService_RenderQRCode_UnknownCard(t *testing.T) {
	fx := createTestCardService(t)

	ctx := context.Background()
	cardID := uuid.New()
	fx.cardRepo.EXPECT().FindByID(ctx, cardID).Return(nil, repository.ErrCardNotFound)

	_, err := fx.service.RenderQRCode(ctx, cardID)

	assert.True(t, errors.Is(err, domainerrors.ErrCardNotFound))
}

func TestCardService_ResolveScan(t *testing.T) {
	fx := createTestCardService(t)

	ctx := context.Background()
	card := newStoredCard(uuid.New(), entity.QRStateLinked)
	fx.cardRepo.EXPECT().FindByID(ctx, card.ID).Return(card, nil)

	resolved, err := fx.service.ResolveScan(ctx, testOrigin+"/#/card/"+card.ID.String())

	require.NoError(t, err)
	assert.Equal(t, card.ID, resolved.ID)

	_, err = fx.service.ResolveScan(ctx, "https://example.com/somewhere")
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidScanPayload))
}

func TestCardService_ListCards(t *testing.T) {
	fx := createTestCardService(t)

	ctx := context.Background()
	userID := uuid.New()
	cards := []*entity.Card{newStoredCard(userID, entity.QRStateLinked)}
	fx.cardRepo.EXPECT().FindByUserID(ctx, userID).Return(cards, nil)

	got, err := fx.service.ListCards(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, cards, got)
}
