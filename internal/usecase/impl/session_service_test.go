package impl

import (
	"context"
	"testing"

	"loopcard/internal/domain/entity"
	domainerrors "loopcard/internal/domain/errors"
	"loopcard/internal/domain/repository"
	"loopcard/internal/domain/session"
	mockRepo "loopcard/internal/mocks/repository"
	"loopcard/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sessionServiceFixtures holds all test dependencies for session service tests.
type sessionServiceFixtures struct {
	service     usecase.SessionUsecase
	profileRepo *mockRepo.MockProfileRepository
	cardRepo    *mockRepo.MockCardRepository
	registry    *session.Registry
}

func createTestSessionService(t *testing.T) sessionServiceFixtures {
	profileRepo := mockRepo.NewMockProfileRepository(t)
	cardRepo := mockRepo.NewMockCardRepository(t)
	registry := session.NewRegistry()

	service := NewSessionService(SessionServiceParams{
		ProfileRepo: profileRepo,
		CardRepo:    cardRepo,
		Registry:    registry,
		Config:      newTestConfig(),
		Logger:      newDiscardLogger(),
	})

	return sessionServiceFixtures{
		service:     service,
		profileRepo: profileRepo,
		cardRepo:    cardRepo,
		registry:    registry,
	}
}

func TestSessionService_Hydrate_Success(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	user := newTestUser(entity.TierPro)
	linked := newStoredCard(user.ID, entity.QRStateLinked)
	unlinked := newStoredCard(user.ID, entity.QRStateCreated)
	expectedURL := testAPIBaseURL + "/public/cards/" + unlinked.ID.String() + "/qr.png"

	fx.profileRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.cardRepo.EXPECT().FindByUserID(ctx, user.ID).Return([]*entity.Card{linked, unlinked}, nil)
	fx.cardRepo.EXPECT().UpdateQRLink(ctx, unlinked.ID, expectedURL, entity.QRStateLinked).Return(nil)

	snapshot, err := fx.service.Hydrate(ctx, user.ID)

	require.NoError(t, err)
	assert.False(t, snapshot.Loading)
	assert.Equal(t, user.ID, snapshot.User.ID)
	require.Len(t, snapshot.Cards, 2)
	assert.Equal(t, linked.ID, snapshot.Cards[0].ID)
	assert.Equal(t, entity.QRStateLinked, snapshot.Cards[1].QRState)
	assert.Equal(t, expectedURL, snapshot.Cards[1].QRCodeURL)
	assert.Equal(t, 1, fx.registry.Len())
}

func TestSessionService_Hydrate_MissingProfileFailsClosed(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.profileRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrProfileNotFound)

	snapshot, err := fx.service.Hydrate(ctx, userID)

	require.Error(t, err)
	assert.Nil(t, snapshot)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
	assert.Equal(t, 0, fx.registry.Len())
}

func TestSessionService_Hydrate_CardsErrorDegradesToEmpty(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	user := newTestUser(entity.TierFree)

	fx.profileRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.cardRepo.EXPECT().FindByUserID(ctx, user.ID).Return(nil, errors.New("connection reset"))

	snapshot, err := fx.service.Hydrate(ctx, user.ID)

	require.NoError(t, err)
	assert.NotNil(t, snapshot.Cards)
	assert.Empty(t, snapshot.Cards)
	assert.Equal(t, entity.TierFree, snapshot.User.Tier)
}

func TestSessionService_Hydrate_RepairFailureKeepsCard(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	user := newTestUser(entity.TierFree)
	unlinked := newStoredCard(user.ID, entity.QRStateCreated)

	fx.profileRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.cardRepo.EXPECT().FindByUserID(ctx, user.ID).Return([]*entity.Card{unlinked}, nil)
	fx.cardRepo.EXPECT().
		UpdateQRLink(ctx, unlinked.ID, testAPIBaseURL+"/public/cards/"+unlinked.ID.String()+"/qr.png", entity.QRStateLinked).
		Return(errors.New("timeout"))

	snapshot, err := fx.service.Hydrate(ctx, user.ID)

	require.NoError(t, err)
	require.Len(t, snapshot.Cards, 1)
	assert.Equal(t, entity.QRStateCreated, snapshot.Cards[0].QRState)
	assert.Empty(t, snapshot.Cards[0].QRCodeURL)
}

func TestSessionService_Current_ReusesStore(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	user := newTestUser(entity.TierPro)

	fx.profileRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil).Once()
	fx.cardRepo.EXPECT().FindByUserID(ctx, user.ID).Return([]*entity.Card{}, nil).Once()

	first, err := fx.service.Current(ctx, user.ID)
	require.NoError(t, err)

	fx.registry.Dispatch(user.ID, session.CardCreated{Card: newStoredCard(user.ID, entity.QRStateLinked)})

	second, err := fx.service.Current(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, first.Cards)
	assert.Len(t, second.Cards, 1)
}

func TestSessionService_EndAndShutdown(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	a, b := uuid.New(), uuid.New()
	fx.registry.Open(a)
	fx.registry.Open(b)

	fx.service.End(ctx, a)
	_, ok := fx.registry.Get(a)
	assert.False(t, ok)
	assert.Equal(t, 1, fx.registry.Len())

	fx.service.Shutdown(ctx)
	assert.Equal(t, 0, fx.registry.Len())
}
