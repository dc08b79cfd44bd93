package impl

import (
	"context"
	"testing"
	"time"

	"loopcard/internal/domain/analytics"
	"loopcard/internal/domain/entity"
	domainerrors "loopcard/internal/domain/errors"
	"loopcard/internal/domain/service"
	mockRepo "loopcard/internal/mocks/repository"
	mockSvc "loopcard/internal/mocks/service"
	"loopcard/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var analyticsNow = time.Date(2024, 6, 30, 12, 0, 0, 0, time.UTC)

// analyticsServiceFixtures holds all test dependencies for analytics service tests.
type analyticsServiceFixtures struct {
	service        *analyticsService
	profileRepo    *mockRepo.MockProfileRepository
	cardRepo       *mockRepo.MockCardRepository
	clickRepo      *mockRepo.MockClickRepository
	eventPublisher *mockSvc.MockEventPublisher
}

func createTestAnalyticsService(t *testing.T) analyticsServiceFixtures {
	fx := analyticsServiceFixtures{
		profileRepo:    mockRepo.NewMockProfileRepository(t),
		cardRepo:       mockRepo.NewMockCardRepository(t),
		clickRepo:      mockRepo.NewMockClickRepository(t),
		eventPublisher: mockSvc.NewMockEventPublisher(t),
	}

	fx.service = newAnalyticsService(AnalyticsServiceParams{
		ProfileRepo:    fx.profileRepo,
		CardRepo:       fx.cardRepo,
		ClickRepo:      fx.clickRepo,
		EventPublisher: fx.eventPublisher,
		Config:         newTestConfig(),
		Logger:         newDiscardLogger(),
	})
	fx.service.now = func() time.Time { return analyticsNow }

	return fx
}

func newClick(cardID uuid.UUID, clickType string, daysAgo int) *entity.Click {
	return &entity.Click{
		ID:        uuid.New(),
		CardID:    cardID,
		Type:      clickType,
		CreatedAt: analyticsNow.Add(-time.Duration(daysAgo) * 24 * time.Hour),
	}
}

func TestAnalyticsService_RecordClick(t *testing.T) {
	fx := createTestAnalyticsService(t)

	cardID := uuid.New()
	fx.clickRepo.EXPECT().
		Create(mock.Anything, mock.MatchedBy(func(click *entity.Click) bool {
			return click.CardID == cardID && click.Type == entity.ClickTypePhone && click.TargetURL == "tel:+15550100"
		})).
		Return(nil)
	fx.eventPublisher.EXPECT().
		PublishCardEvent(mock.Anything, mock.MatchedBy(func(event *service.CardEvent) bool {
			return event.Type == service.CardEventClickRecorded && event.ClickType == entity.ClickTypePhone
		})).
		Return(nil)

	fx.service.RecordClick(context.Background(), &usecase.RecordClickInput{
		CardID:    cardID,
		Type:      entity.ClickTypePhone,
		TargetURL: " tel:+15550100 ",
	})
	fx.service.wait()
}

func TestAnalyticsService_RecordClick_OutlivesRequest(t *testing.T) {
	fx := createTestAnalyticsService(t)

	ctx, cancel := context.WithCancel(context.Background())
	release := make(chan struct{})

	fx.clickRepo.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*entity.Click")).
		Run(func(ctx context.Context, click *entity.Click) {
			<-release
			assert.NoError(t, ctx.Err(), "insert must not see the request cancellation")
		}).
		Return(nil)
	fx.eventPublisher.EXPECT().PublishCardEvent(mock.Anything, mock.Anything).Return(errors.New("broker down"))

	fx.service.RecordClick(ctx, &usecase.RecordClickInput{CardID: uuid.New(), Type: "linkedin"})
	cancel()
	close(release)
	fx.service.wait()
}

func TestAnalyticsService_RecordClick_FailureIsSwallowed(t *testing.T) {
	fx := createTestAnalyticsService(t)

	fx.clickRepo.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*entity.Click")).
		Return(errors.New("insert failed"))

	fx.service.RecordClick(context.Background(), &usecase.RecordClickInput{CardID: uuid.New(), Type: "email"})
	fx.service.wait()

	fx.eventPublisher.AssertNotCalled(t, "PublishCardEvent", mock.Anything, mock.Anything)
}

func TestAnalyticsService_RecordClick_BlankTypeDropped(t *testing.T) {
	fx := createTestAnalyticsService(t)

	fx.service.RecordClick(context.Background(), &usecase.RecordClickInput{CardID: uuid.New(), Type: "  "})
	fx.service.wait()

	fx.clickRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAnalyticsService_ListClicks_DegradesToEmpty(t *testing.T) {
	fx := createTestAnalyticsService(t)

	ctx := context.Background()
	cardID := uuid.New()
	fx.clickRepo.EXPECT().FindByCardID(ctx, cardID).Return(nil, errors.New("connection refused"))

	clicks := fx.service.ListClicks(ctx, cardID)

	require.NotNil(t, clicks)
	assert.Empty(t, clicks)
}

func TestAnalyticsService_Summary_Advanced(t *testing.T) {
	fx := createTestAnalyticsService(t)

	ctx := context.Background()
	user := newTestUser(entity.TierPro)
	card := newStoredCard(user.ID, entity.QRStateLinked)
	clicks := []*entity.Click{
		newClick(card.ID, "phone", 1),
		newClick(card.ID, "Phone", 2),
		newClick(card.ID, "linkedin", 2),
		newClick(card.ID, "email", 40),
	}

	fx.cardRepo.EXPECT().FindByID(ctx, card.ID).Return(card, nil)
	fx.profileRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.clickRepo.EXPECT().FindByCardID(ctx, card.ID).Return(clicks, nil)

	summary, err := fx.service.Summary(ctx, &usecase.SummaryInput{
		UserID: user.ID,
		CardID: card.ID,
		Window: analytics.Last30,
	})

	require.NoError(t, err)
	assert.True(t, summary.Advanced)
	assert.Equal(t, 3, summary.Total)
	assert.Equal(t, []analytics.TypeCount{{Type: "Phone", Count: 2}, {Type: "Linkedin", Count: 1}}, summary.ByType)
	assert.Equal(t, []analytics.DayCount{{Date: "2024-06-28", Count: 2}, {Date: "2024-06-29", Count: 1}}, summary.ByDay)
}

func TestAnalyticsService_Summary_BasicTier(t *testing.T) {
	fx := createTestAnalyticsService(t)

	ctx := context.Background()
	user := newTestUser(entity.TierSmallBusiness)
	card := newStoredCard(user.ID, entity.QRStateLinked)

	fx.cardRepo.EXPECT().FindByID(ctx, card.ID).Return(card, nil)
	fx.profileRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.clickRepo.EXPECT().
		FindByCardID(ctx, card.ID).
		Return([]*entity.Click{newClick(card.ID, "phone", 1), newClick(card.ID, "email", 100)}, nil)

	summary, err := fx.service.Summary(ctx, &usecase.SummaryInput{
		UserID: user.ID,
		CardID: card.ID,
		Window: analytics.AllTime,
	})

	require.NoError(t, err)
	assert.False(t, summary.Advanced)
	assert.Equal(t, 2, summary.Total)
	assert.Empty(t, summary.ByType)
	assert.Empty(t, summary.ByDay)
}

func TestAnalyticsService_Summary_NotOwner(t *testing.T) {
	fx := createTestAnalyticsService(t)

	ctx := context.Background()
	card := newStoredCard(uuid.New(), entity.QRStateLinked)
	fx.cardRepo.EXPECT().FindByID(ctx, card.ID).Return(card, nil)

	_, err := fx.service.Summary(ctx, &usecase.SummaryInput{UserID: uuid.New(), CardID: card.ID, Window: analytics.Last7})

	assert.True(t, errors.Is(err, domainerrors.ErrCardOwnershipViolation))
}
