package impl

import (
	"context"
	"testing"

	"loopcard/internal/domain/analytics"
	"loopcard/internal/domain/entity"
	domainerrors "loopcard/internal/domain/errors"
	mockRepo "loopcard/internal/mocks/repository"
	mockSvc "loopcard/internal/mocks/service"
	"loopcard/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// insightServiceFixtures holds all test dependencies for insight service tests.
type insightServiceFixtures struct {
	service     usecase.InsightUsecase
	profileRepo *mockRepo.MockProfileRepository
	cardRepo    *mockRepo.MockCardRepository
	clickRepo   *mockRepo.MockClickRepository
	generator   *mockSvc.MockInsightGenerator
}

func createTestInsightService(t *testing.T) insightServiceFixtures {
	fx := insightServiceFixtures{
		profileRepo: mockRepo.NewMockProfileRepository(t),
		cardRepo:    mockRepo.NewMockCardRepository(t),
		clickRepo:   mockRepo.NewMockClickRepository(t),
		generator:   mockSvc.NewMockInsightGenerator(t),
	}

	fx.service = NewInsightService(InsightServiceParams{
		ProfileRepo: fx.profileRepo,
		CardRepo:    fx.cardRepo,
		ClickRepo:   fx.clickRepo,
		Generator:   fx.generator,
		Logger:      newDiscardLogger(),
	})

	return fx
}

func TestInsightService_GenerateInsights_Success(t *testing.T) {
	fx := createTestInsightService(t)

	ctx := context.Background()
	user := newTestUser(entity.TierPro)
	card := newStoredCard(user.ID, entity.QRStateLinked)

	fx.profileRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.cardRepo.EXPECT().FindByID(ctx, card.ID).Return(card, nil)
	fx.clickRepo.EXPECT().FindByCardID(ctx, card.ID).Return([]*entity.Click{newClick(card.ID, "phone", 0)}, nil)
	fx.generator.EXPECT().
		GenerateText(ctx, mock.MatchedBy(func(prompt string) bool {
			return assert.Contains(t, prompt, "Card: Jane Doe, Engineer at Acme") &&
				assert.Contains(t, prompt, "- Total Clicks: 1") &&
				assert.Contains(t, prompt, "Phone (1)")
		})).
		Return("## Overall Performance\nSteady.", nil)

	text, err := fx.service.GenerateInsights(ctx, user.ID, card.ID, analytics.AllTime)

	require.NoError(t, err)
	assert.Equal(t, "## Overall Performance\nSteady.", text)
}

func TestInsightService_GenerateInsights_Placeholder(t *testing.T) {
	fx := createTestInsightService(t)

	ctx := context.Background()
	user := newTestUser(entity.TierPro)
	card := newStoredCard(user.ID, entity.QRStateLinked)

	fx.profileRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.cardRepo.EXPECT().FindByID(ctx, card.ID).Return(card, nil)
	fx.clickRepo.EXPECT().FindByCardID(ctx, card.ID).Return(nil, errors.New("connection refused"))
	fx.generator.EXPECT().GenerateText(ctx, mock.Anything).Return("", errors.New("quota exceeded"))

	text, err := fx.service.GenerateInsights(ctx, user.ID, card.ID, analytics.Last30)

	require.NoError(t, err)
	assert.Equal(t, usecase.InsightsPlaceholder, text)
}

func TestInsightService_RequiresProTier(t *testing.T) {
	for _, tier := range []entity.Tier{entity.TierFree, entity.TierSmallBusiness, entity.TierEnterprise} {
		t.Run(string(tier), func(t *testing.T) {
			fx := createTestInsightService(t)

			ctx := context.Background()
			user := newTestUser(tier)
			fx.profileRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)

			_, err := fx.service.GenerateInsights(ctx, user.ID, uuid.New(), analytics.Last30)
			assert.True(t, errors.Is(err, domainerrors.ErrFeatureNotAvailable))

			_, err = fx.service.SuggestUsernames(ctx, user.ID, &usecase.SuggestUsernamesInput{
				FullName: "Jane Doe",
				Platform: entity.PlatformGitHub,
			})
			assert.True(t, errors.Is(err, domainerrors.ErrFeatureNotAvailable))
		})
	}
}

func TestInsightService_SuggestUsernames_FillsFromCard(t *testing.T) {
	fx := createTestInsightService(t)

	ctx := context.Background()
	user := newTestUser(entity.TierPro)
	card := newStoredCard(user.ID, entity.QRStateLinked)

	fx.profileRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.cardRepo.EXPECT().FindByID(ctx, card.ID).Return(card, nil)
	fx.generator.EXPECT().
		GenerateList(ctx, mock.MatchedBy(func(prompt string) bool {
			return assert.Contains(t, prompt, "github usernames for Jane Doe, who works as Engineer at Acme")
		})).
		Return([]string{"@janedoe", "JaneDoe", " ", "jdoe_dev", "jane.builds", "acme-jane", "janedoe42", "extra"}, nil)

	suggestions, err := fx.service.SuggestUsernames(ctx, user.ID, &usecase.SuggestUsernamesInput{
		CardID:   card.ID,
		Platform: entity.PlatformGitHub,
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"janedoe", "jdoe_dev", "jane.builds", "acme-jane", "janedoe42"}, suggestions)
}

func TestInsightService_SuggestUsernames_GeneratorFailure(t *testing.T) {
	fx := createTestInsightService(t)

	ctx := context.Background()
	user := newTestUser(entity.TierPro)

	fx.profileRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.generator.EXPECT().GenerateList(ctx, mock.Anything).Return(nil, errors.New("malformed model output"))

	suggestions, err := fx.service.SuggestUsernames(ctx, user.ID, &usecase.SuggestUsernamesInput{
		FullName: "Jane Doe",
		Platform: entity.PlatformTwitter,
	})

	require.NoError(t, err)
	require.NotNil(t, suggestions)
	assert.Empty(t, suggestions)
}

func TestInsightService_SuggestUsernames_Validation(t *testing.T) {
	fx := createTestInsightService(t)

	ctx := context.Background()
	user := newTestUser(entity.TierPro)
	fx.profileRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil).Times(2)

	_, err := fx.service.SuggestUsernames(ctx, user.ID, &usecase.SuggestUsernamesInput{Platform: entity.PlatformTwitter})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	_, err = fx.service.SuggestUsernames(ctx, user.ID, &usecase.SuggestUsernamesInput{FullName: "Jane Doe"})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}
