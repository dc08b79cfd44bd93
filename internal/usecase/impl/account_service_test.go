package impl

import (
	"context"
	"testing"
	"time"

	"loopcard/internal/domain/entity"
	domainerrors "loopcard/internal/domain/errors"
	"loopcard/internal/domain/repository"
	"loopcard/internal/domain/service"
	"loopcard/internal/domain/session"
	mockRepo "loopcard/internal/mocks/repository"
	mockSvc "loopcard/internal/mocks/service"
	mockUsecase "loopcard/internal/mocks/usecase"
	"loopcard/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const refreshTTL = 7 * 24 * time.Hour

// accountServiceFixtures holds all test dependencies for account service tests.
type accountServiceFixtures struct {
	service      usecase.AccountUsecase
	txManager    *mockRepo.MockTransactionManager
	profileRepo  *mockRepo.MockProfileRepository
	authRepo     *mockRepo.MockAuthRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
	verifier     *mockSvc.MockIdentityVerifier
	sessions     *mockUsecase.MockSessionUsecase
	registry     *session.Registry
}

func createTestAccountService(t *testing.T) accountServiceFixtures {
	fx := accountServiceFixtures{
		txManager:    mockRepo.NewMockTransactionManager(t),
		profileRepo:  mockRepo.NewMockProfileRepository(t),
		authRepo:     mockRepo.NewMockAuthRepository(t),
		hasher:       mockSvc.NewMockPasswordHasher(t),
		tokenService: mockSvc.NewMockTokenService(t),
		verifier:     mockSvc.NewMockIdentityVerifier(t),
		sessions:     mockUsecase.NewMockSessionUsecase(t),
		registry:     session.NewRegistry(),
	}

	fx.service = NewAccountService(AccountServiceParams{
		TxManager:    fx.txManager,
		ProfileRepo:  fx.profileRepo,
		AuthRepo:     fx.authRepo,
		Hasher:       fx.hasher,
		TokenService: fx.tokenService,
		Verifier:     fx.verifier,
		Sessions:     fx.sessions,
		Registry:     fx.registry,
		Logger:       newDiscardLogger(),
	})

	return fx
}

// expectSessionStart expects the hydrate and token issue of a sign-in.
func (fx accountServiceFixtures) expectSessionStart(ctx context.Context, user *entity.User) {
	fx.sessions.EXPECT().Hydrate(ctx, user.ID).Return(&session.Snapshot{User: user, Cards: []*entity.Card{}}, nil)
	fx.tokenService.EXPECT().GenerateTokens(user.ID).Return("access-token", "refresh-token", nil)
	fx.tokenService.EXPECT().GetRefreshTokenDuration().Return(refreshTTL)
	fx.authRepo.EXPECT().
		CreateRefreshToken(ctx, mock.MatchedBy(func(token *entity.RefreshToken) bool {
			return token.UserID == user.ID && token.TokenHash == hashToken("refresh-token")
		})).
		Return(nil)
}

func TestAccountService_SignUp_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "jane@example.com", Tier: entity.TierPro}
	input := &usecase.SignUpInput{Email: " Jane@Example.com ", Password: "secret123", Tier: "pro"}

	fx.hasher.EXPECT().Hash("secret123").Return("hashed", nil)
	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		txProfileRepo := mockRepo.NewMockProfileRepository(t)
		txAuthRepo := mockRepo.NewMockAuthRepository(t)
		factory.EXPECT().ProfileRepo().Return(txProfileRepo)
		factory.EXPECT().AuthRepo().Return(txAuthRepo)

		txAuthRepo.EXPECT().
			FindAuthentication(ctx, entity.ProviderTypeEmail, "jane@example.com").
			Return(nil, repository.ErrAuthNotFound)
		txProfileRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.User")).
			Run(func(ctx context.Context, created *entity.User) {
				assert.Equal(t, "jane@example.com", created.Email)
				assert.Equal(t, entity.TierPro, created.Tier)
				created.ID = user.ID
			}).
			Return(nil)
		txAuthRepo.EXPECT().
			CreateAuthentication(ctx, mock.MatchedBy(func(auth *entity.Authentication) bool {
				return auth.UserID == user.ID && auth.PasswordHash == "hashed" && auth.Provider == entity.ProviderTypeEmail
			})).
			Return(nil)
	})
	fx.expectSessionStart(ctx, user)

	output, err := fx.service.SignUp(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "access-token", output.AccessToken)
	assert.Equal(t, "refresh-token", output.RefreshToken)
	assert.Equal(t, user.ID, output.User.ID)
	assert.True(t, output.Capabilities.CanUseAIFeatures)
	assert.Equal(t, 5, output.Capabilities.MaxCards)
}

func TestAccountService_SignUp_EmailTaken(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.SignUpInput{Email: "jane@example.com", Password: "secret123"}

	fx.hasher.EXPECT().Hash("secret123").Return("hashed", nil)
	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		txAuthRepo := mockRepo.NewMockAuthRepository(t)
		factory.EXPECT().AuthRepo().Return(txAuthRepo)
		txAuthRepo.EXPECT().
			FindAuthentication(ctx, entity.ProviderTypeEmail, "jane@example.com").
			Return(&entity.Authentication{UserID: uuid.New()}, nil)
	})

	output, err := fx.service.SignUp(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestAccountService_SignUp_InvalidInput(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	_, err := fx.service.SignUp(ctx, &usecase.SignUpInput{Email: "jane@example.com", Password: "secret123", Tier: "Platinum"})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidTier))

	_, err = fx.service.SignUp(ctx, &usecase.SignUpInput{Email: "  ", Password: "secret123"})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestAccountService_SignUp_WeakPassword(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	fx.hasher.EXPECT().Hash("123").Return("", domainerrors.ErrPasswordStrength.WithDetails("too short"))

	_, err := fx.service.SignUp(ctx, &usecase.SignUpInput{Email: "jane@example.com", Password: "123"})

	assert.True(t, errors.Is(err, domainerrors.ErrPasswordStrength))
}

func TestAccountService_SignIn_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	user := newTestUser(entity.TierFree)

	fx.authRepo.EXPECT().
		FindAuthentication(ctx, entity.ProviderTypeEmail, "jane@example.com").
		Return(&entity.Authentication{UserID: user.ID, PasswordHash: "hashed"}, nil)
	fx.hasher.EXPECT().Check("secret123", "hashed").Return(true)
	fx.expectSessionStart(ctx, user)

	output, err := fx.service.SignIn(ctx, &usecase.SignInInput{Email: "JANE@example.com", Password: "secret123"})

	require.NoError(t, err)
	assert.Equal(t, 2, output.Capabilities.MaxCards)
	assert.False(t, output.Capabilities.CanUseGallery)
	assert.NotNil(t, output.Session)
}

func TestAccountService_SignIn_InvalidCredentials(t *testing.T) {
	t.Run("unknown email", func(t *testing.T) {
		fx := createTestAccountService(t)
		ctx := context.Background()

		fx.authRepo.EXPECT().
			FindAuthentication(ctx, entity.ProviderTypeEmail, "ghost@example.com").
			Return(nil, repository.ErrAuthNotFound)

		_, err := fx.service.SignIn(ctx, &usecase.SignInInput{Email: "ghost@example.com", Password: "secret123"})
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	})

	t.Run("wrong password", func(t *testing.T) {
		fx := createTestAccountService(t)
		ctx := context.Background()

		fx.authRepo.EXPECT().
			FindAuthentication(ctx, entity.ProviderTypeEmail, "jane@example.com").
			Return(&entity.Authentication{UserID: uuid.New(), PasswordHash: "hashed"}, nil)
		fx.hasher.EXPECT().Check("wrong", "hashed").Return(false)

		_, err := fx.service.SignIn(ctx, &usecase.SignInInput{Email: "jane@example.com", Password: "wrong"})
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	})
}

func TestAccountService_SignIn_MissingProfileIssuesNoTokens(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.authRepo.EXPECT().
		FindAuthentication(ctx, entity.ProviderTypeEmail, "jane@example.com").
		Return(&entity.Authentication{UserID: userID, PasswordHash: "hashed"}, nil)
	fx.hasher.EXPECT().Check("secret123", "hashed").Return(true)
	fx.sessions.EXPECT().Hydrate(ctx, userID).Return(nil, domainerrors.ErrUserNotFound)

	output, err := fx.service.SignIn(ctx, &usecase.SignInInput{Email: "jane@example.com", Password: "secret123"})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestAccountService_SignInWithIdentityToken_ProvisionsProfile(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	user := newTestUser(entity.TierFree)
	identity := &service.Identity{UID: "firebase-uid", Email: user.Email, EmailVerified: true, Provider: "google.com"}

	fx.verifier.EXPECT().VerifyIDToken(ctx, "id-token").Return(identity, nil)
	fx.authRepo.EXPECT().
		FindAuthentication(ctx, entity.ProviderTypeFirebase, "firebase-uid").
		Return(nil, repository.ErrAuthNotFound)
	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		txProfileRepo := mockRepo.NewMockProfileRepository(t)
		txAuthRepo := mockRepo.NewMockAuthRepository(t)
		factory.EXPECT().ProfileRepo().Return(txProfileRepo)
		factory.EXPECT().AuthRepo().Return(txAuthRepo)

		txProfileRepo.EXPECT().FindByEmail(ctx, user.Email).Return(nil, repository.ErrProfileNotFound)
		txProfileRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.User")).
			Run(func(ctx context.Context, created *entity.User) {
				assert.Equal(t, entity.TierFree, created.Tier)
				created.ID = user.ID
			}).
			Return(nil)
		txAuthRepo.EXPECT().
			CreateAuthentication(ctx, mock.MatchedBy(func(auth *entity.Authentication) bool {
				return auth.Provider == entity.ProviderTypeFirebase && auth.ProviderUserID == "firebase-uid" && auth.UserID == user.ID
			})).
			Return(nil)
	})
	fx.expectSessionStart(ctx, user)

	output, err := fx.service.SignInWithIdentityToken(ctx, "id-token")

	require.NoError(t, err)
	assert.Equal(t, user.ID, output.User.ID)
}

func TestAccountService_SignInWithIdentityToken_Linked(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	user := newTestUser(entity.TierPro)

	fx.verifier.EXPECT().VerifyIDToken(ctx, "id-token").Return(&service.Identity{UID: "uid", Email: user.Email}, nil)
	fx.authRepo.EXPECT().
		FindAuthentication(ctx, entity.ProviderTypeFirebase, "uid").
		Return(&entity.Authentication{UserID: user.ID}, nil)
	fx.expectSessionStart(ctx, user)

	output, err := fx.service.SignInWithIdentityToken(ctx, "id-token")

	require.NoError(t, err)
	assert.Equal(t, "access-token", output.AccessToken)
}

func TestAccountService_SignInWithIdentityToken_UnverifiedEmailConflict(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	existing := newTestUser(entity.TierFree)

	fx.verifier.EXPECT().VerifyIDToken(ctx, "id-token").Return(&service.Identity{UID: "uid", Email: existing.Email}, nil)
	fx.authRepo.EXPECT().FindAuthentication(ctx, entity.ProviderTypeFirebase, "uid").Return(nil, repository.ErrAuthNotFound)
	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		txProfileRepo := mockRepo.NewMockProfileRepository(t)
		factory.EXPECT().ProfileRepo().Return(txProfileRepo)
		txProfileRepo.EXPECT().FindByEmail(ctx, existing.Email).Return(existing, nil)
	})

	_, err := fx.service.SignInWithIdentityToken(ctx, "id-token")

	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestAccountService_SignInWithIdentityToken_InvalidToken(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	fx.verifier.EXPECT().VerifyIDToken(ctx, "bad").Return(nil, domainerrors.ErrIdentityTokenInvalid.WrapMessage("expired"))

	_, err := fx.service.SignInWithIdentityToken(ctx, "bad")

	assert.True(t, errors.Is(err, domainerrors.ErrIdentityTokenInvalid))
}

func TestAccountService_RefreshToken_Rotates(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	user := newTestUser(entity.TierPro)
	oldHash := hashToken("old-refresh")

	fx.tokenService.EXPECT().ValidateRefreshToken("old-refresh").Return(&service.Claims{UserID: user.ID, Type: service.TokenTypeRefresh}, nil)
	fx.authRepo.EXPECT().
		FindRefreshTokenByHash(ctx, oldHash).
		Return(&entity.RefreshToken{UserID: user.ID, TokenHash: oldHash, ExpiresAt: time.Now().Add(time.Hour)}, nil)
	fx.sessions.EXPECT().Current(ctx, user.ID).Return(&session.Snapshot{User: user, Cards: []*entity.Card{}}, nil)
	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		txAuthRepo := mockRepo.NewMockAuthRepository(t)
		factory.EXPECT().AuthRepo().Return(txAuthRepo)
		txAuthRepo.EXPECT().DeleteRefreshTokenByHash(ctx, oldHash).Return(nil)
		txAuthRepo.EXPECT().
			CreateRefreshToken(ctx, mock.MatchedBy(func(token *entity.RefreshToken) bool {
				return token.TokenHash == hashToken("new-refresh")
			})).
			Return(nil)
	})
	fx.tokenService.EXPECT().GenerateTokens(user.ID).Return("new-access", "new-refresh", nil)
	fx.tokenService.EXPECT().GetRefreshTokenDuration().Return(refreshTTL)

	output, err := fx.service.RefreshToken(ctx, "old-refresh")

	require.NoError(t, err)
	assert.Equal(t, "new-access", output.AccessToken)
	assert.Equal(t, "new-refresh", output.RefreshToken)
	assert.True(t, output.Capabilities.CanViewAdvancedAnalytics)
}

func TestAccountService_RefreshToken_Rejected(t *testing.T) {
	t.Run("malformed", func(t *testing.T) {
		fx := createTestAccountService(t)
		fx.tokenService.EXPECT().ValidateRefreshToken("junk").Return(nil, errors.New("failed to parse token"))

		_, err := fx.service.RefreshToken(context.Background(), "junk")
		assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenInvalid))
	})

	t.Run("revoked", func(t *testing.T) {
		fx := createTestAccountService(t)
		ctx := context.Background()
		userID := uuid.New()

		fx.tokenService.EXPECT().ValidateRefreshToken("revoked").Return(&service.Claims{UserID: userID}, nil)
		fx.authRepo.EXPECT().FindRefreshTokenByHash(ctx, hashToken("revoked")).Return(nil, repository.ErrTokenNotFound)

		_, err := fx.service.RefreshToken(ctx, "revoked")
		assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenInvalid))
	})

	t.Run("expired", func(t *testing.T) {
		fx := createTestAccountService(t)
		ctx := context.Background()
		userID := uuid.New()

		fx.tokenService.EXPECT().ValidateRefreshToken("stale").Return(&service.Claims{UserID: userID}, nil)
		fx.authRepo.EXPECT().
			FindRefreshTokenByHash(ctx, hashToken("stale")).
			Return(&entity.RefreshToken{UserID: userID, ExpiresAt: time.Now().Add(-time.Minute)}, nil)

		_, err := fx.service.RefreshToken(ctx, "stale")
		assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenInvalid))
	})
}

func TestAccountService_SignOut(t *testing.T) {
	t.Run("single token", func(t *testing.T) {
		fx := createTestAccountService(t)
		ctx := context.Background()
		userID := uuid.New()

		fx.authRepo.EXPECT().DeleteRefreshTokenByHash(ctx, hashToken("refresh")).Return(repository.ErrTokenNotFound)
		fx.sessions.EXPECT().End(ctx, userID).Return()

		assert.NoError(t, fx.service.SignOut(ctx, userID, "refresh"))
	})

	t.Run("all tokens", func(t *testing.T) {
		fx := createTestAccountService(t)
		ctx := context.Background()
		userID := uuid.New()

		fx.authRepo.EXPECT().DeleteRefreshTokensByUserID(ctx, userID).Return(nil)
		fx.sessions.EXPECT().End(ctx, userID).Return()

		assert.NoError(t, fx.service.SignOut(ctx, userID, ""))
	})
}

func TestAccountService_ChangeTier(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	user := newTestUser(entity.TierFree)
	fx.registry.Open(user.ID).Apply(session.SignedIn{User: user, Cards: []*entity.Card{}})

	upgraded := *user
	upgraded.Tier = entity.TierPro
	fx.profileRepo.EXPECT().UpdateTier(ctx, user.ID, entity.TierPro).Return(&upgraded, nil)

	updated, err := fx.service.ChangeTier(ctx, user.ID, "Pro")

	require.NoError(t, err)
	assert.Equal(t, entity.TierPro, updated.Tier)

	store, ok := fx.registry.Get(user.ID)
	require.True(t, ok)
	assert.Equal(t, entity.TierPro, store.Snapshot().User.Tier)
}

func TestAccountService_ChangeTier_Errors(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	userID := uuid.New()

	_, err := fx.service.ChangeTier(ctx, userID, "Gold")
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidTier))

	fx.profileRepo.EXPECT().UpdateTier(ctx, userID, entity.TierEnterprise).Return(nil, repository.ErrProfileNotFound)
	_, err = fx.service.ChangeTier(ctx, userID, entity.TierEnterprise)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}
