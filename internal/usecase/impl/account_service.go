package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "loopcard/internal/delivery/context"
	"loopcard/internal/domain/entity"
	domainerrors "loopcard/internal/domain/errors"
	"loopcard/internal/domain/policy"
	"loopcard/internal/domain/repository"
	"loopcard/internal/domain/service"
	"loopcard/internal/domain/session"
	"loopcard/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager    repository.TransactionManager
	profileRepo  repository.ProfileRepository
	authRepo     repository.AuthRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	verifier     service.IdentityVerifier
	sessions     usecase.SessionUsecase
	registry     *session.Registry
	now          func() time.Time
	logger       *slog.Logger
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	ProfileRepo  repository.ProfileRepository
	AuthRepo     repository.AuthRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Verifier     service.IdentityVerifier
	Sessions     usecase.SessionUsecase
	Registry     *session.Registry
	Logger       *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		txManager:    params.TxManager,
		profileRepo:  params.ProfileRepo,
		authRepo:     params.AuthRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		verifier:     params.Verifier,
		sessions:     params.Sessions,
		registry:     params.Registry,
		now:          time.Now,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SignUp creates the profile and its email credentials in one transaction
// and signs the new user in.
func (srv *accountService) SignUp(ctx context.Context, input *usecase.SignUpInput) (*usecase.AuthOutput, error) {
	email := normalizeEmail(input.Email)
	if email == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("email is required")
	}

	tier := entity.TierFree
	if input.Tier != "" {
		parsed, ok := entity.ParseTier(string(input.Tier))
		if !ok {
			return nil, domainerrors.ErrInvalidTier.WithDetails(string(input.Tier))
		}
		tier = parsed
	}

	srv.log(ctx).Info("Starting sign-up", slog.String("email", email), slog.String("tier", string(tier)))

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Warn("Password rejected during sign-up", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password during sign-up")
	}

	user := &entity.User{Email: email, Tier: tier}
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		authRepo := repoFactory.AuthRepo()

		_, err := authRepo.FindAuthentication(ctx, entity.ProviderTypeEmail, email)
		if err == nil {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("email credentials already registered")
		}
		if !errors.Is(err, repository.ErrAuthNotFound) {
			return errors.Wrap(err, "failed to find authentication")
		}

		if err := repoFactory.ProfileRepo().Create(ctx, user); err != nil {
			return errors.Wrap(err, "failed to create profile")
		}

		return authRepo.CreateAuthentication(ctx, &entity.Authentication{
			UserID:         user.ID,
			Provider:       entity.ProviderTypeEmail,
			ProviderUserID: email,
			PasswordHash:   hashedPassword,
		})
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute sign-up transaction", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute sign-up transaction")
	}

	return srv.startSession(ctx, user.ID)
}

func (srv *accountService) SignIn(ctx context.Context, input *usecase.SignInInput) (*usecase.AuthOutput, error) {
	email := normalizeEmail(input.Email)

	auth, err := srv.authRepo.FindAuthentication(ctx, entity.ProviderTypeEmail, email)
	if err != nil {
		if errors.Is(err, repository.ErrAuthNotFound) {
			srv.log(ctx).Warn("Sign-in for unknown email", slog.String("email", email))

			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find authentication")
	}

	if !srv.hasher.Check(input.Password, auth.PasswordHash) {
		srv.log(ctx).Warn("Password mismatch on sign-in", slog.Any("user_id", auth.UserID))

		return nil, domainerrors.ErrInvalidCredentials
	}

	return srv.startSession(ctx, auth.UserID)
}

// SignInWithIdentityToken signs in with a federated identity, provisioning a
// Free profile on first use. A verified email links to an existing profile.
func (srv *accountService) SignInWithIdentityToken(ctx context.Context, idToken string) (*usecase.AuthOutput, error) {
	identity, err := srv.verifier.VerifyIDToken(ctx, idToken)
	if err != nil {
		srv.log(ctx).Warn("Identity token rejected", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to verify identity token")
	}

	auth, err := srv.authRepo.FindAuthentication(ctx, entity.ProviderTypeFirebase, identity.UID)
	if err == nil {
		return srv.startSession(ctx, auth.UserID)
	}
	if !errors.Is(err, repository.ErrAuthNotFound) {
		return nil, errors.Wrap(err, "failed to find authentication")
	}

	var userID uuid.UUID
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profileRepo := repoFactory.ProfileRepo()

		user, err := profileRepo.FindByEmail(ctx, identity.Email)
		switch {
		case err == nil:
			if !identity.EmailVerified {
				return domainerrors.ErrUserAlreadyExists.WrapMessage("unverified identity for a registered email")
			}
		case errors.Is(err, repository.ErrProfileNotFound):
			user = &entity.User{Email: identity.Email, Tier: entity.TierFree}
			if err := profileRepo.Create(ctx, user); err != nil {
				return errors.Wrap(err, "failed to create profile")
			}
		default:
			return errors.Wrap(err, "failed to find profile")
		}

		userID = user.ID

		return repoFactory.AuthRepo().CreateAuthentication(ctx, &entity.Authentication{
			UserID:         user.ID,
			Provider:       entity.ProviderTypeFirebase,
			ProviderUserID: identity.UID,
		})
	})
	if err != nil {
		srv.log(ctx).Error("Failed to provision identity account", slog.String("provider", identity.Provider), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to provision identity account")
	}

	srv.log(ctx).Info("Identity account linked", slog.Any("user_id", userID), slog.String("provider", identity.Provider))

	return srv.startSession(ctx, userID)
}

// RefreshToken rotates a refresh token: the presented token is revoked and
// a new pair is issued.
func (srv *accountService) RefreshToken(ctx context.Context, refreshToken string) (*usecase.AuthOutput, error) {
	claims, err := srv.tokenService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, err.Error())
	}

	hash := hashToken(refreshToken)
	stored, err := srv.authRepo.FindRefreshTokenByHash(ctx, hash)
	if err != nil {
		if errors.Is(err, repository.ErrTokenNotFound) {
			return nil, domainerrors.ErrRefreshTokenInvalid.WrapMessage("refresh token revoked")
		}

		return nil, errors.Wrap(err, "failed to find refresh token")
	}
	if stored.UserID != claims.UserID || stored.Expired(srv.now()) {
		return nil, domainerrors.ErrRefreshTokenInvalid.WrapMessage("refresh token expired or mismatched")
	}

	snapshot, err := srv.sessions.Current(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}

	var access, refresh string
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		authRepo := repoFactory.AuthRepo()
		if err := authRepo.DeleteRefreshTokenByHash(ctx, hash); err != nil {
			return errors.Wrap(err, "failed to revoke refresh token")
		}

		var err error
		access, refresh, err = srv.issueTokens(ctx, authRepo, claims.UserID)

		return err
	})
	if err != nil {
		srv.log(ctx).Error("Failed to rotate refresh token", slog.Any("user_id", claims.UserID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to rotate refresh token")
	}

	return newAuthOutput(access, refresh, snapshot), nil
}

// SignOut revokes refreshToken, or every session of the user when it is
// empty, and drops the in-memory state.
func (srv *accountService) SignOut(ctx context.Context, userID uuid.UUID, refreshToken string) error {
	defer srv.sessions.End(ctx, userID)

	if refreshToken == "" {
		if err := srv.authRepo.DeleteRefreshTokensByUserID(ctx, userID); err != nil {
			return errors.Wrap(err, "failed to revoke sessions")
		}

		return nil
	}

	err := srv.authRepo.DeleteRefreshTokenByHash(ctx, hashToken(refreshToken))
	if err != nil && !errors.Is(err, repository.ErrTokenNotFound) {
		return errors.Wrap(err, "failed to revoke refresh token")
	}

	srv.log(ctx).Info("User signed out", slog.Any("user_id", userID))

	return nil
}

func (srv *accountService) ChangeTier(ctx context.Context, userID uuid.UUID, tier entity.Tier) (*entity.User, error) {
	parsed, ok := entity.ParseTier(string(tier))
	if !ok {
		return nil, domainerrors.ErrInvalidTier.WithDetails(string(tier))
	}

	user, err := srv.profileRepo.UpdateTier(ctx, userID, parsed)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("profile does not exist")
		}
		srv.log(ctx).Error("Failed to update tier", slog.Any("user_id", userID), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrUserUpdateFailed, err.Error())
	}

	srv.registry.Dispatch(userID, session.TierChanged{Tier: user.Tier})
	srv.log(ctx).Info("Tier changed", slog.Any("user_id", userID), slog.String("tier", string(user.Tier)))

	return user, nil
}

// startSession hydrates the state store and issues a token pair. A missing
// profile fails before any token exists.
func (srv *accountService) startSession(ctx context.Context, userID uuid.UUID) (*usecase.AuthOutput, error) {
	snapshot, err := srv.sessions.Hydrate(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hydrate session")
	}

	access, refresh, err := srv.issueTokens(ctx, srv.authRepo, userID)
	if err != nil {
		srv.sessions.End(ctx, userID)
		srv.log(ctx).Error("Failed to issue tokens", slog.Any("user_id", userID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("User signed in", slog.Any("user_id", userID))

	return newAuthOutput(access, refresh, snapshot), nil
}

func (srv *accountService) issueTokens(ctx context.Context, authRepo repository.AuthRepository, userID uuid.UUID) (string, string, error) {
	access, refresh, err := srv.tokenService.GenerateTokens(userID)
	if err != nil {
		return "", "", errors.Wrap(err, "failed to generate tokens")
	}

	err = authRepo.CreateRefreshToken(ctx, &entity.RefreshToken{
		UserID:    userID,
		TokenHash: hashToken(refresh),
		ExpiresAt: srv.now().Add(srv.tokenService.GetRefreshTokenDuration()),
	})
	if err != nil {
		return "", "", errors.Wrap(err, "failed to store refresh token")
	}

	return access, refresh, nil
}

func newAuthOutput(access, refresh string, snapshot *session.Snapshot) *usecase.AuthOutput {
	output := &usecase.AuthOutput{
		AccessToken:  access,
		RefreshToken: refresh,
		Session:      snapshot,
	}
	if snapshot != nil && snapshot.User != nil {
		output.User = snapshot.User
		output.Capabilities = policy.Resolve(snapshot.User.Tier)
	}

	return output
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
