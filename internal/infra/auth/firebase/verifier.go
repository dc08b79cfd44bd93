// Package firebase verifies ID tokens minted by Firebase Authentication.
package firebase

import (
	"context"
	"log/slog"

	"loopcard/config"
	domainerrors "loopcard/internal/domain/errors"
	"loopcard/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

// tokenVerifier is the part of *auth.Client the verifier needs.
type tokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
}

type identityVerifier struct {
	client tokenVerifier
	logger *slog.Logger
}

// NewIdentityVerifier connects to Firebase Authentication. Without a
// firebase section it returns a verifier that rejects every token with
// IDENTITY_PROVIDER_UNAVAILABLE.
func NewIdentityVerifier(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.IdentityVerifier, error) {
	if cfg.Firebase == nil || cfg.Firebase.ProjectID == "" {
		logger.Info("Firebase identity sign-in disabled")

		return disabledVerifier{}, nil
	}

	var opts []option.ClientOption
	if cfg.Firebase.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.Firebase.CredentialsPath))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.Firebase.ProjectID}, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get auth client")
	}

	logger.Info("Firebase identity sign-in enabled", slog.String("projectID", cfg.Firebase.ProjectID))

	return &identityVerifier{client: client, logger: logger}, nil
}

// VerifyIDToken checks signature, audience and expiry of idToken and
// returns the subject it identifies.
func (v *identityVerifier) VerifyIDToken(ctx context.Context, idToken string) (*service.Identity, error) {
	token, err := v.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		v.logger.Warn("Firebase ID token rejected", slog.Any("error", err))

		return nil, domainerrors.ErrIdentityTokenInvalid.WrapMessage(err.Error())
	}

	identity := &service.Identity{
		UID:      token.UID,
		Provider: token.Firebase.SignInProvider,
	}
	if email, ok := token.Claims["email"].(string); ok {
		identity.Email = email
	}
	if verified, ok := token.Claims["email_verified"].(bool); ok {
		identity.EmailVerified = verified
	}

	if identity.Email == "" {
		return nil, domainerrors.ErrIdentityTokenInvalid.WithDetails("token carries no email")
	}

	return identity, nil
}

type disabledVerifier struct{}

func (disabledVerifier) VerifyIDToken(context.Context, string) (*service.Identity, error) {
	return nil, domainerrors.ErrIdentityProviderUnavailable
}
