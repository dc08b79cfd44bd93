package service

import "context"

// Identity is the verified subject of a federated identity token.
type Identity struct {
	UID           string // Provider subject, stable per account.
	Email         string
	EmailVerified bool
	Provider      string // Sign-in provider reported by the token, e.g. google.com.
}

// IdentityVerifier exchanges an ID token minted by the hosted identity
// platform for a verified Identity.
type IdentityVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*Identity, error)
}
