package postgres

import (
	"context"
	"testing"
	"time"

	"loopcard/internal/domain/entity"
	domainerrors "loopcard/internal/domain/errors"
	"loopcard/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthRepository_Authentication(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	user := createTestProfile(t, db, "jane@example.com")
	repo := NewAuthRepository(db)

	auth := &entity.Authentication{
		UserID:         user.ID,
		Provider:       entity.ProviderTypeEmail,
		ProviderUserID: "Jane@Example.com",
		PasswordHash:   "hash",
	}
	require.NoError(t, repo.CreateAuthentication(ctx, auth))
	assert.NotEqual(t, uuid.Nil, auth.ID)

	found, err := repo.FindAuthentication(ctx, entity.ProviderTypeEmail, "jane@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.UserID)
	assert.Equal(t, "hash", found.PasswordHash)

	_, err = repo.FindAuthentication(ctx, entity.ProviderTypeFirebase, "jane@example.com")
	assert.ErrorIs(t, err, repository.ErrAuthNotFound)

	err = repo.CreateAuthentication(ctx, &entity.Authentication{
		UserID:         user.ID,
		Provider:       entity.ProviderTypeEmail,
		ProviderUserID: "jane@example.com",
	})
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestAuthRepository_AuthenticationRequiresProfile(t *testing.T) {
	repo := NewAuthRepository(newTestDB(t))

	err := repo.CreateAuthentication(context.Background(), &entity.Authentication{
		UserID:         uuid.New(),
		Provider:       entity.ProviderTypeFirebase,
		ProviderUserID: "uid",
	})
	assert.True(t, errors.Is(err, domainerrors.ErrUserCreationFailed))
}

func TestAuthRepository_RefreshTokens(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	user := createTestProfile(t, db, "jane@example.com")
	repo := NewAuthRepository(db)

	for _, hash := range []string{"hash-1", "hash-2"} {
		require.NoError(t, repo.CreateRefreshToken(ctx, &entity.RefreshToken{
			UserID:    user.ID,
			TokenHash: hash,
			ExpiresAt: time.Now().Add(time.Hour),
		}))
	}

	token, err := repo.FindRefreshTokenByHash(ctx, "hash-1")
	require.NoError(t, err)
	assert.Equal(t, user.ID, token.UserID)
	assert.False(t, token.Expired(time.Now()))

	require.NoError(t, repo.DeleteRefreshTokenByHash(ctx, "hash-1"))
	_, err = repo.FindRefreshTokenByHash(ctx, "hash-1")
	assert.ErrorIs(t, err, repository.ErrTokenNotFound)
	assert.ErrorIs(t, repo.DeleteRefreshTokenByHash(ctx, "hash-1"), repository.ErrTokenNotFound)

	require.NoError(t, repo.DeleteRefreshTokensByUserID(ctx, user.ID))
	_, err = repo.FindRefreshTokenByHash(ctx, "hash-2")
	assert.ErrorIs(t, err, repository.ErrTokenNotFound)
}
