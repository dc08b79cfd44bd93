package postgres

import (
	"context"
	"testing"

	"loopcard/internal/domain/entity"
	"loopcard/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionManager_Commit(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	tm := NewTransactionManager(db)

	user := &entity.User{Email: "jane@example.com", Tier: entity.TierFree}
	err := tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		if err := f.ProfileRepo().Create(ctx, user); err != nil {
			return err
		}

		return f.CardRepo().Create(ctx, newTestCard(user.ID, "Jane Doe"))
	})
	require.NoError(t, err)

	count, err := NewCardRepository(db).CountByUserID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestTransactionManager_Rollback(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	tm := NewTransactionManager(db)
	boom := errors.New("boom")

	err := tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		if err := f.ProfileRepo().Create(ctx, &entity.User{Email: "jane@example.com"}); err != nil {
			return err
		}

		return boom
	})
	assert.ErrorIs(t, err, boom)

	_, err = NewProfileRepository(db).FindByEmail(ctx, "jane@example.com")
	assert.ErrorIs(t, err, repository.ErrProfileNotFound)
}
