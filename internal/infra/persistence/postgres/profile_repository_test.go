package postgres

import (
	"context"
	"strings"
	"testing"

	"loopcard/internal/domain/entity"
	domainerrors "loopcard/internal/domain/errors"
	"loopcard/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestProfileRepository_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	repo := NewProfileRepository(newTestDB(t))

	user := &entity.User{Email: "  Jane@Example.com ", Tier: entity.TierPro}
	require.NoError(t, repo.Create(ctx, user))
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.Equal(t, "jane@example.com", user.Email)

	found, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.TierPro, found.Tier)

	found, err = repo.FindByEmail(ctx, "JANE@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)
}

func TestProfileRepository_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	createTestProfile(t, db, "jane@example.com")

	err := NewProfileRepository(db).Create(ctx, &entity.User{Email: "jane@example.com"})
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestProfileRepository_NotFound(t *testing.T) {
	repo := NewProfileRepository(newTestDB(t))

	_, err := repo.FindByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, repository.ErrProfileNotFound)

	_, err = repo.UpdateTier(context.Background(), uuid.New(), entity.TierPro)
	assert.ErrorIs(t, err, repository.ErrProfileNotFound)
}

func TestProfileRepository_UpdateTier(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	user := createTestProfile(t, db, "jane@example.com")

	updated, err := NewProfileRepository(db).UpdateTier(ctx, user.ID, entity.TierSmallBusiness)
	require.NoError(t, err)
	assert.Equal(t, entity.TierSmallBusiness, updated.Tier)
	assert.Equal(t, user.ID, updated.ID)
}

// newDryRunPostgres builds statements with the PostgreSQL dialect without
// connecting. Executed SQL is appended to the returned slice.
func newDryRunPostgres(t *testing.T) (*gorm.DB, *[]string) {
	t.Helper()

	db, err := gorm.Open(gormpostgres.New(gormpostgres.Config{
		DSN: "host=localhost user=loopcard dbname=loopcard sslmode=disable",
	}), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
		Logger:               logger.Discard,
	})
	require.NoError(t, err)

	var statements []string
	require.NoError(t, db.Callback().Query().After("gorm:query").Register("test:capture_sql", func(tx *gorm.DB) {
		statements = append(statements, tx.Statement.SQL.String())
	}))

	return db, &statements
}

func TestProfileRepository_FindByIDForUpdate_LocksProfileRow(t *testing.T) {
	ctx := context.Background()
	db, statements := newDryRunPostgres(t)
	repo := NewProfileRepository(db)

	_, err := repo.FindByIDForUpdate(ctx, uuid.New())
	require.NoError(t, err)
	_, err = repo.FindByID(ctx, uuid.New())
	require.NoError(t, err)

	require.Len(t, *statements, 2)
	locked, plain := (*statements)[0], (*statements)[1]
	assert.Contains(t, locked, `FROM "profiles"`)
	assert.True(t, strings.HasSuffix(locked, "FOR UPDATE"), locked)
	assert.NotContains(t, plain, "FOR UPDATE")
}

func TestProfileRepository_FindByIDForUpdate_InTransaction(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	user := createTestProfile(t, db, "jane@example.com")

	err := NewTransactionManager(db).Execute(ctx, func(factory repository.RepositoryFactory) error {
		found, err := factory.ProfileRepo().FindByIDForUpdate(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, user.ID, found.ID)

		_, err = factory.ProfileRepo().FindByIDForUpdate(ctx, uuid.New())
		assert.ErrorIs(t, err, repository.ErrProfileNotFound)

		return nil
	})
	require.NoError(t, err)
}
