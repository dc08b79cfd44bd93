package postgres

import (
	"context"
	"path/filepath"
	"testing"

	"loopcard/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"
)

// newTestDB opens a migrated SQLite database private to the test.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := "file:" + filepath.Join(t.TempDir(), "loopcard.db") + "?_pragma=foreign_keys(1)"
	db, err := gorm.Open(gormsqlite.Dialector{DriverName: "sqlite", DSN: dsn}, &gorm.Config{
		Logger:                 logger.Discard,
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, Migrate(context.Background(), db))

	return db
}

func createTestProfile(t *testing.T, db *gorm.DB, email string) *entity.User {
	t.Helper()

	user := &entity.User{Email: email, Tier: entity.TierFree}
	require.NoError(t, NewProfileRepository(db).Create(context.Background(), user))

	return user
}

func newTestCard(userID uuid.UUID, name string) *entity.Card {
	return &entity.Card{
		UserID:   userID,
		FullName: name,
		Contact:  entity.Contact{Phone: "+15550100", Email: "jane@example.com"},
		Socials: []entity.SocialLink{
			{ID: "s1", Platform: entity.PlatformGitHub, Username: "jane", Enabled: true},
		},
		Gallery:       []string{"https://cdn.example.com/a.png"},
		EnabledFields: entity.DefaultEnabledFields(true),
		QRState:       entity.QRStateCreated,
	}
}
