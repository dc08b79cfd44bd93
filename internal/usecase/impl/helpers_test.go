package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"loopcard/config"
	"loopcard/internal/domain/entity"
	"loopcard/internal/domain/repository"
	mockRepo "loopcard/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

const (
	testOrigin     = "https://loopcard.app"
	testAPIBaseURL = "https://api.loopcard.app"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App = config.AppConfig{Origin: testOrigin, APIBaseURL: testAPIBaseURL}
	cfg.Storage = config.StorageConfig{MaxUploadBytes: 1024}
	cfg.Analytics = config.AnalyticsConfig{ClickRecordTimeout: time.Second}

	return cfg
}

// expectTx expects one transaction whose repositories are prepared by setup.
// The transaction returns whatever the callback returns.
func expectTx(t *testing.T, txManager *mockRepo.MockTransactionManager, setup func(factory *mockRepo.MockRepositoryFactory)) {
	t.Helper()

	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			setup(factory)

			return fn(factory)
		}).
		Once()
}

func newTestUser(tier entity.Tier) *entity.User {
	return &entity.User{ID: uuid.New(), Email: "jane@example.com", Tier: tier}
}

func newStoredCard(userID uuid.UUID, state entity.QRState) *entity.Card {
	card := &entity.Card{
		ID:            uuid.New(),
		UserID:        userID,
		FullName:      "Jane Doe",
		Role:          "Engineer",
		BusinessName:  "Acme",
		Contact:       entity.Contact{Phone: "+15550100", Email: "jane@example.com"},
		Gallery:       []string{"https://cdn.example.com/a.png"},
		EnabledFields: entity.DefaultEnabledFields(true),
		QRState:       state,
		CreatedAt:     time.Now(),
	}
	if state == entity.QRStateLinked {
		card.QRCodeURL = testAPIBaseURL + "/public/cards/" + card.ID.String() + "/qr.png"
	}
	card.Normalize()

	return card
}
