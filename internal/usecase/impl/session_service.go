package impl

import (
	"context"
	"log/slog"

	"loopcard/config"
	deliverycontext "loopcard/internal/delivery/context"
	"loopcard/internal/domain/entity"
	"loopcard/internal/domain/repository"
	"loopcard/internal/domain/session"
	"loopcard/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	profileRepo repository.ProfileRepository
	cardRepo    repository.CardRepository
	registry    *session.Registry
	linker      *qrLinker
	logger      *slog.Logger
}

// SessionServiceParams holds dependencies for SessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	ProfileRepo repository.ProfileRepository
	CardRepo    repository.CardRepository
	Registry    *session.Registry
	Config      *config.Config
	Logger      *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	return &sessionService{
		profileRepo: params.ProfileRepo,
		cardRepo:    params.CardRepo,
		registry:    params.Registry,
		linker:      &qrLinker{cardRepo: params.CardRepo, apiBaseURL: params.Config.App.APIBaseURL},
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *sessionService) Hydrate(ctx context.Context, userID uuid.UUID) (*session.Snapshot, error) {
	store := srv.registry.Open(userID)

	user, err := findProfile(ctx, srv.profileRepo, userID)
	if err != nil {
		srv.registry.Close(userID)
		srv.log(ctx).Warn("Profile missing on sign-in, session closed", slog.Any("user_id", userID), slog.Any("error", err))

		return nil, err
	}

	cards, err := srv.cardRepo.FindByUserID(ctx, userID)
	if err != nil {
		srv.log(ctx).Error("Failed to load cards on sign-in, continuing with none", slog.Any("user_id", userID), slog.Any("error", err))
		cards = []*entity.Card{}
	}

	srv.repairUnlinked(ctx, cards)

	store.Apply(session.SignedIn{User: user, Cards: cards})
	snapshot := store.Snapshot()

	srv.log(ctx).Debug("Session hydrated", slog.Any("user_id", userID), slog.Int("cards", len(snapshot.Cards)))

	return &snapshot, nil
}

// repairUnlinked finishes the creation of cards whose QR link was never
// written. Failures leave the card as it is.
func (srv *sessionService) repairUnlinked(ctx context.Context, cards []*entity.Card) {
	for _, card := range cards {
		if !card.NeedsQRLink() {
			continue
		}
		if err := srv.linker.link(ctx, card); err != nil {
			srv.log(ctx).Warn("Failed to repair card qr link", slog.Any("card_id", card.ID), slog.Any("error", err))
		}
	}
}

func (srv *sessionService) Current(ctx context.Context, userID uuid.UUID) (*session.Snapshot, error) {
	if store, ok := srv.registry.Get(userID); ok {
		snapshot := store.Snapshot()

		return &snapshot, nil
	}

	return srv.Hydrate(ctx, userID)
}

func (srv *sessionService) End(ctx context.Context, userID uuid.UUID) {
	srv.registry.Close(userID)
	srv.log(ctx).Debug("Session ended", slog.Any("user_id", userID))
}

func (srv *sessionService) Shutdown(ctx context.Context) {
	count := srv.registry.Len()
	srv.registry.Reset()
	srv.log(ctx).Info("All sessions reset", slog.Int("count", count))
}
