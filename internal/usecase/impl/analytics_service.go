package impl

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"loopcard/config"
	deliverycontext "loopcard/internal/delivery/context"
	"loopcard/internal/domain/analytics"
	"loopcard/internal/domain/entity"
	"loopcard/internal/domain/policy"
	"loopcard/internal/domain/repository"
	"loopcard/internal/domain/service"
	"loopcard/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const fallbackClickRecordTimeout = 5 * time.Second

// analyticsService implements the AnalyticsUsecase interface.
type analyticsService struct {
	profileRepo    repository.ProfileRepository
	cardRepo       repository.CardRepository
	clickRepo      repository.ClickRepository
	eventPublisher service.EventPublisher
	recordTimeout  time.Duration
	inflight       sync.WaitGroup
	now            func() time.Time
	logger         *slog.Logger
}

// AnalyticsServiceParams holds dependencies for AnalyticsService, injected by Fx.
type AnalyticsServiceParams struct {
	fx.In

	Lc             fx.Lifecycle `optional:"true"`
	ProfileRepo    repository.ProfileRepository
	CardRepo       repository.CardRepository
	ClickRepo      repository.ClickRepository
	EventPublisher service.EventPublisher
	Config         *config.Config
	Logger         *slog.Logger
}

// NewAnalyticsService is the constructor for analyticsService.
func NewAnalyticsService(params AnalyticsServiceParams) usecase.AnalyticsUsecase {
	srv := newAnalyticsService(params)

	if params.Lc != nil {
		params.Lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				done := make(chan struct{})
				go func() {
					srv.wait()
					close(done)
				}()

				select {
				case <-done:
					return nil
				case <-ctx.Done():
					return ctx.Err()
				}
			},
		})
	}

	return srv
}

func newAnalyticsService(params AnalyticsServiceParams) *analyticsService {
	recordTimeout := params.Config.Analytics.ClickRecordTimeout
	if recordTimeout <= 0 {
		recordTimeout = fallbackClickRecordTimeout
	}

	return &analyticsService{
		profileRepo:    params.ProfileRepo,
		cardRepo:       params.CardRepo,
		clickRepo:      params.ClickRepo,
		eventPublisher: params.EventPublisher,
		recordTimeout:  recordTimeout,
		now:            time.Now,
		logger:         params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *analyticsService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RecordClick inserts the click on a goroutine detached from the request.
// Errors are logged and never reach the caller.
func (srv *analyticsService) RecordClick(ctx context.Context, input *usecase.RecordClickInput) {
	clickType := strings.TrimSpace(input.Type)
	if clickType == "" {
		srv.log(ctx).Warn("Dropping click without type", slog.Any("card_id", input.CardID))

		return
	}

	detached := context.WithoutCancel(ctx)
	recordCtx, cancel := context.WithTimeout(detached, srv.recordTimeout)

	srv.inflight.Add(1)
	go func() {
		defer srv.inflight.Done()
		defer cancel()

		srv.record(recordCtx, &entity.Click{
			CardID:    input.CardID,
			Type:      clickType,
			TargetURL: strings.TrimSpace(input.TargetURL),
		})
	}()
}

func (srv *analyticsService) record(ctx context.Context, click *entity.Click) {
	if err := srv.clickRepo.Create(ctx, click); err != nil {
		srv.log(ctx).Error("Error recording click",
			slog.Any("card_id", click.CardID), slog.String("type", click.Type), slog.Any("error", err))

		return
	}

	event := &service.CardEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		Type:      service.CardEventClickRecorded,
		CardID:    click.CardID.String(),
		ClickType: click.Type,
		TargetURL: click.TargetURL,
	}
	if err := srv.eventPublisher.PublishCardEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish click event", slog.Any("card_id", click.CardID), slog.Any("error", err))
	}
}

// wait blocks until every background insert has finished. Used on shutdown.
func (srv *analyticsService) wait() {
	srv.inflight.Wait()
}

func (srv *analyticsService) ListClicks(ctx context.Context, cardID uuid.UUID) []*entity.Click {
	clicks, err := srv.clickRepo.FindByCardID(ctx, cardID)
	if err != nil {
		srv.log(ctx).Error("Error fetching clicks", slog.Any("card_id", cardID), slog.Any("error", err))

		return []*entity.Click{}
	}

	return clicks
}

// Summary aggregates the clicks of an owned card. Breakdowns are only
// computed for tiers with advanced analytics.
func (srv *analyticsService) Summary(ctx context.Context, input *usecase.SummaryInput) (*analytics.Summary, error) {
	if _, err := findOwnedCard(ctx, srv.cardRepo, input.UserID, input.CardID); err != nil {
		return nil, err
	}

	user, err := findProfile(ctx, srv.profileRepo, input.UserID)
	if err != nil {
		return nil, err
	}

	loc := input.Location
	if loc == nil {
		loc = time.UTC
	}

	advanced := policy.Resolve(user.Tier).CanViewAdvancedAnalytics
	clicks := srv.ListClicks(ctx, input.CardID)
	summary := analytics.Summarize(clicks, input.Window, srv.now(), loc, advanced)

	return &summary, nil
}
