package main

import (
	"context"
	"log/slog"
	"os"
	_ "time/tzdata"

	"loopcard/config"
	"loopcard/internal/delivery"
	"loopcard/internal/delivery/api"
	"loopcard/internal/delivery/api/middleware"
	"loopcard/internal/delivery/api/router/handler"
	"loopcard/internal/domain/session"
	"loopcard/internal/infra/ai"
	"loopcard/internal/infra/auth"
	"loopcard/internal/infra/auth/firebase"
	logs "loopcard/internal/infra/log"
	"loopcard/internal/infra/persistence/postgres"
	"loopcard/internal/infra/pubsub"
	"loopcard/internal/infra/qrcode"
	"loopcard/internal/infra/storage"
	"loopcard/internal/usecase"
	"loopcard/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		pubsub.Module,
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			registerSessionShutdown,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		session.NewRegistry,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewProfileRepository,
			postgres.NewAuthRepository,
			postgres.NewCardRepository,
			postgres.NewClickRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			firebase.NewIdentityVerifier,
			qrcode.NewQRCodeService,
			storage.NewAssetStorage,
			ai.NewInsightGenerator,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewSessionService,
			impl.NewAccountService,
			impl.NewCardService,
			impl.NewAnalyticsService,
			impl.NewInsightService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewMeHandler,
			handler.NewCardHandler,
			handler.NewAnalyticsHandler,
			handler.NewPublicHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// registerSessionShutdown resets every session store once the server stops.
func registerSessionShutdown(lc fx.Lifecycle, sessions usecase.SessionUsecase) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			sessions.Shutdown(ctx)

			return nil
		},
	})
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
