package main

import (
	"context"
	"log/slog"
	"os"

	"tankwatch/config"
	"tankwatch/internal/delivery"
	"tankwatch/internal/delivery/api"
	"tankwatch/internal/delivery/api/middleware"
	"tankwatch/internal/delivery/api/router/handler"
	"tankwatch/internal/delivery/scheduler"
	"tankwatch/internal/delivery/worker"
	workerhandler "tankwatch/internal/delivery/worker/handler"
	"tankwatch/internal/domain/service"
	"tankwatch/internal/infra/auth"
	"tankwatch/internal/infra/firebase"
	logs "tankwatch/internal/infra/log"
	"tankwatch/internal/infra/notification"
	"tankwatch/internal/infra/persistence"
	"tankwatch/internal/infra/persistence/rtdb"
	"tankwatch/internal/infra/qrcode"
	"tankwatch/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		firebase.NewApp,
		firebase.NewDatabaseClient,
		firebase.NewMessagingClient,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			rtdb.NewTankRepository,
			persistence.NewCredentialRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewIdentity,
			fx.Annotate(
				auth.NewSecretGenerator,
				fx.As(new(service.SecretGenerator)),
			),
			fx.Annotate(
				notification.NewFCMService,
				fx.As(new(service.PushService)),
			),
			qrcode.NewQRCodeService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewPreferenceGate,
			impl.NewNotifierService,
			impl.NewAggregatorService,
			impl.NewCredentialService,
			impl.NewTokenExchangeService,
			impl.NewPushTokenService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewRateLimitMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewCallableHandler,
			handler.NewTokenHandler,
			workerhandler.NewPushHandler,
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
			fx.Annotate(
				worker.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				scheduler.NewScheduler,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
