package main

import (
	"context"
	"log/slog"
	"os"

	"storefront/config"
	"storefront/internal/delivery"
	"storefront/internal/delivery/api"
	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/router/handler"
	"storefront/internal/delivery/sweeper"
	"storefront/internal/domain/lifecycle"
	"storefront/internal/infra/auth"
	"storefront/internal/infra/events"
	"storefront/internal/infra/imagehost"
	logs "storefront/internal/infra/log"
	"storefront/internal/infra/persistence/gormstore"
	"storefront/internal/infra/qrcode"
	"storefront/internal/infra/sequence"
	"storefront/internal/usecase"
	"storefront/internal/usecase/impl"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

type bootstrapParams struct {
	fx.In
	fx.Lifecycle

	Config     *config.Config
	Logger     *slog.Logger
	SettingsUC usecase.SettingsUsecase
	TicketUC   usecase.TicketUsecase
	AuthUC     usecase.AuthUsecase
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
			bootstrap,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		gormstore.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			gormstore.NewProductRepository,
			gormstore.NewServiceRepository,
			gormstore.NewBlogRepository,
			gormstore.NewTicketRepository,
			gormstore.NewSettingsRepository,
			gormstore.NewAdminUserRepository,
			gormstore.NewCleanupTaskRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			imagehost.New,
			events.NewEventPublisher,
			sequence.NewSequenceGenerator,
			qrcode.NewQRCodeService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewImageCleanupService,
			impl.NewProductService,
			impl.NewCatalogService,
			impl.NewBlogService,
			impl.NewTicketService,
			impl.NewSettingsService,
			impl.NewAuthService,
			impl.NewUploadService,
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
			handler.NewProductHandler,
			handler.NewServiceHandler,
			handler.NewTicketHandler,
			handler.NewBlogHandler,
			handler.NewSettingsHandler,
			handler.NewUploadHandler,
			handler.NewMediaHandler,
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
				sweeper.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// bootstrap prepares the singleton rows once the database is reachable.
func bootstrap(params bootstrapParams) {
	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := params.SettingsUC.EnsureSettings(ctx); err != nil {
				return errors.Wrap(err, "failed to initialise settings")
			}

			if err := params.TicketUC.PrepareSequence(ctx); err != nil {
				return errors.Wrap(err, "failed to prepare ticket sequence")
			}

			username, password := params.Config.Auth.AdminUsername, params.Config.Auth.AdminPassword
			if username == "" || password == "" {
				return nil
			}

			created, err := params.AuthUC.SeedAdmin(ctx, username, password)
			if err != nil {
				return errors.Wrap(err, "failed to seed admin account")
			}
			if created {
				params.Logger.Info("Admin account created", slog.String("username", username))
			}

			return nil
		},
	})
}

func startServer(ctx context.Context, params startServerParams) {
	params.Append(fx.Hook{
		OnStart: func(context.Context) error {
			for _, delivery := range params.Deliveries {
				go func() {
					if err := delivery.Serve(ctx); err != nil {
						slog.Error("Failed to start server", slog.Any("error", err))
						os.Exit(1)
					}
				}()
			}

			return nil
		},
	})
}
