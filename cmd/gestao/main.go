package main

import (
	"context"
	"log/slog"
	"os"

	"gestao/config"
	"gestao/internal/delivery"
	"gestao/internal/delivery/http"
	"gestao/internal/delivery/http/middleware"
	"gestao/internal/delivery/http/router/handler"
	"gestao/internal/domain/service"
	"gestao/internal/infra/auth"
	"gestao/internal/infra/identity"
	logs "gestao/internal/infra/log"
	"gestao/internal/infra/metrics"
	"gestao/internal/infra/persistence/postgres"
	"gestao/internal/session"
	"gestao/internal/usecase/impl"

	"github.com/prometheus/client_golang/prometheus"
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
		postgres.New,
		prometheus.NewRegistry,
		newSessionMetrics,
		fx.Annotate(
			metrics.Handler,
			fx.ResultTags(`name:"metricsHandler"`),
		),
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewCredentialRepository,
			postgres.NewSessionRepository,
			postgres.NewProfileRepository,
			postgres.NewRoleRepository,
			postgres.NewAthleteRepository,
			postgres.NewPeriodRepository,
			postgres.NewInterventionRepository,
			postgres.NewAnamnesisRepository,
			postgres.NewContactRepository,
			postgres.NewReferralRepository,
			postgres.NewSchoolRepository,
			postgres.NewEnrollmentRepository,
			postgres.NewSchoolRecordRepository,
			postgres.NewReportRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			auth.NewPasswordPolicy,
			identity.NewProvider,
			identity.NewStoreFactory,
			identity.NewDirectory,
			newSessionManager,
		),
	)
}

// newSessionMetrics registers the session counters on the shared registry.
func newSessionMetrics(reg *prometheus.Registry) session.Metrics {
	return metrics.NewSessionMetrics(reg)
}

type sessionManagerParams struct {
	fx.In
	fx.Lifecycle

	Config    *config.Config
	Factory   session.StoreFactory
	Directory service.Directory
	Logger    *slog.Logger
	Metrics   session.Metrics
}

// newSessionManager builds the controller registry and ties its teardown to
// the application lifecycle.
func newSessionManager(params sessionManagerParams) *session.Manager {
	var cfg session.ManagerConfig
	if params.Config.Session != nil {
		cfg = session.ManagerConfig{
			PollInterval:        params.Config.Session.PollInterval,
			CheckNowMinDuration: params.Config.Session.CheckNowMinDuration,
			RegistryTTL:         params.Config.Session.RegistryTTL,
			RegistrySweep:       params.Config.Session.RegistrySweep,
		}
	}

	manager := session.NewManager(params.Factory, params.Directory, cfg, params.Logger, params.Metrics)
	params.Append(fx.Hook{
		OnStop: func(context.Context) error {
			manager.Close()

			return nil
		},
	})

	return manager
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAthleteService,
			impl.NewPsychologyService,
			impl.NewSocialService,
			impl.NewPedagogyService,
			impl.NewReportService,
			impl.NewAdminService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewSessionMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewLoggerMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewAthleteHandler,
			handler.NewPsychologyHandler,
			handler.NewSocialHandler,
			handler.NewPedagogyHandler,
			handler.NewReportHandler,
			handler.NewAdminHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
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
