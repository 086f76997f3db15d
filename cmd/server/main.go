// Package main is the entry point for the service. It wires all dependencies
// using samber/do v2, starts the HTTP server, and handles graceful shutdown
// on SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"
	"gorm.io/gorm"

	"github.com/jsamuelsen11/project-tracker/internal/adapters/auth"
	"github.com/jsamuelsen11/project-tracker/internal/adapters/clients/webhook"
	adapthttp "github.com/jsamuelsen11/project-tracker/internal/adapters/http"
	"github.com/jsamuelsen11/project-tracker/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/project-tracker/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/project-tracker/internal/adapters/realtime"
	"github.com/jsamuelsen11/project-tracker/internal/adapters/store"
	"github.com/jsamuelsen11/project-tracker/internal/app"
	"github.com/jsamuelsen11/project-tracker/internal/platform/config"
	"github.com/jsamuelsen11/project-tracker/internal/platform/health"
	"github.com/jsamuelsen11/project-tracker/internal/platform/httpclient"
	"github.com/jsamuelsen11/project-tracker/internal/platform/logging"
	"github.com/jsamuelsen11/project-tracker/internal/platform/telemetry"
	"github.com/jsamuelsen11/project-tracker/internal/ports"
)

const (
	serverShutdownTimeout = 15 * time.Second
	otelShutdownTimeout   = 5 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, dev, qa, prod)")
	}

	// Bootstrap: config, logger, telemetry.
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	ctx := context.Background()
	tel, err := telemetry.Setup(ctx, cfg.Telemetry)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	// DI container.
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, tel.Metrics)

	registerDependencies(injector, cfg, logger)

	// Resolve the server (eagerly wires the full graph).
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	// Register health checkers after the graph is wired.
	registry := do.MustInvoke[ports.HealthRegistry](injector)
	registry.Register(store.NewHealthChecker(do.MustInvoke[*gorm.DB](injector)))
	if cfg.Webhook.Enabled {
		registry.Register(do.MustInvoke[*webhook.Publisher](injector))
	}

	// Start server in background.
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	// Wait for shutdown signal or server error.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	}

	// Graceful shutdown: drain HTTP requests.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	}

	// Wait for Start() goroutine to return.
	<-serverErr

	// Live streams were closed by the server's shutdown hook; drain webhook
	// deliveries before the database goes away.
	do.MustInvoke[*app.Dispatcher](injector).Close()
	if err := store.Close(do.MustInvoke[*gorm.DB](injector)); err != nil {
		logger.Error("database close error", slog.Any("error", err))
	}

	// Flush telemetry.
	otelCtx, otelCancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer otelCancel()

	if err := tel.Shutdown(otelCtx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}

	logger.Info("shutdown complete")
	return nil
}

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	registerStore(injector, cfg, logger)
	registerServices(injector, cfg, logger)
	registerTransport(injector, cfg, logger)
}

func registerStore(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(_ do.Injector) (*gorm.DB, error) {
		db, err := store.Open(&cfg.Database, logger)
		if err != nil {
			return nil, err
		}
		if cfg.Database.AutoMigrate {
			if err := store.Migrate(db); err != nil {
				return nil, err
			}
		}
		return db, nil
	})

	do.Provide(injector, func(i do.Injector) (ports.UserRepository, error) {
		return store.NewUserRepository(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(injector, func(i do.Injector) (ports.TeamRepository, error) {
		return store.NewTeamRepository(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(injector, func(i do.Injector) (ports.ProjectRepository, error) {
		return store.NewProjectRepository(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(injector, func(i do.Injector) (ports.TaskRepository, error) {
		return store.NewTaskRepository(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(injector, func(i do.Injector) (ports.NotificationRepository, error) {
		return store.NewNotificationRepository(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(injector, func(i do.Injector) (ports.ActivityRepository, error) {
		return store.NewActivityRepository(do.MustInvoke[*gorm.DB](i)), nil
	})
}

func registerServices(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(i do.Injector) (*realtime.Hub, error) {
		return realtime.NewHub(logger, realtime.WithMetrics(do.MustInvoke[*telemetry.Metrics](i))), nil
	})

	do.Provide(injector, func(i do.Injector) (*webhook.Publisher, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		client := httpclient.New(&cfg.Webhook, "webhook", metrics, logger)
		return webhook.NewPublisher(client, cfg.Webhook.Path, logger, webhook.WithSecret(cfg.Webhook.Secret)), nil
	})

	do.Provide(injector, func(i do.Injector) (*app.Dispatcher, error) {
		var publisher ports.WebhookPublisher
		if cfg.Webhook.Enabled {
			publisher = do.MustInvoke[*webhook.Publisher](i)
		}
		return app.NewDispatcher(
			do.MustInvoke[ports.ActivityRepository](i),
			do.MustInvoke[ports.NotificationRepository](i),
			do.MustInvoke[*realtime.Hub](i),
			publisher,
			do.MustInvoke[*telemetry.Metrics](i),
			logger,
		), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.UserService, error) {
		d := do.MustInvoke[*app.Dispatcher](i)
		return app.NewUserService(
			do.MustInvoke[ports.UserRepository](i),
			auth.NewBcryptHasher(cfg.Auth.BcryptCost),
			auth.NewJWTService(&cfg.Auth),
			d, d, logger,
		), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.Authenticator, error) {
		return do.MustInvoke[ports.UserService](i), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.TeamService, error) {
		d := do.MustInvoke[*app.Dispatcher](i)
		return app.NewTeamService(
			do.MustInvoke[ports.TeamRepository](i),
			do.MustInvoke[ports.UserRepository](i),
			do.MustInvoke[ports.ProjectRepository](i),
			d, d, logger,
		), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.ProjectService, error) {
		d := do.MustInvoke[*app.Dispatcher](i)
		return app.NewProjectService(
			do.MustInvoke[ports.ProjectRepository](i),
			do.MustInvoke[ports.TaskRepository](i),
			do.MustInvoke[ports.TeamRepository](i),
			d, d, logger,
		), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.TaskService, error) {
		d := do.MustInvoke[*app.Dispatcher](i)
		return app.NewTaskService(
			do.MustInvoke[ports.TaskRepository](i),
			do.MustInvoke[ports.ProjectRepository](i),
			do.MustInvoke[ports.UserRepository](i),
			do.MustInvoke[ports.TeamRepository](i),
			d, d, logger,
		), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.NotificationService, error) {
		return app.NewNotificationService(
			do.MustInvoke[ports.NotificationRepository](i),
			do.MustInvoke[*app.Dispatcher](i),
			logger,
		), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.AdminService, error) {
		return app.NewAdminService(
			do.MustInvoke[ports.UserRepository](i),
			do.MustInvoke[ports.TeamRepository](i),
			do.MustInvoke[ports.ProjectRepository](i),
			do.MustInvoke[ports.TaskRepository](i),
			do.MustInvoke[ports.ActivityRepository](i),
			do.MustInvoke[ports.HealthRegistry](i),
			do.MustInvoke[*app.Dispatcher](i),
			logger,
		), nil
	})
}

func registerTransport(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		h := adapthttp.Handlers{
			Health:       handlers.NewHealthHandler(do.MustInvoke[ports.HealthRegistry](i)),
			User:         handlers.NewUserHandler(do.MustInvoke[ports.UserService](i)),
			Team:         handlers.NewTeamHandler(do.MustInvoke[ports.TeamService](i)),
			Project:      handlers.NewProjectHandler(do.MustInvoke[ports.ProjectService](i)),
			Task:         handlers.NewTaskHandler(do.MustInvoke[ports.TaskService](i)),
			Notification: handlers.NewNotificationHandler(do.MustInvoke[ports.NotificationService](i)),
			Admin:        handlers.NewAdminHandler(do.MustInvoke[ports.AdminService](i)),
			WebSocket:    handlers.NewWebSocketHandler(do.MustInvoke[*realtime.Hub](i)),
		}
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		return adapthttp.NewRouter(h, adapthttp.RouterConfig{
			Auth:           do.MustInvoke[ports.Authenticator](i),
			RequestTimeout: cfg.Server.RequestTimeout,
			RateLimit:      cfg.RateLimit,
		},
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.OpenTelemetry(metrics),
			middleware.Logging(logger),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		server := adapthttp.NewServer(cfg.Server, handler, logger)
		server.OnShutdown(do.MustInvoke[*realtime.Hub](i).Close)
		return server, nil
	})
}
