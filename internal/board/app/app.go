package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/aussiebroadwan/taskboard/internal/board/http"
	"github.com/aussiebroadwan/taskboard/internal/board/service"
	"github.com/aussiebroadwan/taskboard/internal/board/store"
	"github.com/aussiebroadwan/taskboard/internal/board/store/drivers/memory"
	"github.com/aussiebroadwan/taskboard/internal/board/store/drivers/sqlite"
	"github.com/aussiebroadwan/taskboard/pkg/jwtx"
	"github.com/aussiebroadwan/taskboard/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags. Later problem
	BuildVersion = "v0.1.0"
)

// Application encapsulates the board service with all its dependencies.
// Domain collections live in the seeded memory store; only the session
// slot is optionally persisted to SQLite.
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db       store.Store
	sessions store.Sessions
	keys     *jwtx.EdDSAKeyPair

	// Services
	sessionService      *service.SessionService
	taskService         *service.TaskService
	workspaceService    *service.WorkspaceService
	teamService         *service.TeamService
	notificationService *service.NotificationService
	activityService     *service.ActivityService
	meetingService      *service.MeetingService
	metricsService      *service.MetricsService
	calendarService     *service.CalendarService
	assistantService    *service.AssistantService
	housekeepingService *service.HousekeepingService

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "taskboard",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	if err := app.initStores(); err != nil {
		return nil, err
	}

	// Signing keys are ephemeral: every restart mints a new keypair and
	// invalidates outstanding tokens. A persisted session outlives that,
	// so login issues a fresh token against the persisted record.
	keys, err := jwtx.NewEphemeralEdDSA("board-1", cfg.Issuer)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize signing keys: %w", err)
	}
	app.keys = keys

	app.initServices()
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	// Start housekeeping service
	app.housekeepingService.Start()

	app.logger.Info("board service starting", "port", app.cfg.Port, "version", BuildVersion)

	// Start server in a goroutine
	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	// Setup signal handling for graceful shutdown
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a shutdown signal or server error
	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		// Perform graceful shutdown
		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down board service...")

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	// Shutdown the HTTP server
	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	// Stop the housekeeping service
	app.housekeepingService.Stop()

	// Close stores
	if err := app.sessions.Close(); err != nil {
		app.logger.Error("error closing session store", "error", err)
	}
	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing store", "error", err)
		return err
	}

	app.logger.Info("board service stopped")
	return nil
}

// initStores builds the seeded in-memory store and, in persistent mode, the
// SQLite session slot.
func (app *Application) initStores() error {
	db := memory.NewSeededStore()
	app.db = db

	if app.cfg.SessionStorageMode != "persistent" {
		app.sessions = db.Sessions()
		app.logger.Info("session slot in memory (ephemeral mode)")
		return nil
	}

	host := fmt.Sprintf("file:%s?_busy_timeout=5000", app.cfg.SessionDBFile)
	sessions, err := sqlite.NewSessionStore(host)
	if err != nil {
		return fmt.Errorf("failed to initialize session database: %w", err)
	}

	if err := sessions.ApplyMigrations(); err != nil {
		_ = sessions.Close()
		return fmt.Errorf("failed to apply session migrations: %w", err)
	}

	app.sessions = sessions
	app.logger.Info("session database migrations applied successfully", "file", app.cfg.SessionDBFile)
	return nil
}

// initServices initializes all business logic services
func (app *Application) initServices() {
	delay := service.TimerDelayer{}

	app.sessionService = &service.SessionService{
		Users:     app.db.Users(),
		Sessions:  app.sessions,
		Signer:    app.keys,
		Issuer:    app.cfg.Issuer,
		AccessTTL: app.cfg.AccessTTL,
		Delay:     delay,
		Latency:   app.cfg.SimulatedLatency,
	}

	app.taskService = &service.TaskService{Store: app.db}
	app.workspaceService = &service.WorkspaceService{Store: app.db}
	app.teamService = &service.TeamService{Store: app.db}
	app.notificationService = &service.NotificationService{Store: app.db}
	app.activityService = &service.ActivityService{Store: app.db}
	app.meetingService = &service.MeetingService{Store: app.db}
	app.metricsService = &service.MetricsService{Store: app.db}
	app.calendarService = &service.CalendarService{Store: app.db}
	app.assistantService = &service.AssistantService{
		Store:   app.db,
		Delay:   delay,
		Latency: app.cfg.SimulatedLatency,
	}

	app.housekeepingService = service.NewHousekeepingService(
		app.db,
		app.logger,
		app.cfg.HousekeepingInterval,
		app.cfg.DueSoonWindow,
	)
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.keys,
		app.keys,
		BuildVersion,
		app.db,
		app.sessions,
		app.logger,
	)

	// Wire services to router
	router.SessionService = app.sessionService
	router.TaskService = app.taskService
	router.WorkspaceService = app.workspaceService
	router.TeamService = app.teamService
	router.NotificationService = app.notificationService
	router.ActivityService = app.activityService
	router.MeetingService = app.meetingService
	router.MetricsService = app.metricsService
	router.CalendarService = app.calendarService
	router.AssistantService = app.assistantService
	router.ApplyRoutes()

	app.router = router

	// Initialize HTTP server
	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
