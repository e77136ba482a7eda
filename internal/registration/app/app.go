package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/aussiebroadwan/oidcreg/internal/registration/http"
	"github.com/aussiebroadwan/oidcreg/internal/registration/service"
	"github.com/aussiebroadwan/oidcreg/internal/registration/store/drivers/sqlite"
	"github.com/aussiebroadwan/oidcreg/pkg/cryptox"
	"github.com/aussiebroadwan/oidcreg/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags.
	BuildVersion = "v0.1.0"
)

// Application wires the registration service, its client store and the HTTP server.
type Application struct {
	cfg    Config
	logger *slog.Logger

	db                  *sqlite.Store
	registrationService *service.RegistrationService

	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg:    cfg,
		logger: NewLogger(cfg),
	}

	// Set pepper path for secret hashing
	cryptox.SetPepperPath(app.cfg.PepperFile)

	db, err := OpenStore(cfg)
	if err != nil {
		return nil, err
	}
	app.db = db
	app.logger.Info("database migrations applied successfully")

	if err := app.initServices(); err != nil {
		_ = db.Close()
		return nil, err
	}
	app.initHTTP()

	return app, nil
}

// NewLogger returns the service logger for cfg.
func NewLogger(cfg Config) *slog.Logger {
	return slogx.New(slogx.Config{
		Service: "oidcreg",
		Version: BuildVersion,
		Env:     cfg.Env,
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
	})
}

// OpenStore opens the client store and applies pending migrations.
func OpenStore(cfg Config) (*sqlite.Store, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", cfg.DatabaseFile)
	db, err := sqlite.NewStore(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to apply database migrations: %w", err)
	}
	return db, nil
}

// Handler returns the root HTTP handler.
func (app *Application) Handler() http.Handler { return app.router }

// Run starts the application and blocks until shutdown is requested or ctx is done
func (app *Application) Run(ctx context.Context) error {
	app.logger.Info("oidc registration service starting",
		"port", app.cfg.Port,
		"version", BuildVersion,
		"registration_endpoint", app.router.RegistrationEndpoint(),
	)

	// Start server in a goroutine
	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	// Setup signal handling for graceful shutdown
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(shutdown)

	// Block until we receive a shutdown signal or server error
	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			_ = app.db.Close()
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)
	case <-ctx.Done():
		app.logger.Info("context cancelled", "error", ctx.Err())
	}

	// Perform graceful shutdown
	if err := app.Shutdown(); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down oidc registration service...")

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("oidc registration service stopped")
	return nil
}

// initServices builds the registration pipeline and its collaborators
func (app *Application) initServices() error {
	clientIDs, err := cryptox.NewRandomStringGenerator(app.cfg.ClientIDBytes)
	if err != nil {
		return fmt.Errorf("client id generator: %w", err)
	}
	clientSecrets, err := cryptox.NewRandomStringGenerator(app.cfg.SecretBytes)
	if err != nil {
		return fmt.Errorf("client secret generator: %w", err)
	}

	app.registrationService = &service.RegistrationService{
		Store:         app.db,
		Scopes:        service.StaticScopePolicy(app.cfg.Scopes),
		Reconciler:    service.NewClaimReconciler(app.cfg.ScopeClaims),
		ClientIDs:     clientIDs,
		ClientSecrets: clientSecrets,
	}
	return nil
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.cfg.Issuer,
		app.cfg.BasePath,
		BuildVersion,
		app.db,
		app.logger,
	)

	// Wire services to router
	router.RegistrationService = app.registrationService
	router.ScopePolicy = app.registrationService.Scopes
	router.CORSOrigins = app.cfg.CORSOrigins
	router.MaxRequestBytes = app.cfg.MaxRequestBytes
	router.ApplyRoutes()

	app.router = router

	// Initialize HTTP server
	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
