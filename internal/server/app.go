// Package server initializes and runs the project manager API.
// It selects the storage backend, injects the store client into the
// managers, and serves the REST API until a shutdown signal arrives.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/projectmanager/internal/logging"
	"github.com/dmitrijs2005/projectmanager/internal/server/config"
	"github.com/dmitrijs2005/projectmanager/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/projectmanager/internal/server/rest"
	"github.com/dmitrijs2005/projectmanager/internal/server/services"
)

var openPostgres = repomanager.OpenPostgres

var logOutput io.Writer = os.Stdout

type App struct {
	config *config.Config
	logger logging.Logger
	db     *sql.DB
	server *rest.Server
}

// NewApp connects the store (running migrations in postgres mode) and wires
// the managers into the HTTP server.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger, err := logging.New(c.LogBackend, c.LogLevel, logOutput)
	if err != nil {
		return nil, fmt.Errorf("logger init error: %w", err)
	}

	var (
		db    *sql.DB
		repos repomanager.RepositoryManager
		store rest.Pinger
	)

	switch c.Storage {
	case config.StoragePostgres:
		db, err = openPostgres(ctx, c.DatabaseDSN)
		if err != nil {
			return nil, fmt.Errorf("db init error: %w", err)
		}
		repos = repomanager.NewPostgresRepositoryManager()
		if err := repos.RunMigrations(ctx, db); err != nil {
			db.Close()
			return nil, fmt.Errorf("migrations error: %w", err)
		}
		store = db
	case config.StorageMemory:
		repos = repomanager.NewMemoryRepositoryManager()
	default:
		return nil, fmt.Errorf("unknown storage %q", c.Storage)
	}

	logger.Info(ctx, "storage ready", "storage", c.Storage)

	metrics := rest.NewMetrics()
	handlers := rest.NewHandlers(
		services.NewProjectManager(db, repos, logger),
		services.NewTaskManager(db, repos, logger),
		services.NewUserManager(db, repos, logger),
		store, metrics, logger,
	)

	srv := rest.NewServer(rest.Options{
		Address:         c.EndpointAddrHTTP,
		RequestTimeout:  c.RequestTimeout,
		ShutdownTimeout: c.ShutdownTimeout,
	}, logger, handlers, metrics)

	return &App{config: c, logger: logger, db: db, server: srv}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	if err := app.server.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run blocks until ctx is cancelled, a shutdown signal arrives, or the HTTP
// server fails.
func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error(ctx, "db close error", "error", err)
		}
	}

	app.logger.Info(ctx, "App stopped")
}
