package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/exaring/otelpgx"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/filmes-api/api"
	"github.com/metinatakli/filmes-api/internal/domain"
	"github.com/metinatakli/filmes-api/internal/repository"
	appvalidator "github.com/metinatakli/filmes-api/internal/validator"
	"github.com/metinatakli/filmes-api/internal/vcs"
	"github.com/riandyrn/otelchi"
)

var (
	version = vcs.Version()
)

// pinger is the part of the database pool the healthcheck needs.
type pinger interface {
	Ping(ctx context.Context) error
}

type Application struct {
	config    Config
	logger    *slog.Logger
	db        pinger
	validator *validator.Validate

	movieRepo     domain.MovieRepository
	cinemaRepo    domain.CinemaRepository
	addressRepo   domain.AddressRepository
	screeningRepo domain.ScreeningRepository
}

func NewApp(
	cfg Config,
	logger *slog.Logger,
	db *pgxpool.Pool,
	validator *validator.Validate,
	movieRepo domain.MovieRepository,
	cinemaRepo domain.CinemaRepository,
	addressRepo domain.AddressRepository,
	screeningRepo domain.ScreeningRepository,
) *Application {
	return &Application{
		config:        cfg,
		logger:        logger,
		db:            db,
		validator:     validator,
		movieRepo:     movieRepo,
		cinemaRepo:    cinemaRepo,
		addressRepo:   addressRepo,
		screeningRepo: screeningRepo,
	}
}

func Run() error {
	cfg, displayVersion, err := parseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		return err
	}

	if displayVersion {
		fmt.Printf("Version:\t%s\n", version)
		os.Exit(0)
	}

	app := &Application{
		config:    cfg,
		logger:    slog.New(slog.NewTextHandler(os.Stdout, nil)),
		validator: appvalidator.NewValidator(),
	}

	shutdownTelemetry, err := app.InitTelemetry()
	if err != nil {
		return err
	}
	defer shutdownTelemetry(context.Background())

	if cfg.DB.Migrate {
		err = repository.Migrate(cfg.DB.DSN)
		if err != nil {
			return err
		}

		app.logger.Info("database migrations applied")
	}

	db, err := NewDatabasePool(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	store := repository.NewStore(db)

	app.db = db
	app.movieRepo = store.Movies
	app.cinemaRepo = store.Cinemas
	app.addressRepo = store.Addresses
	app.screeningRepo = store.Screenings

	return app.run()
}

func NewDatabasePool(cfg Config) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(cfg.DB.DSN)
	if err != nil {
		return nil, err
	}

	config.MaxConnIdleTime = cfg.DB.MaxIdleTime
	config.MaxConns = int32(cfg.DB.MaxOpenConns)
	config.ConnConfig.Tracer = otelpgx.NewTracer()

	db, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err = db.Ping(ctx)
	if err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

func (app *Application) run() error {
	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%d", app.config.Port),
		Handler:      app.Routes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(app.logger.Handler(), slog.LevelDebug),
	}

	shutdownError := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		app.logger.Info("shutting down server", "signal", s.String())

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		shutdownError <- srv.Shutdown(ctx)
	}()

	app.logger.Info("starting server", "addr", srv.Addr, "env", app.config.Env)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdownError
	if err != nil {
		return err
	}

	app.logger.Info("stopped server", "addr", srv.Addr)

	return nil
}

func (app *Application) Routes() http.Handler {
	r := chi.NewRouter()

	r.NotFound(app.notFoundResponse)
	r.MethodNotAllowed(app.methodNotAllowedResponse)

	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(otelchi.Middleware(serviceName, otelchi.WithChiRoutes(r)))
	r.Use(app.requestLogger)
	r.Use(app.recoverPanic)

	r.Get("/swagger", api.SwaggerHandler())

	return api.HandlerWithOptions(app, api.ChiServerOptions{
		BaseRouter:       r,
		ErrorHandlerFunc: app.invalidParamResponse,
	})
}
