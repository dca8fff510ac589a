package integration_test

import (
	"log/slog"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/filmes-api/internal/app"
	"github.com/metinatakli/filmes-api/internal/repository"
	appvalidator "github.com/metinatakli/filmes-api/internal/validator"
)

type TestApp struct {
	App *app.Application
	DB  *pgxpool.Pool
}

func newTestApp(cfg app.Config) (*TestApp, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	validator := appvalidator.NewValidator()

	db, err := app.NewDatabasePool(cfg)
	if err != nil {
		return nil, err
	}

	store := repository.NewStore(db)

	application := app.NewApp(
		cfg,
		logger,
		db,
		validator,
		store.Movies,
		store.Cinemas,
		store.Addresses,
		store.Screenings,
	)

	return &TestApp{
		App: application,
		DB:  db,
	}, nil
}
