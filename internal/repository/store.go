package repository

import (
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	pgxmigrate "github.com/golang-migrate/migrate/v4/database/pgx"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	pgxstd "github.com/jackc/pgx/v5/stdlib"
	"github.com/metinatakli/filmes-api/migrations"
)

// Store groups the repositories of every entity collection over a single
// connection pool.
type Store struct {
	Movies     *PostgresMovieRepository
	Cinemas    *PostgresCinemaRepository
	Addresses  *PostgresAddressRepository
	Screenings *PostgresScreeningRepository
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{
		Movies:     NewPostgresMovieRepository(db),
		Cinemas:    NewPostgresCinemaRepository(db),
		Addresses:  NewPostgresAddressRepository(db),
		Screenings: NewPostgresScreeningRepository(db),
	}
}

// Migrate applies the embedded schema, including the keys and delete rules
// between entities, to the database behind dsn.
func Migrate(dsn string) error {
	config, err := pgx.ParseConfig(dsn)
	if err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}

	db := pgxstd.OpenDB(*config)
	defer db.Close()

	driver, err := pgxmigrate.WithInstance(db, &pgxmigrate.Config{})
	if err != nil {
		return fmt.Errorf("pgx migration driver error: %w", err)
	}

	source, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return fmt.Errorf("migration source error: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "pgx", driver)
	if err != nil {
		return fmt.Errorf("migrate.New error: %w", err)
	}

	err = m.Up()
	if err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("migration failed: %w", err)
	}

	return nil
}
