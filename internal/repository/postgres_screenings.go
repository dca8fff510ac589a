package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/filmes-api/internal/domain"
)

type PostgresScreeningRepository struct {
	db *pgxpool.Pool
}

func NewPostgresScreeningRepository(db *pgxpool.Pool) *PostgresScreeningRepository {
	return &PostgresScreeningRepository{
		db: db,
	}
}

// Create returns domain.ErrDuplicateRecord when the movie is already screened
// at the cinema and domain.ErrInvalidReference when either side is missing.
func (p *PostgresScreeningRepository) Create(ctx context.Context, screening *domain.Screening) error {
	query := `
		WITH inserted AS (
			INSERT INTO screenings (movie_id, cinema_id)
			VALUES ($1, $2)
			RETURNING movie_id, cinema_id
		)
		SELECT c.name
		FROM inserted i
		JOIN cinemas c ON c.id = i.cinema_id`

	var cinemaName string

	err := p.db.QueryRow(ctx, query, screening.MovieID, screening.CinemaID).Scan(&cinemaName)
	if err != nil {
		return writeError(err)
	}

	screening.Cinema = &domain.Cinema{ID: screening.CinemaID, Name: cinemaName}

	return nil
}

func (p *PostgresScreeningRepository) GetAll(ctx context.Context, pagination domain.Pagination) ([]*domain.Screening, error) {
	query := `
		SELECT s.movie_id, s.cinema_id, c.name
		FROM screenings s
		JOIN cinemas c ON c.id = s.cinema_id
		ORDER BY s.movie_id, s.cinema_id
		LIMIT $1 OFFSET $2`

	rows, err := p.db.Query(ctx, query, pagination.Limit(), pagination.Offset())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	screenings := []*domain.Screening{}

	for rows.Next() {
		screening, err := scanScreening(rows)
		if err != nil {
			return nil, err
		}

		screenings = append(screenings, screening)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return screenings, nil
}

func (p *PostgresScreeningRepository) Get(ctx context.Context, movieID, cinemaID int) (*domain.Screening, error) {
	query := `
		SELECT s.movie_id, s.cinema_id, c.name
		FROM screenings s
		JOIN cinemas c ON c.id = s.cinema_id
		WHERE s.movie_id = $1 AND s.cinema_id = $2`

	screening, err := scanScreening(p.db.QueryRow(ctx, query, movieID, cinemaID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return screening, nil
}

func scanScreening(row pgx.Row) (*domain.Screening, error) {
	var screening domain.Screening
	var cinemaName string

	err := row.Scan(&screening.MovieID, &screening.CinemaID, &cinemaName)
	if err != nil {
		return nil, err
	}

	screening.Cinema = &domain.Cinema{ID: screening.CinemaID, Name: cinemaName}

	return &screening, nil
}

func (p *PostgresScreeningRepository) Delete(ctx context.Context, movieID, cinemaID int) error {
	query := `DELETE FROM screenings WHERE movie_id = $1 AND cinema_id = $2`

	tag, err := p.db.Exec(ctx, query, movieID, cinemaID)
	if err != nil {
		return deleteError(err)
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}
