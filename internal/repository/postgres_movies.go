package repository

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/filmes-api/internal/domain"
)

type PostgresMovieRepository struct {
	db *pgxpool.Pool
}

func NewPostgresMovieRepository(db *pgxpool.Pool) *PostgresMovieRepository {
	return &PostgresMovieRepository{
		db: db,
	}
}

// screeningsOfMovie aggregates the screenings of m.id together with the name
// of the cinema each one belongs to.
const screeningsOfMovie = `
	LEFT JOIN LATERAL (
		SELECT jsonb_agg(
			jsonb_build_object(
				'movieId', s.movie_id,
				'cinemaId', s.cinema_id,
				'cinemaName', c.name
			) ORDER BY s.cinema_id
		) AS screenings
		FROM screenings s
		JOIN cinemas c ON c.id = s.cinema_id
		WHERE s.movie_id = m.id
	) sc ON true`

type screeningRow struct {
	MovieID    int    `json:"movieId"`
	CinemaID   int    `json:"cinemaId"`
	CinemaName string `json:"cinemaName"`
}

func (p *PostgresMovieRepository) Create(ctx context.Context, movie *domain.Movie) error {
	query := `INSERT INTO movies (title, genre, duration)
		VALUES ($1, $2, $3)
		RETURNING id`

	err := p.db.QueryRow(ctx, query, movie.Title, movie.Genre, movie.Duration).Scan(&movie.ID)
	if err != nil {
		return writeError(err)
	}

	movie.Screenings = []domain.Screening{}

	return nil
}

// GetAll takes the Skip/Take window over all movies first and only then keeps
// the movies screened at the cinema named in the filters.
func (p *PostgresMovieRepository) GetAll(ctx context.Context, filters domain.MovieFilters) ([]*domain.Movie, error) {
	query := `
		WITH page AS (
			SELECT id, title, genre, duration
			FROM movies
			ORDER BY id
			LIMIT $1 OFFSET $2
		)
		SELECT m.id, m.title, m.genre, m.duration, COALESCE(sc.screenings, '[]')
		FROM page m` + screeningsOfMovie + `
		WHERE $3 = '' OR EXISTS (
			SELECT 1
			FROM screenings s
			JOIN cinemas c ON c.id = s.cinema_id
			WHERE s.movie_id = m.id AND c.name = $3
		)
		ORDER BY m.id`

	rows, err := p.db.Query(ctx, query, filters.Take, filters.Skip, filters.CinemaName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	movies := []*domain.Movie{}

	for rows.Next() {
		movie, err := scanMovie(rows)
		if err != nil {
			return nil, err
		}

		movies = append(movies, movie)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return movies, nil
}

func (p *PostgresMovieRepository) GetById(ctx context.Context, id int) (*domain.Movie, error) {
	query := `
		SELECT m.id, m.title, m.genre, m.duration, COALESCE(sc.screenings, '[]')
		FROM movies m` + screeningsOfMovie + `
		WHERE m.id = $1`

	movie, err := scanMovie(p.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return movie, nil
}

func scanMovie(row pgx.Row) (*domain.Movie, error) {
	var movie domain.Movie
	var screeningsJson json.RawMessage

	err := row.Scan(
		&movie.ID,
		&movie.Title,
		&movie.Genre,
		&movie.Duration,
		&screeningsJson,
	)
	if err != nil {
		return nil, err
	}

	var screenings []screeningRow
	if len(screeningsJson) > 0 {
		if err := json.Unmarshal(screeningsJson, &screenings); err != nil {
			return nil, err
		}
	}

	movie.Screenings = make([]domain.Screening, len(screenings))
	for i, s := range screenings {
		movie.Screenings[i] = domain.Screening{
			MovieID:  s.MovieID,
			CinemaID: s.CinemaID,
			Cinema:   &domain.Cinema{ID: s.CinemaID, Name: s.CinemaName},
		}
	}

	return &movie, nil
}

func (p *PostgresMovieRepository) Update(ctx context.Context, movie *domain.Movie) error {
	query := `UPDATE movies
		SET title = $1, genre = $2, duration = $3
		WHERE id = $4`

	tag, err := p.db.Exec(ctx, query, movie.Title, movie.Genre, movie.Duration, movie.ID)
	if err != nil {
		return writeError(err)
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}

// Modify loads the movie under a row lock, lets fn change it and writes
// the result back in the same transaction. Nothing is written when fn fails.
func (p *PostgresMovieRepository) Modify(ctx context.Context, id int, fn func(*domain.Movie) error) error {
	return runInTx(ctx, p.db, func(tx pgx.Tx) error {
		query := `SELECT id, title, genre, duration
			FROM movies
			WHERE id = $1
			FOR UPDATE`

		var movie domain.Movie

		err := tx.QueryRow(ctx, query, id).Scan(&movie.ID, &movie.Title, &movie.Genre, &movie.Duration)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domain.ErrRecordNotFound
			}

			return err
		}

		err = fn(&movie)
		if err != nil {
			return err
		}

		query = `UPDATE movies
			SET title = $1, genre = $2, duration = $3
			WHERE id = $4`

		_, err = tx.Exec(ctx, query, movie.Title, movie.Genre, movie.Duration, movie.ID)
		if err != nil {
			return writeError(err)
		}

		return nil
	})
}

func (p *PostgresMovieRepository) Delete(ctx context.Context, id int) error {
	tag, err := p.db.Exec(ctx, `DELETE FROM movies WHERE id = $1`, id)
	if err != nil {
		return deleteError(err)
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}
