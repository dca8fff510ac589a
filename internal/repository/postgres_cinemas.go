package repository

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/filmes-api/internal/domain"
)

type PostgresCinemaRepository struct {
	db *pgxpool.Pool
}

func NewPostgresCinemaRepository(db *pgxpool.Pool) *PostgresCinemaRepository {
	return &PostgresCinemaRepository{
		db: db,
	}
}

const selectCinema = `
	SELECT
		c.id,
		c.name,
		a.id,
		a.street,
		a.number,
		a.city,
		COALESCE(sc.screenings, '[]')
	FROM cinemas c
	LEFT JOIN addresses a ON a.cinema_id = c.id
	LEFT JOIN LATERAL (
		SELECT jsonb_agg(
			jsonb_build_object(
				'movieId', s.movie_id,
				'cinemaId', s.cinema_id
			) ORDER BY s.movie_id
		) AS screenings
		FROM screenings s
		WHERE s.cinema_id = c.id
	) sc ON true`

func (p *PostgresCinemaRepository) Create(ctx context.Context, cinema *domain.Cinema) error {
	query := `INSERT INTO cinemas (name)
		VALUES ($1)
		RETURNING id`

	err := p.db.QueryRow(ctx, query, cinema.Name).Scan(&cinema.ID)
	if err != nil {
		return writeError(err)
	}

	cinema.Screenings = []domain.Screening{}

	return nil
}

func (p *PostgresCinemaRepository) GetAll(ctx context.Context, pagination domain.Pagination) ([]*domain.Cinema, error) {
	query := selectCinema + `
		ORDER BY c.id
		LIMIT $1 OFFSET $2`

	rows, err := p.db.Query(ctx, query, pagination.Limit(), pagination.Offset())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cinemas := []*domain.Cinema{}

	for rows.Next() {
		cinema, err := scanCinema(rows)
		if err != nil {
			return nil, err
		}

		cinemas = append(cinemas, cinema)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return cinemas, nil
}

func (p *PostgresCinemaRepository) GetById(ctx context.Context, id int) (*domain.Cinema, error) {
	query := selectCinema + `
		WHERE c.id = $1`

	cinema, err := scanCinema(p.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return cinema, nil
}

func scanCinema(row pgx.Row) (*domain.Cinema, error) {
	var cinema domain.Cinema
	var screeningsJson json.RawMessage
	var (
		addressID     *int
		addressStreet *string
		addressNumber *int
		addressCity   *string
	)

	err := row.Scan(
		&cinema.ID,
		&cinema.Name,
		&addressID,
		&addressStreet,
		&addressNumber,
		&addressCity,
		&screeningsJson,
	)
	if err != nil {
		return nil, err
	}

	if addressID != nil {
		cinema.Address = &domain.Address{
			ID:       *addressID,
			Street:   deref(addressStreet),
			Number:   deref(addressNumber),
			City:     deref(addressCity),
			CinemaID: cinema.ID,
		}
	}

	var screenings []screeningRow
	if len(screeningsJson) > 0 {
		if err := json.Unmarshal(screeningsJson, &screenings); err != nil {
			return nil, err
		}
	}

	cinema.Screenings = make([]domain.Screening, len(screenings))
	for i, s := range screenings {
		cinema.Screenings[i] = domain.Screening{
			MovieID:  s.MovieID,
			CinemaID: s.CinemaID,
		}
	}

	return &cinema, nil
}

func (p *PostgresCinemaRepository) Update(ctx context.Context, cinema *domain.Cinema) error {
	tag, err := p.db.Exec(ctx, `UPDATE cinemas SET name = $1 WHERE id = $2`, cinema.Name, cinema.ID)
	if err != nil {
		return writeError(err)
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}

// Delete fails with domain.ErrDependentRecords while an address still points
// at the cinema. Its screenings are removed with it.
func (p *PostgresCinemaRepository) Delete(ctx context.Context, id int) error {
	tag, err := p.db.Exec(ctx, `DELETE FROM cinemas WHERE id = $1`, id)
	if err != nil {
		return deleteError(err)
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}

func deref[T any](v *T) T {
	var zero T
	if v == nil {
		return zero
	}

	return *v
}
