package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/filmes-api/internal/domain"
)

type PostgresAddressRepository struct {
	db *pgxpool.Pool
}

func NewPostgresAddressRepository(db *pgxpool.Pool) *PostgresAddressRepository {
	return &PostgresAddressRepository{
		db: db,
	}
}

// Create returns domain.ErrInvalidReference for an unknown cinema and
// domain.ErrDuplicateRecord when the cinema already has an address.
func (p *PostgresAddressRepository) Create(ctx context.Context, address *domain.Address) error {
	query := `INSERT INTO addresses (street, number, city, cinema_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	err := p.db.QueryRow(
		ctx,
		query,
		address.Street,
		address.Number,
		address.City,
		address.CinemaID,
	).Scan(&address.ID)

	if err != nil {
		return writeError(err)
	}

	return nil
}

func (p *PostgresAddressRepository) GetAll(ctx context.Context, pagination domain.Pagination) ([]*domain.Address, error) {
	query := `SELECT id, street, number, city, cinema_id
		FROM addresses
		ORDER BY id
		LIMIT $1 OFFSET $2`

	rows, err := p.db.Query(ctx, query, pagination.Limit(), pagination.Offset())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	addresses := []*domain.Address{}

	for rows.Next() {
		var address domain.Address

		err := rows.Scan(
			&address.ID,
			&address.Street,
			&address.Number,
			&address.City,
			&address.CinemaID,
		)
		if err != nil {
			return nil, err
		}

		addresses = append(addresses, &address)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return addresses, nil
}

func (p *PostgresAddressRepository) GetById(ctx context.Context, id int) (*domain.Address, error) {
	query := `SELECT id, street, number, city, cinema_id
		FROM addresses
		WHERE id = $1`

	var address domain.Address

	err := p.db.QueryRow(ctx, query, id).Scan(
		&address.ID,
		&address.Street,
		&address.Number,
		&address.City,
		&address.CinemaID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return &address, nil
}

func (p *PostgresAddressRepository) Update(ctx context.Context, address *domain.Address) error {
	query := `UPDATE addresses
		SET street = $1, number = $2, city = $3
		WHERE id = $4
		RETURNING cinema_id`

	err := p.db.QueryRow(
		ctx,
		query,
		address.Street,
		address.Number,
		address.City,
		address.ID,
	).Scan(&address.CinemaID)

	if err != nil {
		return writeError(err)
	}

	return nil
}

func (p *PostgresAddressRepository) Delete(ctx context.Context, id int) error {
	tag, err := p.db.Exec(ctx, `DELETE FROM addresses WHERE id = $1`, id)
	if err != nil {
		return deleteError(err)
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}
