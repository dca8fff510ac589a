package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/filmes-api/internal/domain"
)

func runInTx(ctx context.Context, db *pgxpool.Pool, fn func(tx pgx.Tx) error) error {
	var txOptions pgx.TxOptions

	tx, err := db.BeginTx(ctx, txOptions)
	if err != nil {
		return err
	}

	err = fn(tx)
	if err == nil {
		return tx.Commit(ctx)
	}

	rollbackErr := tx.Rollback(ctx)
	if rollbackErr != nil {
		return errors.Join(err, rollbackErr)
	}

	return err
}

// translateError maps constraint violations reported by Postgres to domain
// errors. A foreign key violation means different things depending on the
// statement: fkErr tells which domain error the caller wants for it.
func translateError(err error, fkErr error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrRecordNotFound
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		return domain.ErrDuplicateRecord
	case pgerrcode.ForeignKeyViolation, pgerrcode.RestrictViolation:
		return fkErr
	case pgerrcode.CheckViolation, pgerrcode.NotNullViolation, pgerrcode.StringDataRightTruncationDataException:
		return domain.ErrConstraintViolation
	default:
		return err
	}
}

func writeError(err error) error {
	return translateError(err, domain.ErrInvalidReference)
}

func deleteError(err error) error {
	return translateError(err, domain.ErrDependentRecords)
}
