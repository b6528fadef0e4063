package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

func runInTx(ctx context.Context, db *pgxpool.Pool, fn func(tx pgx.Tx) error) error {
	var txOptions pgx.TxOptions

	tx, err := db.BeginTx(ctx, txOptions)
	if err != nil {
		return err
	}

	err = fn(tx)
	if err == nil {
		// a deadline firing mid-commit would leave the outcome unknown, so only the
		// statements above are bounded by ctx
		return tx.Commit(context.WithoutCancel(ctx))
	}

	// the request context may already be done, the rollback still has to reach the server
	rollbackErr := tx.Rollback(context.WithoutCancel(ctx))
	if rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
		return errors.Join(err, rollbackErr)
	}

	return err
}

func pgErrorCode(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr, true
	}

	return nil, false
}

func isUniqueViolation(err error, constraint string) bool {
	pgErr, ok := pgErrorCode(err)
	return ok && pgErr.Code == pgerrcode.UniqueViolation && pgErr.ConstraintName == constraint
}

func isForeignKeyViolation(err error) bool {
	pgErr, ok := pgErrorCode(err)
	return ok && pgErr.Code == pgerrcode.ForeignKeyViolation
}
