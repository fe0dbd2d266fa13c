package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kruglovma/sklad/internal/core/port"
)

type txKey struct{}

// TxFrom returns the transaction carried by the context, if any.
// Repositories route their queries through it so a service callback
// and its repository calls share one transaction.
func TxFrom(ctx context.Context) pgx.Tx {
	tx, _ := ctx.Value(txKey{}).(pgx.Tx)
	return tx
}

type TransactionManager struct {
	pool *pgxpool.Pool
}

func NewTransactionManager(pool *pgxpool.Pool) port.TransactionManager {
	return &TransactionManager{pool: pool}
}

// WithTransaction runs fn inside one serializable transaction. Check-
// then-write sequences inside fn therefore cannot interleave with a
// concurrent writer: the loser fails with a serialization or unique
// violation instead of committing.
func (tm *TransactionManager) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	tx, err := tm.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return MapError(err)
	}
	return nil
}
