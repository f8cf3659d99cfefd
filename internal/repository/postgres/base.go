package postgres

import (
	"context"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/jmoiron/sqlx"
)

// dialect builds the SQL executed by every repository; queries are always
// prepared so values travel as bind arguments.
var dialect = goqu.Dialect("postgres")

// baseRepository provides transaction support shared by all repositories. A
// root repository carries both the connection pool and an executor; a
// transaction-bound copy carries only the transaction as its executor.
type baseRepository struct {
	conn *sqlx.DB
	db   sqlx.ExtContext
}

// runTx executes fn inside a transaction. When the repository is already
// transaction-bound the existing transaction is reused.
func (r *baseRepository) runTx(ctx context.Context, fn func(*sqlx.Tx) error) error {
	if r.conn == nil {
		return fn(r.db.(*sqlx.Tx))
	}

	tx, err := r.conn.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}

	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit()
}
