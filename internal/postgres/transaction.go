package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	ierr "github.com/staffdesk/staffdesk/internal/errors"
	"github.com/staffdesk/staffdesk/internal/types"
)

type txKey struct{}

// Tx is an open transaction. A WithTx nested inside another runs in a
// savepoint of the outer transaction.
type Tx struct {
	*sqlx.Tx
	ID    string
	depth int
}

// GetTx returns the transaction carried by ctx, if any
func GetTx(ctx context.Context) (*Tx, bool) {
	tx, ok := ctx.Value(txKey{}).(*Tx)
	return tx, ok
}

func (tx *Tx) savepoint() string {
	return fmt.Sprintf("sp_%d", tx.depth)
}

// WithTx runs fn in a transaction and commits when it returns nil. A panic
// rolls back and is re-raised.
func (db *DB) WithTx(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	ctx, tx, err := db.begin(ctx)
	if err != nil {
		return err
	}

	defer func() {
		if r := recover(); r != nil {
			db.logger.Errorw("panic in transaction", "tx_id", tx.ID, "panic", r)
			_ = db.rollback(ctx, tx)
			panic(r)
		}
	}()

	if err := fn(ctx); err != nil {
		if rbErr := db.rollback(ctx, tx); rbErr != nil {
			db.logger.Errorw("rollback failed", "tx_id", tx.ID, "error", rbErr, "cause", err)
		}
		return err
	}
	return db.commit(ctx, tx)
}

func (db *DB) begin(ctx context.Context) (context.Context, *Tx, error) {
	if tx, ok := GetTx(ctx); ok {
		tx.depth++
		if _, err := tx.ExecContext(ctx, "SAVEPOINT "+tx.savepoint()); err != nil {
			tx.depth--
			return ctx, nil, markTx(err, "Could not create a savepoint")
		}
		db.logger.Debugw("savepoint created", "tx_id", tx.ID, "depth", tx.depth)
		return ctx, tx, nil
	}

	sqlxTx, err := db.BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return ctx, nil, markTx(err, "Could not start a database transaction")
	}

	id := types.GetRequestID(ctx)
	if id == "" {
		id = types.GenerateUUID()
	}
	tx := &Tx{Tx: sqlxTx, ID: id}
	db.logger.Debugw("transaction started", "tx_id", tx.ID)
	return context.WithValue(ctx, txKey{}, tx), tx, nil
}

func (db *DB) commit(ctx context.Context, tx *Tx) error {
	if tx.depth > 0 {
		defer func() { tx.depth-- }()
		if _, err := tx.ExecContext(ctx, "RELEASE SAVEPOINT "+tx.savepoint()); err != nil {
			return markTx(err, "Could not release a savepoint")
		}
		return nil
	}

	if err := tx.Commit(); err != nil {
		return markTx(err, "Could not commit the database transaction")
	}
	db.logger.Debugw("transaction committed", "tx_id", tx.ID)
	return nil
}

func (db *DB) rollback(ctx context.Context, tx *Tx) error {
	if tx.depth > 0 {
		defer func() { tx.depth-- }()
		if _, err := tx.ExecContext(ctx, "ROLLBACK TO SAVEPOINT "+tx.savepoint()); err != nil {
			return markTx(err, "Could not roll back to a savepoint")
		}
		return nil
	}

	db.logger.Debugw("transaction rolled back", "tx_id", tx.ID)
	if err := tx.Rollback(); err != nil && err != sql.ErrTxDone {
		return markTx(err, "Could not roll back the database transaction")
	}
	return nil
}

func markTx(err error, hint string) error {
	return ierr.WithError(err).WithHint(hint).Mark(ierr.ErrDatabase)
}
