package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"interview-prep/internal/domain"
	"interview-prep/internal/logger"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

type txKey struct{}

func contextWithTx(ctx context.Context, tx *sqlx.Tx) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

func txFromContext(ctx context.Context) (*sqlx.Tx, bool) {
	tx, ok := ctx.Value(txKey{}).(*sqlx.Tx)
	return tx, ok && tx != nil
}

// GetExecutor returns the transaction opened by WithTransaction when ctx
// carries one, otherwise db. Every repository query goes through it so that
// an evaluation insert and the set status update share one commit.
func GetExecutor(ctx context.Context, db DBTX) DBTX {
	if tx, ok := txFromContext(ctx); ok {
		return tx
	}
	return db
}

type sqlTxManager struct {
	db *sqlx.DB
}

func NewSQLTxManager(db *sqlx.DB) domain.TransactionManager {
	return &sqlTxManager{db: db}
}

// WithTransaction runs fn inside a transaction. A nested call joins the
// outer transaction, and only the outermost call commits or rolls back.
func (m *sqlTxManager) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if _, ok := txFromContext(ctx); ok {
		return fn(ctx)
	}

	tx, err := m.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	committed := false
	defer func() {
		if committed {
			return
		}
		p := recover()
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			logger.Get().Error("Transaction rollback failed", zap.Error(rbErr), zap.Any("panic", p))
			if p == nil && err != nil {
				err = errors.Join(err, fmt.Errorf("rollback: %w", rbErr))
			}
		}
		if p != nil {
			panic(p)
		}
	}()

	if err = fn(contextWithTx(ctx, tx)); err != nil {
		return err
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	committed = true
	return nil
}
