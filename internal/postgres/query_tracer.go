package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/staffdesk/staffdesk/internal/logger"
)

// tracedQuerier logs every statement with its duration at debug level and
// failures at warn. sql.ErrNoRows is not a failure.
type tracedQuerier struct {
	Querier
	logger *logger.Logger
	txID   string
}

func (q *tracedQuerier) trace(start time.Time, query string, args []interface{}, err error) {
	fields := []interface{}{
		"duration_ms", time.Since(start).Milliseconds(),
		"query", query,
		"args", len(args),
	}
	if q.txID != "" {
		fields = append(fields, "tx_id", q.txID)
	}
	if err != nil && err != sql.ErrNoRows {
		q.logger.Warnw("query failed", append(fields, "error", err)...)
		return
	}
	q.logger.Debugw("query", fields...)
}

func (q *tracedQuerier) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	res, err := q.Querier.ExecContext(ctx, query, args...)
	q.trace(start, query, args, err)
	return res, err
}

func (q *tracedQuerier) GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	start := time.Now()
	err := q.Querier.GetContext(ctx, dest, query, args...)
	q.trace(start, query, args, err)
	return err
}

func (q *tracedQuerier) SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	start := time.Now()
	err := q.Querier.SelectContext(ctx, dest, query, args...)
	q.trace(start, query, args, err)
	return err
}
