package storage

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/lib/pq"
	"go.uber.org/zap"
)

type RetryPolicy struct {
	MaxAttempts int
	BaseDelay   time.Duration
	Multiplier  float64
}

func (p RetryPolicy) backOff(ctx context.Context) backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = p.BaseDelay
	b.Multiplier = p.Multiplier
	b.RandomizationFactor = 0
	b.MaxElapsedTime = 0
	attempts := p.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}
	return backoff.WithContext(backoff.WithMaxRetries(b, uint64(attempts-1)), ctx)
}

// IsTransient reports whether err is a connectivity failure worth retrying:
// broken connections, connection-class SQLSTATEs, server shutdowns and the
// suspended-endpoint error serverless Postgres returns while waking up.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, driver.ErrBadConn) {
		return true
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch {
		case pqErr.Code.Class() == "08":
			return true
		case pqErr.Code == "57P01", pqErr.Code == "57P02", pqErr.Code == "57P03":
			return true
		case pqErr.Code == "XX000" && strings.Contains(pqErr.Message, "endpoint has been disabled"):
			return true
		}
		return false
	}
	return strings.Contains(err.Error(), "endpoint has been disabled")
}

// RetryingDB decorates a database handle so that every call is retried with
// exponential backoff on transient failures. Transactions are retried as a
// whole; a failed attempt has been rolled back before the next one starts.
type RetryingDB struct {
	db     *sql.DB
	policy RetryPolicy
	logger *zap.SugaredLogger
}

func NewRetryingDB(db *sql.DB, policy RetryPolicy, logger *zap.SugaredLogger) *RetryingDB {
	return &RetryingDB{db: db, policy: policy, logger: logger}
}

func (d *RetryingDB) retry(ctx context.Context, op string, fn func() error) error {
	attempt := 0
	return backoff.RetryNotify(func() error {
		attempt++
		err := fn()
		if err != nil && !IsTransient(err) {
			return backoff.Permanent(err)
		}
		return err
	}, d.policy.backOff(ctx), func(err error, wait time.Duration) {
		d.logger.Warnw("transient database error, retrying",
			"op", op, "attempt", attempt, "max_attempts", d.policy.MaxAttempts, "backoff", wait, "error", err)
	})
}

func (d *RetryingDB) Exec(ctx context.Context, query string, args ...any) (sql.Result, error) {
	var result sql.Result
	err := d.retry(ctx, "exec", func() error {
		var err error
		result, err = d.db.ExecContext(ctx, query, args...)
		return err
	})
	return result, err
}

// QueryRow runs a single-row query and hands the row to scan.
func (d *RetryingDB) QueryRow(ctx context.Context, scan func(*sql.Row) error, query string, args ...any) error {
	return d.retry(ctx, "query_row", func() error {
		return scan(d.db.QueryRowContext(ctx, query, args...))
	})
}

// Query runs a multi-row query. collect must build its result from scratch on
// every call since a retried attempt calls it again.
func (d *RetryingDB) Query(ctx context.Context, collect func(*sql.Rows) error, query string, args ...any) error {
	return d.retry(ctx, "query", func() error {
		rows, err := d.db.QueryContext(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		if err := collect(rows); err != nil {
			return err
		}
		return rows.Err()
	})
}

func (d *RetryingDB) InTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	return d.retry(ctx, "tx", func() error {
		tx, err := d.db.BeginTx(ctx, nil)
		if err != nil {
			return err
		}
		defer tx.Rollback()

		if err := fn(tx); err != nil {
			return err
		}
		return tx.Commit()
	})
}
