// Package dbmetrics wraps *sql.DB with query timing collectors and carries
// an active transaction executor through context for the repositories.
package dbmetrics

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/mpe-apps/MPE-ReservationService/pkg/metrics"
)

// DBExecutor is the query surface shared by *sql.DB, *sql.Tx and the
// metric wrappers. Repositories depend on this interface only.
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// TxExecutor is a DBExecutor bound to an open transaction
type TxExecutor interface {
	DBExecutor
	Commit() error
	Rollback() error
}

const defaultPoolStatsInterval = 15 * time.Second

// DB wraps *sql.DB and reports query metrics
type DB struct {
	db      *sql.DB
	metrics *metrics.Metrics
}

// Wrap creates a metrics-reporting wrapper around db
func Wrap(db *sql.DB, m *metrics.Metrics) *DB {
	return &DB{db: db, metrics: m}
}

// WrapWithDefault wraps db and starts a goroutine publishing connection pool
// statistics every 15s until stopCh is closed.
func WrapWithDefault(db *sql.DB, m *metrics.Metrics, serviceName string, stopCh <-chan struct{}) *DB {
	wrapped := Wrap(db, m)

	go func() {
		ticker := time.NewTicker(defaultPoolStatsInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				m.SetDBPoolStats(db.Stats())
			case <-stopCh:
				return
			}
		}
	}()

	return wrapped
}

// operationName derives the metrics label from the first SQL keyword
func operationName(query string) string {
	fields := strings.Fields(query)
	if len(fields) == 0 {
		return "unknown"
	}
	return strings.ToLower(fields[0])
}

// ExecContext executes a query and records its duration
func (d *DB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	res, err := d.db.ExecContext(ctx, query, args...)
	d.metrics.ObserveDBQuery(operationName(query), time.Since(start), err)
	return res, err
}

// QueryContext executes a query and records its duration
func (d *DB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := d.db.QueryContext(ctx, query, args...)
	d.metrics.ObserveDBQuery(operationName(query), time.Since(start), err)
	return rows, err
}

// QueryRowContext executes a single-row query and records its duration
func (d *DB) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := d.db.QueryRowContext(ctx, query, args...)
	d.metrics.ObserveDBQuery(operationName(query), time.Since(start), nil)
	return row
}

// BeginTx opens a transaction whose statements are also timed
func (d *DB) BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error) {
	tx, err := d.db.BeginTx(ctx, opts)
	if err != nil {
		return nil, err
	}
	return &Tx{tx: tx, metrics: d.metrics}, nil
}

// Tx wraps *sql.Tx and reports query metrics
type Tx struct {
	tx      *sql.Tx
	metrics *metrics.Metrics
}

// ExecContext executes a statement inside the transaction
func (t *Tx) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	res, err := t.tx.ExecContext(ctx, query, args...)
	t.metrics.ObserveDBQuery(operationName(query), time.Since(start), err)
	return res, err
}

// QueryContext executes a query inside the transaction
func (t *Tx) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := t.tx.QueryContext(ctx, query, args...)
	t.metrics.ObserveDBQuery(operationName(query), time.Since(start), err)
	return rows, err
}

// QueryRowContext executes a single-row query inside the transaction
func (t *Tx) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := t.tx.QueryRowContext(ctx, query, args...)
	t.metrics.ObserveDBQuery(operationName(query), time.Since(start), nil)
	return row
}

// Commit commits the transaction
func (t *Tx) Commit() error {
	return t.tx.Commit()
}

// Rollback rolls the transaction back
func (t *Tx) Rollback() error {
	return t.tx.Rollback()
}
