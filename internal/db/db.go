// Package db provides PostgreSQL-backed store implementations for the Outings
// service: the activity catalog, activity logs, category preferences, and the
// imported events feed. All repositories accept a DBTX interface satisfied by
// both *pgxpool.Pool and pgx.Tx, so the same code works inside or outside a
// transaction.
//
// The engine never sees SQL or schema shapes; it consumes the store
// interfaces in internal/types.
package db

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is the minimal interface shared by *pgxpool.Pool and pgx.Tx.
type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}
