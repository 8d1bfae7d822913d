// Package repokit is what SQL repositories build on: driver-free query types, binders that
// attach a repository to a pool or a transaction, and startup guards
package repokit

import (
	"context"

	"wordguard/internal/platform/store"
)

type (
	// Queryer is the SQL surface a bound repository uses
	Queryer = store.RowQuerier
	// TxRunner is a Queryer that can open transactions
	TxRunner = store.TxRunner
	// Rows is a result set
	Rows = store.Rows
	// Row is a single row
	Row = store.Row
	// CommandTag describes a write
	CommandTag = store.CommandTag
)

// WithTx binds a repository to a transaction on db and runs fn with it
func WithTx[T any](ctx context.Context, db TxRunner, b Binder[T], fn func(T) error) error {
	return db.Tx(ctx, func(q Queryer) error { return fn(b.Bind(q)) })
}
