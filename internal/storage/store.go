// Package storage provides the durable named-blob store backing the ledger.
package storage

import "context"

// Well-known blob keys. These are part of the on-disk contract.
const (
	KeyExpenses   = "SavedExpenses"
	KeyCategories = "SavedCategories"
	KeyBudget     = "MonthlyBudget"
)

// Store is a durable string-keyed blob store. Every write replaces the
// whole document under its key; there are no partial updates and no
// cross-key transactions. Last write wins.
type Store interface {
	// Get returns the blob stored under key, or common.ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)
	// Put stores value under key, replacing any previous value.
	Put(ctx context.Context, key string, value []byte) error
	// Exists reports whether a blob is stored under key.
	Exists(ctx context.Context, key string) (bool, error)
	Close() error
}
