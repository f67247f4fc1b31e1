package storage

import (
	"context"
	"fmt"

	"github.com/cyxnb666/AccountingApp/internal/common"
)

// MemoryStore is an in-memory Store used by tests and ephemeral sessions.
// Not safe for concurrent use; the application is single-threaded.
type MemoryStore struct {
	blobs map[string][]byte

	// PutCount counts successful writes, letting tests assert batch
	// operations persist exactly once.
	PutCount int
	// FailPuts makes every Put return an error, for exercising the
	// best-effort persistence policy.
	FailPuts bool
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{blobs: make(map[string][]byte)}
}

// Get returns the blob stored under key.
func (m *MemoryStore) Get(_ context.Context, key string) ([]byte, error) {
	value, ok := m.blobs[key]
	if !ok {
		return nil, fmt.Errorf("blob %q: %w", key, common.ErrNotFound)
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

// Put stores value under key, replacing any previous value.
func (m *MemoryStore) Put(_ context.Context, key string, value []byte) error {
	if m.FailPuts {
		return fmt.Errorf("failed to write blob %q: store unavailable", key)
	}
	stored := make([]byte, len(value))
	copy(stored, value)
	m.blobs[key] = stored
	m.PutCount++
	return nil
}

// Exists reports whether a blob is stored under key.
func (m *MemoryStore) Exists(_ context.Context, key string) (bool, error) {
	_, ok := m.blobs[key]
	return ok, nil
}

// Close is a no-op for the in-memory store.
func (m *MemoryStore) Close() error {
	return nil
}
