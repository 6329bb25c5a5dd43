package testutil

import (
	"context"
	"errors"
	"testing"

	"github.com/nhle/routine-tracker/internal/store"
)

// NewTestStore creates an in-memory SQLiteStore with all migrations applied.
// It automatically closes the store when the test completes.
func NewTestStore(t *testing.T) *store.SQLiteStore {
	t.Helper()

	s, err := store.NewSQLiteStore(":memory:")
	if err != nil {
		t.Fatalf("creating test store: %v", err)
	}

	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Errorf("closing test store: %v", err)
		}
	})

	return s
}

// ErrWriteFailed is returned by FailingStore writes.
var ErrWriteFailed = errors.New("storage quota exceeded")

// FailingStore wraps a Store and fails every Set while FailWrites is true.
type FailingStore struct {
	store.Store
	FailWrites bool
}

// Set fails with ErrWriteFailed when FailWrites is set.
func (f *FailingStore) Set(ctx context.Context, key, value string) error {
	if f.FailWrites {
		return ErrWriteFailed
	}
	return f.Store.Set(ctx, key, value)
}
