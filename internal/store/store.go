package store

import "context"

// Store is a durable string key-value store. It is the local stand-in
// for browser storage: keys are opaque strings and values are stored
// verbatim.
type Store interface {
	// Get returns the value stored under key. The boolean is false when
	// no value exists; that is not an error.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error

	// Keys returns all keys starting with prefix, in ascending order.
	Keys(ctx context.Context, prefix string) ([]string, error)
}
