package repository

import "context"

// PreferenceRepository is a small integer key/value store for persisted
// client state such as the suggestion backoff counters.
type PreferenceRepository interface {
	// GetInt returns the value stored under key. ok is false when the key
	// has never been written.
	GetInt(ctx context.Context, key string) (value int64, ok bool, err error)

	// SetInts writes all values in a single transaction.
	SetInts(ctx context.Context, values map[string]int64) error

	// DeletePrefix removes every key starting with prefix.
	DeletePrefix(ctx context.Context, prefix string) error
}
