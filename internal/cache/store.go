// internal/cache/store.go
// Pluggable key-value store with TTL semantics for ephemeral data such as
// OTP codes and resend counters. Two interchangeable implementations exist:
// a redis-backed store for deployments and an in-process store for
// development and tests. The implementation is chosen at construction time.

package cache

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a key does not exist or has expired
var ErrNotFound = errors.New("cache: key not found")

// Store is a TTL key-value capability
type Store interface {
	// Put stores value under key for at most ttl. A zero ttl means no expiry.
	Put(ctx context.Context, key string, value string, ttl time.Duration) error

	// Get returns the value for key, or ErrNotFound
	Get(ctx context.Context, key string) (string, error)

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Increment atomically increments the integer counter under key and
	// returns the new value. The ttl applies only when the key is created.
	Increment(ctx context.Context, key string, ttl time.Duration) (int64, error)
}
