package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newClockedStore returns a memory store whose clock the test controls
func newClockedStore() (*memoryStore, *time.Time) {
	now := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)
	store := &memoryStore{
		entries: make(map[string]memoryEntry),
		now:     func() time.Time { return now },
	}
	return store, &now
}

func TestMemoryStorePutGet(t *testing.T) {
	store, _ := newClockedStore()
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "k", "v", time.Minute))

	value, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", value)

	_, err = store.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreExpiry(t *testing.T) {
	store, now := newClockedStore()
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "k", "v", time.Minute))

	*now = now.Add(61 * time.Second)

	_, err := store.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreZeroTTLNeverExpires(t *testing.T) {
	store, now := newClockedStore()
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "k", "v", 0))

	*now = now.Add(1000 * time.Hour)

	value, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", value)
}

func TestMemoryStoreDelete(t *testing.T) {
	store, _ := newClockedStore()
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "k", "v", time.Minute))
	require.NoError(t, store.Delete(ctx, "k"))

	_, err := store.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrNotFound)

	// Deleting a missing key is not an error
	assert.NoError(t, store.Delete(ctx, "k"))
}

func TestMemoryStoreIncrement(t *testing.T) {
	store, now := newClockedStore()
	ctx := context.Background()

	for want := int64(1); want <= 3; want++ {
		got, err := store.Increment(ctx, "counter", time.Hour)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	// The window resets once the first increment's ttl passes
	*now = now.Add(2 * time.Hour)

	got, err := store.Increment(ctx, "counter", time.Hour)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got)
}

func TestMemoryStoreIncrementTTLOnlyOnCreate(t *testing.T) {
	store, now := newClockedStore()
	ctx := context.Background()

	_, err := store.Increment(ctx, "counter", time.Hour)
	require.NoError(t, err)

	// Later increments must not push the expiry out
	*now = now.Add(59 * time.Minute)
	_, err = store.Increment(ctx, "counter", time.Hour)
	require.NoError(t, err)

	*now = now.Add(2 * time.Minute)
	_, err = store.Get(ctx, "counter")
	assert.ErrorIs(t, err, ErrNotFound)
}
