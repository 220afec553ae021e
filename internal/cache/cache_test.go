package cache

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache_GetSet(t *testing.T) {
	t.Parallel()

	c := New[string](10, time.Minute)

	_, ok := c.Get("user:missing")
	assert.False(t, ok)

	c.Set("user:a", "alice")
	v, ok := c.Get("user:a")
	require.True(t, ok)
	assert.Equal(t, "alice", v)
}

func TestCache_SetReplaces(t *testing.T) {
	t.Parallel()

	c := New[string](10, time.Minute)
	c.Set("k", "one")
	c.Set("k", "two")

	v, ok := c.Get("k")
	require.True(t, ok)
	assert.Equal(t, "two", v)
}

func TestCache_Invalidate(t *testing.T) {
	t.Parallel()

	c := New[int](10, time.Minute)
	c.Set("k", 42)
	c.Invalidate("k")

	_, ok := c.Get("k")
	assert.False(t, ok)

	// Invalidating an absent key is a no-op.
	c.Invalidate("nope")
}

func TestCache_TTLExpiry(t *testing.T) {
	t.Parallel()

	c := New[string](10, 30*time.Millisecond)
	c.Set("k", "v")

	_, ok := c.Get("k")
	require.True(t, ok)

	time.Sleep(60 * time.Millisecond)

	_, ok = c.Get("k")
	assert.False(t, ok, "entry older than TTL must be treated as absent")
}

func TestUserKey(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	assert.Equal(t, "user:"+id.String(), UserKey(id))
}
