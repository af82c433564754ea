package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTTL_GetSetInvalidate(t *testing.T) {
	t.Parallel()
	c := NewTTL[int](time.Minute)

	_, ok := c.Get("a")
	assert.False(t, ok)

	c.Set("a", 42)
	v, ok := c.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 42, v)

	c.Invalidate("a")
	_, ok = c.Get("a")
	assert.False(t, ok)
}

func TestTTL_Expiry(t *testing.T) {
	t.Parallel()
	c := NewTTL[string](time.Minute)
	current := time.Now()
	c.now = func() time.Time { return current }

	c.Set("k", "v")
	_, ok := c.Get("k")
	assert.True(t, ok)

	current = current.Add(time.Minute + time.Second)
	_, ok = c.Get("k")
	assert.False(t, ok, "expired entry must miss")
}
