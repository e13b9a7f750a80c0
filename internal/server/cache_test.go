package server

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResultCache(t *testing.T) {
	c, err := NewResultCache(100, time.Minute)
	require.NoError(t, err)
	defer c.Close()

	_, ok := c.Get("missing")
	assert.False(t, ok)

	c.Set("k", "v")
	c.Wait()
	v, ok := c.Get("k")
	require.True(t, ok)
	assert.Equal(t, "v", v)
}

func TestResultCache_Expires(t *testing.T) {
	c, err := NewResultCache(100, 10*time.Millisecond)
	require.NoError(t, err)
	defer c.Close()

	c.Set("k", "v")
	c.Wait()
	time.Sleep(50 * time.Millisecond)
	_, ok := c.Get("k")
	assert.False(t, ok)
}
