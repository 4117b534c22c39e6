package regexcache

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOrCompile_Memoizes(t *testing.T) {
	c := New(Options{MaxSize: 10})

	first, err := c.GetOrCompile(`\bhello\b`)
	require.NoError(t, err)
	second, err := c.GetOrCompile(`\bhello\b`)
	require.NoError(t, err)

	assert.Same(t, first, second, "repeated compilation should return the cached regex")
	assert.Equal(t, 1, c.Len())
}

func TestGetOrCompile_ErrorNotCached(t *testing.T) {
	c := New(Options{MaxSize: 10})

	_, err := c.GetOrCompile("(unclosed")
	require.Error(t, err)
	assert.Equal(t, 0, c.Len())

	_, found := c.Get("(unclosed")
	assert.False(t, found)
}

func TestGet_Miss(t *testing.T) {
	c := New(Options{MaxSize: 10})

	_, found := c.Get("never compiled")
	assert.False(t, found)
}

func TestEviction(t *testing.T) {
	c := New(Options{MaxSize: 3})

	for i := 0; i < 3; i++ {
		_, err := c.GetOrCompile(fmt.Sprintf("pattern%d", i))
		require.NoError(t, err)
	}

	// Touch pattern0 so pattern1 becomes least recently used.
	_, found := c.Get("pattern0")
	require.True(t, found)

	_, err := c.GetOrCompile("pattern3")
	require.NoError(t, err)

	assert.Equal(t, 3, c.Len())
	_, found = c.Get("pattern1")
	assert.False(t, found, "pattern1 should have been evicted")
	_, found = c.Get("pattern0")
	assert.True(t, found)
}

func TestUnlimited(t *testing.T) {
	c := New(Options{})

	for i := 0; i < 100; i++ {
		_, err := c.GetOrCompile(fmt.Sprintf("p%d", i))
		require.NoError(t, err)
	}
	assert.Equal(t, 100, c.Len())
}

func TestClear(t *testing.T) {
	c := New(Options{MaxSize: 10})

	_, err := c.GetOrCompile("abc")
	require.NoError(t, err)
	c.Clear()

	assert.Equal(t, 0, c.Len())
	_, found := c.Get("abc")
	assert.False(t, found)
}

func TestConcurrentAccess(t *testing.T) {
	c := New(Options{MaxSize: 50})

	done := make(chan struct{})
	for g := 0; g < 8; g++ {
		go func() {
			defer func() { done <- struct{}{} }()
			for i := 0; i < 100; i++ {
				if _, err := c.GetOrCompile(fmt.Sprintf("p%d", i%20)); err != nil {
					t.Error(err)
					return
				}
			}
		}()
	}
	for g := 0; g < 8; g++ {
		<-done
	}
}
