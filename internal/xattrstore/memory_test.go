package xattrstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_GetAbsent(t *testing.T) {
	store := NewMemory()

	value, ok, err := store.Get("/tmp/a", "user.key")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, value)
}

func TestMemory_SetGet(t *testing.T) {
	store := NewMemory()
	require.NoError(t, store.Set("/tmp/a", "user.key", []byte("hello")))

	value, ok, err := store.Get("/tmp/a", "user.key")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte("hello"), value)

	// Values are copied on the way in and out.
	value[0] = 'X'
	again, _, err := store.Get("/tmp/a", "user.key")
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), again)
}

func TestMemory_RemoveAbsentIsNoop(t *testing.T) {
	store := NewMemory()
	assert.NoError(t, store.Remove("/tmp/a", "user.key"))
}

func TestMemory_ListSorted(t *testing.T) {
	store := NewMemory()
	require.NoError(t, store.Set("/tmp/a", "b.key", nil))
	require.NoError(t, store.Set("/tmp/a", "a.key", nil))
	require.NoError(t, store.Set("/tmp/other", "c.key", nil))

	names, err := store.List("/tmp/a")
	require.NoError(t, err)
	assert.Equal(t, []string{"a.key", "b.key"}, names)
}

func TestMemory_PathsIsolated(t *testing.T) {
	store := NewMemory()
	require.NoError(t, store.Set("/tmp/a", "user.key", []byte("a")))

	_, ok, err := store.Get("/tmp/b", "user.key")
	require.NoError(t, err)
	assert.False(t, ok)
}
