package kvstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_AbsentKeyIsNilNil(t *testing.T) {
	s := NewMemoryStore()

	v, err := s.Get(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestMemoryStore_SetGetDelete(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	require.NoError(t, s.Set(ctx, "users", []byte(`{}`)))

	v, err := s.Get(ctx, "users")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{}`), v)

	require.NoError(t, s.Delete(ctx, "users"))

	v, err = s.Get(ctx, "users")
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestMemoryStore_GetReturnsCopy(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	require.NoError(t, s.Set(ctx, "k", []byte("abc")))

	v, err := s.Get(ctx, "k")
	require.NoError(t, err)
	v[0] = 'x'

	v2, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), v2)
}

func TestMemoryStore_ListAndClear(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	require.NoError(t, s.Set(ctx, "a", []byte("1")))
	require.NoError(t, s.Set(ctx, "b", []byte("2")))

	all, err := s.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
	assert.Equal(t, []byte("1"), all["a"])

	require.NoError(t, s.Clear(ctx))

	all, err = s.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}
