package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupRepo(t *testing.T) *SQLiteRepository {
	t.Helper()
	db, err := Open(context.Background(), "file:sessiontest?mode=memory&cache=shared")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	t.Cleanup(func() { _ = db.Close() })
	return NewSQLiteRepository(db)
}

func TestGet_MissingKeyIsEmpty(t *testing.T) {
	r := setupRepo(t)

	v, err := r.Get(context.Background(), KeyToken)
	require.NoError(t, err)
	assert.Empty(t, v)
}

func TestSetGet(t *testing.T) {
	r := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, KeyUsername, "alice"))
	require.NoError(t, r.Set(ctx, KeyToken, "tok1"))

	v, err := r.Get(ctx, KeyUsername)
	require.NoError(t, err)
	assert.Equal(t, "alice", v)

	v, err = r.Get(ctx, KeyToken)
	require.NoError(t, err)
	assert.Equal(t, "tok1", v)
}

func TestSet_Overwrites(t *testing.T) {
	r := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, KeyToken, "tok1"))
	require.NoError(t, r.Set(ctx, KeyToken, "tok2"))

	v, err := r.Get(ctx, KeyToken)
	require.NoError(t, err)
	assert.Equal(t, "tok2", v)
}

func TestDelete(t *testing.T) {
	r := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, KeyToken, "tok1"))
	require.NoError(t, r.Delete(ctx, KeyToken))

	v, err := r.Get(ctx, KeyToken)
	require.NoError(t, err)
	assert.Empty(t, v)
}

func TestClear(t *testing.T) {
	r := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, KeyUsername, "alice"))
	require.NoError(t, r.Set(ctx, KeyToken, "tok1"))
	require.NoError(t, r.Clear(ctx))

	for _, key := range []string{KeyUsername, KeyToken} {
		v, err := r.Get(ctx, key)
		require.NoError(t, err)
		assert.Empty(t, v)
	}
}
