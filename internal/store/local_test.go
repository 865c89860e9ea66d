package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLocalStateRoundTrip(t *testing.T) {
	ctx := context.Background()
	db, err := Open(filepath.Join(t.TempDir(), "state.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	s := NewLocalState(db)

	_, found, err := s.Get(ctx, "auth_token")
	require.NoError(t, err)
	require.False(t, found)

	require.NoError(t, s.Set(ctx, "auth_token", "abc"))
	require.NoError(t, s.Set(ctx, "auth_token", "def")) // upsert

	v, found, err := s.Get(ctx, "auth_token")
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, "def", v)

	require.NoError(t, s.Delete(ctx, "auth_token"))
	_, found, err = s.Get(ctx, "auth_token")
	require.NoError(t, err)
	require.False(t, found)

	// Deleting an absent key is not an error.
	require.NoError(t, s.Delete(ctx, "auth_token"))
}
