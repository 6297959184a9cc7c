package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/bnema/vpnadm/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreRejectsInvalidKeys(t *testing.T) {
	t.Parallel()

	store := NewStore(t.TempDir())
	testCases := []struct {
		name    string
		key     string
		wantErr string
	}{
		{name: "empty", key: "", wantErr: "secret key is empty"},
		{name: "whitespace", key: "  \t", wantErr: "secret key is empty"},
		{name: "absolute", key: "/etc/passwd", wantErr: "invalid secret key"},
		{name: "parent", key: "..", wantErr: "invalid secret key"},
		{name: "traversal", key: "../vpnadm/default/token", wantErr: "invalid secret key"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := store.Put(context.Background(), tc.key, "token")
			require.Error(t, err)
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}
}

func TestStorePutGetRoundTripAndPermissions(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	store := NewStore(root)
	key := domain.TokenKey("default")

	require.NoError(t, store.Put(context.Background(), key, "eyJhbGciOi.first"))
	require.NoError(t, store.Put(context.Background(), key, "eyJhbGciOi.second"))

	got, err := store.Get(context.Background(), key)
	require.NoError(t, err)
	assert.Equal(t, "eyJhbGciOi.second", got)

	info, err := os.Stat(filepath.Join(root, "vpnadm", "default", "token.secret"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(tokenFileMode), info.Mode().Perm())

	entries, err := os.ReadDir(filepath.Join(root, "vpnadm", "default"))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestStoreGetMissingTokenIsSecretNotFound(t *testing.T) {
	t.Parallel()

	store := NewStore(t.TempDir())

	_, err := store.Get(context.Background(), domain.TokenKey("staging"))
	require.ErrorIs(t, err, domain.ErrSecretNotFound)
}

func TestStoreDeleteIsIdempotent(t *testing.T) {
	t.Parallel()

	store := NewStore(t.TempDir())
	key := domain.TokenKey("default")

	require.NoError(t, store.Put(context.Background(), key, "token"))
	require.NoError(t, store.Delete(context.Background(), key))
	require.NoError(t, store.Delete(context.Background(), key))

	_, err := store.Get(context.Background(), key)
	require.ErrorIs(t, err, domain.ErrSecretNotFound)
}

func TestStoreHonorsCanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewStore(t.TempDir()).Put(ctx, domain.TokenKey("default"), "token")
	require.ErrorIs(t, err, context.Canceled)
}
