package pass

import (
	"context"
	"errors"
	"testing"

	"github.com/bnema/vpnadm/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorePutUsesPassInsert(t *testing.T) {
	t.Parallel()

	called := false
	store := &Store{
		run: func(ctx context.Context, input string, args ...string) (string, string, error) {
			called = true
			assert.Equal(t, []string{"insert", "--multiline", "--force", "vpnadm/default/token"}, args)
			assert.Equal(t, "jwt-token\n", input)
			return "", "", nil
		},
	}

	require.NoError(t, store.Put(context.Background(), "vpnadm/default/token", "jwt-token"))
	assert.True(t, called)
}

func TestStoreGetReturnsFirstLine(t *testing.T) {
	t.Parallel()

	store := &Store{
		run: func(ctx context.Context, input string, args ...string) (string, string, error) {
			assert.Equal(t, []string{"show", "vpnadm/default/token"}, args)
			assert.Empty(t, input)
			return "jwt-token\r\nissued-by: vpnadm\n", "", nil
		},
	}

	value, err := store.Get(context.Background(), "vpnadm/default/token")
	require.NoError(t, err)
	assert.Equal(t, "jwt-token", value)
}

func TestStoreGetMapsMissingEntry(t *testing.T) {
	t.Parallel()

	store := &Store{
		run: func(ctx context.Context, input string, args ...string) (string, string, error) {
			return "", "Error: vpnadm/staging/token is not in the password store.", errors.New("exit status 1")
		},
	}

	_, err := store.Get(context.Background(), "vpnadm/staging/token")
	require.ErrorIs(t, err, domain.ErrSecretNotFound)
}

func TestStoreDeleteIgnoresMissingEntry(t *testing.T) {
	t.Parallel()

	store := &Store{
		run: func(ctx context.Context, input string, args ...string) (string, string, error) {
			assert.Equal(t, []string{"rm", "--force", "vpnadm/default/token"}, args)
			return "", "Error: vpnadm/default/token is not in the password store.", errors.New("exit status 1")
		},
	}

	require.NoError(t, store.Delete(context.Background(), "vpnadm/default/token"))
}

func TestStoreSurfacesUnavailableBinary(t *testing.T) {
	t.Parallel()

	store := &Store{
		run: func(ctx context.Context, input string, args ...string) (string, string, error) {
			return "", "", ErrUnavailable
		},
	}

	err := store.Put(context.Background(), "vpnadm/default/token", "jwt-token")
	require.ErrorIs(t, err, ErrUnavailable)
}
