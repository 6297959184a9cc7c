package chain

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/bnema/vpnadm/internal/domain"
	portmocks "github.com/bnema/vpnadm/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const tokenKey = "vpnadm/default/token"

func newChain(t *testing.T) (*Store, *portmocks.MockSecretStore, *portmocks.MockSecretStore) {
	t.Helper()

	primary := portmocks.NewMockSecretStore(t)
	fallback := portmocks.NewMockSecretStore(t)
	store, err := NewStore(primary, fallback, nil)
	require.NoError(t, err)

	return store, primary, fallback
}

func TestNewStoreRejectsNilBackends(t *testing.T) {
	t.Parallel()

	_, err := NewStore(nil, portmocks.NewMockSecretStore(t), nil)
	require.ErrorIs(t, err, errNilPrimaryStore)

	_, err = NewStore(portmocks.NewMockSecretStore(t), nil, nil)
	require.ErrorIs(t, err, errNilFallbackStore)
}

func TestStoreGetUsesPrimaryWhenItSucceeds(t *testing.T) {
	t.Parallel()

	store, primary, _ := newChain(t)
	primary.EXPECT().Get(mock.Anything, tokenKey).Return("from-pass", nil).Once()

	value, err := store.Get(context.Background(), tokenKey)
	require.NoError(t, err)
	assert.Equal(t, "from-pass", value)
}

func TestStoreGetFallsBackWhenPrimaryMisses(t *testing.T) {
	t.Parallel()

	store, primary, fallback := newChain(t)
	primary.EXPECT().Get(mock.Anything, tokenKey).Return("", fmt.Errorf("pass show: %w", domain.ErrSecretNotFound)).Once()
	fallback.EXPECT().Get(mock.Anything, tokenKey).Return("from-file", nil).Once()

	value, err := store.Get(context.Background(), tokenKey)
	require.NoError(t, err)
	assert.Equal(t, "from-file", value)
}

func TestStoreGetReportsNotFoundWhenBothMiss(t *testing.T) {
	t.Parallel()

	store, primary, fallback := newChain(t)
	primary.EXPECT().Get(mock.Anything, tokenKey).Return("", domain.ErrSecretNotFound).Once()
	fallback.EXPECT().Get(mock.Anything, tokenKey).Return("", domain.ErrSecretNotFound).Once()

	_, err := store.Get(context.Background(), tokenKey)
	require.ErrorIs(t, err, domain.ErrSecretNotFound)
}

func TestStoreGetJoinsBackendFailures(t *testing.T) {
	t.Parallel()

	passErr := errors.New("gpg agent unavailable")
	fileErr := errors.New("permission denied")
	store, primary, fallback := newChain(t)
	primary.EXPECT().Get(mock.Anything, tokenKey).Return("", passErr).Once()
	fallback.EXPECT().Get(mock.Anything, tokenKey).Return("", fileErr).Once()

	_, err := store.Get(context.Background(), tokenKey)
	require.ErrorIs(t, err, passErr)
	require.ErrorIs(t, err, fileErr)
	assert.NotErrorIs(t, err, domain.ErrSecretNotFound)
}

func TestStorePutSkipsFallbackOnCanceledContext(t *testing.T) {
	t.Parallel()

	store, primary, _ := newChain(t)
	primary.EXPECT().Put(mock.Anything, tokenKey, "jwt").Return(context.Canceled).Once()

	err := store.Put(context.Background(), tokenKey, "jwt")
	require.ErrorIs(t, err, context.Canceled)
}

func TestStorePutFallsBack(t *testing.T) {
	t.Parallel()

	store, primary, fallback := newChain(t)
	primary.EXPECT().Put(mock.Anything, tokenKey, "jwt").Return(errors.New("pass command unavailable")).Once()
	fallback.EXPECT().Put(mock.Anything, tokenKey, "jwt").Return(nil).Once()

	require.NoError(t, store.Put(context.Background(), tokenKey, "jwt"))
}

func TestStoreDeleteClearsBothBackends(t *testing.T) {
	t.Parallel()

	store, primary, fallback := newChain(t)
	primary.EXPECT().Delete(mock.Anything, tokenKey).Return(nil).Once()
	fallback.EXPECT().Delete(mock.Anything, tokenKey).Return(nil).Once()

	require.NoError(t, store.Delete(context.Background(), tokenKey))
}

func TestStoreDeleteFailsOnlyWhenBothFail(t *testing.T) {
	t.Parallel()

	store, primary, fallback := newChain(t)
	primary.EXPECT().Delete(mock.Anything, tokenKey).Return(errors.New("pass failed")).Once()
	fallback.EXPECT().Delete(mock.Anything, tokenKey).Return(nil).Once()
	require.NoError(t, store.Delete(context.Background(), tokenKey))

	store, primary, fallback = newChain(t)
	primary.EXPECT().Delete(mock.Anything, tokenKey).Return(errors.New("pass failed")).Once()
	fallback.EXPECT().Delete(mock.Anything, tokenKey).Return(errors.New("disk failed")).Once()
	require.Error(t, store.Delete(context.Background(), tokenKey))
}
