package chain

import (
	"context"
	"errors"
	"fmt"

	filestore "github.com/bnema/vpnadm/internal/adapters/secrets/file"
	passstore "github.com/bnema/vpnadm/internal/adapters/secrets/pass"
	"github.com/bnema/vpnadm/internal/domain"
	"github.com/bnema/vpnadm/internal/ports"
	"github.com/sirupsen/logrus"
)

// Store writes to the primary backend and falls back to the secondary one when
// the primary cannot be used. Reads consult both, deletes clear both.
type Store struct {
	primary  ports.SecretStore
	fallback ports.SecretStore
	log      logrus.FieldLogger
}

var _ ports.SecretStore = (*Store)(nil)

var (
	errNilPrimaryStore  = errors.New("primary secret store is nil")
	errNilFallbackStore = errors.New("fallback secret store is nil")
)

func NewStore(primary ports.SecretStore, fallback ports.SecretStore, log logrus.FieldLogger) (*Store, error) {
	if primary == nil {
		return nil, errNilPrimaryStore
	}
	if fallback == nil {
		return nil, errNilFallbackStore
	}
	if log == nil {
		log = logrus.StandardLogger()
	}

	return &Store{primary: primary, fallback: fallback, log: log}, nil
}

func NewPassFirstWithFileFallback(fileRoot string, log logrus.FieldLogger) (*Store, error) {
	return NewStore(passstore.NewStore(log), filestore.NewStore(fileRoot), log)
}

func (s *Store) Put(ctx context.Context, key string, value string) error {
	err := s.primary.Put(ctx, key, value)
	if err == nil {
		return nil
	}
	if isContextErr(err) {
		return err
	}

	s.log.WithError(err).WithField("key", key).Debug("primary secret store failed, using fallback")

	if fallbackErr := s.fallback.Put(ctx, key, value); fallbackErr != nil {
		return fmt.Errorf("store token %q: %w", key, errors.Join(err, fallbackErr))
	}
	return nil
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	value, err := s.primary.Get(ctx, key)
	if err == nil {
		return value, nil
	}
	if isContextErr(err) {
		return "", err
	}

	fallbackValue, fallbackErr := s.fallback.Get(ctx, key)
	if fallbackErr == nil {
		return fallbackValue, nil
	}
	if errors.Is(err, domain.ErrSecretNotFound) && errors.Is(fallbackErr, domain.ErrSecretNotFound) {
		return "", fmt.Errorf("token %q: %w", key, domain.ErrSecretNotFound)
	}

	return "", fmt.Errorf("load token %q: %w", key, errors.Join(err, fallbackErr))
}

// Delete clears the key from both backends since a token may live in either.
func (s *Store) Delete(ctx context.Context, key string) error {
	primaryErr := s.primary.Delete(ctx, key)
	if isContextErr(primaryErr) {
		return primaryErr
	}
	fallbackErr := s.fallback.Delete(ctx, key)

	if primaryErr != nil && fallbackErr != nil {
		return fmt.Errorf("delete token %q: %w", key, errors.Join(primaryErr, fallbackErr))
	}
	if primaryErr != nil && !errors.Is(primaryErr, passstore.ErrUnavailable) {
		s.log.WithError(primaryErr).WithField("key", key).Warn("primary secret store delete failed")
	}
	return nil
}

func isContextErr(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
