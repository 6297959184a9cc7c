package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/vpnadm/internal/domain"
	"github.com/bnema/vpnadm/internal/ports"
)

var ErrInactiveOperator = errors.New("operator account is disabled")

// SessionService owns operator logins: the token lives in the secret store and
// the profile only keeps a reference to it.
type SessionService struct {
	profiles ports.ProfileRepository
	store    ports.SecretStore
	dialer   ports.SessionDialer
	clock    ports.Clock
}

func NewSessionService(profiles ports.ProfileRepository, store ports.SecretStore, dialer ports.SessionDialer, clock ports.Clock) *SessionService {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &SessionService{
		profiles: profiles,
		store:    store,
		dialer:   dialer,
		clock:    clock,
	}
}

func (s *SessionService) Login(ctx context.Context, cmd LoginCommand) (domain.Profile, error) {
	name := cmd.Profile
	if name == "" {
		name = domain.DefaultProfileName
	}
	baseURL := strings.TrimRight(strings.TrimSpace(cmd.BaseURL), "/")
	if baseURL == "" {
		return domain.Profile{}, errors.New("panel url is empty")
	}

	token, err := s.dialer.DialSession(baseURL, "").Login(ctx, cmd.Username, cmd.Password)
	if err != nil {
		return domain.Profile{}, fmt.Errorf("login as %s: %w", cmd.Username, err)
	}

	operator, err := s.dialer.DialSession(baseURL, token).Me(ctx)
	if err != nil {
		return domain.Profile{}, fmt.Errorf("load operator: %w", err)
	}
	if !operator.Active {
		return domain.Profile{}, fmt.Errorf("%s: %w", operator.Username, ErrInactiveOperator)
	}

	profile, err := s.profiles.Get(ctx, name)
	if err != nil {
		if !errors.Is(err, domain.ErrProfileNotFound) {
			return domain.Profile{}, fmt.Errorf("get profile %s: %w", name, err)
		}
		profile = domain.Profile{Name: name}
	}

	key := domain.TokenKey(name)
	previous, hadPrevious := s.previousToken(ctx, profile, key)
	if err := s.store.Put(ctx, key, token); err != nil {
		return domain.Profile{}, fmt.Errorf("store token: %w", err)
	}

	profile.BaseURL = baseURL
	profile.Username = operator.Username
	profile.UserID = operator.ID
	profile.Role = operator.Role
	profile.TokenRef = key
	profile.LoggedInAt = s.clock.Now().UTC()
	if cmd.Locale != "" {
		profile.Locale = cmd.Locale
	}

	if err := s.profiles.Save(ctx, profile); err != nil {
		if rollbackErr := s.restoreToken(ctx, key, previous, hadPrevious); rollbackErr != nil {
			return domain.Profile{}, fmt.Errorf("save profile and rollback stored token: %w", errors.Join(err, rollbackErr))
		}
		return domain.Profile{}, fmt.Errorf("save profile: %w", err)
	}
	if err := s.profiles.SetActive(ctx, name); err != nil {
		return domain.Profile{}, fmt.Errorf("select profile %s: %w", name, err)
	}

	return profile, nil
}

// previousToken reads the token a logged-in profile already holds under key.
func (s *SessionService) previousToken(ctx context.Context, profile domain.Profile, key string) (string, bool) {
	if profile.TokenRef != key {
		return "", false
	}
	token, err := s.store.Get(ctx, key)
	if err != nil {
		return "", false
	}
	return token, true
}

func (s *SessionService) restoreToken(ctx context.Context, key, previous string, hadPrevious bool) error {
	if hadPrevious {
		return s.store.Put(ctx, key, previous)
	}
	return s.store.Delete(ctx, key)
}

func (s *SessionService) Logout(ctx context.Context, name domain.ProfileName) error {
	name, err := s.resolveName(ctx, name)
	if err != nil {
		return err
	}

	profile, err := s.profiles.Get(ctx, name)
	if err != nil {
		return fmt.Errorf("get profile %s: %w", name, err)
	}
	if profile.TokenRef == "" {
		return nil
	}

	if err := s.store.Delete(ctx, profile.TokenRef); err != nil {
		return fmt.Errorf("delete token: %w", err)
	}

	profile.TokenRef = ""
	if err := s.profiles.Save(ctx, profile); err != nil {
		return fmt.Errorf("save profile: %w", err)
	}

	return nil
}

// Current loads the named profile, or the active one, together with its token.
func (s *SessionService) Current(ctx context.Context, name domain.ProfileName) (Session, error) {
	name, err := s.resolveName(ctx, name)
	if err != nil {
		return Session{}, err
	}

	profile, err := s.profiles.Get(ctx, name)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			return Session{}, fmt.Errorf("profile %s: %w", name, domain.ErrNotLoggedIn)
		}
		return Session{}, fmt.Errorf("get profile %s: %w", name, err)
	}
	if !profile.LoggedIn() {
		return Session{Profile: profile}, fmt.Errorf("profile %s: %w", name, domain.ErrNotLoggedIn)
	}

	token, err := s.store.Get(ctx, profile.TokenRef)
	if err != nil {
		if errors.Is(err, domain.ErrSecretNotFound) {
			return Session{Profile: profile}, fmt.Errorf("profile %s: %w", name, errors.Join(domain.ErrNotLoggedIn, err))
		}
		return Session{}, fmt.Errorf("load token: %w", err)
	}

	return Session{Profile: profile, Token: token}, nil
}

// Whoami asks the panel who the stored token belongs to.
func (s *SessionService) Whoami(ctx context.Context, name domain.ProfileName) (domain.Operator, error) {
	session, err := s.Current(ctx, name)
	if err != nil {
		return domain.Operator{}, err
	}

	operator, err := s.dialer.DialSession(session.Profile.BaseURL, session.Token).Me(ctx)
	if err != nil {
		return domain.Operator{}, fmt.Errorf("load operator: %w", err)
	}
	return operator, nil
}

func (s *SessionService) Profiles(ctx context.Context) ([]domain.Profile, domain.ProfileName, error) {
	profiles, err := s.profiles.List(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("list profiles: %w", err)
	}

	active, err := s.profiles.Active(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("active profile: %w", err)
	}

	return profiles, active, nil
}

func (s *SessionService) Use(ctx context.Context, name domain.ProfileName) error {
	if err := s.profiles.SetActive(ctx, name); err != nil {
		return fmt.Errorf("select profile %s: %w", name, err)
	}
	return nil
}

func (s *SessionService) resolveName(ctx context.Context, name domain.ProfileName) (domain.ProfileName, error) {
	if name != "" {
		return name, nil
	}

	active, err := s.profiles.Active(ctx)
	if err != nil {
		return "", fmt.Errorf("active profile: %w", err)
	}
	return active, nil
}
