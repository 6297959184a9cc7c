package application

import (
	"context"
	"errors"
	"testing"

	"github.com/bnema/vpnadm/internal/domain"
	"github.com/bnema/vpnadm/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sessionFixture struct {
	profiles *mocks.MockProfileRepository
	store    *mocks.MockSecretStore
	dialer   *mocks.MockSessionDialer
	anon     *mocks.MockSessionAPI
	authed   *mocks.MockSessionAPI
	service  *SessionService
}

func newSessionFixture(t *testing.T) sessionFixture {
	t.Helper()

	f := sessionFixture{
		profiles: mocks.NewMockProfileRepository(t),
		store:    mocks.NewMockSecretStore(t),
		dialer:   mocks.NewMockSessionDialer(t),
		anon:     mocks.NewMockSessionAPI(t),
		authed:   mocks.NewMockSessionAPI(t),
	}
	f.service = NewSessionService(f.profiles, f.store, f.dialer, fixedClock(t))
	return f
}

func TestSessionServiceLoginStoresTokenAndProfile(t *testing.T) {
	f := newSessionFixture(t)

	f.dialer.EXPECT().DialSession("https://panel.example/api", "").Return(f.anon)
	f.anon.EXPECT().Login(mockAnyContext(), "root", "hunter2").Return("tok-1", nil)
	f.dialer.EXPECT().DialSession("https://panel.example/api", "tok-1").Return(f.authed)
	f.authed.EXPECT().Me(mockAnyContext()).Return(domain.Operator{ID: "u-1", Username: "root", Role: domain.RoleSuperAdmin, Active: true}, nil)
	f.profiles.EXPECT().Get(mockAnyContext(), domain.ProfileName("work")).Return(domain.Profile{}, domain.ErrProfileNotFound)
	f.store.EXPECT().Put(mockAnyContext(), "vpnadm/work/token", "tok-1").Return(nil)

	want := domain.Profile{
		Name:       "work",
		BaseURL:    "https://panel.example/api",
		Username:   "root",
		UserID:     "u-1",
		Role:       domain.RoleSuperAdmin,
		TokenRef:   "vpnadm/work/token",
		Locale:     "fa",
		LoggedInAt: fixedNow,
	}
	f.profiles.EXPECT().Save(mockAnyContext(), want).Return(nil)
	f.profiles.EXPECT().SetActive(mockAnyContext(), domain.ProfileName("work")).Return(nil)

	profile, err := f.service.Login(context.Background(), LoginCommand{
		Profile:  "work",
		BaseURL:  " https://panel.example/api/ ",
		Username: "root",
		Password: "hunter2",
		Locale:   "fa",
	})
	require.NoError(t, err)
	assert.Equal(t, want, profile)
}

func TestSessionServiceLoginRejectsBadCredentials(t *testing.T) {
	f := newSessionFixture(t)
	apiErr := errors.New("Invalid credentials")

	f.dialer.EXPECT().DialSession("http://127.0.0.1:8001/api", "").Return(f.anon)
	f.anon.EXPECT().Login(mockAnyContext(), "root", "nope").Return("", apiErr)

	_, err := f.service.Login(context.Background(), LoginCommand{BaseURL: "http://127.0.0.1:8001/api", Username: "root", Password: "nope"})
	require.Error(t, err)
	assert.ErrorIs(t, err, apiErr)
	assert.Contains(t, err.Error(), "Invalid credentials")
}

func TestSessionServiceLoginRejectsInactiveOperator(t *testing.T) {
	f := newSessionFixture(t)

	f.dialer.EXPECT().DialSession("http://panel/api", "").Return(f.anon)
	f.anon.EXPECT().Login(mockAnyContext(), "old", "pw").Return("tok", nil)
	f.dialer.EXPECT().DialSession("http://panel/api", "tok").Return(f.authed)
	f.authed.EXPECT().Me(mockAnyContext()).Return(domain.Operator{Username: "old", Role: domain.RoleAdmin}, nil)

	_, err := f.service.Login(context.Background(), LoginCommand{BaseURL: "http://panel/api", Username: "old", Password: "pw"})
	assert.ErrorIs(t, err, ErrInactiveOperator)
}

func TestSessionServiceLoginRollsBackTokenWhenSaveFails(t *testing.T) {
	f := newSessionFixture(t)
	saveErr := errors.New("disk full")

	f.dialer.EXPECT().DialSession("http://panel/api", "").Return(f.anon)
	f.anon.EXPECT().Login(mockAnyContext(), "root", "pw").Return("tok", nil)
	f.dialer.EXPECT().DialSession("http://panel/api", "tok").Return(f.authed)
	f.authed.EXPECT().Me(mockAnyContext()).Return(domain.Operator{Username: "root", Role: domain.RoleAdmin, Active: true}, nil)
	f.profiles.EXPECT().Get(mockAnyContext(), domain.DefaultProfileName).Return(domain.Profile{Name: domain.DefaultProfileName}, nil)
	f.store.EXPECT().Put(mockAnyContext(), "vpnadm/default/token", "tok").Return(nil)
	f.profiles.EXPECT().Save(mockAnyContext(), mockAnyContext()).Return(saveErr)
	f.store.EXPECT().Delete(mockAnyContext(), "vpnadm/default/token").Return(nil)

	_, err := f.service.Login(context.Background(), LoginCommand{BaseURL: "http://panel/api", Username: "root", Password: "pw"})
	assert.ErrorIs(t, err, saveErr)
}

func TestSessionServiceReloginRestoresPreviousTokenWhenSaveFails(t *testing.T) {
	f := newSessionFixture(t)
	saveErr := errors.New("disk full")
	existing := domain.Profile{Name: domain.DefaultProfileName, BaseURL: "http://panel/api", TokenRef: "vpnadm/default/token"}

	f.dialer.EXPECT().DialSession("http://panel/api", "").Return(f.anon)
	f.anon.EXPECT().Login(mockAnyContext(), "root", "pw").Return("tok-new", nil)
	f.dialer.EXPECT().DialSession("http://panel/api", "tok-new").Return(f.authed)
	f.authed.EXPECT().Me(mockAnyContext()).Return(domain.Operator{Username: "root", Role: domain.RoleAdmin, Active: true}, nil)
	f.profiles.EXPECT().Get(mockAnyContext(), domain.DefaultProfileName).Return(existing, nil)
	f.store.EXPECT().Get(mockAnyContext(), "vpnadm/default/token").Return("tok-old", nil)
	f.store.EXPECT().Put(mockAnyContext(), "vpnadm/default/token", "tok-new").Return(nil).Once()
	f.profiles.EXPECT().Save(mockAnyContext(), mockAnyContext()).Return(saveErr)
	f.store.EXPECT().Put(mockAnyContext(), "vpnadm/default/token", "tok-old").Return(nil).Once()

	_, err := f.service.Login(context.Background(), LoginCommand{BaseURL: "http://panel/api", Username: "root", Password: "pw"})
	assert.ErrorIs(t, err, saveErr)
}

func TestSessionServiceCurrentUsesActiveProfile(t *testing.T) {
	f := newSessionFixture(t)
	profile := domain.Profile{Name: "work", BaseURL: "http://panel/api", TokenRef: "vpnadm/work/token", Role: domain.RoleAdmin}

	f.profiles.EXPECT().Active(mockAnyContext()).Return(domain.ProfileName("work"), nil)
	f.profiles.EXPECT().Get(mockAnyContext(), domain.ProfileName("work")).Return(profile, nil)
	f.store.EXPECT().Get(mockAnyContext(), "vpnadm/work/token").Return("tok", nil)

	session, err := f.service.Current(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, Session{Profile: profile, Token: "tok"}, session)
}

func TestSessionServiceCurrentNotLoggedIn(t *testing.T) {
	t.Run("missing profile", func(t *testing.T) {
		f := newSessionFixture(t)
		f.profiles.EXPECT().Get(mockAnyContext(), domain.ProfileName("ghost")).Return(domain.Profile{}, domain.ErrProfileNotFound)

		_, err := f.service.Current(context.Background(), "ghost")
		assert.ErrorIs(t, err, domain.ErrNotLoggedIn)
	})

	t.Run("logged out profile", func(t *testing.T) {
		f := newSessionFixture(t)
		f.profiles.EXPECT().Get(mockAnyContext(), domain.ProfileName("work")).Return(domain.Profile{Name: "work"}, nil)

		_, err := f.service.Current(context.Background(), "work")
		assert.ErrorIs(t, err, domain.ErrNotLoggedIn)
	})

	t.Run("token vanished from store", func(t *testing.T) {
		f := newSessionFixture(t)
		f.profiles.EXPECT().Get(mockAnyContext(), domain.ProfileName("work")).Return(domain.Profile{Name: "work", TokenRef: "vpnadm/work/token"}, nil)
		f.store.EXPECT().Get(mockAnyContext(), "vpnadm/work/token").Return("", domain.ErrSecretNotFound)

		_, err := f.service.Current(context.Background(), "work")
		assert.ErrorIs(t, err, domain.ErrNotLoggedIn)
		assert.ErrorIs(t, err, domain.ErrSecretNotFound)
	})
}

func TestSessionServiceLogoutDropsToken(t *testing.T) {
	f := newSessionFixture(t)
	profile := domain.Profile{Name: "work", Username: "root", TokenRef: "vpnadm/work/token"}

	f.profiles.EXPECT().Get(mockAnyContext(), domain.ProfileName("work")).Return(profile, nil)
	f.store.EXPECT().Delete(mockAnyContext(), "vpnadm/work/token").Return(nil)
	f.profiles.EXPECT().Save(mockAnyContext(), domain.Profile{Name: "work", Username: "root"}).Return(nil)

	require.NoError(t, f.service.Logout(context.Background(), "work"))
}

func TestSessionServiceLogoutWhenAlreadyLoggedOut(t *testing.T) {
	f := newSessionFixture(t)
	f.profiles.EXPECT().Get(mockAnyContext(), domain.ProfileName("work")).Return(domain.Profile{Name: "work"}, nil)

	require.NoError(t, f.service.Logout(context.Background(), "work"))
}

func TestSessionServiceWhoami(t *testing.T) {
	f := newSessionFixture(t)
	profile := domain.Profile{Name: "work", BaseURL: "http://panel/api", TokenRef: "vpnadm/work/token"}
	operator := domain.Operator{ID: "u-1", Username: "root", Role: domain.RoleSupport, Active: true}

	f.profiles.EXPECT().Get(mockAnyContext(), domain.ProfileName("work")).Return(profile, nil)
	f.store.EXPECT().Get(mockAnyContext(), "vpnadm/work/token").Return("tok", nil)
	f.dialer.EXPECT().DialSession("http://panel/api", "tok").Return(f.authed)
	f.authed.EXPECT().Me(mockAnyContext()).Return(operator, nil)

	got, err := f.service.Whoami(context.Background(), "work")
	require.NoError(t, err)
	assert.Equal(t, operator, got)
}

func TestSessionServiceProfilesAndUse(t *testing.T) {
	f := newSessionFixture(t)
	profiles := []domain.Profile{{Name: "default"}, {Name: "work"}}

	f.profiles.EXPECT().List(mockAnyContext()).Return(profiles, nil)
	f.profiles.EXPECT().Active(mockAnyContext()).Return(domain.ProfileName("work"), nil)
	f.profiles.EXPECT().SetActive(mockAnyContext(), domain.ProfileName("ghost")).Return(domain.ErrProfileNotFound)

	got, active, err := f.service.Profiles(context.Background())
	require.NoError(t, err)
	assert.Equal(t, profiles, got)
	assert.Equal(t, domain.ProfileName("work"), active)

	assert.ErrorIs(t, f.service.Use(context.Background(), "ghost"), domain.ErrProfileNotFound)
}
