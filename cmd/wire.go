package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bnema/vpnadm/internal/adapters/locale"
	"github.com/bnema/vpnadm/internal/adapters/logging"
	"github.com/bnema/vpnadm/internal/adapters/panel"
	tomlrepo "github.com/bnema/vpnadm/internal/adapters/repo/toml"
	chainstore "github.com/bnema/vpnadm/internal/adapters/secrets/chain"
	filestore "github.com/bnema/vpnadm/internal/adapters/secrets/file"
	passstore "github.com/bnema/vpnadm/internal/adapters/secrets/pass"
	"github.com/bnema/vpnadm/internal/application"
	"github.com/bnema/vpnadm/internal/domain"
	"github.com/bnema/vpnadm/internal/ports"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	envPrefix = "VPNADM"

	keyAPIURL        = "api.url"
	keyAPITimeout    = "api.timeout"
	keyPublicURL     = "api.public_url"
	keyLocale        = "locale"
	keyWatchInterval = "watch.interval"
	keyLogLevel      = "log.level"
	keySecrets       = "secrets.backend"
	keySecretsDir    = "secrets.path"
)

type config struct {
	APIURL         string
	PublicURL      string
	Timeout        time.Duration
	Locale         string
	WatchInterval  time.Duration
	SecretsBackend string
}

type panelDialer interface {
	ports.PanelDialer
	ports.SessionDialer
}

type app struct {
	config   config
	log      *logrus.Logger
	profiles *tomlrepo.Repository
	secrets  ports.SecretStore
	dialer   panelDialer
	sessions *application.SessionService
	clock    ports.Clock
	now      func() time.Time

	// set from persistent flags before each command runs
	profile domain.ProfileName
	lang    string
}

func wireApp() (*app, error) {
	// a missing .env is the normal case
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.SetDefault(keyAPIURL, panel.DefaultBaseURL)
	v.SetDefault(keyAPITimeout, panel.DefaultTimeout)
	v.SetDefault(keyLocale, "en")
	v.SetDefault(keyWatchInterval, application.DefaultWatchInterval)
	v.SetDefault(keyLogLevel, logging.DefaultLevel.String())
	v.SetDefault(keySecrets, "chain")

	repo, err := tomlrepo.NewRepository(v)
	if err != nil {
		return nil, fmt.Errorf("wire profile repository: %w", err)
	}

	log, err := logging.New(logging.Options{Level: v.GetString(keyLogLevel), Output: os.Stderr})
	if err != nil {
		return nil, err
	}

	cfg := config{
		APIURL:         v.GetString(keyAPIURL),
		PublicURL:      v.GetString(keyPublicURL),
		Timeout:        v.GetDuration(keyAPITimeout),
		Locale:         v.GetString(keyLocale),
		WatchInterval:  v.GetDuration(keyWatchInterval),
		SecretsBackend: v.GetString(keySecrets),
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}
	secretsDir := v.GetString(keySecretsDir)
	if secretsDir == "" {
		secretsDir = filepath.Join(homeDir, tomlrepo.ConfigDir, "secrets")
	}

	secrets, err := newSecretStore(cfg.SecretsBackend, secretsDir, log)
	if err != nil {
		return nil, err
	}

	dialer := panel.NewDialer(
		panel.WithHTTPClient(&http.Client{Timeout: cfg.Timeout}),
		panel.WithLogger(log),
		panel.WithPublicURL(cfg.PublicURL),
	)

	return &app{
		config:   cfg,
		log:      log,
		profiles: repo,
		secrets:  secrets,
		dialer:   dialer,
		sessions: application.NewSessionService(repo, secrets, dialer, ports.SystemClock{}),
		clock:    ports.SystemClock{},
		now:      time.Now,
	}, nil
}

func newSecretStore(backend, dir string, log logrus.FieldLogger) (ports.SecretStore, error) {
	switch strings.ToLower(strings.TrimSpace(backend)) {
	case "", "chain":
		store, err := chainstore.NewPassFirstWithFileFallback(dir, log)
		if err != nil {
			return nil, fmt.Errorf("wire secret store chain: %w", err)
		}
		return store, nil
	case "file":
		return filestore.NewStore(dir), nil
	case "pass":
		return passstore.NewStore(log), nil
	default:
		return nil, fmt.Errorf("unknown secrets backend %q", backend)
	}
}

// session loads the selected profile and a panel client bound to its token.
func (a *app) session(ctx context.Context) (application.Session, ports.PanelAPI, error) {
	session, err := a.sessions.Current(ctx, a.profile)
	if err != nil {
		if errors.Is(err, domain.ErrNotLoggedIn) {
			return application.Session{}, nil, fmt.Errorf("%w (run `vpnadm login`)", err)
		}
		return application.Session{}, nil, err
	}

	return session, a.dialer.Dial(session.Profile.BaseURL, session.Token), nil
}

func (a *app) clientService(ctx context.Context) (*application.ClientService, application.Session, error) {
	session, api, err := a.session(ctx)
	if err != nil {
		return nil, application.Session{}, err
	}
	return application.NewClientService(api, session.Profile.Role, a.clock), session, nil
}

func (a *app) catalogService(ctx context.Context) (*application.CatalogService, error) {
	session, api, err := a.session(ctx)
	if err != nil {
		return nil, err
	}
	return application.NewCatalogService(api, session.Profile.Role, a.clock), nil
}

// translator picks the --locale flag, then the profile's locale, then config.
func (a *app) translator(ctx context.Context) *locale.Translator {
	lang := a.lang
	if lang == "" {
		if profile, err := a.currentProfile(ctx); err == nil {
			lang = profile.Locale
		}
	}
	if lang == "" {
		lang = a.config.Locale
	}

	tr, err := locale.New(lang, a.log)
	if err != nil {
		a.log.WithError(err).Warn("load translations")
		tr, _ = locale.New("en", a.log)
	}
	return tr
}

func (a *app) currentProfile(ctx context.Context) (domain.Profile, error) {
	name := a.profile
	if name == "" {
		active, err := a.profiles.Active(ctx)
		if err != nil {
			return domain.Profile{}, err
		}
		name = active
	}
	return a.profiles.Get(ctx, name)
}

// publicBaseURL is the API URL used for unauthenticated calls.
func (a *app) publicBaseURL(ctx context.Context) string {
	if profile, err := a.currentProfile(ctx); err == nil && profile.BaseURL != "" {
		return profile.BaseURL
	}
	return a.config.APIURL
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
