package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/bnema/vpnadm/internal/domain"
	"github.com/bnema/vpnadm/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	ConfigDir  = ".vpnadm"
	configName = "config"
	configType = "toml"

	ProfilesPathKey  = "profiles.path"
	profilesFile     = "profiles.toml"
	profilesFileMode = 0o600
	profilesDirMode  = 0o700
	tempFilePattern  = ".profiles-*.toml.tmp"
)

// Repository stores operator profiles in a single TOML file.
type Repository struct {
	path string
	mu   *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.ProfileRepository = (*Repository)(nil)

func NewRepository(cfg *viper.Viper) (*Repository, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(filepath.Join(homeDir, ConfigDir))
	cfg.SetDefault(ProfilesPathKey, filepath.Join(homeDir, ConfigDir, profilesFile))

	if err := cfg.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	path := cfg.GetString(ProfilesPathKey)
	if path == "" {
		return nil, errors.New("profiles path is empty")
	}
	path, err = filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve profiles path: %w", err)
	}
	path = filepath.Clean(path)

	return &Repository{path: path, mu: lockForPath(path)}, nil
}

func (r *Repository) Path() string {
	return r.path
}

func (r *Repository) Get(ctx context.Context, name domain.ProfileName) (domain.Profile, error) {
	if err := ctx.Err(); err != nil {
		return domain.Profile{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return domain.Profile{}, err
	}

	i := file.indexOf(string(name))
	if i < 0 {
		return domain.Profile{}, fmt.Errorf("profile %q: %w", name, domain.ErrProfileNotFound)
	}
	return fromSchema(file.Profiles[i]), nil
}

func (r *Repository) List(ctx context.Context) ([]domain.Profile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return nil, err
	}

	profiles := make([]domain.Profile, 0, len(file.Profiles))
	for _, entry := range file.Profiles {
		profiles = append(profiles, fromSchema(entry))
	}
	return profiles, nil
}

func (r *Repository) Save(ctx context.Context, profile domain.Profile) error {
	if profile.Name == "" {
		return errors.New("profile name is empty")
	}

	return r.update(ctx, func(file *fileSchema) error {
		encoded := toSchema(profile)
		if i := file.indexOf(encoded.Name); i >= 0 {
			file.Profiles[i] = encoded
		} else {
			file.Profiles = append(file.Profiles, encoded)
		}
		if file.Active == "" {
			file.Active = encoded.Name
		}
		return nil
	})
}

func (r *Repository) Delete(ctx context.Context, name domain.ProfileName) error {
	return r.update(ctx, func(file *fileSchema) error {
		i := file.indexOf(string(name))
		if i < 0 {
			return fmt.Errorf("profile %q: %w", name, domain.ErrProfileNotFound)
		}
		file.Profiles = append(file.Profiles[:i], file.Profiles[i+1:]...)
		if file.Active == string(name) {
			file.Active = ""
		}
		return nil
	})
}

// Active returns the selected profile, or the default name when none was chosen.
func (r *Repository) Active(ctx context.Context) (domain.ProfileName, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return "", err
	}
	if file.Active == "" {
		return domain.DefaultProfileName, nil
	}
	return domain.ProfileName(file.Active), nil
}

func (r *Repository) SetActive(ctx context.Context, name domain.ProfileName) error {
	return r.update(ctx, func(file *fileSchema) error {
		if file.indexOf(string(name)) < 0 {
			return fmt.Errorf("profile %q: %w", name, domain.ErrProfileNotFound)
		}
		file.Active = string(name)
		return nil
	})
}

func (r *Repository) update(ctx context.Context, mutate func(file *fileSchema) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.readSchema()
	if err != nil {
		return err
	}
	if err := mutate(&file); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	return r.writeSchema(file)
}

func (r *Repository) readSchema() (fileSchema, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fileSchema{Version: currentSchemaVersion}, nil
		}
		return fileSchema{}, fmt.Errorf("read profiles file: %w", err)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return fileSchema{}, fmt.Errorf("decode profiles file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return fileSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}

func (r *Repository) writeSchema(file fileSchema) error {
	file.applyDefaults()

	if err := os.MkdirAll(filepath.Dir(r.path), profilesDirMode); err != nil {
		return fmt.Errorf("create profiles directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode profiles file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(r.path), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp profiles file: %w", err)
	}

	tempName := tempFile.Name()
	committed := false
	defer func() {
		if !committed {
			_ = os.Remove(tempName)
		}
	}()

	if err := tempFile.Chmod(profilesFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp profiles file: %w", err)
	}
	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp profiles file: %w", err)
	}
	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp profiles file: %w", err)
	}
	if err := os.Rename(tempName, r.path); err != nil {
		return fmt.Errorf("replace profiles file: %w", err)
	}
	committed = true

	return nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}

func toSchema(profile domain.Profile) profileSchema {
	encoded := profileSchema{
		Name:     string(profile.Name),
		BaseURL:  profile.BaseURL,
		Username: profile.Username,
		UserID:   profile.UserID,
		Role:     string(profile.Role),
		TokenRef: profile.TokenRef,
		Locale:   profile.Locale,
	}
	if !profile.LoggedInAt.IsZero() {
		encoded.LoggedInAt = profile.LoggedInAt.UTC().Format(time.RFC3339)
	}
	return encoded
}

func fromSchema(entry profileSchema) domain.Profile {
	profile := domain.Profile{
		Name:     domain.ProfileName(entry.Name),
		BaseURL:  entry.BaseURL,
		Username: entry.Username,
		UserID:   entry.UserID,
		Role:     domain.Role(entry.Role),
		TokenRef: entry.TokenRef,
		Locale:   entry.Locale,
	}
	if entry.LoggedInAt != "" {
		if parsed, err := time.Parse(time.RFC3339, entry.LoggedInAt); err == nil {
			profile.LoggedInAt = parsed
		}
	}
	return profile
}
