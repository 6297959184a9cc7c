package toml

import "fmt"

const currentSchemaVersion = 1

type fileSchema struct {
	Version  int             `toml:"version"`
	Active   string          `toml:"active,omitempty"`
	Profiles []profileSchema `toml:"profiles"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported profiles schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

func (s fileSchema) indexOf(name string) int {
	for i := range s.Profiles {
		if s.Profiles[i].Name == name {
			return i
		}
	}
	return -1
}

type profileSchema struct {
	Name       string `toml:"name"`
	BaseURL    string `toml:"base_url"`
	Username   string `toml:"username,omitempty"`
	UserID     string `toml:"user_id,omitempty"`
	Role       string `toml:"role,omitempty"`
	TokenRef   string `toml:"token_ref,omitempty"`
	Locale     string `toml:"locale,omitempty"`
	LoggedInAt string `toml:"logged_in_at,omitempty"`
}
