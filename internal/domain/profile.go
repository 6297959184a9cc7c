package domain

import (
	"fmt"
	"strings"
	"time"
)

type Role string

const (
	RoleSuperAdmin Role = "super_admin"
	RoleAdmin      Role = "admin"
	RoleSupport    Role = "support"
	RoleViewer     Role = "viewer"
)

func ParseRole(raw string) (Role, error) {
	role := Role(strings.ToLower(strings.TrimSpace(raw)))
	switch role {
	case RoleSuperAdmin, RoleAdmin, RoleSupport, RoleViewer:
		return role, nil
	default:
		return "", fmt.Errorf("unknown role %q", raw)
	}
}

// CanMutate gates client, plan and payment changes.
func (r Role) CanMutate() bool {
	return r == RoleSuperAdmin || r == RoleAdmin
}

func (r Role) CanAnswerTickets() bool {
	return r.CanMutate() || r == RoleSupport
}

// CanManageUsers gates bans and wallet changes.
func (r Role) CanManageUsers() bool {
	return r == RoleSuperAdmin
}

// CanChangeSettings gates the bot settings object.
func (r Role) CanChangeSettings() bool {
	return r == RoleSuperAdmin
}

func (r Role) Label() string {
	return strings.ReplaceAll(string(r), "_", " ")
}

type ProfileName string

const DefaultProfileName ProfileName = "default"

// Profile is a saved operator login against one panel.
type Profile struct {
	Name       ProfileName
	BaseURL    string
	Username   string
	UserID     string
	Role       Role
	TokenRef   string
	Locale     string
	LoggedInAt time.Time
}

func (p Profile) LoggedIn() bool {
	return p.TokenRef != ""
}

// TokenKey is the secret-store key holding the profile's access token.
func TokenKey(name ProfileName) string {
	return fmt.Sprintf("vpnadm/%s/token", name)
}

// Operator is the identity returned by the panel for a token.
type Operator struct {
	ID       string
	Username string
	Role     Role
	Active   bool
}
