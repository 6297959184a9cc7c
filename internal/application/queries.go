package application

import (
	"strings"
	"time"

	"github.com/bnema/vpnadm/internal/domain"
)

// ClientView bundles a client record with everything derived from it at a
// single instant, so every screen renders the same numbers.
type ClientView struct {
	Client        domain.ClientSubscription `json:"client"`
	Resolution    domain.Resolution         `json:"resolution"`
	Remaining     domain.Optional[int64]    `json:"remaining"`
	RemainingDays domain.Optional[int]      `json:"remaining_days"`
	UsageFraction float64                   `json:"usage_fraction"`
	Tier          domain.UsageTier          `json:"tier"`
	Expiry        domain.Expiry             `json:"expiry"`
	ObservedAt    time.Time                 `json:"observed_at"`
}

func NewClientView(sub domain.ClientSubscription, now time.Time) ClientView {
	fraction := domain.UsageFraction(sub)

	return ClientView{
		Client:        sub,
		Resolution:    domain.Resolve(sub, now),
		Remaining:     domain.RemainingBytes(sub),
		RemainingDays: domain.RemainingDays(sub, now),
		UsageFraction: fraction,
		Tier:          domain.Tier(fraction),
		Expiry:        domain.EffectiveExpiry(sub),
		ObservedAt:    now,
	}
}

// ClientFilter narrows an already fetched client list. Zero values match all.
type ClientFilter struct {
	Search string
	Status domain.Status
	Tag    domain.Tag
}

func (f ClientFilter) Match(view ClientView) bool {
	if f.Status != "" && view.Resolution.Primary != f.Status {
		return false
	}
	if f.Tag != "" && !view.Resolution.Has(f.Tag) {
		return false
	}

	query := strings.ToLower(strings.TrimSpace(f.Search))
	if query == "" {
		return true
	}

	client := view.Client
	return strings.Contains(strings.ToLower(client.Name), query) ||
		strings.Contains(strings.ToLower(client.Email), query) ||
		strings.Contains(strings.ToLower(client.Address), query)
}

// ConfigFile is a downloadable WireGuard configuration.
type ConfigFile struct {
	Name    string
	Content []byte
}

// Session is a loaded profile with its access token.
type Session struct {
	Profile domain.Profile
	Token   string
}
