package render

import (
	"strings"

	"github.com/bnema/vpnadm/internal/application"
	"github.com/bnema/vpnadm/internal/domain"
)

// StatusText is the primary status followed by any tags.
func StatusText(view application.ClientView, labels Labels) string {
	parts := []string{labels.StatusLabel(view.Resolution.Primary)}
	for _, tag := range view.Resolution.Tags {
		parts = append(parts, labels.TagLabel(tag))
	}
	return strings.Join(parts, " · ")
}

// UsageText is "used / limit", with an infinity sign for unlimited quotas.
func UsageText(view application.ClientView, labels Labels) string {
	used := labels.Bytes(view.Client.DataUsed)
	limit, ok := view.Client.DataLimit.Get()
	if !ok {
		return used + " / ∞"
	}
	return used + " / " + labels.Bytes(limit)
}

// DaysText localizes a day count.
func DaysText(days int, labels Labels) string {
	return labels.T("sub.days", "Days=="+labels.Number(int64(days)))
}

// ExpiryText summarizes exactly one of the three expiry states.
func ExpiryText(view application.ClientView, labels Labels) string {
	switch view.Expiry.Kind {
	case domain.ExpiryPending:
		text := labels.TagLabel(domain.TagWaitingForConnect)
		if days, ok := view.Expiry.PendingDays.Get(); ok {
			text += " (" + DaysText(days, labels) + ")"
		}
		return text
	case domain.ExpiryFixed:
		days, _ := view.RemainingDays.Get()
		at, _ := view.Expiry.At.Get()
		if days <= 0 {
			return labels.T("sub.expired") + " (" + labels.Date(at) + ")"
		}
		return DaysText(days, labels) + " (" + labels.Date(at) + ")"
	default:
		return labels.T("sub.no_time_limit")
	}
}
