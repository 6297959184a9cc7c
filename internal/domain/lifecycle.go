package domain

import (
	"math"
	"time"
)

type UsageTier string

const (
	UsageTierNormal   UsageTier = "normal"
	UsageTierWarning  UsageTier = "warning"
	UsageTierCritical UsageTier = "critical"
)

const (
	warningFraction  = 0.7
	criticalFraction = 0.9
)

type ExpiryKind string

const (
	ExpiryNone    ExpiryKind = "none"
	ExpiryPending ExpiryKind = "pending"
	ExpiryFixed   ExpiryKind = "fixed"
)

// Expiry describes exactly one temporal state of a subscription.
type Expiry struct {
	Kind ExpiryKind `json:"kind"`
	// At is set for ExpiryFixed.
	At Optional[time.Time] `json:"at"`
	// PendingDays is the allowance that starts on first connection.
	PendingDays Optional[int] `json:"pending_days"`
}

// RemainingBytes is None for unlimited subscriptions. A negative value means the
// quota was overrun before the backend flagged it.
func RemainingBytes(sub ClientSubscription) Optional[int64] {
	limit, ok := sub.DataLimit.Get()
	if !ok {
		return None[int64]()
	}
	return Some(limit - sub.DataUsed)
}

// UsageFraction is dataUsed/dataLimit capped to [0,1]; 0 when unlimited.
func UsageFraction(sub ClientSubscription) float64 {
	limit, ok := sub.DataLimit.Get()
	if !ok {
		return 0
	}
	if limit <= 0 {
		return 1
	}

	fraction := float64(sub.DataUsed) / float64(limit)
	if fraction < 0 {
		return 0
	}
	return math.Min(fraction, 1)
}

func Tier(fraction float64) UsageTier {
	switch {
	case fraction >= criticalFraction:
		return UsageTierCritical
	case fraction >= warningFraction:
		return UsageTierWarning
	default:
		return UsageTierNormal
	}
}

// RemainingDays rounds up to whole days. It is None when there is no expiry or
// while the first-connect timer has not started. Values <= 0 mean expired.
func RemainingDays(sub ClientSubscription, now time.Time) Optional[int] {
	if sub.WaitingForFirstConnect() {
		return None[int]()
	}
	expiry, ok := sub.ExpiryDate.Get()
	if !ok {
		return None[int]()
	}

	days := math.Ceil(float64(expiry.Sub(now)) / float64(24*time.Hour))
	return Some(int(days))
}

// EffectiveExpiry never derives firstConnectionAt+expiryDays locally; the backend
// publishes the authoritative expiry once the timer starts.
func EffectiveExpiry(sub ClientSubscription) Expiry {
	if sub.WaitingForFirstConnect() {
		return Expiry{Kind: ExpiryPending, PendingDays: sub.ExpiryDays}
	}
	if at, ok := sub.ExpiryDate.Get(); ok {
		return Expiry{Kind: ExpiryFixed, At: Some(at)}
	}
	return Expiry{Kind: ExpiryNone}
}
