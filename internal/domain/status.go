package domain

import (
	"fmt"
	"strings"
	"time"
)

type Status string

const (
	StatusActive           Status = "active"
	StatusDisabled         Status = "disabled"
	StatusExpired          Status = "expired"
	StatusDataLimitReached Status = "data_limit_reached"
)

func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusDisabled, StatusExpired, StatusDataLimitReached:
		return true
	default:
		return false
	}
}

func ParseStatus(raw string) (Status, error) {
	status := Status(strings.ToLower(strings.TrimSpace(raw)))
	if !status.Valid() {
		return "", fmt.Errorf("unknown client status %q", raw)
	}
	return status, nil
}

// Tag is an informational overlay shown next to the primary status. Tags are
// never persisted by the backend.
type Tag string

const (
	TagOnline            Tag = "online"
	TagWaitingForConnect Tag = "waiting_for_connect"
)

func ParseTag(raw string) (Tag, error) {
	tag := Tag(strings.ToLower(strings.TrimSpace(raw)))
	switch tag {
	case TagOnline, TagWaitingForConnect:
		return tag, nil
	default:
		return "", fmt.Errorf("unknown client tag %q", raw)
	}
}

type Resolution struct {
	Primary Status `json:"primary"`
	Tags    []Tag  `json:"tags"`
}

func (r Resolution) Has(tag Tag) bool {
	for _, t := range r.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Resolve derives the presentation status of sub at now. Disabled wins over
// quota exhaustion, which wins over expiry.
func Resolve(sub ClientSubscription, now time.Time) Resolution {
	resolution := Resolution{Primary: primaryStatus(sub, now)}

	if sub.Online {
		resolution.Tags = append(resolution.Tags, TagOnline)
	}
	if sub.WaitingForFirstConnect() {
		resolution.Tags = append(resolution.Tags, TagWaitingForConnect)
	}

	return resolution
}

func primaryStatus(sub ClientSubscription, now time.Time) Status {
	if !sub.Enabled {
		return StatusDisabled
	}
	if limit, ok := sub.DataLimit.Get(); ok && sub.DataUsed >= limit {
		return StatusDataLimitReached
	}
	if expiry, ok := sub.ExpiryDate.Get(); ok && now.After(expiry) {
		return StatusExpired
	}
	return StatusActive
}
