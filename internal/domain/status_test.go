package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePrecedence(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	past := Some(now.Add(-time.Hour))
	future := Some(now.Add(48 * time.Hour))

	tests := []struct {
		name string
		sub  ClientSubscription
		want Status
	}{
		{
			name: "disabled wins over everything",
			sub:  ClientSubscription{Enabled: false, DataLimit: Some[int64](1000), DataUsed: 5000, ExpiryDate: past},
			want: StatusDisabled,
		},
		{
			name: "quota reached at the limit",
			sub:  ClientSubscription{Enabled: true, DataLimit: Some[int64](1000), DataUsed: 1000},
			want: StatusDataLimitReached,
		},
		{
			name: "quota reached wins over expiry",
			sub:  ClientSubscription{Enabled: true, DataLimit: Some[int64](1000), DataUsed: 1200, ExpiryDate: past},
			want: StatusDataLimitReached,
		},
		{
			name: "zero quota is exhausted immediately",
			sub:  ClientSubscription{Enabled: true, DataLimit: Some[int64](0)},
			want: StatusDataLimitReached,
		},
		{
			name: "unlimited and past expiry",
			sub:  ClientSubscription{Enabled: true, ExpiryDate: past},
			want: StatusExpired,
		},
		{
			name: "unlimited and no expiry",
			sub:  ClientSubscription{Enabled: true},
			want: StatusActive,
		},
		{
			name: "under quota with future expiry",
			sub:  ClientSubscription{Enabled: true, DataLimit: Some[int64](1000), DataUsed: 999, ExpiryDate: future},
			want: StatusActive,
		},
		{
			name: "expiry equal to now is not yet expired",
			sub:  ClientSubscription{Enabled: true, ExpiryDate: Some(now)},
			want: StatusActive,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(tt.sub, now).Primary)
		})
	}
}

func TestResolveTags(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	resolution := Resolve(ClientSubscription{
		Enabled:             true,
		Online:              true,
		StartOnFirstConnect: true,
		ExpiryDays:          Some(30),
	}, now)

	assert.Equal(t, StatusActive, resolution.Primary)
	assert.True(t, resolution.Has(TagOnline))
	assert.True(t, resolution.Has(TagWaitingForConnect))

	resolution = Resolve(ClientSubscription{Enabled: false, StartOnFirstConnect: true, TimerStarted: true}, now)
	assert.Equal(t, StatusDisabled, resolution.Primary)
	assert.Empty(t, resolution.Tags)
}

func TestParseStatus(t *testing.T) {
	status, err := ParseStatus(" Data_Limit_Reached ")
	require.NoError(t, err)
	assert.Equal(t, StatusDataLimitReached, status)

	_, err = ParseStatus("suspended")
	require.Error(t, err)
}
