package clients

import (
	"testing"
	"time"

	"github.com/bnema/vpnadm/internal/adapters/locale"
	"github.com/bnema/vpnadm/internal/application"
	"github.com/bnema/vpnadm/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func englishOptions(t *testing.T) Options {
	t.Helper()

	tr, err := locale.New("en", nil)
	require.NoError(t, err)
	return Options{Labels: tr, BarWidth: 10}
}

func TestRenderListShowsStatusUsageAndExpiry(t *testing.T) {
	views := []application.ClientView{
		application.NewClientView(domain.ClientSubscription{
			ID:         "c-1",
			Name:       "Alice Phone",
			Address:    "10.8.0.2",
			Enabled:    true,
			Online:     true,
			DataUsed:   9 * domain.GiB,
			DataLimit:  domain.Some(10 * domain.GiB),
			ExpiryDate: domain.Some(now.Add(36 * time.Hour)),
		}, now),
		application.NewClientView(domain.ClientSubscription{
			ID:                  "c-2",
			Name:                "Bob Laptop",
			Enabled:             true,
			StartOnFirstConnect: true,
			ExpiryDays:          domain.Some(30),
		}, now),
		application.NewClientView(domain.ClientSubscription{
			ID:      "c-3",
			Name:    "Carol",
			Enabled: false,
		}, now),
	}

	output, err := RenderList(views, englishOptions(t))
	require.NoError(t, err)

	assert.Contains(t, output, "clients: 3")
	assert.Contains(t, output, "Alice Phone")
	assert.Contains(t, output, "Active · Online")
	assert.Contains(t, output, "90%")
	assert.Contains(t, output, "9 GB / 10 GB")
	assert.Contains(t, output, "2 days")
	assert.Contains(t, output, "Waiting for first connection (30 days)")
	assert.Contains(t, output, "0 Bytes / ∞")
	assert.Contains(t, output, "No time limit")
	assert.Contains(t, output, "Disabled")
}

func TestRenderListEmpty(t *testing.T) {
	output, err := RenderList(nil, englishOptions(t))
	require.NoError(t, err)

	assert.Contains(t, output, "clients: 0")
	assert.Contains(t, output, "No clients match.")
}

func TestRenderDetail(t *testing.T) {
	view := application.NewClientView(domain.ClientSubscription{
		ID:                 "c-1",
		Name:               "Alice Phone",
		Email:              "alice@example.com",
		Enabled:            true,
		DataUsed:           11 * domain.GiB,
		DataLimit:          domain.Some(10 * domain.GiB),
		Download:           8 * domain.GiB,
		Upload:             3 * domain.GiB,
		ExpiryDate:         domain.Some(now.Add(-time.Hour)),
		AutoRenew:          true,
		AutoRenewDays:      domain.Some(30),
		AutoRenewDataLimit: domain.Some(50 * domain.GiB),
		RenewCount:         2,
	}, now)

	output, err := RenderDetail(view, englishOptions(t))
	require.NoError(t, err)

	assert.Contains(t, output, "Alice Phone")
	assert.Contains(t, output, "Data exhausted")
	assert.Contains(t, output, "alice@example.com")
	assert.Contains(t, output, "Exhausted")
	assert.Contains(t, output, "Expired")
	assert.Contains(t, output, "Yes, every 30 days, 50 GB")
	assert.Contains(t, output, "Renewals")
	assert.Contains(t, output, "CRITICAL 100%")
}
