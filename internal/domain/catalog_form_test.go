package domain

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanFormDefaultsNeedNameAndDuration(t *testing.T) {
	ctx := context.Background()

	form := NewPlanForm()
	err := form.ValidateWithContext(ctx)
	require.ErrorIs(t, err, ErrInvalidForm)
	assert.ErrorContains(t, err, "Name")
	assert.ErrorContains(t, err, "DurationDays")

	form.Name = "Monthly 50"
	form.DurationDays = 30
	form.Price = 150000
	require.NoError(t, form.ValidateWithContext(ctx))

	form.TrafficGB = Some(0.0)
	assert.ErrorContains(t, form.ValidateWithContext(ctx), "TrafficGB")

	form.TrafficGB = None[float64]()
	form.UserLimit = 0
	assert.ErrorContains(t, form.ValidateWithContext(ctx), "UserLimit")

	form.UserLimit = 1
	form.Price = math.Inf(1)
	assert.ErrorContains(t, form.ValidateWithContext(ctx), "Price")
}

func TestEditPlanFormCopiesServerIDs(t *testing.T) {
	plan := Plan{ID: "p-1", Name: "Monthly", DurationDays: 30, UserLimit: 2, ServerIDs: []string{"s-1"}, Active: true}

	form := EditPlanForm(plan)
	form.ServerIDs[0] = "s-2"

	assert.Equal(t, "s-1", plan.ServerIDs[0])
	assert.Equal(t, 2, form.UserLimit)
	assert.True(t, form.Active)
}

func TestServerFormCredentialsRequiredOnlyOnCreate(t *testing.T) {
	ctx := context.Background()

	form := NewServerForm()
	form.Name = "fra-1"
	form.PanelURL = "https://fra-1.example.com:2053"
	err := form.ValidateWithContext(ctx)
	assert.ErrorContains(t, err, "PanelUsername")
	assert.ErrorContains(t, err, "PanelPassword")

	edit := EditServerForm(Server{ID: "s-1", Name: "fra-1", PanelURL: "https://fra-1.example.com:2053"})
	require.NoError(t, edit.ValidateWithContext(ctx))

	edit.PanelURL = "not a url"
	assert.ErrorContains(t, edit.ValidateWithContext(ctx), "PanelURL")

	edit.PanelURL = "https://fra-1.example.com"
	edit.MaxUsers = Some(0)
	assert.ErrorContains(t, edit.ValidateWithContext(ctx), "MaxUsers")
}

func TestDiscountCodeFormNeedsPercentOrAmount(t *testing.T) {
	ctx := context.Background()

	form := NewDiscountCodeForm()
	form.Code = " spring-26 "
	err := form.ValidateWithContext(ctx)
	require.ErrorIs(t, err, ErrInvalidForm)
	assert.ErrorContains(t, err, "set a percent or an amount")

	form.DiscountPercent = Some(20.0)
	require.NoError(t, form.ValidateWithContext(ctx))
	assert.Equal(t, "SPRING-26", form.Normalized().Code)

	form.DiscountPercent = Some(120.0)
	assert.ErrorContains(t, form.ValidateWithContext(ctx), "at most 100")

	form.DiscountPercent = None[float64]()
	form.DiscountAmount = Some(10000.0)
	require.NoError(t, form.ValidateWithContext(ctx))

	form.Code = "bad code!"
	assert.ErrorContains(t, form.ValidateWithContext(ctx), "Code")
}

func TestResellerFormBounds(t *testing.T) {
	ctx := context.Background()

	form := NewResellerForm()
	assert.ErrorContains(t, form.ValidateWithContext(ctx), "TelegramUserID")

	form.TelegramUserID = 42
	require.NoError(t, form.ValidateWithContext(ctx))
	assert.Equal(t, 10.0, form.DiscountPercent)

	form.DiscountPercent = 101
	assert.ErrorContains(t, form.ValidateWithContext(ctx), "DiscountPercent")

	form.DiscountPercent = 15
	form.CreditLimit = -1
	assert.ErrorContains(t, form.ValidateWithContext(ctx), "CreditLimit")
}

func TestDepartmentFormNeedsName(t *testing.T) {
	form := NewDepartmentForm()
	require.ErrorIs(t, form.ValidateWithContext(context.Background()), ErrInvalidForm)

	form.Name = "Billing"
	require.NoError(t, form.ValidateWithContext(context.Background()))
}

func TestParseSettingsTypesValuesByKey(t *testing.T) {
	patch, err := ParseSettings([]string{
		"support_username=@help",
		"payment_timeout_minutes=45",
		"test_account_enabled=true",
		"referral_percent=12.5",
		"welcome_message=Hi = hello",
	})
	require.NoError(t, err)

	assert.Equal(t, Settings{
		"support_username":        "@help",
		"payment_timeout_minutes": 45,
		"test_account_enabled":    true,
		"referral_percent":        12.5,
		"welcome_message":         "Hi = hello",
	}, patch)
	assert.Equal(t, []string{
		"payment_timeout_minutes",
		"referral_percent",
		"support_username",
		"test_account_enabled",
		"welcome_message",
	}, patch.Keys())
}

func TestParseSettingsRejectsBadInput(t *testing.T) {
	for _, args := range [][]string{
		nil,
		{"support_username"},
		{"server_private_key=abc"},
		{"referral_enabled=maybe"},
		{"payment_timeout_minutes=0"},
		{"min_withdrawal=-5"},
	} {
		_, err := ParseSettings(args)
		assert.ErrorIs(t, err, ErrInvalidForm, "args %v", args)
	}
}
