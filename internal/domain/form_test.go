package domain

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLimitRoundTripOnHundredthsOfGigabyte(t *testing.T) {
	// Multiples of 0.25 GB are exact in both binary and two-decimal form.
	for quarters := int64(0); quarters <= 400; quarters++ {
		original := quarters * (GiB / 4)

		value := LimitFormValue(Some(original))
		field := DataLimitField{Value: value, Unit: UnitGB}

		got, err := field.Bytes()
		require.NoError(t, err)
		assert.Equal(t, Some(original), got, "value %s", value)
	}
}

func TestLimitRoundTripLosesSubHundredthPrecision(t *testing.T) {
	original := GiB + 5*MiB

	value := LimitFormValue(Some(original))
	assert.Equal(t, "1.00", value)

	got, err := DataLimitField{Value: value, Unit: UnitGB}.Bytes()
	require.NoError(t, err)
	assert.Equal(t, Some(GiB), got)
}

func TestUnchangedLimitFieldKeepsOriginalBytes(t *testing.T) {
	original := GiB + 5*MiB + 1

	field := NewDataLimitField(Some(original))
	assert.True(t, field.Unchanged())

	got, err := field.Bytes()
	require.NoError(t, err)
	assert.Equal(t, Some(original), got)

	field.Value = "2"
	got, err = field.Bytes()
	require.NoError(t, err)
	assert.Equal(t, Some(2*GiB), got)
}

func TestEmptyLimitFieldIsUnlimited(t *testing.T) {
	got, err := DataLimitField{Value: "  ", Unit: UnitGB}.Bytes()
	require.NoError(t, err)
	assert.True(t, got.IsNone())

	got, err = DataLimitField{Value: "0", Unit: UnitGB}.Bytes()
	require.NoError(t, err)
	assert.Equal(t, Some[int64](0), got)
}

func TestClientFormValidate(t *testing.T) {
	valid := ClientForm{
		Name:       "alice-phone",
		Email:      "alice@example.com",
		DataLimit:  DataLimitField{Value: "10", Unit: UnitGB},
		ExpiryDate: Some(time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)),
	}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(f *ClientForm)
	}{
		{name: "missing name", mutate: func(f *ClientForm) { f.Name = "" }},
		{name: "bad email", mutate: func(f *ClientForm) { f.Email = "not-an-email" }},
		{name: "non numeric limit", mutate: func(f *ClientForm) { f.DataLimit.Value = "ten" }},
		{name: "negative limit", mutate: func(f *ClientForm) { f.DataLimit.Value = "-1" }},
		{name: "unknown unit", mutate: func(f *ClientForm) { f.DataLimit.Unit = "PB" }},
		{name: "first connect without days", mutate: func(f *ClientForm) { f.StartOnFirstConnect = true }},
		{name: "auto renew with zero days", mutate: func(f *ClientForm) {
			f.AutoRenew = true
			f.AutoRenewDays = Some(0)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := valid
			tt.mutate(&form)
			err := form.Validate()
			require.ErrorIs(t, err, ErrInvalidForm)
		})
	}
}

func TestNewClientFormPrefillsFromSubscription(t *testing.T) {
	sub := ClientSubscription{
		Name:      "bob",
		Email:     "bob@example.com",
		DataLimit: Some(3 * GiB),
		AutoRenew: true,
	}

	form := NewClientForm(sub)
	assert.Equal(t, "bob", form.Name)
	assert.Equal(t, "3.00", form.DataLimit.Value)
	assert.Equal(t, UnitGB, form.DataLimit.Unit)
	assert.Equal(t, "", form.AutoRenewDataLimit.Value)
	assert.True(t, form.AutoRenew)
}

func TestClientFormDraftDropsInactiveOverrides(t *testing.T) {
	form := ClientForm{
		Name:               " carol ",
		DataLimit:          DataLimitField{Value: "512", Unit: UnitMB},
		ExpiryDays:         Some(30),
		AutoRenewDays:      Some(30),
		AutoRenewDataLimit: DataLimitField{Value: "5", Unit: UnitGB},
	}

	draft, err := form.Draft(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "carol", draft.Name)
	assert.Equal(t, Some(512*MiB), draft.DataLimit)
	assert.True(t, draft.ExpiryDays.IsNone())
	assert.False(t, draft.AutoRenew)
	assert.True(t, draft.AutoRenewDataLimit.IsNone())

	form.AutoRenew = true
	draft, err = form.Draft(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Some(30), draft.AutoRenewDays)
	assert.Equal(t, Some(5*GiB), draft.AutoRenewDataLimit)
}

func TestAutoRenewWithoutOverridesKeepsPlanValues(t *testing.T) {
	sub := ClientSubscription{Name: "alice", Enabled: true, AutoRenew: true}

	form := NewClientForm(sub)
	form.Note = "renewed by phone"

	draft, err := form.Draft(context.Background())
	require.NoError(t, err)
	assert.True(t, draft.AutoRenew)
	assert.True(t, draft.AutoRenewDays.IsNone())
	assert.True(t, draft.AutoRenewDataLimit.IsNone())
	assert.Equal(t, "renewed by phone", draft.Note)
}

func TestClientFormDraftRejectsInvalidForm(t *testing.T) {
	_, err := ClientForm{}.Draft(context.Background())
	require.ErrorIs(t, err, ErrInvalidForm)
}
