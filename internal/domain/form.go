package domain

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

const limitFormDecimals = 2

// LimitFormValue renders a stored byte limit as the GB figure an edit form starts
// from. Unlimited renders as an empty field.
func LimitFormValue(limit Optional[int64]) string {
	bytes, ok := limit.Get()
	if !ok {
		return ""
	}
	return strconv.FormatFloat(float64(bytes)/float64(GiB), 'f', limitFormDecimals, 64)
}

// DataLimitField is the (value, unit) pair entered for a data limit. Original is
// the stored limit the form was prefilled from, if any.
type DataLimitField struct {
	Value    string
	Unit     Unit
	Original Optional[int64]
}

// NewDataLimitField prefills a field from a stored limit, the way an edit form does.
func NewDataLimitField(original Optional[int64]) DataLimitField {
	return DataLimitField{
		Value:    LimitFormValue(original),
		Unit:     UnitGB,
		Original: original,
	}
}

// Unchanged reports whether the field still holds the value it was prefilled with.
func (f DataLimitField) Unchanged() bool {
	if f.Original.IsNone() {
		return false
	}
	unit := f.Unit
	if unit == "" {
		unit = UnitGB
	}
	return unit == UnitGB && strings.TrimSpace(f.Value) == LimitFormValue(f.Original)
}

// Bytes converts the field to the byte count submitted to the API. An empty value
// means unlimited. An untouched prefilled value keeps the stored bytes so that
// the 2-decimal GB rounding never drifts the quota.
func (f DataLimitField) Bytes() (Optional[int64], error) {
	raw := strings.TrimSpace(f.Value)
	if raw == "" {
		return None[int64](), nil
	}
	if f.Unchanged() {
		return f.Original, nil
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return None[int64](), fmt.Errorf("parse data limit %q: %w", raw, err)
	}

	unit := f.Unit
	if unit == "" {
		unit = UnitGB
	}
	return Some(ToBytes(value, unit)), nil
}

func (f DataLimitField) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Value, is.Float, validation.By(nonNegative)),
		validation.Field(&f.Unit, validation.In(UnitBytes, UnitKB, UnitMB, UnitGB, UnitTB)),
	)
}

// ClientForm is the operator's input for creating or editing a client.
type ClientForm struct {
	Name       string
	Email      string
	Note       string
	DataLimit  DataLimitField
	ExpiryDate Optional[time.Time]

	StartOnFirstConnect bool
	ExpiryDays          Optional[int]

	AutoRenew          bool
	AutoRenewDays      Optional[int]
	AutoRenewDataLimit DataLimitField
}

// NewClientForm prefills a form from an existing subscription.
func NewClientForm(sub ClientSubscription) ClientForm {
	return ClientForm{
		Name:                sub.Name,
		Email:               sub.Email,
		Note:                sub.Note,
		DataLimit:           NewDataLimitField(sub.DataLimit),
		ExpiryDate:          sub.ExpiryDate,
		StartOnFirstConnect: sub.StartOnFirstConnect,
		ExpiryDays:          sub.ExpiryDays,
		AutoRenew:           sub.AutoRenew,
		AutoRenewDays:       sub.AutoRenewDays,
		AutoRenewDataLimit:  NewDataLimitField(sub.AutoRenewDataLimit),
	}
}

func (f ClientForm) Validate() error {
	return f.ValidateWithContext(context.Background())
}

func (f ClientForm) ValidateWithContext(ctx context.Context) error {
	err := validation.ValidateStructWithContext(ctx, &f,
		validation.Field(&f.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&f.Email, is.EmailFormat),
		validation.Field(&f.Note, validation.Length(0, 500)),
		validation.Field(&f.DataLimit),
		validation.Field(&f.ExpiryDays, validation.When(f.StartOnFirstConnect, validation.By(requiredDays))),
		validation.Field(&f.AutoRenewDays, validation.When(f.AutoRenew, validation.By(optionalDays))),
		validation.Field(&f.AutoRenewDataLimit),
	)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidForm, err)
	}
	return nil
}

func nonNegative(value interface{}) error {
	raw, _ := value.(string)
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parsed, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return nil
	}
	if parsed < 0 {
		return validation.NewError("validation_non_negative", "must not be negative")
	}
	return nil
}

func requiredDays(value interface{}) error {
	if days, ok := value.(Optional[int]); ok && days.IsNone() {
		return validation.NewError("validation_required", "cannot be blank")
	}
	return optionalDays(value)
}

// optionalDays accepts None, which leaves the plan's value in place.
func optionalDays(value interface{}) error {
	days, ok := value.(Optional[int])
	if !ok {
		return nil
	}
	if n, set := days.Get(); set && n < 1 {
		return validation.NewError("validation_min_days", "must be at least 1 day")
	}
	return nil
}

// ClientDraft is a validated form resolved to the values sent to the panel.
type ClientDraft struct {
	Name                string
	Email               string
	Note                string
	DataLimit           Optional[int64]
	ExpiryDate          Optional[time.Time]
	StartOnFirstConnect bool
	ExpiryDays          Optional[int]
	AutoRenew           bool
	AutoRenewDays       Optional[int]
	AutoRenewDataLimit  Optional[int64]
}

// Draft validates the form and converts its limit fields to bytes.
func (f ClientForm) Draft(ctx context.Context) (ClientDraft, error) {
	if err := f.ValidateWithContext(ctx); err != nil {
		return ClientDraft{}, err
	}

	dataLimit, err := f.DataLimit.Bytes()
	if err != nil {
		return ClientDraft{}, fmt.Errorf("%w: %w", ErrInvalidForm, err)
	}

	draft := ClientDraft{
		Name:                strings.TrimSpace(f.Name),
		Email:               strings.TrimSpace(f.Email),
		Note:                f.Note,
		DataLimit:           dataLimit,
		ExpiryDate:          f.ExpiryDate,
		StartOnFirstConnect: f.StartOnFirstConnect,
	}
	if f.StartOnFirstConnect {
		draft.ExpiryDays = f.ExpiryDays
	}
	if f.AutoRenew {
		draft.AutoRenew = true
		draft.AutoRenewDays = f.AutoRenewDays
		renewLimit, err := f.AutoRenewDataLimit.Bytes()
		if err != nil {
			return ClientDraft{}, fmt.Errorf("%w: %w", ErrInvalidForm, err)
		}
		draft.AutoRenewDataLimit = renewLimit
	}

	return draft, nil
}
