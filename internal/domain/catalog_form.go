package domain

import (
	"context"
	"fmt"
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

var discountCodePattern = regexp.MustCompile(`^[A-Z0-9_-]+$`)

// PlanForm is the operator's input for a subscription plan.
type PlanForm struct {
	Name         string
	Description  string
	Price        float64
	DurationDays int
	TrafficGB    Optional[float64]
	UserLimit    int
	ServerIDs    []string
	Active       bool
	Test         bool
	SortOrder    int
}

// NewPlanForm starts a create form with the panel's defaults.
func NewPlanForm() PlanForm {
	return PlanForm{UserLimit: 1, Active: true}
}

func EditPlanForm(plan Plan) PlanForm {
	return PlanForm{
		Name:         plan.Name,
		Description:  plan.Description,
		Price:        plan.Price,
		DurationDays: plan.DurationDays,
		TrafficGB:    plan.TrafficGB,
		UserLimit:    plan.UserLimit,
		ServerIDs:    append([]string(nil), plan.ServerIDs...),
		Active:       plan.Active,
		Test:         plan.Test,
		SortOrder:    plan.SortOrder,
	}
}

func (f PlanForm) ValidateWithContext(ctx context.Context) error {
	return invalidForm(validation.ValidateStructWithContext(ctx, &f,
		validation.Field(&f.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&f.Description, validation.Length(0, 500)),
		validation.Field(&f.Price, validation.By(finite), validation.Min(0.0)),
		validation.Field(&f.DurationDays, validation.Required, validation.Min(1)),
		validation.Field(&f.TrafficGB, validation.By(positiveOptionalFloat)),
		validation.Field(&f.UserLimit, validation.Required, validation.Min(1)),
		validation.Field(&f.ServerIDs, validation.Each(validation.Required)),
	))
}

// ServerForm is the operator's input for a WireGuard server. KeepCredentials is
// set on edit forms: blank panel credentials then leave the stored ones in place.
type ServerForm struct {
	Name            string
	Description     string
	PanelURL        string
	PanelUsername   string
	PanelPassword   string
	Active          bool
	MaxUsers        Optional[int]
	KeepCredentials bool
}

func NewServerForm() ServerForm {
	return ServerForm{Active: true}
}

func EditServerForm(server Server) ServerForm {
	return ServerForm{
		Name:            server.Name,
		Description:     server.Description,
		PanelURL:        server.PanelURL,
		Active:          server.Active,
		MaxUsers:        server.MaxUsers,
		KeepCredentials: true,
	}
}

func (f ServerForm) ValidateWithContext(ctx context.Context) error {
	return invalidForm(validation.ValidateStructWithContext(ctx, &f,
		validation.Field(&f.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&f.Description, validation.Length(0, 500)),
		validation.Field(&f.PanelURL, validation.Required, is.URL),
		validation.Field(&f.PanelUsername, validation.When(!f.KeepCredentials, validation.Required)),
		validation.Field(&f.PanelPassword, validation.When(!f.KeepCredentials, validation.Required)),
		validation.Field(&f.MaxUsers, validation.By(positiveOptionalInt)),
	))
}

// DiscountCodeForm is the operator's input for a discount code. Code is stored
// upper-cased.
type DiscountCodeForm struct {
	Code            string
	DiscountPercent Optional[float64]
	DiscountAmount  Optional[float64]
	MaxUses         Optional[int]
	ValidUntil      Optional[time.Time]
	MinOrderAmount  Optional[float64]
	PlanIDs         []string
	Active          bool
}

func NewDiscountCodeForm() DiscountCodeForm {
	return DiscountCodeForm{Active: true}
}

func EditDiscountCodeForm(code DiscountCode) DiscountCodeForm {
	return DiscountCodeForm{
		Code:            code.Code,
		DiscountPercent: code.DiscountPercent,
		DiscountAmount:  code.DiscountAmount,
		MaxUses:         code.MaxUses,
		ValidUntil:      code.ValidUntil,
		MinOrderAmount:  code.MinOrderAmount,
		PlanIDs:         append([]string(nil), code.PlanIDs...),
		Active:          code.Active,
	}
}

// Normalized trims and upper-cases the code, the way the panel stores it.
func (f DiscountCodeForm) Normalized() DiscountCodeForm {
	f.Code = strings.ToUpper(strings.TrimSpace(f.Code))
	return f
}

func (f DiscountCodeForm) ValidateWithContext(ctx context.Context) error {
	f = f.Normalized()
	return invalidForm(validation.ValidateStructWithContext(ctx, &f,
		validation.Field(&f.Code, validation.Required, validation.Length(2, 32), validation.Match(discountCodePattern)),
		validation.Field(&f.DiscountPercent,
			validation.When(f.DiscountAmount.IsNone(), validation.By(requiredOptional)),
			validation.By(percentOptional),
		),
		validation.Field(&f.DiscountAmount, validation.By(positiveOptionalFloat)),
		validation.Field(&f.MaxUses, validation.By(positiveOptionalInt)),
		validation.Field(&f.MinOrderAmount, validation.By(nonNegativeOptionalFloat)),
		validation.Field(&f.PlanIDs, validation.Each(validation.Required)),
	))
}

// ResellerForm is the operator's input for a reseller account. TelegramUserID
// is fixed once the reseller exists.
type ResellerForm struct {
	TelegramUserID  int64
	DiscountPercent float64
	CreditLimit     float64
	Active          bool
}

func NewResellerForm() ResellerForm {
	return ResellerForm{DiscountPercent: 10, Active: true}
}

func EditResellerForm(reseller Reseller) ResellerForm {
	return ResellerForm{
		TelegramUserID:  reseller.TelegramUserID,
		DiscountPercent: reseller.DiscountPercent,
		CreditLimit:     reseller.CreditLimit,
		Active:          reseller.Active,
	}
}

func (f ResellerForm) ValidateWithContext(ctx context.Context) error {
	return invalidForm(validation.ValidateStructWithContext(ctx, &f,
		validation.Field(&f.TelegramUserID, validation.Required, validation.Min(int64(1))),
		validation.Field(&f.DiscountPercent, validation.By(finite), validation.Min(0.0), validation.Max(100.0)),
		validation.Field(&f.CreditLimit, validation.By(finite), validation.Min(0.0)),
	))
}

type DepartmentForm struct {
	Name        string
	Description string
	Active      bool
	SortOrder   int
}

func NewDepartmentForm() DepartmentForm {
	return DepartmentForm{Active: true}
}

func EditDepartmentForm(department Department) DepartmentForm {
	return DepartmentForm{
		Name:        department.Name,
		Description: department.Description,
		Active:      department.Active,
		SortOrder:   department.SortOrder,
	}
}

func (f DepartmentForm) ValidateWithContext(ctx context.Context) error {
	return invalidForm(validation.ValidateStructWithContext(ctx, &f,
		validation.Field(&f.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&f.Description, validation.Length(0, 500)),
	))
}

// Settings is the bot configuration object served by /settings.
type Settings map[string]any

type settingKind int

const (
	settingText settingKind = iota
	settingBool
	settingInt
	settingFloat
)

var settingKinds = map[string]settingKind{
	"bot_token":               settingText,
	"bot_username":            settingText,
	"channel_id":              settingText,
	"channel_username":        settingText,
	"support_username":        settingText,
	"card_number":             settingText,
	"card_holder":             settingText,
	"welcome_message":         settingText,
	"rules_message":           settingText,
	"payment_timeout_minutes": settingInt,
	"test_account_enabled":    settingBool,
	"referral_enabled":        settingBool,
	"referral_percent":        settingFloat,
	"min_withdrawal":          settingFloat,
}

// SettingKeys lists the keys an operator may change, sorted.
func SettingKeys() []string {
	keys := make([]string, 0, len(settingKinds))
	for key := range settingKinds {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Keys returns the settings' keys in sorted order.
func (s Settings) Keys() []string {
	keys := make([]string, 0, len(s))
	for key := range s {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// ParseSettings turns key=value assignments into a typed settings patch.
func ParseSettings(assignments []string) (Settings, error) {
	patch := Settings{}
	for _, assignment := range assignments {
		key, raw, ok := strings.Cut(assignment, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("%w: expected key=value, got %q", ErrInvalidForm, assignment)
		}

		kind, known := settingKinds[key]
		if !known {
			return nil, fmt.Errorf("%w: unknown setting %q", ErrInvalidForm, key)
		}

		value, err := parseSetting(kind, raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrInvalidForm, key, err)
		}
		patch[key] = value
	}

	if len(patch) == 0 {
		return nil, fmt.Errorf("%w: no settings given", ErrInvalidForm)
	}
	return patch, nil
}

func parseSetting(kind settingKind, raw string) (any, error) {
	switch kind {
	case settingBool:
		return strconv.ParseBool(strings.TrimSpace(raw))
	case settingInt:
		value, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return nil, err
		}
		if value < 1 {
			return nil, fmt.Errorf("must be at least 1")
		}
		return value, nil
	case settingFloat:
		value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return nil, err
		}
		if math.IsNaN(value) || math.IsInf(value, 0) || value < 0 {
			return nil, fmt.Errorf("must be a non-negative number")
		}
		return value, nil
	default:
		return raw, nil
	}
}

func invalidForm(err error) error {
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidForm, err)
	}
	return nil
}

func finite(value interface{}) error {
	if number, ok := value.(float64); ok && (math.IsNaN(number) || math.IsInf(number, 0)) {
		return validation.NewError("validation_finite", "must be a finite number")
	}
	return nil
}

func requiredOptional(value interface{}) error {
	if number, ok := value.(Optional[float64]); ok && number.IsNone() {
		return validation.NewError("validation_discount_required", "set a percent or an amount")
	}
	return nil
}

func percentOptional(value interface{}) error {
	number, ok := value.(Optional[float64])
	if !ok {
		return nil
	}
	if n, set := number.Get(); set && (math.IsNaN(n) || n <= 0 || n > 100) {
		return validation.NewError("validation_percent", "must be above 0 and at most 100")
	}
	return nil
}

func positiveOptionalFloat(value interface{}) error {
	number, ok := value.(Optional[float64])
	if !ok {
		return nil
	}
	if n, set := number.Get(); set && (math.IsNaN(n) || math.IsInf(n, 0) || n <= 0) {
		return validation.NewError("validation_positive", "must be greater than 0")
	}
	return nil
}

func nonNegativeOptionalFloat(value interface{}) error {
	number, ok := value.(Optional[float64])
	if !ok {
		return nil
	}
	if n, set := number.Get(); set && (math.IsNaN(n) || math.IsInf(n, 0) || n < 0) {
		return validation.NewError("validation_non_negative", "must not be negative")
	}
	return nil
}

func positiveOptionalInt(value interface{}) error {
	number, ok := value.(Optional[int])
	if !ok {
		return nil
	}
	if n, set := number.Get(); set && n < 1 {
		return validation.NewError("validation_positive", "must be at least 1")
	}
	return nil
}
