package panel

import "github.com/bnema/vpnadm/internal/domain"

type planRequest struct {
	Name         string                   `json:"name"`
	Description  *string                  `json:"description"`
	Price        float64                  `json:"price"`
	DurationDays int                      `json:"duration_days"`
	TrafficGB    domain.Optional[float64] `json:"traffic_gb"`
	UserLimit    int                      `json:"user_limit"`
	ServerIDs    []string                 `json:"server_ids"`
	IsActive     bool                     `json:"is_active"`
	IsTest       bool                     `json:"is_test"`
	SortOrder    int                      `json:"sort_order"`
}

func newPlanRequest(form domain.PlanForm) planRequest {
	serverIDs := form.ServerIDs
	if serverIDs == nil {
		serverIDs = []string{}
	}
	return planRequest{
		Name:         form.Name,
		Description:  nullableString(form.Description),
		Price:        form.Price,
		DurationDays: form.DurationDays,
		TrafficGB:    form.TrafficGB,
		UserLimit:    form.UserLimit,
		ServerIDs:    serverIDs,
		IsActive:     form.Active,
		IsTest:       form.Test,
		SortOrder:    form.SortOrder,
	}
}

// Blank credentials are omitted so an update keeps the stored ones.
type serverRequest struct {
	Name          string               `json:"name"`
	PanelURL      string               `json:"panel_url"`
	PanelUsername *string              `json:"panel_username,omitempty"`
	PanelPassword *string              `json:"panel_password,omitempty"`
	IsActive      bool                 `json:"is_active"`
	MaxUsers      domain.Optional[int] `json:"max_users"`
	Description   *string              `json:"description"`
}

func newServerRequest(form domain.ServerForm) serverRequest {
	return serverRequest{
		Name:          form.Name,
		PanelURL:      form.PanelURL,
		PanelUsername: nullableString(form.PanelUsername),
		PanelPassword: nullableString(form.PanelPassword),
		IsActive:      form.Active,
		MaxUsers:      form.MaxUsers,
		Description:   nullableString(form.Description),
	}
}

type discountCodeRequest struct {
	Code            string                   `json:"code"`
	DiscountPercent domain.Optional[float64] `json:"discount_percent"`
	DiscountAmount  domain.Optional[float64] `json:"discount_amount"`
	MaxUses         domain.Optional[int]     `json:"max_uses"`
	ValidUntil      *string                  `json:"valid_until"`
	MinOrderAmount  domain.Optional[float64] `json:"min_order_amount"`
	PlanIDs         []string                 `json:"plan_ids"`
	IsActive        bool                     `json:"is_active"`
}

func newDiscountCodeRequest(form domain.DiscountCodeForm) discountCodeRequest {
	form = form.Normalized()
	planIDs := form.PlanIDs
	if planIDs == nil {
		planIDs = []string{}
	}

	req := discountCodeRequest{
		Code:            form.Code,
		DiscountPercent: form.DiscountPercent,
		DiscountAmount:  form.DiscountAmount,
		MaxUses:         form.MaxUses,
		MinOrderAmount:  form.MinOrderAmount,
		PlanIDs:         planIDs,
		IsActive:        form.Active,
	}
	if until, ok := form.ValidUntil.Get(); ok {
		formatted := formatTimestamp(until)
		req.ValidUntil = &formatted
	}
	return req
}

type departmentRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	IsActive    bool    `json:"is_active"`
	SortOrder   int     `json:"sort_order"`
}

func newDepartmentRequest(form domain.DepartmentForm) departmentRequest {
	return departmentRequest{
		Name:        form.Name,
		Description: nullableString(form.Description),
		IsActive:    form.Active,
		SortOrder:   form.SortOrder,
	}
}
