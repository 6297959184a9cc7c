package panel

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/bnema/vpnadm/internal/domain"
)

type userRefDTO struct {
	TelegramID int64   `json:"telegram_id"`
	Username   *string `json:"username"`
	FirstName  *string `json:"first_name"`
}

func (dto *userRefDTO) toDomain() domain.UserRef {
	if dto == nil {
		return domain.UserRef{}
	}
	return domain.UserRef{
		TelegramID: dto.TelegramID,
		Username:   derefString(dto.Username),
		FirstName:  derefString(dto.FirstName),
	}
}

type namedDTO struct {
	Name string `json:"name"`
}

func (dto *namedDTO) name() string {
	if dto == nil {
		return ""
	}
	return dto.Name
}

type statsDTO struct {
	TotalUsers          int     `json:"total_users"`
	TotalOrders         int     `json:"total_orders"`
	TotalRevenue        float64 `json:"total_revenue"`
	PendingPayments     int     `json:"pending_payments"`
	ActiveSubscriptions int     `json:"active_subscriptions"`
	OpenTickets         int     `json:"open_tickets"`
	TotalResellers      int     `json:"total_resellers"`
	TodayRevenue        float64 `json:"today_revenue"`
	TodayOrders         int     `json:"today_orders"`
	TodayUsers          int     `json:"today_users"`
}

type planDTO struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  *string  `json:"description"`
	Price        float64  `json:"price"`
	DurationDays int      `json:"duration_days"`
	TrafficGB    *float64 `json:"traffic_gb"`
	UserLimit    int      `json:"user_limit"`
	ServerIDs    []string `json:"server_ids"`
	IsActive     bool     `json:"is_active"`
	IsTest       bool     `json:"is_test"`
	SortOrder    int      `json:"sort_order"`
	SalesCount   int      `json:"sales_count"`
}

func (dto planDTO) toDomain() domain.Plan {
	return domain.Plan{
		ID:           dto.ID,
		Name:         dto.Name,
		Description:  derefString(dto.Description),
		Price:        dto.Price,
		DurationDays: dto.DurationDays,
		TrafficGB:    optionalFloat(dto.TrafficGB),
		UserLimit:    dto.UserLimit,
		ServerIDs:    dto.ServerIDs,
		Active:       dto.IsActive,
		Test:         dto.IsTest,
		SortOrder:    dto.SortOrder,
		SalesCount:   dto.SalesCount,
	}
}

type serverDTO struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Description  *string `json:"description"`
	PanelURL     string  `json:"panel_url"`
	IsActive     bool    `json:"is_active"`
	MaxUsers     *int    `json:"max_users"`
	CurrentUsers int     `json:"current_users"`
}

func (dto serverDTO) toDomain() domain.Server {
	return domain.Server{
		ID:           dto.ID,
		Name:         dto.Name,
		Description:  derefString(dto.Description),
		PanelURL:     dto.PanelURL,
		Active:       dto.IsActive,
		MaxUsers:     optionalInt(dto.MaxUsers),
		CurrentUsers: dto.CurrentUsers,
	}
}

type serverTestDTO struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type orderDTO struct {
	ID           string      `json:"id"`
	Status       string      `json:"status"`
	FinalPrice   float64     `json:"final_price"`
	DiscountCode *string     `json:"discount_code"`
	Plan         *namedDTO   `json:"plan"`
	User         *userRefDTO `json:"user"`
	CreatedAt    timestamp   `json:"created_at"`
}

type paymentDTO struct {
	ID         string      `json:"id"`
	OrderID    string      `json:"order_id"`
	Status     string      `json:"status"`
	Amount     float64     `json:"amount"`
	CardNumber string      `json:"card_number"`
	AdminNote  *string     `json:"admin_note"`
	User       *userRefDTO `json:"user"`
	CreatedAt  timestamp   `json:"created_at"`
}

type paymentReviewRequest struct {
	Status    string  `json:"status"`
	AdminNote *string `json:"admin_note"`
}

type discountCodeDTO struct {
	ID              string    `json:"id"`
	Code            string    `json:"code"`
	DiscountPercent *float64  `json:"discount_percent"`
	DiscountAmount  *float64  `json:"discount_amount"`
	MaxUses         *int      `json:"max_uses"`
	UsedCount       int       `json:"used_count"`
	MinOrderAmount  *float64  `json:"min_order_amount"`
	ValidUntil      timestamp `json:"valid_until"`
	PlanIDs         []string  `json:"plan_ids"`
	IsActive        bool      `json:"is_active"`
}

func (dto discountCodeDTO) toDomain() domain.DiscountCode {
	return domain.DiscountCode{
		ID:              dto.ID,
		Code:            dto.Code,
		DiscountPercent: optionalFloat(dto.DiscountPercent),
		DiscountAmount:  optionalFloat(dto.DiscountAmount),
		MaxUses:         optionalInt(dto.MaxUses),
		UsedCount:       dto.UsedCount,
		MinOrderAmount:  optionalFloat(dto.MinOrderAmount),
		ValidUntil:      dto.ValidUntil.optional(),
		PlanIDs:         dto.PlanIDs,
		Active:          dto.IsActive,
	}
}

type ticketDTO struct {
	ID         string      `json:"id"`
	Subject    string      `json:"subject"`
	Status     string      `json:"status"`
	Priority   string      `json:"priority"`
	Department *namedDTO   `json:"department"`
	User       *userRefDTO `json:"user"`
	CreatedAt  timestamp   `json:"created_at"`
}

func (dto ticketDTO) toDomain() domain.Ticket {
	return domain.Ticket{
		ID:         dto.ID,
		Subject:    dto.Subject,
		Status:     domain.TicketStatus(dto.Status),
		Priority:   domain.TicketPriority(dto.Priority),
		Department: dto.Department.name(),
		User:       dto.User.toDomain(),
		CreatedAt:  dto.CreatedAt.optional(),
	}
}

type ticketMessageDTO struct {
	ID            string    `json:"id"`
	Message       string    `json:"message"`
	IsAdmin       bool      `json:"is_admin"`
	AdminUsername *string   `json:"admin_username"`
	CreatedAt     timestamp `json:"created_at"`
}

type ticketDetailDTO struct {
	ticketDTO
	Messages []ticketMessageDTO `json:"messages"`
}

type ticketReplyRequest struct {
	Message string `json:"message"`
	IsAdmin bool   `json:"is_admin"`
}

type ticketStatusRequest struct {
	Status string `json:"status"`
}

type resellerDTO struct {
	ID              string      `json:"id"`
	TelegramUserID  int64       `json:"telegram_user_id"`
	DiscountPercent float64     `json:"discount_percent"`
	CreditLimit     float64     `json:"credit_limit"`
	Balance         float64     `json:"balance"`
	TotalSales      float64     `json:"total_sales"`
	IsActive        bool        `json:"is_active"`
	User            *userRefDTO `json:"user"`
}

func (dto resellerDTO) toDomain() domain.Reseller {
	return domain.Reseller{
		ID:              dto.ID,
		TelegramUserID:  dto.TelegramUserID,
		DiscountPercent: dto.DiscountPercent,
		CreditLimit:     dto.CreditLimit,
		Balance:         dto.Balance,
		TotalSales:      dto.TotalSales,
		Active:          dto.IsActive,
		User:            dto.User.toDomain(),
	}
}

type resellerCreateRequest struct {
	TelegramUserID  int64   `json:"telegram_user_id"`
	DiscountPercent float64 `json:"discount_percent"`
	CreditLimit     float64 `json:"credit_limit"`
	IsActive        bool    `json:"is_active"`
}

// resellerUpdateRequest is a partial update: nil fields are left alone.
type resellerUpdateRequest struct {
	DiscountPercent *float64 `json:"discount_percent,omitempty"`
	CreditLimit     *float64 `json:"credit_limit,omitempty"`
	IsActive        *bool    `json:"is_active,omitempty"`
	Balance         *float64 `json:"balance,omitempty"`
}

type departmentDTO struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	IsActive    bool    `json:"is_active"`
	SortOrder   int     `json:"sort_order"`
}

func (dto departmentDTO) toDomain() domain.Department {
	return domain.Department{
		ID:          dto.ID,
		Name:        dto.Name,
		Description: derefString(dto.Description),
		Active:      dto.IsActive,
		SortOrder:   dto.SortOrder,
	}
}

type chartPointDTO struct {
	Date    string  `json:"date"`
	Revenue float64 `json:"revenue"`
	Orders  int     `json:"orders"`
	Users   int     `json:"users"`
}

type telegramUserDTO struct {
	TelegramID    int64     `json:"telegram_id"`
	Username      *string   `json:"username"`
	FirstName     *string   `json:"first_name"`
	LastName      *string   `json:"last_name"`
	WalletBalance float64   `json:"wallet_balance"`
	IsBanned      bool      `json:"is_banned"`
	IsReseller    bool      `json:"is_reseller"`
	CreatedAt     timestamp `json:"created_at"`
}

func (c *Client) DashboardStats(ctx context.Context) (domain.DashboardStats, error) {
	var dto statsDTO
	if err := c.doJSON(ctx, request{method: http.MethodGet, path: "/dashboard/stats"}, &dto); err != nil {
		return domain.DashboardStats{}, err
	}
	return domain.DashboardStats(dto), nil
}

func (c *Client) DashboardChart(ctx context.Context, days int) ([]domain.ChartPoint, error) {
	var dtos []chartPointDTO
	err := c.doJSON(ctx, request{
		method: http.MethodGet,
		path:   "/dashboard/chart",
		query:  url.Values{"days": {strconv.Itoa(days)}},
	}, &dtos)
	if err != nil {
		return nil, err
	}

	points := make([]domain.ChartPoint, 0, len(dtos))
	for _, dto := range dtos {
		points = append(points, domain.ChartPoint(dto))
	}
	return points, nil
}

func (c *Client) ListPlans(ctx context.Context) ([]domain.Plan, error) {
	var dtos []planDTO
	if err := c.doJSON(ctx, request{method: http.MethodGet, path: "/plans"}, &dtos); err != nil {
		return nil, err
	}

	plans := make([]domain.Plan, 0, len(dtos))
	for _, dto := range dtos {
		plans = append(plans, dto.toDomain())
	}
	return plans, nil
}

func (c *Client) CreatePlan(ctx context.Context, form domain.PlanForm) (domain.Plan, error) {
	var dto planDTO
	err := c.doJSON(ctx, request{method: http.MethodPost, path: "/plans", body: newPlanRequest(form)}, &dto)
	if err != nil {
		return domain.Plan{}, err
	}
	return dto.toDomain(), nil
}

func (c *Client) UpdatePlan(ctx context.Context, id string, form domain.PlanForm) (domain.Plan, error) {
	var dto planDTO
	err := c.doJSON(ctx, request{
		method:   http.MethodPut,
		path:     pathf("/plans/%s", id),
		body:     newPlanRequest(form),
		notFound: domain.ErrNotFound,
	}, &dto)
	if err != nil {
		return domain.Plan{}, err
	}
	return dto.toDomain(), nil
}

func (c *Client) DeletePlan(ctx context.Context, id string) error {
	return c.deleteItem(ctx, pathf("/plans/%s", id))
}

func (c *Client) ListServers(ctx context.Context) ([]domain.Server, error) {
	var dtos []serverDTO
	if err := c.doJSON(ctx, request{method: http.MethodGet, path: "/servers"}, &dtos); err != nil {
		return nil, err
	}

	servers := make([]domain.Server, 0, len(dtos))
	for _, dto := range dtos {
		servers = append(servers, dto.toDomain())
	}
	return servers, nil
}

func (c *Client) CreateServer(ctx context.Context, form domain.ServerForm) (domain.Server, error) {
	var dto serverDTO
	err := c.doJSON(ctx, request{method: http.MethodPost, path: "/servers", body: newServerRequest(form)}, &dto)
	if err != nil {
		return domain.Server{}, err
	}
	return dto.toDomain(), nil
}

func (c *Client) UpdateServer(ctx context.Context, id string, form domain.ServerForm) (domain.Server, error) {
	var dto serverDTO
	err := c.doJSON(ctx, request{
		method:   http.MethodPut,
		path:     pathf("/servers/%s", id),
		body:     newServerRequest(form),
		notFound: domain.ErrNotFound,
	}, &dto)
	if err != nil {
		return domain.Server{}, err
	}
	return dto.toDomain(), nil
}

func (c *Client) DeleteServer(ctx context.Context, id string) error {
	return c.deleteItem(ctx, pathf("/servers/%s", id))
}

// TestServer asks the panel to log in to the server's WireGuard panel.
func (c *Client) TestServer(ctx context.Context, id string) (domain.ServerTestResult, error) {
	var dto serverTestDTO
	err := c.doJSON(ctx, request{
		method:   http.MethodPost,
		path:     pathf("/servers/%s/test", id),
		notFound: domain.ErrNotFound,
	}, &dto)
	if err != nil {
		return domain.ServerTestResult{}, err
	}
	return domain.ServerTestResult(dto), nil
}

func (c *Client) ListOrders(ctx context.Context, status domain.OrderStatus) ([]domain.Order, error) {
	var dtos []orderDTO
	err := c.doJSON(ctx, request{
		method: http.MethodGet,
		path:   "/orders",
		query:  optionalQuery("status", string(status)),
	}, &dtos)
	if err != nil {
		return nil, err
	}

	orders := make([]domain.Order, 0, len(dtos))
	for _, dto := range dtos {
		orders = append(orders, domain.Order{
			ID:           dto.ID,
			Status:       domain.OrderStatus(dto.Status),
			FinalPrice:   dto.FinalPrice,
			DiscountCode: derefString(dto.DiscountCode),
			PlanName:     dto.Plan.name(),
			User:         dto.User.toDomain(),
			CreatedAt:    dto.CreatedAt.optional(),
		})
	}
	return orders, nil
}

func (c *Client) ListPayments(ctx context.Context, status domain.PaymentStatus) ([]domain.Payment, error) {
	var dtos []paymentDTO
	err := c.doJSON(ctx, request{
		method: http.MethodGet,
		path:   "/payments",
		query:  optionalQuery("status", string(status)),
	}, &dtos)
	if err != nil {
		return nil, err
	}

	payments := make([]domain.Payment, 0, len(dtos))
	for _, dto := range dtos {
		payments = append(payments, domain.Payment{
			ID:         dto.ID,
			OrderID:    dto.OrderID,
			Status:     domain.PaymentStatus(dto.Status),
			Amount:     dto.Amount,
			CardNumber: dto.CardNumber,
			AdminNote:  derefString(dto.AdminNote),
			User:       dto.User.toDomain(),
			CreatedAt:  dto.CreatedAt.optional(),
		})
	}
	return payments, nil
}

func (c *Client) ReviewPayment(ctx context.Context, id string, review domain.PaymentReview) error {
	return c.doJSON(ctx, request{
		method: http.MethodPut,
		path:   pathf("/payments/%s/review", id),
		body: paymentReviewRequest{
			Status:    string(review.Status),
			AdminNote: nullableString(review.AdminNote),
		},
	}, nil)
}

func (c *Client) ListDiscountCodes(ctx context.Context) ([]domain.DiscountCode, error) {
	var dtos []discountCodeDTO
	if err := c.doJSON(ctx, request{method: http.MethodGet, path: "/discount-codes"}, &dtos); err != nil {
		return nil, err
	}

	codes := make([]domain.DiscountCode, 0, len(dtos))
	for _, dto := range dtos {
		codes = append(codes, dto.toDomain())
	}
	return codes, nil
}

func (c *Client) CreateDiscountCode(ctx context.Context, form domain.DiscountCodeForm) (domain.DiscountCode, error) {
	var dto discountCodeDTO
	err := c.doJSON(ctx, request{method: http.MethodPost, path: "/discount-codes", body: newDiscountCodeRequest(form)}, &dto)
	if err != nil {
		return domain.DiscountCode{}, err
	}
	return dto.toDomain(), nil
}

func (c *Client) UpdateDiscountCode(ctx context.Context, id string, form domain.DiscountCodeForm) (domain.DiscountCode, error) {
	var dto discountCodeDTO
	err := c.doJSON(ctx, request{
		method:   http.MethodPut,
		path:     pathf("/discount-codes/%s", id),
		body:     newDiscountCodeRequest(form),
		notFound: domain.ErrNotFound,
	}, &dto)
	if err != nil {
		return domain.DiscountCode{}, err
	}
	return dto.toDomain(), nil
}

func (c *Client) DeleteDiscountCode(ctx context.Context, id string) error {
	return c.deleteItem(ctx, pathf("/discount-codes/%s", id))
}

func (c *Client) ListTickets(ctx context.Context, status domain.TicketStatus) ([]domain.Ticket, error) {
	var dtos []ticketDTO
	err := c.doJSON(ctx, request{
		method: http.MethodGet,
		path:   "/tickets",
		query:  optionalQuery("status", string(status)),
	}, &dtos)
	if err != nil {
		return nil, err
	}

	tickets := make([]domain.Ticket, 0, len(dtos))
	for _, dto := range dtos {
		tickets = append(tickets, dto.toDomain())
	}
	return tickets, nil
}

func (c *Client) GetTicket(ctx context.Context, id string) (domain.TicketDetail, error) {
	var dto ticketDetailDTO
	err := c.doJSON(ctx, request{
		method:   http.MethodGet,
		path:     pathf("/tickets/%s", id),
		notFound: domain.ErrNotFound,
	}, &dto)
	if err != nil {
		return domain.TicketDetail{}, err
	}

	detail := domain.TicketDetail{
		Ticket:   dto.ticketDTO.toDomain(),
		Messages: make([]domain.TicketMessage, 0, len(dto.Messages)),
	}
	for _, msg := range dto.Messages {
		detail.Messages = append(detail.Messages, domain.TicketMessage{
			ID:            msg.ID,
			Message:       msg.Message,
			FromAdmin:     msg.IsAdmin,
			AdminUsername: derefString(msg.AdminUsername),
			CreatedAt:     msg.CreatedAt.optional(),
		})
	}
	return detail, nil
}

func (c *Client) ReplyTicket(ctx context.Context, id string, message string) error {
	return c.doJSON(ctx, request{
		method: http.MethodPost,
		path:   pathf("/tickets/%s/reply", id),
		body:   ticketReplyRequest{Message: message, IsAdmin: true},
	}, nil)
}

func (c *Client) SetTicketStatus(ctx context.Context, id string, status domain.TicketStatus) error {
	return c.doJSON(ctx, request{
		method: http.MethodPut,
		path:   pathf("/tickets/%s", id),
		body:   ticketStatusRequest{Status: string(status)},
	}, nil)
}

func (c *Client) ListResellers(ctx context.Context) ([]domain.Reseller, error) {
	var dtos []resellerDTO
	if err := c.doJSON(ctx, request{method: http.MethodGet, path: "/resellers"}, &dtos); err != nil {
		return nil, err
	}

	resellers := make([]domain.Reseller, 0, len(dtos))
	for _, dto := range dtos {
		resellers = append(resellers, dto.toDomain())
	}
	return resellers, nil
}

func (c *Client) CreateReseller(ctx context.Context, form domain.ResellerForm) (domain.Reseller, error) {
	var dto resellerDTO
	err := c.doJSON(ctx, request{
		method: http.MethodPost,
		path:   "/resellers",
		body: resellerCreateRequest{
			TelegramUserID:  form.TelegramUserID,
			DiscountPercent: form.DiscountPercent,
			CreditLimit:     form.CreditLimit,
			IsActive:        form.Active,
		},
	}, &dto)
	if err != nil {
		return domain.Reseller{}, err
	}
	return dto.toDomain(), nil
}

func (c *Client) UpdateReseller(ctx context.Context, id string, form domain.ResellerForm) (domain.Reseller, error) {
	var dto resellerDTO
	err := c.doJSON(ctx, request{
		method: http.MethodPut,
		path:   pathf("/resellers/%s", id),
		body: resellerUpdateRequest{
			DiscountPercent: &form.DiscountPercent,
			CreditLimit:     &form.CreditLimit,
			IsActive:        &form.Active,
		},
		notFound: domain.ErrNotFound,
	}, &dto)
	if err != nil {
		return domain.Reseller{}, err
	}
	return dto.toDomain(), nil
}

// SetResellerBalance sends a partial update carrying only the balance.
func (c *Client) SetResellerBalance(ctx context.Context, id string, balance float64) error {
	return c.doJSON(ctx, request{
		method:   http.MethodPut,
		path:     pathf("/resellers/%s", id),
		body:     resellerUpdateRequest{Balance: &balance},
		notFound: domain.ErrNotFound,
	}, nil)
}

func (c *Client) DeleteReseller(ctx context.Context, id string) error {
	return c.deleteItem(ctx, pathf("/resellers/%s", id))
}

func (c *Client) ListUsers(ctx context.Context, search string) ([]domain.TelegramUser, error) {
	var dtos []telegramUserDTO
	err := c.doJSON(ctx, request{
		method: http.MethodGet,
		path:   "/users",
		query:  optionalQuery("search", search),
	}, &dtos)
	if err != nil {
		return nil, err
	}

	users := make([]domain.TelegramUser, 0, len(dtos))
	for _, dto := range dtos {
		users = append(users, domain.TelegramUser{
			TelegramID:    dto.TelegramID,
			Username:      derefString(dto.Username),
			FirstName:     derefString(dto.FirstName),
			LastName:      derefString(dto.LastName),
			WalletBalance: dto.WalletBalance,
			Banned:        dto.IsBanned,
			Reseller:      dto.IsReseller,
			CreatedAt:     dto.CreatedAt.optional(),
		})
	}
	return users, nil
}

func (c *Client) ToggleUserBan(ctx context.Context, telegramID int64) error {
	return c.doJSON(ctx, request{
		method: http.MethodPut,
		path:   pathf("/users/%s/ban", telegramID),
	}, nil)
}

func (c *Client) SetUserWallet(ctx context.Context, telegramID int64, amount float64) error {
	return c.doJSON(ctx, request{
		method: http.MethodPut,
		path:   pathf("/users/%s/wallet", telegramID),
		query:  url.Values{"amount": {strconv.FormatFloat(amount, 'f', -1, 64)}},
	}, nil)
}

func (c *Client) ListDepartments(ctx context.Context) ([]domain.Department, error) {
	var dtos []departmentDTO
	if err := c.doJSON(ctx, request{method: http.MethodGet, path: "/departments"}, &dtos); err != nil {
		return nil, err
	}

	departments := make([]domain.Department, 0, len(dtos))
	for _, dto := range dtos {
		departments = append(departments, dto.toDomain())
	}
	return departments, nil
}

func (c *Client) CreateDepartment(ctx context.Context, form domain.DepartmentForm) (domain.Department, error) {
	var dto departmentDTO
	err := c.doJSON(ctx, request{method: http.MethodPost, path: "/departments", body: newDepartmentRequest(form)}, &dto)
	if err != nil {
		return domain.Department{}, err
	}
	return dto.toDomain(), nil
}

func (c *Client) UpdateDepartment(ctx context.Context, id string, form domain.DepartmentForm) (domain.Department, error) {
	var dto departmentDTO
	err := c.doJSON(ctx, request{
		method:   http.MethodPut,
		path:     pathf("/departments/%s", id),
		body:     newDepartmentRequest(form),
		notFound: domain.ErrNotFound,
	}, &dto)
	if err != nil {
		return domain.Department{}, err
	}
	return dto.toDomain(), nil
}

func (c *Client) DeleteDepartment(ctx context.Context, id string) error {
	return c.deleteItem(ctx, pathf("/departments/%s", id))
}

func (c *Client) Settings(ctx context.Context) (domain.Settings, error) {
	settings := domain.Settings{}
	if err := c.doJSON(ctx, request{method: http.MethodGet, path: "/settings"}, &settings); err != nil {
		return nil, err
	}
	return settings, nil
}

// UpdateSettings sends only the patched keys; the panel answers with the full
// object.
func (c *Client) UpdateSettings(ctx context.Context, patch domain.Settings) (domain.Settings, error) {
	settings := domain.Settings{}
	err := c.doJSON(ctx, request{method: http.MethodPut, path: "/settings", body: map[string]any(patch)}, &settings)
	if err != nil {
		return nil, err
	}
	return settings, nil
}

func (c *Client) deleteItem(ctx context.Context, path string) error {
	return c.doJSON(ctx, request{method: http.MethodDelete, path: path, notFound: domain.ErrNotFound}, nil)
}

func optionalQuery(key, value string) url.Values {
	if value == "" {
		return nil
	}
	return url.Values{key: {value}}
}
