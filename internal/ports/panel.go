package ports

import (
	"context"

	"github.com/bnema/vpnadm/internal/domain"
)

// SessionAPI authenticates an operator against the panel.
type SessionAPI interface {
	Login(ctx context.Context, username, password string) (string, error)
	Me(ctx context.Context) (domain.Operator, error)
}

type ClientAPI interface {
	ListClients(ctx context.Context) ([]domain.ClientSubscription, error)
	GetClient(ctx context.Context, id domain.ClientID) (domain.ClientSubscription, error)
	CreateClient(ctx context.Context, draft domain.ClientDraft) (domain.ClientSubscription, error)
	UpdateClient(ctx context.Context, id domain.ClientID, draft domain.ClientDraft) (domain.ClientSubscription, error)
	SetClientEnabled(ctx context.Context, id domain.ClientID, enabled bool) error
	DeleteClient(ctx context.Context, id domain.ClientID) error
	ResetClientData(ctx context.Context, id domain.ClientID) error
	ResetClientExpiry(ctx context.Context, id domain.ClientID, days int) error
	RemoveClientExpiry(ctx context.Context, id domain.ClientID) error
	ResetClientTimer(ctx context.Context, id domain.ClientID) error
	FullResetClient(ctx context.Context, id domain.ClientID) error
	ClientConfig(ctx context.Context, id domain.ClientID) ([]byte, error)
	ClientQRCode(ctx context.Context, id domain.ClientID) ([]byte, error)
}

// SubscriptionAPI reads the public subscription page. It needs no token.
type SubscriptionAPI interface {
	Subscription(ctx context.Context, id domain.ClientID) (domain.ClientSubscription, error)
}

type CatalogAPI interface {
	DashboardStats(ctx context.Context) (domain.DashboardStats, error)
	DashboardChart(ctx context.Context, days int) ([]domain.ChartPoint, error)

	ListPlans(ctx context.Context) ([]domain.Plan, error)
	CreatePlan(ctx context.Context, form domain.PlanForm) (domain.Plan, error)
	UpdatePlan(ctx context.Context, id string, form domain.PlanForm) (domain.Plan, error)
	DeletePlan(ctx context.Context, id string) error

	ListServers(ctx context.Context) ([]domain.Server, error)
	CreateServer(ctx context.Context, form domain.ServerForm) (domain.Server, error)
	UpdateServer(ctx context.Context, id string, form domain.ServerForm) (domain.Server, error)
	DeleteServer(ctx context.Context, id string) error
	TestServer(ctx context.Context, id string) (domain.ServerTestResult, error)

	ListOrders(ctx context.Context, status domain.OrderStatus) ([]domain.Order, error)
	ListPayments(ctx context.Context, status domain.PaymentStatus) ([]domain.Payment, error)
	ReviewPayment(ctx context.Context, id string, review domain.PaymentReview) error

	ListDiscountCodes(ctx context.Context) ([]domain.DiscountCode, error)
	CreateDiscountCode(ctx context.Context, form domain.DiscountCodeForm) (domain.DiscountCode, error)
	UpdateDiscountCode(ctx context.Context, id string, form domain.DiscountCodeForm) (domain.DiscountCode, error)
	DeleteDiscountCode(ctx context.Context, id string) error

	ListTickets(ctx context.Context, status domain.TicketStatus) ([]domain.Ticket, error)
	GetTicket(ctx context.Context, id string) (domain.TicketDetail, error)
	ReplyTicket(ctx context.Context, id string, message string) error
	SetTicketStatus(ctx context.Context, id string, status domain.TicketStatus) error

	ListDepartments(ctx context.Context) ([]domain.Department, error)
	CreateDepartment(ctx context.Context, form domain.DepartmentForm) (domain.Department, error)
	UpdateDepartment(ctx context.Context, id string, form domain.DepartmentForm) (domain.Department, error)
	DeleteDepartment(ctx context.Context, id string) error

	ListResellers(ctx context.Context) ([]domain.Reseller, error)
	CreateReseller(ctx context.Context, form domain.ResellerForm) (domain.Reseller, error)
	UpdateReseller(ctx context.Context, id string, form domain.ResellerForm) (domain.Reseller, error)
	SetResellerBalance(ctx context.Context, id string, balance float64) error
	DeleteReseller(ctx context.Context, id string) error

	ListUsers(ctx context.Context, search string) ([]domain.TelegramUser, error)
	ToggleUserBan(ctx context.Context, telegramID int64) error
	SetUserWallet(ctx context.Context, telegramID int64, amount float64) error

	Settings(ctx context.Context) (domain.Settings, error)
	UpdateSettings(ctx context.Context, patch domain.Settings) (domain.Settings, error)
}

type PanelAPI interface {
	SessionAPI
	ClientAPI
	SubscriptionAPI
	CatalogAPI
}

// PanelDialer binds a panel client to a base URL and access token.
type PanelDialer interface {
	Dial(baseURL, token string) PanelAPI
}

type SessionDialer interface {
	DialSession(baseURL, token string) SessionAPI
}
