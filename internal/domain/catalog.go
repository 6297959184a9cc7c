package domain

import "time"

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderPaid      OrderStatus = "paid"
	OrderConfirmed OrderStatus = "confirmed"
	OrderCancelled OrderStatus = "cancelled"
	OrderExpired   OrderStatus = "expired"
)

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentApproved PaymentStatus = "approved"
	PaymentRejected PaymentStatus = "rejected"
)

type TicketStatus string

const (
	TicketOpen     TicketStatus = "open"
	TicketAnswered TicketStatus = "answered"
	TicketWaiting  TicketStatus = "waiting"
	TicketClosed   TicketStatus = "closed"
)

type TicketPriority string

const (
	TicketLow    TicketPriority = "low"
	TicketMedium TicketPriority = "medium"
	TicketHigh   TicketPriority = "high"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderPaid, OrderConfirmed, OrderCancelled, OrderExpired:
		return true
	}
	return false
}

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentPending, PaymentApproved, PaymentRejected:
		return true
	}
	return false
}

func (s TicketStatus) Valid() bool {
	switch s {
	case TicketOpen, TicketAnswered, TicketWaiting, TicketClosed:
		return true
	}
	return false
}

type Plan struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	Description  string            `json:"description"`
	Price        float64           `json:"price"`
	DurationDays int               `json:"duration_days"`
	TrafficGB    Optional[float64] `json:"traffic_gb"`
	UserLimit    int               `json:"user_limit"`
	ServerIDs    []string          `json:"server_ids"`
	Active       bool              `json:"active"`
	Test         bool              `json:"test"`
	SortOrder    int               `json:"sort_order"`
	SalesCount   int               `json:"sales_count"`
}

type Server struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Description  string        `json:"description"`
	PanelURL     string        `json:"panel_url"`
	Active       bool          `json:"active"`
	MaxUsers     Optional[int] `json:"max_users"`
	CurrentUsers int           `json:"current_users"`
}

// UserRef is the short user summary embedded in orders, payments and tickets.
type UserRef struct {
	TelegramID int64  `json:"telegram_id"`
	Username   string `json:"username"`
	FirstName  string `json:"first_name"`
}

func (u UserRef) Display() string {
	if u.FirstName != "" {
		return u.FirstName
	}
	if u.Username != "" {
		return "@" + u.Username
	}
	return "-"
}

type Order struct {
	ID           string              `json:"id"`
	Status       OrderStatus         `json:"status"`
	FinalPrice   float64             `json:"final_price"`
	DiscountCode string              `json:"discount_code"`
	PlanName     string              `json:"plan_name"`
	User         UserRef             `json:"user"`
	CreatedAt    Optional[time.Time] `json:"created_at"`
}

type Payment struct {
	ID         string              `json:"id"`
	OrderID    string              `json:"order_id"`
	Status     PaymentStatus       `json:"status"`
	Amount     float64             `json:"amount"`
	CardNumber string              `json:"card_number"`
	AdminNote  string              `json:"admin_note"`
	User       UserRef             `json:"user"`
	CreatedAt  Optional[time.Time] `json:"created_at"`
}

type PaymentReview struct {
	Status    PaymentStatus `json:"status"`
	AdminNote string        `json:"admin_note"`
}

type DiscountCode struct {
	ID              string              `json:"id"`
	Code            string              `json:"code"`
	DiscountPercent Optional[float64]   `json:"discount_percent"`
	DiscountAmount  Optional[float64]   `json:"discount_amount"`
	MaxUses         Optional[int]       `json:"max_uses"`
	UsedCount       int                 `json:"used_count"`
	MinOrderAmount  Optional[float64]   `json:"min_order_amount"`
	ValidUntil      Optional[time.Time] `json:"valid_until"`
	PlanIDs         []string            `json:"plan_ids"`
	Active          bool                `json:"active"`
}

// Exhausted reports whether the code has no uses left.
func (d DiscountCode) Exhausted() bool {
	max, ok := d.MaxUses.Get()
	return ok && d.UsedCount >= max
}

func (d DiscountCode) ExpiredAt(now time.Time) bool {
	until, ok := d.ValidUntil.Get()
	return ok && now.After(until)
}

type Ticket struct {
	ID         string              `json:"id"`
	Subject    string              `json:"subject"`
	Status     TicketStatus        `json:"status"`
	Priority   TicketPriority      `json:"priority"`
	Department string              `json:"department"`
	User       UserRef             `json:"user"`
	CreatedAt  Optional[time.Time] `json:"created_at"`
}

type Reseller struct {
	ID              string  `json:"id"`
	TelegramUserID  int64   `json:"telegram_user_id"`
	DiscountPercent float64 `json:"discount_percent"`
	CreditLimit     float64 `json:"credit_limit"`
	Balance         float64 `json:"balance"`
	TotalSales      float64 `json:"total_sales"`
	Active          bool    `json:"active"`
	User            UserRef `json:"user"`
}

type TelegramUser struct {
	TelegramID    int64               `json:"telegram_id"`
	Username      string              `json:"username"`
	FirstName     string              `json:"first_name"`
	LastName      string              `json:"last_name"`
	WalletBalance float64             `json:"wallet_balance"`
	Banned        bool                `json:"banned"`
	Reseller      bool                `json:"reseller"`
	CreatedAt     Optional[time.Time] `json:"created_at"`
}

type DashboardStats struct {
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

// TicketMessage is one entry of a ticket conversation.
type TicketMessage struct {
	ID            string              `json:"id"`
	Message       string              `json:"message"`
	FromAdmin     bool                `json:"from_admin"`
	AdminUsername string              `json:"admin_username"`
	CreatedAt     Optional[time.Time] `json:"created_at"`
}

type TicketDetail struct {
	Ticket
	Messages []TicketMessage `json:"messages"`
}

type Department struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Active      bool   `json:"active"`
	SortOrder   int    `json:"sort_order"`
}

// ChartPoint is one day of the dashboard chart. Date is the backend's label.
type ChartPoint struct {
	Date    string  `json:"date"`
	Revenue float64 `json:"revenue"`
	Orders  int     `json:"orders"`
	Users   int     `json:"users"`
}

// ServerTestResult is the panel's answer to a connection test against a
// server's WireGuard panel.
type ServerTestResult struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func (r ServerTestResult) OK() bool {
	return r.Status == "success"
}
