package catalog

import (
	"strings"
	"testing"
	"time"

	"github.com/bnema/vpnadm/internal/adapters/locale"
	"github.com/bnema/vpnadm/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestRenderer(t *testing.T) *Renderer {
	t.Helper()

	tr, err := locale.New("en", nil)
	require.NoError(t, err)
	return NewRenderer(tr, func() time.Time { return now })
}

func TestDashboard(t *testing.T) {
	output := newTestRenderer(t).Dashboard(domain.DashboardStats{
		TotalUsers:          1200,
		TotalRevenue:        45000000,
		PendingPayments:     4,
		ActiveSubscriptions: 310,
		TodayOrders:         7,
	})

	assert.Contains(t, output, "Dashboard")
	assert.Contains(t, output, "1,200")
	assert.Contains(t, output, "45,000,000")
	assert.Contains(t, output, "Active subscriptions")
	assert.Contains(t, output, "310")
}

func TestPlansAndServers(t *testing.T) {
	r := newTestRenderer(t)

	plans := r.Plans([]domain.Plan{
		{ID: "p-1", Name: "Monthly 50", Price: 150000, DurationDays: 30, TrafficGB: domain.Some(50.0), Active: true},
		{ID: "p-2", Name: "Trial", DurationDays: 1, Test: true},
	})
	assert.Contains(t, plans, "Monthly 50")
	assert.Contains(t, plans, "150,000")
	assert.Contains(t, plans, "50 GB")
	assert.Contains(t, plans, "Trial (test)")
	assert.Contains(t, plans, "Unlimited")
	assert.Contains(t, plans, "Inactive")

	servers := r.Servers([]domain.Server{{ID: "s-1", Name: "fra-1", CurrentUsers: 40, MaxUsers: domain.Some(100), Active: true}})
	assert.Contains(t, servers, "40 / 100")
}

func TestDiscountCodesState(t *testing.T) {
	output := newTestRenderer(t).DiscountCodes([]domain.DiscountCode{
		{Code: "SPRING", DiscountPercent: domain.Some(20.0), MaxUses: domain.Some(5), UsedCount: 5, Active: true},
		{Code: "OLD", DiscountAmount: domain.Some(10000.0), ValidUntil: domain.Some(now.Add(-time.Hour)), Active: true},
	})

	assert.Contains(t, output, "20%")
	assert.Contains(t, output, "5 / 5")
	assert.Contains(t, output, "used up")
	assert.Contains(t, output, "10,000")
	assert.Contains(t, output, "expired")
}

func TestOrdersUseRelativeTimes(t *testing.T) {
	output := newTestRenderer(t).Orders([]domain.Order{{
		ID:         "o-1",
		Status:     domain.OrderPending,
		FinalPrice: 90000,
		PlanName:   "Monthly",
		User:       domain.UserRef{Username: "ali"},
		CreatedAt:  domain.Some(now.Add(-2 * time.Hour)),
	}})

	assert.Contains(t, output, "@ali")
	assert.Contains(t, output, "pending")
	assert.Contains(t, output, "2 hours ago")
}

func TestUsersFlags(t *testing.T) {
	output := newTestRenderer(t).Users([]domain.TelegramUser{{TelegramID: 42, FirstName: "Ali", Username: "ali", Banned: true, Reseller: true}})

	assert.Contains(t, output, "42")
	assert.Contains(t, output, "Ali @ali")
	assert.Contains(t, output, "Banned, reseller")
}

func TestEmptyTable(t *testing.T) {
	output := newTestRenderer(t).Tickets(nil)

	assert.Contains(t, output, "rows: 0")
	assert.Contains(t, output, "Nothing to show.")
}

func TestChartScalesBarsToPeak(t *testing.T) {
	output := newTestRenderer(t).Chart([]domain.ChartPoint{
		{Date: "02-28", Revenue: 200000, Orders: 4, Users: 2},
		{Date: "03-01", Revenue: 100000, Orders: 2, Users: 1},
	})

	assert.Contains(t, output, "Last 2 days")
	assert.Contains(t, output, "200,000")
	assert.Equal(t, 30, strings.Count(output, "█"))
	assert.Equal(t, 10, strings.Count(output, "░"))
}

func TestChartWithoutRevenueDrawsEmptyBars(t *testing.T) {
	output := newTestRenderer(t).Chart([]domain.ChartPoint{{Date: "03-01"}})

	assert.Zero(t, strings.Count(output, "█"))
	assert.Equal(t, 20, strings.Count(output, "░"))
}

func TestTicketConversation(t *testing.T) {
	r := newTestRenderer(t)
	ticket := domain.TicketDetail{
		Ticket: domain.Ticket{
			ID:         "t-1",
			Subject:    "Cannot connect",
			Status:     domain.TicketOpen,
			Priority:   domain.TicketHigh,
			Department: "Technical",
			User:       domain.UserRef{Username: "ali"},
		},
	}

	output := r.Ticket(ticket)
	assert.Contains(t, output, "Cannot connect")
	assert.Contains(t, output, "@ali · Technical · high · open")
	assert.Contains(t, output, "No messages.")

	ticket.Messages = []domain.TicketMessage{
		{ID: "m-1", Message: "It times out", CreatedAt: domain.Some(now.Add(-3 * time.Hour))},
		{ID: "m-2", Message: "Try port 443", FromAdmin: true},
		{ID: "m-3", Message: "Restart the app", FromAdmin: true, AdminUsername: "reza"},
	}
	output = r.Ticket(ticket)
	assert.Contains(t, output, "It times out")
	assert.Contains(t, output, "3 hours ago")
	assert.Contains(t, output, "support")
	assert.Contains(t, output, "reza")
	assert.NotContains(t, output, "No messages.")
}

func TestDepartments(t *testing.T) {
	output := newTestRenderer(t).Departments([]domain.Department{
		{ID: "dep-1", Name: "Billing", SortOrder: 2, Active: true},
	})

	assert.Contains(t, output, "Departments")
	assert.Contains(t, output, "Billing")
	assert.Contains(t, output, "Active")
}

func TestSettingsMaskBotToken(t *testing.T) {
	output := newTestRenderer(t).Settings(domain.Settings{
		"bot_token":               "123456:ABCDEFwxyz",
		"payment_timeout_minutes": 30,
		"welcome_message":         nil,
	})

	assert.NotContains(t, output, "123456:ABCDEF")
	assert.Contains(t, output, "********wxyz")
	assert.Contains(t, output, "payment_timeout_minutes")
	assert.Less(t, strings.Index(output, "bot_token"), strings.Index(output, "welcome_message"))
}
