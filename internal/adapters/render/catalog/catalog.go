// Package catalog renders the panel sections around clients as tables.
package catalog

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/bnema/vpnadm/internal/adapters/render"
	"github.com/bnema/vpnadm/internal/domain"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
)

type Renderer struct {
	labels  render.Labels
	palette render.Palette
	now     func() time.Time
}

func NewRenderer(labels render.Labels, now func() time.Time) *Renderer {
	if now == nil {
		now = time.Now
	}
	return &Renderer{labels: labels, palette: render.NewPalette(), now: now}
}

func (r *Renderer) Dashboard(stats domain.DashboardStats) string {
	l := r.labels
	rows := [][2]string{
		{l.T("catalog.total_users"), l.Number(int64(stats.TotalUsers))},
		{l.T("catalog.total_orders"), l.Number(int64(stats.TotalOrders))},
		{l.T("catalog.total_revenue"), l.Price(stats.TotalRevenue)},
		{l.T("catalog.pending_payments"), l.Number(int64(stats.PendingPayments))},
		{l.T("catalog.active_subscriptions"), l.Number(int64(stats.ActiveSubscriptions))},
		{l.T("catalog.open_tickets"), l.Number(int64(stats.OpenTickets))},
		{l.T("catalog.total_resellers"), l.Number(int64(stats.TotalResellers))},
	}
	today := fmt.Sprintf("%s: %s / %s / %s",
		l.T("catalog.today"),
		l.Number(int64(stats.TodayUsers)),
		l.Number(int64(stats.TodayOrders)),
		l.Price(stats.TodayRevenue),
	)

	width := 0
	for _, row := range rows {
		width = max(width, lipgloss.Width(row[0]))
	}

	lines := []string{r.palette.Title.Render(l.T("catalog.dashboard"))}
	for _, row := range rows {
		lines = append(lines, r.palette.Key.Width(width).Render(row[0])+"  "+r.palette.Value.Render(row[1]))
	}
	lines = append(lines, r.palette.Section.Render(r.palette.Header.Render(today)))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (r *Renderer) Plans(plans []domain.Plan) string {
	rows := make([][]string, 0, len(plans))
	for _, plan := range plans {
		traffic := r.labels.T("common.unlimited")
		if gb, ok := plan.TrafficGB.Get(); ok {
			traffic = strconv.FormatFloat(gb, 'f', -1, 64) + " GB"
		}
		name := plan.Name
		if plan.Test {
			name += " (test)"
		}
		rows = append(rows, []string{
			plan.ID,
			name,
			r.labels.Price(plan.Price),
			strconv.Itoa(plan.DurationDays) + "d",
			traffic,
			strconv.Itoa(plan.UserLimit),
			strconv.Itoa(plan.SalesCount),
			r.active(plan.Active),
		})
	}
	return r.table("Plans", []string{"ID", "Name", "Price", "Duration", "Traffic", "Users", "Sales", "State"}, rows)
}

func (r *Renderer) Servers(servers []domain.Server) string {
	rows := make([][]string, 0, len(servers))
	for _, server := range servers {
		capacity := strconv.Itoa(server.CurrentUsers)
		if limit, ok := server.MaxUsers.Get(); ok {
			capacity += " / " + strconv.Itoa(limit)
		}
		rows = append(rows, []string{server.ID, server.Name, server.PanelURL, capacity, r.active(server.Active)})
	}
	return r.table("Servers", []string{"ID", "Name", "Panel", "Users", "State"}, rows)
}

func (r *Renderer) Orders(orders []domain.Order) string {
	rows := make([][]string, 0, len(orders))
	for _, order := range orders {
		rows = append(rows, []string{
			order.ID,
			order.User.Display(),
			orDash(order.PlanName),
			r.labels.Price(order.FinalPrice),
			orDash(order.DiscountCode),
			string(order.Status),
			r.ago(order.CreatedAt),
		})
	}
	return r.table("Orders", []string{"ID", "User", "Plan", "Price", "Code", "Status", "Created"}, rows)
}

func (r *Renderer) Payments(payments []domain.Payment) string {
	rows := make([][]string, 0, len(payments))
	for _, payment := range payments {
		rows = append(rows, []string{
			payment.ID,
			payment.OrderID,
			payment.User.Display(),
			r.labels.Price(payment.Amount),
			orDash(payment.CardNumber),
			string(payment.Status),
			orDash(payment.AdminNote),
			r.ago(payment.CreatedAt),
		})
	}
	return r.table("Payments", []string{"ID", "Order", "User", "Amount", "Card", "Status", "Note", "Created"}, rows)
}

func (r *Renderer) DiscountCodes(codes []domain.DiscountCode) string {
	now := r.now()
	rows := make([][]string, 0, len(codes))
	for _, code := range codes {
		discount := "-"
		if percent, ok := code.DiscountPercent.Get(); ok {
			discount = strconv.FormatFloat(percent, 'f', -1, 64) + "%"
		} else if amount, ok := code.DiscountAmount.Get(); ok {
			discount = r.labels.Price(amount)
		}

		uses := strconv.Itoa(code.UsedCount)
		if limit, ok := code.MaxUses.Get(); ok {
			uses += " / " + strconv.Itoa(limit)
		}

		state := r.active(code.Active)
		switch {
		case code.Exhausted():
			state = "used up"
		case code.ExpiredAt(now):
			state = "expired"
		}

		validUntil := "-"
		if until, ok := code.ValidUntil.Get(); ok {
			validUntil = r.labels.Date(until)
		}

		rows = append(rows, []string{code.Code, discount, uses, validUntil, state})
	}
	return r.table("Discount codes", []string{"Code", "Discount", "Uses", "Valid until", "State"}, rows)
}

func (r *Renderer) Tickets(tickets []domain.Ticket) string {
	rows := make([][]string, 0, len(tickets))
	for _, ticket := range tickets {
		rows = append(rows, []string{
			ticket.ID,
			ticket.User.Display(),
			ticket.Subject,
			orDash(ticket.Department),
			string(ticket.Priority),
			string(ticket.Status),
			r.ago(ticket.CreatedAt),
		})
	}
	return r.table("Tickets", []string{"ID", "User", "Subject", "Department", "Priority", "Status", "Created"}, rows)
}

func (r *Renderer) Resellers(resellers []domain.Reseller) string {
	rows := make([][]string, 0, len(resellers))
	for _, reseller := range resellers {
		rows = append(rows, []string{
			reseller.ID,
			reseller.User.Display(),
			strconv.FormatFloat(reseller.DiscountPercent, 'f', -1, 64) + "%",
			r.labels.Price(reseller.Balance),
			r.labels.Price(reseller.CreditLimit),
			r.labels.Price(reseller.TotalSales),
			r.active(reseller.Active),
		})
	}
	return r.table("Resellers", []string{"ID", "User", "Discount", "Balance", "Credit", "Sales", "State"}, rows)
}

func (r *Renderer) Users(users []domain.TelegramUser) string {
	rows := make([][]string, 0, len(users))
	for _, user := range users {
		name := strings.TrimSpace(user.FirstName + " " + user.LastName)
		if user.Username != "" {
			name = strings.TrimSpace(name + " @" + user.Username)
		}

		flags := []string{}
		if user.Banned {
			flags = append(flags, r.labels.T("catalog.banned"))
		}
		if user.Reseller {
			flags = append(flags, "reseller")
		}

		rows = append(rows, []string{
			strconv.FormatInt(user.TelegramID, 10),
			orDash(name),
			r.labels.Price(user.WalletBalance),
			orDash(strings.Join(flags, ", ")),
			r.ago(user.CreatedAt),
		})
	}
	return r.table("Users", []string{"Telegram ID", "Name", "Wallet", "Flags", "Joined"}, rows)
}

const chartBarWidth = 20

// Chart renders the daily series as a table with a revenue bar per day.
func (r *Renderer) Chart(points []domain.ChartPoint) string {
	peak := 0.0
	for _, point := range points {
		peak = max(peak, point.Revenue)
	}

	rows := make([][]string, 0, len(points))
	for _, point := range points {
		filled := 0
		if peak > 0 {
			filled = int(point.Revenue / peak * chartBarWidth)
		}
		bar := r.palette.Highlight.Render(strings.Repeat("█", filled)) +
			r.palette.BarEmpty.Render(strings.Repeat("░", chartBarWidth-filled))
		rows = append(rows, []string{
			point.Date,
			r.labels.Price(point.Revenue),
			r.labels.Number(int64(point.Orders)),
			r.labels.Number(int64(point.Users)),
			bar,
		})
	}
	return r.table("Last "+strconv.Itoa(len(points))+" days", []string{"Date", "Revenue", "Orders", "Users", ""}, rows)
}

func (r *Renderer) Ticket(ticket domain.TicketDetail) string {
	p := r.palette
	lines := []string{
		p.Title.Render(ticket.Subject),
		p.Header.Render(fmt.Sprintf("%s · %s · %s · %s",
			ticket.User.Display(), orDash(ticket.Department), ticket.Priority, ticket.Status)),
	}
	if len(ticket.Messages) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, append(lines, p.Faint.Render("No messages."))...)
	}

	for _, msg := range ticket.Messages {
		author := ticket.User.Display()
		style := p.Key
		if msg.FromAdmin {
			author = "support"
			if msg.AdminUsername != "" {
				author = msg.AdminUsername
			}
			style = p.Highlight
		}
		lines = append(lines,
			p.Section.Render(style.Render(author)+"  "+p.Faint.Render(r.ago(msg.CreatedAt))),
			p.Value.Render(msg.Message),
		)
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (r *Renderer) Departments(departments []domain.Department) string {
	rows := make([][]string, 0, len(departments))
	for _, department := range departments {
		rows = append(rows, []string{
			department.ID,
			department.Name,
			orDash(department.Description),
			strconv.Itoa(department.SortOrder),
			r.active(department.Active),
		})
	}
	return r.table("Departments", []string{"ID", "Name", "Description", "Order", "State"}, rows)
}

// Settings lists the bot settings. Secrets show only their last characters.
func (r *Renderer) Settings(settings domain.Settings) string {
	rows := make([][]string, 0, len(settings))
	for _, key := range settings.Keys() {
		value := settings[key]
		text := "-"
		if value != nil {
			text = fmt.Sprint(value)
		}
		if key == "bot_token" && text != "-" {
			text = maskSecret(text)
		}
		rows = append(rows, []string{key, text})
	}
	return r.table("Settings", []string{"Key", "Value"}, rows)
}

func maskSecret(secret string) string {
	const visible = 4
	if len(secret) <= visible {
		return strings.Repeat("*", len(secret))
	}
	return strings.Repeat("*", 8) + secret[len(secret)-visible:]
}

func (r *Renderer) table(title string, headers []string, rows [][]string) string {
	p := r.palette
	lines := []string{p.Title.Render(title), p.Header.Render(fmt.Sprintf("rows: %d", len(rows)))}
	if len(rows) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, append(lines, p.Faint.Render("Nothing to show."))...)
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(p.Border).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			base := lipgloss.NewStyle().Padding(0, 1)
			if row == table.HeaderRow {
				return base.Inherit(p.Header)
			}
			return base
		})

	return lipgloss.JoinVertical(lipgloss.Left, append(lines, t.String())...)
}

func (r *Renderer) active(active bool) string {
	if active {
		return r.labels.T("common.active")
	}
	return r.labels.T("common.inactive")
}

func (r *Renderer) ago(at domain.Optional[time.Time]) string {
	t, ok := at.Get()
	if !ok {
		return "-"
	}
	return humanize.RelTime(t, r.now(), "ago", "from now")
}

func orDash(v string) string {
	if strings.TrimSpace(v) == "" {
		return "-"
	}
	return v
}
