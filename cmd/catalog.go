package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	catalogrender "github.com/bnema/vpnadm/internal/adapters/render/catalog"
	"github.com/bnema/vpnadm/internal/application"
	"github.com/bnema/vpnadm/internal/domain"
	"github.com/spf13/cobra"
)

// catalogList wires a read-only list command: fetch behind a spinner, then
// either JSON or a rendered table.
type catalogList[T any] struct {
	use     string
	short   string
	loading string
	fetch   func(ctx context.Context, svc *application.CatalogService) ([]T, error)
	render  func(r *catalogrender.Renderer, items []T) string
}

func (l catalogList[T]) command(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   l.use,
		Short: l.short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := app.catalogService(cmd.Context())
			if err != nil {
				return err
			}

			var items []T
			fetch := func(ctx context.Context) error {
				items, err = l.fetch(ctx, svc)
				return err
			}
			if asJSON {
				err = fetch(cmd.Context())
			} else {
				err = withSpinner(cmd.Context(), cmd.ErrOrStderr(), l.loading, fetch)
			}
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, items)
			}
			return writeLine(cmd, "%s", l.render(app.catalogRenderer(cmd.Context()), items))
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")
	return cmd
}

func (a *app) catalogRenderer(ctx context.Context) *catalogrender.Renderer {
	return catalogrender.NewRenderer(a.translator(ctx), a.now)
}

func newDashboardCmd(app *app) *cobra.Command {
	var (
		asJSON bool
		chart  bool
		days   int
	)

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show panel totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := app.catalogService(cmd.Context())
			if err != nil {
				return err
			}
			chart = chart || cmd.Flags().Changed("days")

			var (
				stats  domain.DashboardStats
				points []domain.ChartPoint
			)
			fetch := func(ctx context.Context) error {
				if stats, err = svc.Dashboard(ctx); err != nil {
					return err
				}
				if chart {
					points, err = svc.DashboardChart(ctx, days)
				}
				return err
			}
			if asJSON {
				err = fetch(cmd.Context())
			} else {
				err = withSpinner(cmd.Context(), cmd.ErrOrStderr(), "Fetching dashboard...", fetch)
			}
			if err != nil {
				return err
			}

			if asJSON {
				if chart {
					return writeJSON(cmd, struct {
						Stats domain.DashboardStats `json:"stats"`
						Chart []domain.ChartPoint   `json:"chart"`
					}{stats, points})
				}
				return writeJSON(cmd, stats)
			}

			r := app.catalogRenderer(cmd.Context())
			if chart {
				return writeLine(cmd, "%s\n\n%s", r.Dashboard(stats), r.Chart(points))
			}
			return writeLine(cmd, "%s", r.Dashboard(stats))
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")
	cmd.Flags().BoolVar(&chart, "chart", false, "Also show daily revenue, orders and new users")
	cmd.Flags().IntVar(&days, "days", 7, "Days covered by the chart")
	return cmd
}

func newPlanCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{Use: "plan", Aliases: []string{"plans"}, Short: "Subscription plans"}
	cmd.AddCommand(catalogList[domain.Plan]{
		use:     "list",
		short:   "List plans",
		loading: "Fetching plans...",
		fetch: func(ctx context.Context, svc *application.CatalogService) ([]domain.Plan, error) {
			return svc.Plans(ctx)
		},
		render: (*catalogrender.Renderer).Plans,
	}.command(app))
	cmd.AddCommand(planEditor().commands(app)...)
	return cmd
}

func newServerCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{Use: "server", Aliases: []string{"servers"}, Short: "WireGuard servers"}
	cmd.AddCommand(catalogList[domain.Server]{
		use:     "list",
		short:   "List servers",
		loading: "Fetching servers...",
		fetch: func(ctx context.Context, svc *application.CatalogService) ([]domain.Server, error) {
			return svc.Servers(ctx)
		},
		render: (*catalogrender.Renderer).Servers,
	}.command(app))
	cmd.AddCommand(serverEditor().commands(app)...)
	cmd.AddCommand(newServerTestCmd(app))
	return cmd
}

func newOrderCmd(app *app) *cobra.Command {
	var status string

	list := catalogList[domain.Order]{
		use:     "list",
		short:   "List orders",
		loading: "Fetching orders...",
		fetch: func(ctx context.Context, svc *application.CatalogService) ([]domain.Order, error) {
			return svc.Orders(ctx, domain.OrderStatus(strings.TrimSpace(status)))
		},
		render: (*catalogrender.Renderer).Orders,
	}.command(app)
	list.Flags().StringVar(&status, "status", "", "Only orders in this status: pending, paid, confirmed, cancelled, expired")

	cmd := &cobra.Command{Use: "order", Aliases: []string{"orders"}, Short: "Customer orders"}
	cmd.AddCommand(list)
	return cmd
}

func newPaymentCmd(app *app) *cobra.Command {
	var status string

	list := catalogList[domain.Payment]{
		use:     "list",
		short:   "List payments",
		loading: "Fetching payments...",
		fetch: func(ctx context.Context, svc *application.CatalogService) ([]domain.Payment, error) {
			return svc.Payments(ctx, domain.PaymentStatus(strings.TrimSpace(status)))
		},
		render: (*catalogrender.Renderer).Payments,
	}.command(app)
	list.Flags().StringVar(&status, "status", "", "Only payments in this status: pending, approved, rejected")

	cmd := &cobra.Command{Use: "payment", Aliases: []string{"payments"}, Short: "Payment receipts"}
	cmd.AddCommand(
		list,
		newPaymentReviewCmd(app, application.ReviewApprove, "Approve a pending payment"),
		newPaymentReviewCmd(app, application.ReviewReject, "Reject a pending payment"),
	)
	return cmd
}

func newPaymentReviewCmd(app *app, decision application.ReviewDecision, short string) *cobra.Command {
	var note string

	cmd := &cobra.Command{
		Use:   string(decision) + " <id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := app.catalogService(cmd.Context())
			if err != nil {
				return err
			}
			if err := svc.ReviewPayment(cmd.Context(), args[0], decision, note); err != nil {
				return err
			}

			status, _ := decision.Status()
			return writeLine(cmd, "Payment %s %s", args[0], status)
		},
	}

	cmd.Flags().StringVar(&note, "note", "", "Note stored with the review")
	return cmd
}

func newCodeCmd(app *app) *cobra.Command {
	var usable bool

	list := catalogList[domain.DiscountCode]{
		use:     "list",
		short:   "List discount codes",
		loading: "Fetching discount codes...",
		fetch: func(ctx context.Context, svc *application.CatalogService) ([]domain.DiscountCode, error) {
			return svc.DiscountCodes(ctx, usable)
		},
		render: (*catalogrender.Renderer).DiscountCodes,
	}.command(app)
	list.Flags().BoolVar(&usable, "usable", false, "Only active codes that are neither used up nor expired")

	cmd := &cobra.Command{Use: "code", Aliases: []string{"codes"}, Short: "Discount codes"}
	cmd.AddCommand(list)
	cmd.AddCommand(discountCodeEditor().commands(app)...)
	return cmd
}

func newTicketCmd(app *app) *cobra.Command {
	var status string

	list := catalogList[domain.Ticket]{
		use:     "list",
		short:   "List support tickets",
		loading: "Fetching tickets...",
		fetch: func(ctx context.Context, svc *application.CatalogService) ([]domain.Ticket, error) {
			return svc.Tickets(ctx, domain.TicketStatus(strings.TrimSpace(status)))
		},
		render: (*catalogrender.Renderer).Tickets,
	}.command(app)
	list.Flags().StringVar(&status, "status", "", "Only tickets in this status: open, answered, waiting, closed")

	reply := &cobra.Command{
		Use:   "reply <id> <message...>",
		Short: "Answer a ticket",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := app.catalogService(cmd.Context())
			if err != nil {
				return err
			}
			if err := svc.ReplyTicket(cmd.Context(), args[0], strings.Join(args[1:], " ")); err != nil {
				return err
			}
			return writeLine(cmd, "Replied to ticket %s", args[0])
		},
	}

	setStatus := &cobra.Command{
		Use:   "status <id> <status>",
		Short: "Change a ticket's status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := app.catalogService(cmd.Context())
			if err != nil {
				return err
			}
			status := domain.TicketStatus(strings.ToLower(strings.TrimSpace(args[1])))
			if err := svc.SetTicketStatus(cmd.Context(), args[0], status); err != nil {
				return err
			}
			return writeLine(cmd, "Ticket %s is now %s", args[0], status)
		},
	}

	cmd := &cobra.Command{Use: "ticket", Aliases: []string{"tickets"}, Short: "Support tickets"}
	cmd.AddCommand(list, newTicketShowCmd(app), reply, setStatus)
	return cmd
}

func newResellerCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{Use: "reseller", Aliases: []string{"resellers"}, Short: "Resellers"}
	cmd.AddCommand(catalogList[domain.Reseller]{
		use:     "list",
		short:   "List resellers",
		loading: "Fetching resellers...",
		fetch: func(ctx context.Context, svc *application.CatalogService) ([]domain.Reseller, error) {
			return svc.Resellers(ctx)
		},
		render: (*catalogrender.Renderer).Resellers,
	}.command(app))
	cmd.AddCommand(resellerEditor().commands(app)...)
	cmd.AddCommand(newResellerBalanceCmd(app))
	return cmd
}

func newUserCmd(app *app) *cobra.Command {
	var search string

	list := catalogList[domain.TelegramUser]{
		use:     "list",
		short:   "List Telegram bot users",
		loading: "Fetching users...",
		fetch: func(ctx context.Context, svc *application.CatalogService) ([]domain.TelegramUser, error) {
			return svc.Users(ctx, search)
		},
		render: (*catalogrender.Renderer).Users,
	}.command(app)
	list.Flags().StringVarP(&search, "search", "s", "", "Match username, name or Telegram ID")

	ban := &cobra.Command{
		Use:   "ban <telegram-id>",
		Short: "Toggle a user's ban",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			telegramID, err := parseTelegramID(args[0])
			if err != nil {
				return err
			}
			svc, err := app.catalogService(cmd.Context())
			if err != nil {
				return err
			}
			if err := svc.ToggleUserBan(cmd.Context(), telegramID); err != nil {
				return err
			}
			return writeLine(cmd, "Toggled ban for %d", telegramID)
		},
	}

	wallet := &cobra.Command{
		Use:   "wallet <telegram-id> <amount>",
		Short: "Set a user's wallet balance",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			telegramID, err := parseTelegramID(args[0])
			if err != nil {
				return err
			}
			amount, err := strconv.ParseFloat(strings.TrimSpace(args[1]), 64)
			if err != nil {
				return fmt.Errorf("parse amount %q: %w", args[1], err)
			}
			svc, err := app.catalogService(cmd.Context())
			if err != nil {
				return err
			}
			if err := svc.SetUserWallet(cmd.Context(), telegramID, amount); err != nil {
				return err
			}
			return writeLine(cmd, "Wallet of %d set to %s", telegramID, app.translator(cmd.Context()).Price(amount))
		},
	}

	cmd := &cobra.Command{Use: "user", Aliases: []string{"users"}, Short: "Telegram bot users"}
	cmd.AddCommand(list, ban, wallet)
	return cmd
}

func parseTelegramID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("telegram id %q is not a number: %w", raw, err)
	}
	return id, nil
}
