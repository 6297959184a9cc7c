package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	catalogrender "github.com/bnema/vpnadm/internal/adapters/render/catalog"
	"github.com/bnema/vpnadm/internal/application"
	"github.com/bnema/vpnadm/internal/domain"
	"github.com/spf13/cobra"
)

// formFlags maps flags onto a form. Only flags the user set are applied, so
// edit keeps every other field as stored.
type formFlags[F any] interface {
	register(cmd *cobra.Command)
	apply(cmd *cobra.Command, form *F) error
}

// catalogEditor wires create, edit and delete for one catalog section. The
// service funcs take the receiver first so method expressions fit.
type catalogEditor[F any, T any] struct {
	noun     string
	newFlags func() formFlags[F]
	newForm  func() F
	load     func(svc *application.CatalogService, ctx context.Context, id string) (F, error)
	create   func(svc *application.CatalogService, ctx context.Context, form F) (T, error)
	update   func(svc *application.CatalogService, ctx context.Context, id string, form F) (T, error)
	remove   func(svc *application.CatalogService, ctx context.Context, id string) error
	label    func(T) string
}

func (e catalogEditor[F, T]) commands(app *app) []*cobra.Command {
	return []*cobra.Command{e.createCommand(app), e.editCommand(app), e.deleteCommand(app)}
}

func (e catalogEditor[F, T]) createCommand(app *app) *cobra.Command {
	var asJSON bool
	flags := e.newFlags()

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a " + e.noun,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			form := e.newForm()
			if err := flags.apply(cmd, &form); err != nil {
				return err
			}

			svc, err := app.catalogService(cmd.Context())
			if err != nil {
				return err
			}
			item, err := e.create(svc, cmd.Context(), form)
			if err != nil {
				return err
			}
			return e.written(cmd, asJSON, "Created", item)
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")
	return cmd
}

func (e catalogEditor[F, T]) editCommand(app *app) *cobra.Command {
	var asJSON bool
	flags := e.newFlags()

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a " + e.noun + "; only the given flags change",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := app.catalogService(cmd.Context())
			if err != nil {
				return err
			}

			form, err := e.load(svc, cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if err := flags.apply(cmd, &form); err != nil {
				return err
			}

			item, err := e.update(svc, cmd.Context(), args[0], form)
			if err != nil {
				return err
			}
			return e.written(cmd, asJSON, "Updated", item)
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")
	return cmd
}

func (e catalogEditor[F, T]) deleteCommand(app *app) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a " + e.noun,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := app.catalogService(cmd.Context())
			if err != nil {
				return err
			}

			if !yes {
				tr := app.translator(cmd.Context())
				ok, err := confirm(cmd, tr, tr.T("prompt.delete_item", "Kind=="+e.noun, "Name=="+args[0]))
				if err != nil {
					return err
				}
				if !ok {
					return writeLine(cmd, "%s", tr.T("prompt.aborted"))
				}
			}

			if err := e.remove(svc, cmd.Context(), args[0]); err != nil {
				return err
			}
			return writeLine(cmd, "Deleted %s %s", e.noun, args[0])
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask for confirmation")
	return cmd
}

func (e catalogEditor[F, T]) written(cmd *cobra.Command, asJSON bool, verb string, item T) error {
	if asJSON {
		return writeJSON(cmd, item)
	}
	return writeLine(cmd, "%s %s %s", verb, e.noun, e.label(item))
}

func planEditor() catalogEditor[domain.PlanForm, domain.Plan] {
	return catalogEditor[domain.PlanForm, domain.Plan]{
		noun:     "plan",
		newFlags: func() formFlags[domain.PlanForm] { return &planFlags{} },
		newForm:  domain.NewPlanForm,
		load: func(svc *application.CatalogService, ctx context.Context, id string) (domain.PlanForm, error) {
			plan, err := svc.Plan(ctx, id)
			return domain.EditPlanForm(plan), err
		},
		create: (*application.CatalogService).CreatePlan,
		update: (*application.CatalogService).UpdatePlan,
		remove: (*application.CatalogService).DeletePlan,
		label:  func(p domain.Plan) string { return fmt.Sprintf("%s (%s)", p.Name, p.ID) },
	}
}

type planFlags struct {
	name        string
	description string
	price       float64
	days        int
	trafficGB   float64
	unlimited   bool
	userLimit   int
	servers     []string
	active      bool
	test        bool
	sortOrder   int
}

func (f *planFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&f.name, "name", "", "Plan name")
	flags.StringVar(&f.description, "description", "", "Description shown in the bot")
	flags.Float64Var(&f.price, "price", 0, "Price in toman")
	flags.IntVar(&f.days, "days", 0, "Duration in days")
	flags.Float64Var(&f.trafficGB, "traffic-gb", 0, "Traffic quota in GB")
	flags.BoolVar(&f.unlimited, "unlimited", false, "Remove the traffic quota")
	flags.IntVar(&f.userLimit, "user-limit", 1, "Concurrent users")
	flags.StringSliceVar(&f.servers, "server", nil, "Server ID the plan provisions on; repeatable")
	flags.BoolVar(&f.active, "active", true, "Offer the plan in the bot")
	flags.BoolVar(&f.test, "test", false, "Mark as a free test plan")
	flags.IntVar(&f.sortOrder, "sort-order", 0, "Position in the bot's plan list")
	cmd.MarkFlagsMutuallyExclusive("traffic-gb", "unlimited")
}

func (f *planFlags) apply(cmd *cobra.Command, form *domain.PlanForm) error {
	changed := cmd.Flags().Changed

	if changed("name") {
		form.Name = f.name
	}
	if changed("description") {
		form.Description = f.description
	}
	if changed("price") {
		form.Price = f.price
	}
	if changed("days") {
		form.DurationDays = f.days
	}
	if changed("traffic-gb") {
		form.TrafficGB = domain.Some(f.trafficGB)
	}
	if f.unlimited {
		form.TrafficGB = domain.None[float64]()
	}
	if changed("user-limit") {
		form.UserLimit = f.userLimit
	}
	if changed("server") {
		form.ServerIDs = trimAll(f.servers)
	}
	if changed("active") {
		form.Active = f.active
	}
	if changed("test") {
		form.Test = f.test
	}
	if changed("sort-order") {
		form.SortOrder = f.sortOrder
	}
	return nil
}

func serverEditor() catalogEditor[domain.ServerForm, domain.Server] {
	return catalogEditor[domain.ServerForm, domain.Server]{
		noun:     "server",
		newFlags: func() formFlags[domain.ServerForm] { return &serverFlags{} },
		newForm:  domain.NewServerForm,
		load: func(svc *application.CatalogService, ctx context.Context, id string) (domain.ServerForm, error) {
			server, err := svc.Server(ctx, id)
			return domain.EditServerForm(server), err
		},
		create: (*application.CatalogService).CreateServer,
		update: (*application.CatalogService).UpdateServer,
		remove: (*application.CatalogService).DeleteServer,
		label:  func(s domain.Server) string { return fmt.Sprintf("%s (%s)", s.Name, s.ID) },
	}
}

type serverFlags struct {
	name        string
	description string
	url         string
	username    string
	password    string
	active      bool
	maxUsers    int
	noMaxUsers  bool
}

func (f *serverFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&f.name, "name", "", "Server name")
	flags.StringVar(&f.description, "description", "", "Free-form description")
	flags.StringVar(&f.url, "url", "", "WireGuard panel URL")
	flags.StringVar(&f.username, "username", "", "WireGuard panel username")
	flags.StringVar(&f.password, "password", "", "WireGuard panel password")
	flags.BoolVar(&f.active, "active", true, "Allow provisioning on this server")
	flags.IntVar(&f.maxUsers, "max-users", 0, "Client capacity")
	flags.BoolVar(&f.noMaxUsers, "no-max-users", false, "Remove the capacity limit")
	cmd.MarkFlagsMutuallyExclusive("max-users", "no-max-users")
}

func (f *serverFlags) apply(cmd *cobra.Command, form *domain.ServerForm) error {
	changed := cmd.Flags().Changed

	if changed("name") {
		form.Name = f.name
	}
	if changed("description") {
		form.Description = f.description
	}
	if changed("url") {
		form.PanelURL = strings.TrimSpace(f.url)
	}
	if changed("username") {
		form.PanelUsername = f.username
	}
	if changed("password") {
		form.PanelPassword = f.password
	}
	if changed("active") {
		form.Active = f.active
	}
	if changed("max-users") {
		form.MaxUsers = domain.Some(f.maxUsers)
	}
	if f.noMaxUsers {
		form.MaxUsers = domain.None[int]()
	}
	return nil
}

func discountCodeEditor() catalogEditor[domain.DiscountCodeForm, domain.DiscountCode] {
	return catalogEditor[domain.DiscountCodeForm, domain.DiscountCode]{
		noun:     "discount code",
		newFlags: func() formFlags[domain.DiscountCodeForm] { return &discountCodeFlags{} },
		newForm:  domain.NewDiscountCodeForm,
		load: func(svc *application.CatalogService, ctx context.Context, id string) (domain.DiscountCodeForm, error) {
			code, err := svc.DiscountCode(ctx, id)
			return domain.EditDiscountCodeForm(code), err
		},
		create: (*application.CatalogService).CreateDiscountCode,
		update: (*application.CatalogService).UpdateDiscountCode,
		remove: (*application.CatalogService).DeleteDiscountCode,
		label:  func(c domain.DiscountCode) string { return fmt.Sprintf("%s (%s)", c.Code, c.ID) },
	}
}

type discountCodeFlags struct {
	code       string
	percent    float64
	amount     float64
	maxUses    int
	noMaxUses  bool
	validUntil string
	noExpiry   bool
	minOrder   float64
	noMinOrder bool
	plans      []string
	active     bool
}

func (f *discountCodeFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&f.code, "code", "", "Code customers type; stored upper-cased")
	flags.Float64Var(&f.percent, "percent", 0, "Percent off")
	flags.Float64Var(&f.amount, "amount", 0, "Fixed amount off, in toman")
	flags.IntVar(&f.maxUses, "max-uses", 0, "Total redemptions allowed")
	flags.BoolVar(&f.noMaxUses, "no-max-uses", false, "Allow unlimited redemptions")
	flags.StringVar(&f.validUntil, "valid-until", "", "Last valid date, YYYY-MM-DD or RFC 3339")
	flags.BoolVar(&f.noExpiry, "no-expiry", false, "Never expire")
	flags.Float64Var(&f.minOrder, "min-order", 0, "Minimum order amount")
	flags.BoolVar(&f.noMinOrder, "no-min-order", false, "Remove the minimum order amount")
	flags.StringSliceVar(&f.plans, "plan", nil, "Restrict to a plan ID; repeatable")
	flags.BoolVar(&f.active, "active", true, "Accept the code")
	cmd.MarkFlagsMutuallyExclusive("percent", "amount")
	cmd.MarkFlagsMutuallyExclusive("max-uses", "no-max-uses")
	cmd.MarkFlagsMutuallyExclusive("valid-until", "no-expiry")
	cmd.MarkFlagsMutuallyExclusive("min-order", "no-min-order")
}

func (f *discountCodeFlags) apply(cmd *cobra.Command, form *domain.DiscountCodeForm) error {
	changed := cmd.Flags().Changed

	if changed("code") {
		form.Code = f.code
	}
	// A code discounts by percent or by amount, never both.
	if changed("percent") {
		form.DiscountPercent = domain.Some(f.percent)
		form.DiscountAmount = domain.None[float64]()
	}
	if changed("amount") {
		form.DiscountAmount = domain.Some(f.amount)
		form.DiscountPercent = domain.None[float64]()
	}
	if changed("max-uses") {
		form.MaxUses = domain.Some(f.maxUses)
	}
	if f.noMaxUses {
		form.MaxUses = domain.None[int]()
	}
	if changed("valid-until") {
		at, err := parseDateFlag(f.validUntil)
		if err != nil {
			return err
		}
		form.ValidUntil = domain.Some(at)
	}
	if f.noExpiry {
		form.ValidUntil = domain.None[time.Time]()
	}
	if changed("min-order") {
		form.MinOrderAmount = domain.Some(f.minOrder)
	}
	if f.noMinOrder {
		form.MinOrderAmount = domain.None[float64]()
	}
	if changed("plan") {
		form.PlanIDs = trimAll(f.plans)
	}
	if changed("active") {
		form.Active = f.active
	}
	return nil
}

func resellerEditor() catalogEditor[domain.ResellerForm, domain.Reseller] {
	return catalogEditor[domain.ResellerForm, domain.Reseller]{
		noun:     "reseller",
		newFlags: func() formFlags[domain.ResellerForm] { return &resellerFlags{} },
		newForm:  domain.NewResellerForm,
		load: func(svc *application.CatalogService, ctx context.Context, id string) (domain.ResellerForm, error) {
			reseller, err := svc.Reseller(ctx, id)
			return domain.EditResellerForm(reseller), err
		},
		create: (*application.CatalogService).CreateReseller,
		update: (*application.CatalogService).UpdateReseller,
		remove: (*application.CatalogService).DeleteReseller,
		label: func(r domain.Reseller) string {
			return fmt.Sprintf("%d (%s)", r.TelegramUserID, r.ID)
		},
	}
}

type resellerFlags struct {
	telegramID string
	discount   float64
	credit     float64
	active     bool
}

func (f *resellerFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&f.telegramID, "telegram-id", "", "Telegram user ID of the reseller")
	flags.Float64Var(&f.discount, "discount", 10, "Percent off every purchase")
	flags.Float64Var(&f.credit, "credit", 0, "How far the balance may go negative")
	flags.BoolVar(&f.active, "active", true, "Allow the reseller to buy")
}

func (f *resellerFlags) apply(cmd *cobra.Command, form *domain.ResellerForm) error {
	changed := cmd.Flags().Changed

	if changed("telegram-id") {
		id, err := parseTelegramID(f.telegramID)
		if err != nil {
			return err
		}
		if form.TelegramUserID != 0 && form.TelegramUserID != id {
			return fmt.Errorf("%w: a reseller's telegram id cannot change", domain.ErrInvalidForm)
		}
		form.TelegramUserID = id
	}
	if changed("discount") {
		form.DiscountPercent = f.discount
	}
	if changed("credit") {
		form.CreditLimit = f.credit
	}
	if changed("active") {
		form.Active = f.active
	}
	return nil
}

func departmentEditor() catalogEditor[domain.DepartmentForm, domain.Department] {
	return catalogEditor[domain.DepartmentForm, domain.Department]{
		noun:     "department",
		newFlags: func() formFlags[domain.DepartmentForm] { return &departmentFlags{} },
		newForm:  domain.NewDepartmentForm,
		load: func(svc *application.CatalogService, ctx context.Context, id string) (domain.DepartmentForm, error) {
			department, err := svc.Department(ctx, id)
			return domain.EditDepartmentForm(department), err
		},
		create: (*application.CatalogService).CreateDepartment,
		update: (*application.CatalogService).UpdateDepartment,
		remove: (*application.CatalogService).DeleteDepartment,
		label:  func(d domain.Department) string { return fmt.Sprintf("%s (%s)", d.Name, d.ID) },
	}
}

type departmentFlags struct {
	name        string
	description string
	active      bool
	sortOrder   int
}

func (f *departmentFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&f.name, "name", "", "Department name")
	flags.StringVar(&f.description, "description", "", "Free-form description")
	flags.BoolVar(&f.active, "active", true, "Offer the department for new tickets")
	flags.IntVar(&f.sortOrder, "sort-order", 0, "Position in the bot's department list")
}

func (f *departmentFlags) apply(cmd *cobra.Command, form *domain.DepartmentForm) error {
	changed := cmd.Flags().Changed

	if changed("name") {
		form.Name = f.name
	}
	if changed("description") {
		form.Description = f.description
	}
	if changed("active") {
		form.Active = f.active
	}
	if changed("sort-order") {
		form.SortOrder = f.sortOrder
	}
	return nil
}

func newServerTestCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "test <id>",
		Short: "Check that the panel can log in to a server",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := app.catalogService(cmd.Context())
			if err != nil {
				return err
			}

			var result domain.ServerTestResult
			err = withSpinner(cmd.Context(), cmd.ErrOrStderr(), "Testing server...", func(ctx context.Context) error {
				result, err = svc.TestServer(ctx, args[0])
				return err
			})
			if err != nil {
				return err
			}

			if !result.OK() {
				return fmt.Errorf("server %s failed its connection test: %s", args[0], orDefault(result.Message, result.Status))
			}
			return writeLine(cmd, "Server %s: %s", args[0], orDefault(result.Message, "connection ok"))
		},
	}
}

func newResellerBalanceCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "balance <id> <amount>",
		Short: "Set a reseller's balance",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			balance, err := strconv.ParseFloat(strings.TrimSpace(args[1]), 64)
			if err != nil {
				return fmt.Errorf("parse balance %q: %w", args[1], err)
			}
			svc, err := app.catalogService(cmd.Context())
			if err != nil {
				return err
			}
			if err := svc.SetResellerBalance(cmd.Context(), args[0], balance); err != nil {
				return err
			}
			return writeLine(cmd, "Balance of reseller %s set to %s", args[0], app.translator(cmd.Context()).Price(balance))
		},
	}
}

func newSettingsCmd(app *app) *cobra.Command {
	var asJSON bool

	show := &cobra.Command{
		Use:   "show",
		Short: "Show bot settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := app.catalogService(cmd.Context())
			if err != nil {
				return err
			}
			settings, err := svc.Settings(cmd.Context())
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd, settings)
			}
			return writeLine(cmd, "%s", app.catalogRenderer(cmd.Context()).Settings(settings))
		},
	}
	show.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	set := &cobra.Command{
		Use:   "set <key=value>...",
		Short: "Change bot settings",
		Long:  "Change bot settings. Known keys: " + strings.Join(domain.SettingKeys(), ", ") + ".",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			patch, err := domain.ParseSettings(args)
			if err != nil {
				return err
			}
			svc, err := app.catalogService(cmd.Context())
			if err != nil {
				return err
			}
			settings, err := svc.UpdateSettings(cmd.Context(), patch)
			if err != nil {
				return err
			}
			return writeLine(cmd, "%s", app.catalogRenderer(cmd.Context()).Settings(settings))
		},
	}

	cmd := &cobra.Command{Use: "settings", Short: "Bot settings"}
	cmd.AddCommand(show, set)
	return cmd
}

func newDepartmentCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{Use: "department", Aliases: []string{"departments"}, Short: "Ticket departments"}
	cmd.AddCommand(catalogList[domain.Department]{
		use:     "list",
		short:   "List departments",
		loading: "Fetching departments...",
		fetch: func(ctx context.Context, svc *application.CatalogService) ([]domain.Department, error) {
			return svc.Departments(ctx)
		},
		render: (*catalogrender.Renderer).Departments,
	}.command(app))
	cmd.AddCommand(departmentEditor().commands(app)...)
	return cmd
}

func newTicketShowCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show a ticket with its conversation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := app.catalogService(cmd.Context())
			if err != nil {
				return err
			}
			ticket, err := svc.Ticket(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd, ticket)
			}
			return writeLine(cmd, "%s", app.catalogRenderer(cmd.Context()).Ticket(ticket))
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")
	return cmd
}

func trimAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, value := range values {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func orDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
