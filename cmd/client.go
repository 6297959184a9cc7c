package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	clientsrender "github.com/bnema/vpnadm/internal/adapters/render/clients"
	"github.com/bnema/vpnadm/internal/application"
	"github.com/bnema/vpnadm/internal/domain"
	"github.com/skip2/go-qrcode"
	"github.com/spf13/cobra"
)

func newClientCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "client",
		Aliases: []string{"clients"},
		Short:   "Manage WireGuard clients",
	}

	cmd.AddCommand(
		newClientListCmd(app),
		newClientShowCmd(app),
		newClientCreateCmd(app),
		newClientEditCmd(app),
		newClientDeleteCmd(app),
		newClientActionCmd(app, "enable", "Enable a client", "", func(ctx context.Context, svc *application.ClientService, id domain.ClientID) (application.ClientView, error) {
			return svc.SetEnabled(ctx, id, true)
		}),
		newClientActionCmd(app, "disable", "Disable a client", "", func(ctx context.Context, svc *application.ClientService, id domain.ClientID) (application.ClientView, error) {
			return svc.SetEnabled(ctx, id, false)
		}),
		newClientActionCmd(app, "reset-data", "Zero a client's data usage", "", func(ctx context.Context, svc *application.ClientService, id domain.ClientID) (application.ClientView, error) {
			return svc.ResetData(ctx, id)
		}),
		newClientResetExpiryCmd(app),
		newClientActionCmd(app, "remove-expiry", "Remove a client's expiry date", "", func(ctx context.Context, svc *application.ClientService, id domain.ClientID) (application.ClientView, error) {
			return svc.RemoveExpiry(ctx, id)
		}),
		newClientActionCmd(app, "reset-timer", "Restart the wait for first connection", "", func(ctx context.Context, svc *application.ClientService, id domain.ClientID) (application.ClientView, error) {
			return svc.ResetTimer(ctx, id)
		}),
		newClientActionCmd(app, "full-reset", "Reset usage, expiry and timer together", "prompt.full_reset", func(ctx context.Context, svc *application.ClientService, id domain.ClientID) (application.ClientView, error) {
			return svc.FullReset(ctx, id)
		}),
		newClientConfigCmd(app),
		newClientQRCodeCmd(app),
	)

	return cmd
}

func newClientListCmd(app *app) *cobra.Command {
	var (
		filter application.ClientFilter
		status string
		tag    string
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List clients with their status, usage and expiry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if status != "" {
				parsed, err := domain.ParseStatus(status)
				if err != nil {
					return err
				}
				filter.Status = parsed
			}
			if tag != "" {
				parsed, err := domain.ParseTag(tag)
				if err != nil {
					return err
				}
				filter.Tag = parsed
			}

			svc, _, err := app.clientService(cmd.Context())
			if err != nil {
				return err
			}

			var views []application.ClientView
			fetch := func(ctx context.Context) error {
				views, err = svc.List(ctx, filter)
				return err
			}
			if asJSON {
				err = fetch(cmd.Context())
			} else {
				err = withSpinner(cmd.Context(), cmd.ErrOrStderr(), "Fetching clients...", fetch)
			}
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, views)
			}
			return writeClientList(cmd, app, views)
		},
	}

	cmd.Flags().StringVarP(&filter.Search, "search", "s", "", "Match name, email or address")
	cmd.Flags().StringVar(&status, "status", "", "Only clients in this status: active, disabled, expired, data_limit_reached")
	cmd.Flags().StringVar(&tag, "tag", "", "Only clients with this tag: online, waiting_for_connect")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func newClientShowCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one client",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := app.clientService(cmd.Context())
			if err != nil {
				return err
			}

			view, err := svc.Get(cmd.Context(), domain.ClientID(args[0]))
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, view)
			}
			return writeClientDetail(cmd, app, view)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")
	return cmd
}

func newClientCreateCmd(app *app) *cobra.Command {
	var flags clientFormFlags

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a client",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			form := domain.ClientForm{
				DataLimit:          domain.DataLimitField{Unit: domain.UnitGB},
				AutoRenewDataLimit: domain.DataLimitField{Unit: domain.UnitGB},
			}
			if err := flags.apply(cmd, &form); err != nil {
				return err
			}

			svc, _, err := app.clientService(cmd.Context())
			if err != nil {
				return err
			}

			view, err := svc.Create(cmd.Context(), form)
			if err != nil {
				return err
			}
			return writeClientDetail(cmd, app, view)
		},
	}

	flags.register(cmd)
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newClientEditCmd(app *app) *cobra.Command {
	var flags clientFormFlags

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a client; only the given flags change",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := domain.ClientID(args[0])

			svc, _, err := app.clientService(cmd.Context())
			if err != nil {
				return err
			}

			form, err := svc.EditForm(cmd.Context(), id)
			if err != nil {
				return err
			}
			if err := flags.apply(cmd, &form); err != nil {
				return err
			}

			view, err := svc.Update(cmd.Context(), id, form)
			if err != nil {
				return err
			}
			return writeClientDetail(cmd, app, view)
		},
	}

	flags.register(cmd)
	return cmd
}

func newClientDeleteCmd(app *app) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a client",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := domain.ClientID(args[0])

			svc, _, err := app.clientService(cmd.Context())
			if err != nil {
				return err
			}

			ok, err := confirmClientAction(cmd, app, svc, id, "prompt.delete_client", yes)
			if err != nil || !ok {
				return err
			}

			remaining, err := svc.Delete(cmd.Context(), id)
			if err != nil {
				return err
			}
			return writeClientList(cmd, app, remaining)
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask for confirmation")
	return cmd
}

type clientAction func(ctx context.Context, svc *application.ClientService, id domain.ClientID) (application.ClientView, error)

// newClientActionCmd builds a one-shot client action. A non-empty promptKey
// makes the action ask for confirmation unless --yes is given.
func newClientActionCmd(app *app, use, short, promptKey string, action clientAction) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   use + " <id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := domain.ClientID(args[0])

			svc, _, err := app.clientService(cmd.Context())
			if err != nil {
				return err
			}

			if promptKey != "" {
				ok, err := confirmClientAction(cmd, app, svc, id, promptKey, yes)
				if err != nil || !ok {
					return err
				}
			}

			view, err := action(cmd.Context(), svc, id)
			if err != nil {
				return err
			}
			return writeClientDetail(cmd, app, view)
		},
	}

	if promptKey != "" {
		cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask for confirmation")
	}
	return cmd
}

func newClientResetExpiryCmd(app *app) *cobra.Command {
	var days int

	cmd := newClientActionCmd(app, "reset-expiry", "Restart a client's expiry window", "", func(ctx context.Context, svc *application.ClientService, id domain.ClientID) (application.ClientView, error) {
		return svc.ResetExpiry(ctx, id, days)
	})
	cmd.Flags().IntVar(&days, "days", application.DefaultExpiryResetDays, "Length of the new window in days")

	return cmd
}

func newClientConfigCmd(app *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "config <id>",
		Short: "Download a client's WireGuard configuration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := app.clientService(cmd.Context())
			if err != nil {
				return err
			}

			file, err := svc.DownloadConfig(cmd.Context(), domain.ClientID(args[0]))
			if err != nil {
				return err
			}

			if output == "" || output == "-" {
				_, err := cmd.OutOrStdout().Write(file.Content)
				return err
			}

			path := output
			if info, err := os.Stat(output); err == nil && info.IsDir() {
				path = filepath.Join(output, file.Name)
			}
			if err := os.WriteFile(path, file.Content, 0o600); err != nil {
				return fmt.Errorf("write config: %w", err)
			}
			return writeLine(cmd, "Saved %s", path)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "File or directory to write to (default: stdout)")
	return cmd
}

func newClientQRCodeCmd(app *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "qrcode <id>",
		Short: "Show a client's configuration as a QR code",
		Long:  "Without --output the configuration is drawn as a QR code in the terminal. With --output the panel's PNG is saved.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := domain.ClientID(args[0])

			svc, _, err := app.clientService(cmd.Context())
			if err != nil {
				return err
			}

			if output != "" {
				png, err := svc.QRCode(cmd.Context(), id)
				if err != nil {
					return err
				}
				if err := os.WriteFile(output, png, 0o600); err != nil {
					return fmt.Errorf("write qr code: %w", err)
				}
				return writeLine(cmd, "Saved %s", output)
			}

			file, err := svc.DownloadConfig(cmd.Context(), id)
			if err != nil {
				return err
			}
			code, err := qrcode.New(string(file.Content), qrcode.Medium)
			if err != nil {
				return fmt.Errorf("encode qr code: %w", err)
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), code.ToSmallString(false))
			return err
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Save the panel's PNG to this file")
	return cmd
}

func confirmClientAction(cmd *cobra.Command, app *app, svc *application.ClientService, id domain.ClientID, promptKey string, yes bool) (bool, error) {
	if yes {
		return true, nil
	}

	view, err := svc.Get(cmd.Context(), id)
	if err != nil {
		return false, err
	}

	tr := app.translator(cmd.Context())
	ok, err := confirm(cmd, tr, tr.T(promptKey, "Name=="+view.Client.Name))
	if err != nil {
		return false, err
	}
	if !ok {
		return false, writeLine(cmd, "%s", tr.T("prompt.aborted"))
	}
	return true, nil
}

func writeClientList(cmd *cobra.Command, app *app, views []application.ClientView) error {
	rendered, err := clientsrender.RenderList(views, clientsrender.Options{Labels: app.translator(cmd.Context())})
	if err != nil {
		return fmt.Errorf("render clients: %w", err)
	}
	return writeLine(cmd, "%s", rendered)
}

func writeClientDetail(cmd *cobra.Command, app *app, view application.ClientView) error {
	rendered, err := clientsrender.RenderDetail(view, clientsrender.Options{Labels: app.translator(cmd.Context())})
	if err != nil {
		return fmt.Errorf("render client: %w", err)
	}
	return writeLine(cmd, "%s", rendered)
}

// clientFormFlags maps flags onto a ClientForm. Only flags the user set are
// applied, so edit keeps every other field as stored.
type clientFormFlags struct {
	name                string
	email               string
	note                string
	limit               string
	unit                string
	noLimit             bool
	expiry              string
	noExpiry            bool
	startOnFirstConnect bool
	expiryDays          int
	autoRenew           bool
	autoRenewDays       int
	autoRenewLimit      string
	autoRenewUnit       string
}

func (f *clientFormFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&f.name, "name", "", "Client name")
	flags.StringVar(&f.email, "email", "", "Contact email")
	flags.StringVar(&f.note, "note", "", "Free-form note")
	flags.StringVar(&f.limit, "limit", "", "Data limit value; empty means unlimited")
	flags.StringVar(&f.unit, "unit", string(domain.UnitGB), "Data limit unit: Bytes, KB, MB, GB, TB")
	flags.BoolVar(&f.noLimit, "no-limit", false, "Remove the data limit")
	flags.StringVar(&f.expiry, "expiry", "", "Expiry date, YYYY-MM-DD or RFC 3339")
	flags.BoolVar(&f.noExpiry, "no-expiry", false, "Clear the expiry date")
	flags.BoolVar(&f.startOnFirstConnect, "start-on-first-connect", false, "Start the expiry window on first connection")
	flags.IntVar(&f.expiryDays, "expiry-days", 0, "Days of validity after first connection")
	flags.BoolVar(&f.autoRenew, "auto-renew", false, "Renew automatically when data or time runs out")
	flags.IntVar(&f.autoRenewDays, "auto-renew-days", 0, "Days added on each renewal")
	flags.StringVar(&f.autoRenewLimit, "auto-renew-limit", "", "Data limit set on each renewal; empty keeps the current one")
	flags.StringVar(&f.autoRenewUnit, "auto-renew-unit", string(domain.UnitGB), "Unit of --auto-renew-limit")
	cmd.MarkFlagsMutuallyExclusive("limit", "no-limit")
	cmd.MarkFlagsMutuallyExclusive("expiry", "no-expiry")
}

func (f *clientFormFlags) apply(cmd *cobra.Command, form *domain.ClientForm) error {
	changed := cmd.Flags().Changed

	if changed("name") {
		form.Name = f.name
	}
	if changed("email") {
		form.Email = f.email
	}
	if changed("note") {
		form.Note = f.note
	}

	if changed("limit") || changed("unit") {
		unit, err := parseUnitFlag(f.unit)
		if err != nil {
			return err
		}
		if changed("limit") {
			form.DataLimit.Value = f.limit
		}
		form.DataLimit.Unit = unit
	}
	if f.noLimit {
		form.DataLimit.Value = ""
	}

	if changed("expiry") {
		at, err := parseDateFlag(f.expiry)
		if err != nil {
			return err
		}
		form.ExpiryDate = domain.Some(at)
	}
	if f.noExpiry {
		form.ExpiryDate = domain.None[time.Time]()
	}

	if changed("start-on-first-connect") {
		form.StartOnFirstConnect = f.startOnFirstConnect
	}
	if changed("expiry-days") {
		form.ExpiryDays = domain.Some(f.expiryDays)
	}

	if changed("auto-renew") {
		form.AutoRenew = f.autoRenew
	}
	if changed("auto-renew-days") {
		form.AutoRenewDays = domain.Some(f.autoRenewDays)
	}
	if changed("auto-renew-limit") || changed("auto-renew-unit") {
		unit, err := parseUnitFlag(f.autoRenewUnit)
		if err != nil {
			return err
		}
		if changed("auto-renew-limit") {
			form.AutoRenewDataLimit.Value = f.autoRenewLimit
		}
		form.AutoRenewDataLimit.Unit = unit
	}

	return nil
}

func parseUnitFlag(raw string) (domain.Unit, error) {
	unit, ok := domain.ParseUnit(raw)
	if !ok {
		return "", fmt.Errorf("unknown unit %q", raw)
	}
	return unit, nil
}

func parseDateFlag(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if at, err := time.Parse(time.RFC3339, raw); err == nil {
		return at.UTC(), nil
	}
	at, err := time.ParseInLocation(time.DateOnly, raw, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse expiry %q: use YYYY-MM-DD or RFC 3339", raw)
	}
	return at.UTC(), nil
}
