package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/bnema/vpnadm/internal/adapters/render/subscription"
	"github.com/bnema/vpnadm/internal/application"
	"github.com/bnema/vpnadm/internal/domain"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func newSubCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "sub",
		Aliases: []string{"subscription"},
		Short:   "Read a client's public subscription page",
		Long:    "The subscription page needs no login. It is what end customers see when they open their subscription link.",
	}

	cmd.AddCommand(newSubShowCmd(app), newSubWatchCmd(app))
	return cmd
}

func newSubShowCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Print a subscription page once",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseSubscriptionID(args[0])
			if err != nil {
				return err
			}

			api := app.dialer.Dial(app.publicBaseURL(cmd.Context()), "")

			var sub domain.ClientSubscription
			fetch := func(ctx context.Context) error {
				sub, err = api.Subscription(ctx, id)
				return err
			}
			if asJSON {
				err = fetch(cmd.Context())
			} else {
				err = withSpinner(cmd.Context(), cmd.ErrOrStderr(), "Fetching subscription...", fetch)
			}
			if err != nil {
				return err
			}

			view := application.NewClientView(sub, app.clock.Now())
			if asJSON {
				return writeJSON(cmd, view)
			}
			return writeLine(cmd, "%s", subscription.RenderPage(view, subscription.Options{Labels: app.translator(cmd.Context())}))
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")
	return cmd
}

func newSubWatchCmd(app *app) *cobra.Command {
	var interval time.Duration

	cmd := &cobra.Command{
		Use:   "watch <id>",
		Short: "Keep a subscription page on screen and refresh it periodically",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseSubscriptionID(args[0])
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("interval") {
				interval = app.config.WatchInterval
			}

			watcher := application.NewSubscriptionWatcher(
				app.dialer.Dial(app.publicBaseURL(cmd.Context()), ""),
				id,
				application.WithWatchInterval(interval),
				application.WithWatchClock(app.clock),
				application.WithWatchLogger(app.log),
			)
			opts := subscription.Options{Labels: app.translator(cmd.Context())}

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			updates := watcher.Subscribe()
			done := make(chan error, 1)
			go func() {
				done <- watcher.Run(ctx)
			}()

			if isTerminal(cmd.OutOrStdout()) {
				refresh := func() { go watcher.Tick(ctx) }
				err = subscription.RunLive(ctx, updates, refresh, opts, cmd.InOrStdin(), cmd.OutOrStdout())
			} else {
				err = printUpdates(cmd, updates, opts)
			}
			cancel()

			return firstErr(err, <-done)
		},
	}

	cmd.Flags().DurationVar(&interval, "interval", application.DefaultWatchInterval, "Time between refreshes")
	return cmd
}

// printUpdates writes one page per update for pipes and logs.
func printUpdates(cmd *cobra.Command, updates <-chan application.WatchUpdate, opts subscription.Options) error {
	for update := range updates {
		if update.Err != nil {
			if err := writeLine(cmd, "%s: %v", opts.Labels.T("sub.fetch_failed"), update.Err); err != nil {
				return err
			}
			continue
		}
		if err := writeLine(cmd, "%s", subscription.RenderPage(update.View, opts)); err != nil {
			return err
		}
	}
	return nil
}

func parseSubscriptionID(raw string) (domain.ClientID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("subscription id %q is not a UUID: %w", raw, err)
	}
	return domain.ClientID(id.String()), nil
}

func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
