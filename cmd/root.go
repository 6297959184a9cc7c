package cmd

import (
	"github.com/bnema/vpnadm/internal/domain"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	var (
		profile string
		lang    string
		verbose bool
	)

	rootCmd := &cobra.Command{
		Use:           "vpnadm",
		Short:         "Operator console for a VPN reselling panel",
		Long:          "vpnadm logs in to a VPN reselling panel and manages WireGuard clients, their usage and expiry, and the panel's plans, orders, payments, tickets and users from the terminal.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	rootCmd.PersistentFlags().StringVar(&profile, "profile", "", "Profile to use (default: the active profile)")
	rootCmd.PersistentFlags().StringVar(&lang, "locale", "", "Output language: en or fa")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log panel requests to stderr")

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		app.profile = domain.ProfileName(profile)
		app.lang = lang
		app.log.SetOutput(cmd.ErrOrStderr())
		if verbose {
			app.log.SetLevel(logrus.DebugLevel)
		}
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newLoginCmd(app),
		newLogoutCmd(app),
		newWhoamiCmd(app),
		newProfileCmd(app),
		newClientCmd(app),
		newSubCmd(app),
		newDashboardCmd(app),
		newPlanCmd(app),
		newServerCmd(app),
		newOrderCmd(app),
		newPaymentCmd(app),
		newCodeCmd(app),
		newTicketCmd(app),
		newResellerCmd(app),
		newUserCmd(app),
		newDepartmentCmd(app),
		newSettingsCmd(app),
	)

	return rootCmd
}
