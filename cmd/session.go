package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/vpnadm/internal/application"
	"github.com/bnema/vpnadm/internal/domain"
	"github.com/spf13/cobra"
)

const passwordEnv = "VPNADM_PASSWORD"

func newLoginCmd(app *app) *cobra.Command {
	var (
		baseURL       string
		username      string
		passwordStdin bool
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in to the panel and save the token in the active profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			password := envOrDefault(passwordEnv, "")
			if passwordStdin || password == "" {
				if !passwordStdin {
					_, _ = fmt.Fprint(cmd.ErrOrStderr(), "Password: ")
				}
				line, err := readLine(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read password: %w", err)
				}
				password = line
			}
			if password == "" {
				return errors.New("password is empty")
			}

			url := baseURL
			if url == "" {
				url = app.config.APIURL
			}

			name := app.profile
			if name == "" {
				active, err := app.profiles.Active(cmd.Context())
				if err != nil {
					return err
				}
				name = active
			}

			profile, err := app.sessions.Login(cmd.Context(), application.LoginCommand{
				Profile:  name,
				BaseURL:  url,
				Username: username,
				Password: password,
				Locale:   app.lang,
			})
			if err != nil {
				return err
			}

			return writeLine(cmd, "Logged in as %s (%s) on %s, profile %q", profile.Username, profile.Role.Label(), profile.BaseURL, profile.Name)
		},
	}

	cmd.Flags().StringVar(&baseURL, "url", "", "Panel API URL (default: api.url from config)")
	cmd.Flags().StringVarP(&username, "username", "u", "", "Operator username")
	cmd.Flags().BoolVar(&passwordStdin, "password-stdin", false, "Read the password from stdin")
	_ = cmd.MarkFlagRequired("username")

	return cmd
}

func newLogoutCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored token of the profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.sessions.Logout(cmd.Context(), app.profile); err != nil {
				return err
			}
			return writeLine(cmd, "Logged out")
		},
	}
}

func newWhoamiCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the operator behind the stored token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			operator, err := app.sessions.Whoami(cmd.Context(), app.profile)
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd, operator)
			}
			return writeLine(cmd, "%s (%s)", operator.Username, operator.Role.Label())
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")
	return cmd
}

func newProfileCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage saved panel profiles",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List profiles",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				profiles, active, err := app.sessions.Profiles(cmd.Context())
				if err != nil {
					return err
				}
				for _, profile := range profiles {
					marker := " "
					if profile.Name == active {
						marker = "*"
					}
					state := "logged out"
					if profile.LoggedIn() {
						state = fmt.Sprintf("%s (%s)", profile.Username, profile.Role.Label())
					}
					if err := writeLine(cmd, "%s %s\t%s\t%s", marker, profile.Name, profile.BaseURL, state); err != nil {
						return err
					}
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "use <name>",
			Short: "Make a profile the active one",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				name := domain.ProfileName(strings.TrimSpace(args[0]))
				if err := app.sessions.Use(cmd.Context(), name); err != nil {
					return err
				}
				return writeLine(cmd, "Active profile: %s", name)
			},
		},
	)

	return cmd
}
