package cmd

import (
	"context"
	"fmt"

	"github.com/bnema/gfg-downloader/internal/domain"
	"github.com/spf13/cobra"
)

func newAuthCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Check GeeksforGeeks authentication",
	}

	cmd.AddCommand(newAuthCheckCmd(app))

	return cmd
}

func newAuthCheckCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Log in and out with the saved credentials",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			settings := app.loadSettings(ctx)
			if !settings.HasCredentials() {
				return domain.ErrMissingCredential
			}

			err := runStages(ctx, cmd.ErrOrStderr(), app.isTerminal(cmd.InOrStdin()), func(ctx context.Context, report func(string)) error {
				report("Logging in as " + settings.Email)
				session, ok := app.authenticator.Authenticate(ctx, settings)
				if !ok {
					return domain.ErrAuthFailed
				}

				report("Logging out")
				if !app.authenticator.Deauthenticate(context.WithoutCancel(ctx), session) {
					app.logger.Warn("logout failed")
				}
				return nil
			})
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s\n", settings.Email)
			return err
		},
	}
}
