package cmd

import (
	"context"
	"fmt"

	"github.com/bnema/gfg-downloader/internal/domain"
	"github.com/spf13/cobra"
)

func newResolveCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <url>",
		Short: "Print the stream URL behind a page without downloading it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := domain.ValidateVideoURL(args[0]); err != nil {
				return err
			}

			settings := app.loadSettings(ctx)
			session, ok := app.authenticator.Authenticate(ctx, settings)
			if !ok {
				return domain.ErrAuthFailed
			}
			defer func() {
				if !app.authenticator.Deauthenticate(context.WithoutCancel(ctx), session) {
					app.logger.Warn("logout failed")
				}
			}()

			streamURL, err := app.resolver.Resolve(ctx, args[0], session)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), streamURL)
			return err
		},
	}
}
