package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	settingsrepo "github.com/bnema/gfg-downloader/internal/adapters/repo/settings"
	"github.com/spf13/cobra"
)

func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	return newRootCmdWith(newApp())
}

func newRootCmdWith(app *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "gfgdl",
		Short:         "Download GeeksforGeeks course videos",
		Long:          "gfgdl signs in to GeeksforGeeks, finds the HLS stream behind a video page and downloads it with yt-dlp or ffmpeg.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return app.wire(cmd.ErrOrStderr())
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.String(settingsrepo.PathKey, "", "Settings file (default ./config.json, env GFGDL_CONFIG)")
	flags.BoolVarP(&app.verbose, "verbose", "v", false, "Log debug details to stderr")
	flags.BoolVar(&app.strictLogin, "strict-login", false, "Require a session cookie after login in addition to HTTP 200")
	_ = app.cfg.BindPFlag(settingsrepo.PathKey, flags.Lookup(settingsrepo.PathKey))

	rootCmd.AddCommand(
		newVersionCmd(),
		newDownloadCmd(app),
		newResolveCmd(app),
		newAuthCmd(app),
		newConfigCmd(app),
	)

	return rootCmd
}
