package cmd

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/bnema/gfg-downloader/internal/domain"
	"github.com/spf13/cobra"
)

const maskedPassword = "********"

func newConfigCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect and change saved settings",
	}

	cmd.AddCommand(newConfigShowCmd(app), newConfigSetCmd(app), newConfigPathCmd(app))

	return cmd
}

func newConfigShowCmd(app *app) *cobra.Command {
	var showPassword bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective settings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings := app.loadSettings(cmd.Context())
			_, err := fmt.Fprint(cmd.OutOrStdout(), formatSettings(settings, showPassword))
			return err
		},
	}

	cmd.Flags().BoolVar(&showPassword, "show-password", false, "Print the password instead of a mask")

	return cmd
}

func newConfigSetCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Change one setting, e.g. `preferred_downloader ffmpeg` or `custom_headers.Cookie abc`",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := app.settings.Set(cmd.Context(), args[0], args[1]); err != nil {
				return err
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s updated in %s\n", args[0], app.settings.Path())
			return err
		},
	}
}

func newConfigPathCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the settings file location",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), app.settings.Path())
			return err
		},
	}
}

func formatSettings(s domain.Settings, showPassword bool) string {
	password := s.Password
	if password != "" && !showPassword {
		password = maskedPassword
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s = %s\n", domain.KeyEmail, s.Email)
	fmt.Fprintf(&b, "%s = %s\n", domain.KeyPassword, password)
	fmt.Fprintf(&b, "%s = %s\n", domain.KeyOutputDirectory, s.OutputDirectory)
	fmt.Fprintf(&b, "%s = %s\n", domain.KeyPreferredDownloader, s.PreferredDownloader)
	fmt.Fprintf(&b, "%s = %s\n", domain.KeyVideoQuality, s.VideoQuality)
	fmt.Fprintf(&b, "%s = %s\n", domain.KeyCookiesFile, s.CookiesFile)
	for _, name := range slices.Sorted(maps.Keys(s.CustomHeaders)) {
		fmt.Fprintf(&b, "%s.%s = %s\n", domain.KeyCustomHeaders, name, s.CustomHeaders[name])
	}
	return b.String()
}
