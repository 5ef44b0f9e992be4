package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/bnema/gfg-downloader/internal/adapters/auth"
	"github.com/bnema/gfg-downloader/internal/adapters/render/progress"
	settingsrepo "github.com/bnema/gfg-downloader/internal/adapters/repo/settings"
	"github.com/bnema/gfg-downloader/internal/adapters/resolve"
	"github.com/bnema/gfg-downloader/internal/adapters/tools"
	"github.com/bnema/gfg-downloader/internal/application"
	"github.com/bnema/gfg-downloader/internal/domain"
	"github.com/bnema/gfg-downloader/internal/ports"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

type app struct {
	cfg         *viper.Viper
	verbose     bool
	strictLogin bool

	logger        *slog.Logger
	settings      ports.SettingsRepository
	authenticator ports.Authenticator
	resolver      ports.StreamResolver
	downloader    ports.Downloader

	// isTerminal reports whether prompts can be shown on the given input.
	isTerminal func(in io.Reader) bool
}

func newApp() *app {
	cfg := viper.New()
	settingsrepo.BindEnv(cfg)

	return &app{cfg: cfg, isTerminal: stdinIsTerminal}
}

// wire builds the adapters once flags are parsed. Adapters already set,
// for example by tests, are kept.
func (a *app) wire(errOut io.Writer) error {
	level := slog.LevelWarn
	if a.verbose {
		level = slog.LevelDebug
	}
	a.logger = slog.New(slog.NewTextHandler(errOut, &slog.HandlerOptions{Level: level}))

	if a.settings == nil {
		repo, err := settingsrepo.NewRepository(a.cfg)
		if err != nil {
			return fmt.Errorf("wire settings repository: %w", err)
		}
		a.settings = repo
	}

	if a.authenticator == nil {
		manager := auth.NewManager(a.logger)
		manager.RequireSessionCookie = a.strictLogin
		a.authenticator = manager
	}
	if a.resolver == nil {
		a.resolver = resolve.NewResolver(a.logger)
	}
	if a.downloader == nil {
		a.downloader = tools.NewOrchestrator(a.logger)
	}

	return nil
}

// loadSettings never fails: storage problems are logged and defaults used.
func (a *app) loadSettings(ctx context.Context) domain.Settings {
	settings, err := a.settings.Load(ctx)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return settings
		}
		a.logger.Warn("settings unavailable, using defaults", "path", a.settings.Path(), "error", err)
	}
	return settingsrepo.ApplyOverrides(a.cfg, settings)
}

func (a *app) workflow(out io.Writer) *application.Workflow {
	return application.NewWorkflow(a.authenticator, a.resolver, a.downloader, progress.NewReporter(out), a.logger)
}

func stdinIsTerminal(in io.Reader) bool {
	file, ok := in.(*os.File)
	return ok && term.IsTerminal(int(file.Fd()))
}
