package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/bnema/gfg-downloader/internal/domain"
	"github.com/bnema/gfg-downloader/internal/ports"
)

var errEmptyStream = errors.New("resolver returned an empty stream url")

// TroubleshootingHints are shown after a failed run.
var TroubleshootingHints = []string{
	"Make sure you have access to the video content",
	"Check if the video URL is still valid",
	"Try running the command again",
	"Install ffmpeg if you haven't already",
}

type Workflow struct {
	auth       ports.Authenticator
	resolver   ports.StreamResolver
	downloader ports.Downloader
	reporter   ports.Reporter
	logger     *slog.Logger
}

func NewWorkflow(auth ports.Authenticator, resolver ports.StreamResolver, downloader ports.Downloader, reporter ports.Reporter, logger *slog.Logger) *Workflow {
	if logger == nil {
		logger = slog.Default()
	}
	if reporter == nil {
		reporter = nopReporter{}
	}

	return &Workflow{
		auth:       auth,
		resolver:   resolver,
		downloader: downloader,
		reporter:   reporter,
		logger:     logger,
	}
}

// Run downloads the video behind inputURL and reports whether it succeeded.
func (w *Workflow) Run(ctx context.Context, inputURL string, outputName string, settings domain.Settings) bool {
	return w.RunWithOutcome(ctx, inputURL, outputName, settings).Success
}

func (w *Workflow) RunWithOutcome(ctx context.Context, inputURL string, outputName string, settings domain.Settings) domain.Outcome {
	logger := w.logger.With("run_id", uuid.NewString())
	logger.Info("starting download", "url", inputURL, "output", outputName)

	outcome := w.run(ctx, logger, inputURL, outputName, settings)

	if outcome.Success {
		logger.Info("download succeeded", "tool", string(outcome.Tool), "output", outcome.OutputPath)
		w.reporter.Result(outcome, nil)
	} else {
		logger.Error("download failed", "diagnostic", outcome.Diagnostic)
		w.reporter.Result(outcome, TroubleshootingHints)
	}

	return outcome
}

func (w *Workflow) run(ctx context.Context, logger *slog.Logger, inputURL string, outputName string, settings domain.Settings) domain.Outcome {
	if err := ctx.Err(); err != nil {
		return failure(err)
	}

	w.reporter.Stage("Logging in...")
	session, ok := w.auth.Authenticate(ctx, settings)
	if !ok {
		return failure(domain.ErrAuthFailed)
	}

	// Logout must run even when ctx was canceled mid-run.
	defer func() {
		w.reporter.Stage("Logging out...")
		if !w.auth.Deauthenticate(context.WithoutCancel(ctx), session) {
			logger.Warn("logout failed")
		}
	}()

	if err := ctx.Err(); err != nil {
		return failure(err)
	}

	w.reporter.Stage("Extracting video URL...")
	streamURL, err := w.resolver.Resolve(ctx, inputURL, session)
	if err != nil {
		return failure(fmt.Errorf("resolve %s: %w", inputURL, err))
	}
	if streamURL == "" {
		return failure(errEmptyStream)
	}
	logger.Info("resolved stream", "stream_url", streamURL)

	if err := ctx.Err(); err != nil {
		return failure(err)
	}

	w.reporter.Stage("Downloading video...")
	req := domain.DownloadRequest{
		StreamURL:   streamURL,
		OutputName:  outputName,
		OutputDir:   settings.OutputDirectory,
		Quality:     settings.VideoQuality,
		Headers:     settings.CustomHeaders,
		UserAgent:   domain.UserAgent,
		CookiesFile: session.CookiesFile(),
	}

	outcome := w.downloader.Fetch(ctx, req, settings.PreferredDownloader, w.reporter.Progress)
	if !outcome.Success && ctx.Err() != nil && outcome.Diagnostic == "" {
		outcome.Diagnostic = ctx.Err().Error()
	}
	return outcome
}

func failure(err error) domain.Outcome {
	return domain.Outcome{Diagnostic: err.Error()}
}

type nopReporter struct{}

func (nopReporter) Stage(string)                    {}
func (nopReporter) Progress(domain.ProgressEvent)   {}
func (nopReporter) Result(domain.Outcome, []string) {}
