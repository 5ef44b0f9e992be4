// Package tools drives the external downloaders (yt-dlp and ffmpeg) and
// relays their output as progress events.
package tools

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/alessio/shellescape"

	"github.com/bnema/gfg-downloader/internal/domain"
	"github.com/bnema/gfg-downloader/internal/ports"
)

const diagnosticLines = 20

type Orchestrator struct {
	runner Runner
	tools  map[domain.Tool]Tool
	logger *slog.Logger
}

var _ ports.Downloader = (*Orchestrator)(nil)

func NewOrchestrator(logger *slog.Logger) *Orchestrator {
	return NewOrchestratorWith(ExecRunner{}, logger, NewYTDLP(), FFmpeg{})
}

func NewOrchestratorWith(runner Runner, logger *slog.Logger, tools ...Tool) *Orchestrator {
	if logger == nil {
		logger = slog.Default()
	}

	byID := make(map[domain.Tool]Tool, len(tools))
	for _, tool := range tools {
		byID[tool.ID()] = tool
	}

	return &Orchestrator{runner: runner, tools: byID, logger: logger}
}

// Fetch runs the preferred tool and, if it fails, the other one exactly once
// with the same request. A canceled context is never retried.
func (o *Orchestrator) Fetch(ctx context.Context, req domain.DownloadRequest, preferred domain.Tool, progress ports.ProgressFunc) domain.Outcome {
	primary := preferred.Normalized()
	if primary != preferred {
		o.logger.Warn("unknown downloader, using default", "configured", string(preferred), "tool", string(primary))
	}

	outputPath, err := o.attempt(ctx, primary, req, progress)
	if err == nil {
		return domain.Outcome{Success: true, Tool: primary, OutputPath: outputPath}
	}
	if shouldSkipFallback(ctx, err) {
		return domain.Outcome{Tool: primary, Diagnostic: err.Error()}
	}

	secondary := primary.Alternate()
	o.logger.Warn("download failed, trying alternate tool", "tool", string(primary), "alternate", string(secondary), "error", err)

	outputPath, fallbackErr := o.attempt(ctx, secondary, req, progress)
	if fallbackErr == nil {
		return domain.Outcome{Success: true, Tool: secondary, OutputPath: outputPath}
	}

	return domain.Outcome{
		Tool:       secondary,
		Diagnostic: errors.Join(err, fallbackErr).Error(),
	}
}

func (o *Orchestrator) attempt(ctx context.Context, id domain.Tool, req domain.DownloadRequest, progress ports.ProgressFunc) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	tool, ok := o.tools[id]
	if !ok {
		return "", fmt.Errorf("%w: %s is not registered", domain.ErrToolMissing, id)
	}

	if err := tool.Ensure(ctx, o.runner); err != nil {
		return "", err
	}

	if req.OutputDir != "" {
		if err := os.MkdirAll(req.OutputDir, 0o755); err != nil {
			return "", fmt.Errorf("%w: create output directory: %w", domain.ErrToolFailed, err)
		}
	}

	args, outputPath, err := tool.Command(ctx, req)
	if err != nil {
		return "", fmt.Errorf("%w: build %s command: %w", domain.ErrToolFailed, id, err)
	}

	command := append([]string{tool.Binary()}, args...)
	o.logger.Info("starting download", "tool", string(id), "command", shellescape.QuoteCommand(command))

	proc, err := o.runner.Start(ctx, tool.Binary(), args, tool.CombineStderr())
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrToolFailed, err)
	}

	recent := make([]string, 0, diagnosticLines)
	lines := NewLineStream(proc.Output())
	for lines.Next() {
		if ctx.Err() != nil {
			break
		}

		line := lines.Text()
		if len(recent) == diagnosticLines {
			recent = recent[1:]
		}
		recent = append(recent, line)

		event, ok := tool.ParseProgress(line)
		if !ok {
			event = domain.ProgressEvent{Tool: id, Kind: domain.ProgressLine, Line: line}
		}
		if event.Kind == domain.ProgressDestination {
			outputPath = event.State
		}
		emit(progress, event)
	}
	scanErr := lines.Err()

	waitErr := proc.Wait()
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if waitErr != nil {
		diagnostic := proc.ErrorOutput()
		if diagnostic == "" {
			diagnostic = strings.Join(recent, "\n")
		}
		return "", fmt.Errorf("%w: %s: %w: %s", domain.ErrToolFailed, id, waitErr, diagnostic)
	}
	if scanErr != nil {
		o.logger.Debug("tool output truncated", "tool", string(id), "error", scanErr)
	}

	o.logger.Info("download finished", "tool", string(id), "output", outputPath)
	return outputPath, nil
}

func emit(progress ports.ProgressFunc, event domain.ProgressEvent) {
	if progress != nil {
		progress(event)
	}
}

func shouldSkipFallback(ctx context.Context, err error) bool {
	if ctx.Err() != nil {
		return true
	}
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
