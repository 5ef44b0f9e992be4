package tools

import (
	"context"
	"maps"
	"slices"

	"github.com/bnema/gfg-downloader/internal/domain"
)

// Tool translates a download request into one external program's syntax.
type Tool interface {
	ID() domain.Tool
	Binary() string
	// Ensure verifies the binary answers a version check, installing it when
	// the tool supports that.
	Ensure(ctx context.Context, runner Runner) error
	// Command returns the argument list and the output path it targets.
	Command(ctx context.Context, req domain.DownloadRequest) (args []string, outputPath string, err error)
	CombineStderr() bool
	ParseProgress(line string) (domain.ProgressEvent, bool)
}

func checkVersion(ctx context.Context, runner Runner, name string, args ...string) error {
	_, _, err := runner.Run(ctx, name, args...)
	return err
}

func sortedHeaderNames(headers map[string]string) []string {
	return slices.Sorted(maps.Keys(headers))
}
