package tools

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/lrstanley/go-ytdlp"

	"github.com/bnema/gfg-downloader/internal/domain"
)

const ytdlpDefaultTemplate = "%(title)s.%(ext)s"

type YTDLP struct {
	Path string
	// Python runs `-m pip install yt-dlp` when the binary is missing.
	Python string
	// Install fetches a standalone yt-dlp when pip cannot provide one and
	// returns its executable path.
	Install func(ctx context.Context) (string, error)

	installed string
}

var _ Tool = (*YTDLP)(nil)

func NewYTDLP() *YTDLP {
	return &YTDLP{Install: installStandalone}
}

func (*YTDLP) ID() domain.Tool { return domain.ToolYTDLP }

func (t *YTDLP) Binary() string {
	switch {
	case t.installed != "":
		return t.installed
	case t.Path != "":
		return t.Path
	default:
		return "yt-dlp"
	}
}

func (*YTDLP) CombineStderr() bool { return true }

func (t *YTDLP) Ensure(ctx context.Context, runner Runner) error {
	if err := checkVersion(ctx, runner, t.Binary(), "--version"); err == nil {
		return nil
	}

	python := t.Python
	if python == "" {
		python = "python3"
	}
	_, stderr, pipErr := runner.Run(ctx, python, "-m", "pip", "install", "yt-dlp")
	if pipErr == nil {
		if err := checkVersion(ctx, runner, t.Binary(), "--version"); err == nil {
			return nil
		}
		pipErr = errors.New("yt-dlp still not runnable after pip install")
	} else {
		pipErr = fmt.Errorf("pip install yt-dlp: %w: %s", pipErr, stderr)
	}

	if t.Install == nil {
		return fmt.Errorf("%w: %w", domain.ErrToolMissing, pipErr)
	}
	executable, err := t.Install(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrToolMissing, errors.Join(pipErr, fmt.Errorf("download yt-dlp: %w", err)))
	}
	t.installed = executable

	if err := checkVersion(ctx, runner, t.Binary(), "--version"); err != nil {
		return fmt.Errorf("%w: downloaded yt-dlp is not runnable: %w", domain.ErrToolMissing, err)
	}
	return nil
}

func (t *YTDLP) Command(ctx context.Context, req domain.DownloadRequest) ([]string, string, error) {
	dl := ytdlp.New().SetExecutable(t.Binary())

	if req.CookiesFile != "" {
		if _, err := os.Stat(req.CookiesFile); err == nil {
			dl.Cookies(req.CookiesFile)
		} else if !errors.Is(err, os.ErrNotExist) {
			return nil, "", fmt.Errorf("stat cookies file: %w", err)
		}
	}

	for _, name := range sortedHeaderNames(req.Headers) {
		dl.AddHeaders(name + ":" + req.Headers[name])
	}
	if req.UserAgent != "" {
		dl.AddHeaders("User-Agent:" + req.UserAgent)
	}

	quality := req.Quality
	if quality == "" {
		quality = domain.DefaultQuality
	}

	name := req.OutputName
	if name == "" {
		name = ytdlpDefaultTemplate
	}
	outputPath := filepath.Join(req.OutputDir, name)

	cmd := dl.Format(quality).Output(outputPath).Progress().Newline().BuildCommand(ctx, req.StreamURL)
	return cmd.Args[1:], outputPath, nil
}

func (*YTDLP) ParseProgress(line string) (domain.ProgressEvent, bool) {
	return ParseYTDLPProgress(line)
}

func installStandalone(ctx context.Context) (string, error) {
	resolved, err := ytdlp.Install(ctx, nil)
	if err != nil {
		return "", err
	}
	return resolved.Executable, nil
}
