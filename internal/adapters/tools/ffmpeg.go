package tools

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bnema/gfg-downloader/internal/adapters/cookies"
	"github.com/bnema/gfg-downloader/internal/domain"
)

const (
	ffmpegDefaultOutput = "video.mp4"
	ffmpegInstallGuide  = "https://ffmpeg.org/download.html"
)

type FFmpeg struct {
	Path string
}

var _ Tool = FFmpeg{}

func (FFmpeg) ID() domain.Tool { return domain.ToolFFmpeg }

func (t FFmpeg) Binary() string {
	if t.Path != "" {
		return t.Path
	}
	return "ffmpeg"
}

func (FFmpeg) CombineStderr() bool { return false }

func (t FFmpeg) Ensure(ctx context.Context, runner Runner) error {
	if err := checkVersion(ctx, runner, t.Binary(), "-version"); err != nil {
		return fmt.Errorf("%w: ffmpeg not found, see %s: %w", domain.ErrToolMissing, ffmpegInstallGuide, err)
	}
	return nil
}

// Command copies the stream without re-encoding. ffmpeg has no equivalent of
// a yt-dlp format selector, so Quality is not translated.
func (t FFmpeg) Command(_ context.Context, req domain.DownloadRequest) ([]string, string, error) {
	var args []string

	jar, err := cookies.LoadFile(req.CookiesFile)
	if err != nil {
		return nil, "", err
	}
	if len(jar) > 0 {
		args = append(args, "-cookies", cookies.FFmpegOption(jar))
	}

	if len(req.Headers) > 0 {
		var b strings.Builder
		for _, name := range sortedHeaderNames(req.Headers) {
			fmt.Fprintf(&b, "%s: %s\r\n", name, req.Headers[name])
		}
		args = append(args, "-headers", b.String())
	}

	if req.UserAgent != "" {
		args = append(args, "-user_agent", req.UserAgent)
	}

	name := req.OutputName
	if name == "" {
		name = ffmpegDefaultOutput
	}
	outputPath := filepath.Join(req.OutputDir, name)

	args = append(args,
		"-i", req.StreamURL,
		"-c", "copy",
		"-bsf:a", "aac_adtstoasc",
		"-progress", "pipe:1",
		"-y",
		outputPath,
	)

	return args, outputPath, nil
}

func (FFmpeg) ParseProgress(line string) (domain.ProgressEvent, bool) {
	return ParseFFmpegProgress(line)
}
