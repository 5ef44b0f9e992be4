// Package progress prints workflow stages and tool output to a terminal.
package progress

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/progress"

	"github.com/bnema/gfg-downloader/internal/domain"
	"github.com/bnema/gfg-downloader/internal/ports"
)

const barWidth = 30

type Reporter struct {
	mu     sync.Mutex
	out    io.Writer
	styles styles
	bar    progress.Model
}

var _ ports.Reporter = (*Reporter)(nil)

func NewReporter(out io.Writer) *Reporter {
	return &Reporter{
		out:    out,
		styles: newStyles(),
		bar:    progress.New(progress.WithDefaultGradient(), progress.WithWidth(barWidth), progress.WithoutPercentage()),
	}
}

func (r *Reporter) Stage(message string) {
	r.println(r.styles.stage.Render(message))
}

func (r *Reporter) Progress(event domain.ProgressEvent) {
	if text, ok := r.renderEvent(event); ok {
		r.println(text)
	}
}

func (r *Reporter) Result(outcome domain.Outcome, hints []string) {
	if outcome.Success {
		msg := fmt.Sprintf("Download completed with %s", outcome.Tool)
		if outcome.OutputPath != "" {
			msg += ": " + outcome.OutputPath
		}
		r.println(r.styles.success.Render(msg))
		return
	}

	lines := []string{r.styles.failure.Render("Download failed")}
	if outcome.Diagnostic != "" {
		lines = append(lines, r.styles.meta.Render(outcome.Diagnostic))
	}
	if len(hints) > 0 {
		lines = append(lines, "", r.styles.stage.Render("Troubleshooting:"))
		for _, hint := range hints {
			lines = append(lines, r.styles.hint.Render("  - "+hint))
		}
	}
	r.println(strings.Join(lines, "\n"))
}

func (r *Reporter) renderEvent(event domain.ProgressEvent) (string, bool) {
	prefix := r.styles.tool.Render(string(event.Tool))

	switch event.Kind {
	case domain.ProgressPercent:
		ratio := min(max(event.Percent/100, 0), 1)
		return fmt.Sprintf("%s %s %5.1f%%", prefix, r.bar.ViewAs(ratio), event.Percent), true
	case domain.ProgressElapsed:
		return fmt.Sprintf("%s %s", prefix, r.styles.meta.Render(fmt.Sprintf("progress %.1fs", event.Elapsed.Seconds()))), true
	case domain.ProgressState:
		if event.State != "end" {
			return "", false
		}
		return fmt.Sprintf("%s %s", prefix, r.styles.meta.Render("stream complete")), true
	case domain.ProgressDestination:
		return fmt.Sprintf("%s %s", prefix, r.styles.meta.Render("saving to "+event.State)), true
	default:
		if event.Line == "" {
			return "", false
		}
		return fmt.Sprintf("%s %s", prefix, r.styles.line.Render(event.Line)), true
	}
}

func (r *Reporter) println(text string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, _ = fmt.Fprintln(r.out, text)
}
