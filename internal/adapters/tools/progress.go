package tools

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/bnema/gfg-downloader/internal/domain"
)

var (
	ytdlpPercentRe     = regexp.MustCompile(`^\[download\]\s+(\d+(?:\.\d+)?)%`)
	ytdlpDestinationRe = regexp.MustCompile(`^\[(?:download|Merger)\] (?:Destination: |Merging formats into ")(.+?)"?$`)
)

// ParseFFmpegProgress reads one line of `-progress pipe:1` output.
// Malformed values are ignored.
func ParseFFmpegProgress(line string) (domain.ProgressEvent, bool) {
	if _, rest, ok := strings.Cut(line, "out_time_ms="); ok {
		micros, err := strconv.ParseInt(firstField(rest), 10, 64)
		if err != nil {
			return domain.ProgressEvent{}, false
		}
		return domain.ProgressEvent{
			Tool:    domain.ToolFFmpeg,
			Kind:    domain.ProgressElapsed,
			Line:    line,
			Elapsed: time.Duration(micros) * time.Microsecond,
		}, true
	}

	if _, rest, ok := strings.Cut(line, "progress="); ok {
		state := firstField(rest)
		if state == "" {
			return domain.ProgressEvent{}, false
		}
		return domain.ProgressEvent{
			Tool:  domain.ToolFFmpeg,
			Kind:  domain.ProgressState,
			Line:  line,
			State: state,
		}, true
	}

	return domain.ProgressEvent{}, false
}

// ParseYTDLPProgress reads one `--newline` progress or destination line.
func ParseYTDLPProgress(line string) (domain.ProgressEvent, bool) {
	if m := ytdlpPercentRe.FindStringSubmatch(line); m != nil {
		percent, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			return domain.ProgressEvent{}, false
		}
		return domain.ProgressEvent{
			Tool:    domain.ToolYTDLP,
			Kind:    domain.ProgressPercent,
			Line:    line,
			Percent: percent,
		}, true
	}

	if m := ytdlpDestinationRe.FindStringSubmatch(line); m != nil {
		return domain.ProgressEvent{
			Tool:  domain.ToolYTDLP,
			Kind:  domain.ProgressDestination,
			Line:  line,
			State: m[1],
		}, true
	}

	return domain.ProgressEvent{}, false
}

func firstField(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
