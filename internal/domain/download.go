package domain

import "time"

// DownloadRequest carries everything a tool needs to fetch one stream.
type DownloadRequest struct {
	StreamURL   string
	OutputName  string
	OutputDir   string
	Quality     string
	Headers     map[string]string
	UserAgent   string
	CookiesFile string
}

type Outcome struct {
	Success    bool
	Tool       Tool
	OutputPath string
	Diagnostic string
}

type ProgressKind string

const (
	ProgressLine    ProgressKind = "line"
	ProgressElapsed ProgressKind = "elapsed"
	ProgressPercent ProgressKind = "percent"
	ProgressState   ProgressKind = "state"

	// ProgressDestination carries the output file path in State.
	ProgressDestination ProgressKind = "destination"
)

// ProgressEvent describes one line of tool output. Kind is ProgressLine
// when the line carries no recognized progress hint.
type ProgressEvent struct {
	Tool    Tool
	Kind    ProgressKind
	Line    string
	Elapsed time.Duration
	Percent float64
	State   string
}
