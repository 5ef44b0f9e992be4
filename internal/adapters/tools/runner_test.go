package tools

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"testing"
	"time"

	"github.com/bnema/gfg-downloader/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const helperEnv = "GFGDL_TOOLS_HELPER_PROCESS"

// TestHelperProcess stands in for yt-dlp or ffmpeg when re-executed by the
// tests below.
func TestHelperProcess(t *testing.T) {
	if os.Getenv(helperEnv) != "1" {
		return
	}

	args := os.Args
	for i, arg := range args {
		if arg == "--" {
			args = args[i+1:]
			break
		}
	}

	switch args[0] {
	case "fail":
		_, _ = fmt.Fprintln(os.Stdout, "out-1")
		_, _ = fmt.Fprintln(os.Stderr, "err-1")
		_, _ = fmt.Fprint(os.Stdout, "out-2\r")
		_, _ = fmt.Fprintln(os.Stdout, "out-3")
		os.Exit(3)
	case "hang":
		_, _ = fmt.Fprintln(os.Stdout, "ready")
		time.Sleep(time.Minute)
		os.Exit(0)
	}
	os.Exit(2)
}

func helperArgs(mode string) []string {
	return []string{"-test.run=TestHelperProcess", "--", mode}
}

func startHelper(t *testing.T, ctx context.Context, mode string, combine bool) Process {
	t.Helper()

	proc, err := ExecRunner{}.Start(ctx, os.Args[0], helperArgs(mode), combine)
	require.NoError(t, err)
	return proc
}

func readLines(proc Process) []string {
	var lines []string
	stream := NewLineStream(proc.Output())
	for stream.Next() {
		lines = append(lines, stream.Text())
	}
	return lines
}

func TestExecRunnerCombinesStderrInOrder(t *testing.T) {
	t.Setenv(helperEnv, "1")

	proc := startHelper(t, context.Background(), "fail", true)
	lines := readLines(proc)
	err := proc.Wait()

	assert.Equal(t, []string{"out-1", "err-1", "out-2", "out-3"}, lines)
	assert.Empty(t, proc.ErrorOutput())

	var exitErr *exec.ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, 3, exitErr.ExitCode())
}

func TestExecRunnerCapturesStderrTail(t *testing.T) {
	t.Setenv(helperEnv, "1")

	proc := startHelper(t, context.Background(), "fail", false)
	lines := readLines(proc)
	err := proc.Wait()

	assert.Equal(t, []string{"out-1", "out-2", "out-3"}, lines)
	assert.Equal(t, "err-1", proc.ErrorOutput())
	require.Error(t, err)
}

func TestExecRunnerCancelKillsProcess(t *testing.T) {
	t.Setenv(helperEnv, "1")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	proc := startHelper(t, ctx, "hang", false)
	stream := NewLineStream(proc.Output())
	require.True(t, stream.Next())
	assert.Equal(t, "ready", stream.Text())

	started := time.Now()
	cancel()
	for stream.Next() {
		continue
	}
	err := proc.Wait()

	require.Error(t, err)
	assert.Less(t, time.Since(started), killWaitDelay+5*time.Second)
}

// helperTool drives the helper process through the orchestrator.
type helperTool struct {
	id      domain.Tool
	mode    string
	combine bool
}

func (h helperTool) ID() domain.Tool {
	return h.id
}

func (helperTool) Binary() string {
	return os.Args[0]
}

func (helperTool) Ensure(context.Context, Runner) error {
	return nil
}

func (h helperTool) CombineStderr() bool {
	return h.combine
}

func (helperTool) ParseProgress(string) (domain.ProgressEvent, bool) {
	return domain.ProgressEvent{}, false
}

func (h helperTool) Command(_ context.Context, req domain.DownloadRequest) ([]string, string, error) {
	return helperArgs(h.mode), req.OutputName, nil
}

func TestFetchRelaysRealProcessOutput(t *testing.T) {
	t.Setenv(helperEnv, "1")

	tools := []Tool{
		helperTool{id: domain.ToolYTDLP, mode: "fail", combine: true},
		helperTool{id: domain.ToolFFmpeg, mode: "fail", combine: false},
	}

	var events []domain.ProgressEvent
	outcome := NewOrchestratorWith(ExecRunner{}, nil, tools...).Fetch(context.Background(), domain.DownloadRequest{OutputName: "a.mp4"}, domain.ToolYTDLP, collect(&events))

	assert.False(t, outcome.Success)
	require.Len(t, events, 7)
	assert.Equal(t, "err-1", events[1].Line)
	assert.Equal(t, domain.ToolFFmpeg, events[4].Tool)
	assert.Equal(t, "out-1", events[4].Line)
	assert.Contains(t, outcome.Diagnostic, "exit status 3")
	assert.Contains(t, outcome.Diagnostic, "out-3")
	assert.Contains(t, outcome.Diagnostic, "err-1")
}
