package tools

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"time"
)

const (
	stderrTailBytes = 64 * 1024
	killWaitDelay   = 5 * time.Second
)

// Process is a started tool invocation.
type Process interface {
	// Output streams stdout, or stdout and stderr combined.
	Output() io.Reader
	Wait() error
	// ErrorOutput is the captured stderr tail when it was not combined.
	ErrorOutput() string
}

type Runner interface {
	// Run executes a short command to completion.
	Run(ctx context.Context, name string, args ...string) (stdout string, stderr string, err error)
	Start(ctx context.Context, name string, args []string, combineStderr bool) (Process, error)
}

type ExecRunner struct{}

var _ Runner = ExecRunner{}

func (ExecRunner) Run(ctx context.Context, name string, args ...string) (string, string, error) {
	path, err := exec.LookPath(name)
	if err != nil {
		return "", "", err
	}

	cmd := exec.CommandContext(ctx, path, args...)
	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err = cmd.Run()
	return stdout.String(), strings.TrimSpace(stderr.String()), err
}

func (ExecRunner) Start(ctx context.Context, name string, args []string, combineStderr bool) (Process, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.WaitDelay = killWaitDelay

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("open %s output: %w", name, err)
	}

	tail := newTailBuffer(stderrTailBytes)
	if combineStderr {
		cmd.Stderr = cmd.Stdout
	} else {
		cmd.Stderr = tail
	}

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start %s: %w", name, err)
	}

	return &execProcess{cmd: cmd, stdout: stdout, stderr: tail}, nil
}

type execProcess struct {
	cmd    *exec.Cmd
	stdout io.Reader
	stderr *tailBuffer
}

func (p *execProcess) Output() io.Reader   { return p.stdout }
func (p *execProcess) Wait() error         { return p.cmd.Wait() }
func (p *execProcess) ErrorOutput() string { return p.stderr.String() }
