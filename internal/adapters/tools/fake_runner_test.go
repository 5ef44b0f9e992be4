package tools

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"
)

type startCall struct {
	name    string
	args    []string
	combine bool
}

type fakeResult struct {
	output string
	stderr string
	err    error
	// onStart runs before the process is returned.
	onStart func()
}

type fakeRunner struct {
	mu sync.Mutex
	// missing holds binaries whose version check fails.
	missing map[string]bool
	// installs clears a missing binary when pip succeeds.
	installs map[string]string
	results  map[string]fakeResult
	runs     [][]string
	starts   []startCall
}

func newFakeRunner() *fakeRunner {
	return &fakeRunner{
		missing:  map[string]bool{},
		installs: map[string]string{},
		results:  map[string]fakeResult{},
	}
}

func (f *fakeRunner) Run(_ context.Context, name string, args ...string) (string, string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.runs = append(f.runs, append([]string{name}, args...))

	if len(args) >= 4 && args[0] == "-m" && args[1] == "pip" && args[2] == "install" {
		binary, ok := f.installs[args[3]]
		if !ok {
			return "", "no network", errors.New("exit status 1")
		}
		delete(f.missing, binary)
		return "installed", "", nil
	}

	if f.missing[name] {
		return "", "", errors.New("executable file not found in $PATH")
	}
	return "1.0\n", "", nil
}

func (f *fakeRunner) Start(_ context.Context, name string, args []string, combine bool) (Process, error) {
	f.mu.Lock()
	f.starts = append(f.starts, startCall{name: name, args: args, combine: combine})
	result := f.results[name]
	f.mu.Unlock()

	if result.onStart != nil {
		result.onStart()
	}
	return &fakeProcess{output: strings.NewReader(result.output), stderr: result.stderr, err: result.err}, nil
}

func (f *fakeRunner) startCalls() []startCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]startCall(nil), f.starts...)
}

type fakeProcess struct {
	output io.Reader
	stderr string
	err    error
}

func (p *fakeProcess) Output() io.Reader   { return p.output }
func (p *fakeProcess) Wait() error         { return p.err }
func (p *fakeProcess) ErrorOutput() string { return p.stderr }
