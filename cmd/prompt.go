package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

var errNotInteractive = errors.New("input is not a terminal")

type prompter struct {
	in          *bufio.Reader
	raw         io.Reader
	out         io.Writer
	interactive bool
}

func newPrompter(in io.Reader, out io.Writer, interactive bool) *prompter {
	return &prompter{in: bufio.NewReader(in), raw: in, out: out, interactive: interactive}
}

func (p *prompter) line(label string) (string, error) {
	if !p.interactive {
		return "", errNotInteractive
	}

	_, _ = fmt.Fprint(p.out, label)
	value, err := p.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimSpace(value), nil
}

// secret reads without echo when the input is a real terminal.
func (p *prompter) secret(label string) (string, error) {
	if !p.interactive {
		return "", errNotInteractive
	}

	// Bytes already pulled into the buffer would be skipped by a raw read.
	file, ok := p.raw.(*os.File)
	if !ok || p.in.Buffered() > 0 || !term.IsTerminal(int(file.Fd())) {
		return p.line(label)
	}

	_, _ = fmt.Fprint(p.out, label)
	value, err := term.ReadPassword(int(file.Fd()))
	_, _ = fmt.Fprintln(p.out)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return strings.TrimSpace(string(value)), nil
}
