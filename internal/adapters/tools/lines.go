package tools

import (
	"bufio"
	"io"
	"strings"
)

const maxLineBytes = 1 << 20

// LineStream iterates over a tool's textual output one line at a time,
// independent of how the lines are displayed.
type LineStream struct {
	scanner *bufio.Scanner
	line    string
}

func NewLineStream(r io.Reader) *LineStream {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	scanner.Split(scanLines)
	return &LineStream{scanner: scanner}
}

// Next advances to the next non-empty line.
func (s *LineStream) Next() bool {
	for s.scanner.Scan() {
		line := strings.TrimSpace(s.scanner.Text())
		if line == "" {
			continue
		}
		s.line = line
		return true
	}
	return false
}

func (s *LineStream) Text() string {
	return s.line
}

func (s *LineStream) Err() error {
	return s.scanner.Err()
}

// scanLines splits on \n and on bare \r, which tools use to redraw a line.
func scanLines(data []byte, atEOF bool) (int, []byte, error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	for i, b := range data {
		switch b {
		case '\n':
			return i + 1, data[:i], nil
		case '\r':
			if i+1 < len(data) {
				if data[i+1] == '\n' {
					return i + 2, data[:i], nil
				}
				return i + 1, data[:i], nil
			}
			if atEOF {
				return i + 1, data[:i], nil
			}
			// Need one more byte to tell \r from \r\n.
			return 0, nil, nil
		}
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}

// tailBuffer keeps the last limit bytes written to it.
type tailBuffer struct {
	limit int
	buf   []byte
}

func newTailBuffer(limit int) *tailBuffer {
	return &tailBuffer{limit: limit}
}

func (t *tailBuffer) Write(p []byte) (int, error) {
	t.buf = append(t.buf, p...)
	if over := len(t.buf) - t.limit; over > 0 {
		t.buf = t.buf[over:]
	}
	return len(p), nil
}

func (t *tailBuffer) String() string {
	return strings.TrimSpace(string(t.buf))
}
