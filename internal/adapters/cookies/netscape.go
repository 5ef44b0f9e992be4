// Package cookies reads the Netscape cookies.txt jar that yt-dlp also consumes.
package cookies

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"
)

const httpOnlyPrefix = "#HttpOnly_"

// ParseNetscape parses the tab separated format:
// domain, include-subdomains flag, path, secure, expiry, name, value.
func ParseNetscape(r io.Reader) ([]*http.Cookie, error) {
	var cookies []*http.Cookie
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		httpOnly := false
		if rest, ok := strings.CutPrefix(line, httpOnlyPrefix); ok {
			line = rest
			httpOnly = true
		}
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.Split(line, "\t")
		if len(parts) < 7 {
			continue
		}

		cookie := &http.Cookie{
			Name:     parts[5],
			Value:    parts[6],
			Domain:   parts[0],
			Path:     parts[2],
			Secure:   strings.EqualFold(parts[3], "TRUE"),
			HttpOnly: httpOnly,
		}
		// 0 marks a session cookie.
		if expires, err := strconv.ParseInt(parts[4], 10, 64); err == nil && expires > 0 {
			cookie.Expires = time.Unix(expires, 0)
		}
		cookies = append(cookies, cookie)
	}

	return cookies, scanner.Err()
}

// LoadFile parses path. A missing file yields no cookies and no error.
func LoadFile(path string) ([]*http.Cookie, error) {
	if path == "" {
		return nil, nil
	}

	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open cookies file: %w", err)
	}
	defer func() { _ = file.Close() }()

	cookies, err := ParseNetscape(file)
	if err != nil {
		return nil, fmt.Errorf("parse cookies file: %w", err)
	}
	return cookies, nil
}

// FFmpegOption renders cookies in the Set-Cookie line form accepted by
// ffmpeg's -cookies option for the http protocol.
func FFmpegOption(cookies []*http.Cookie) string {
	var b strings.Builder
	for _, c := range cookies {
		fmt.Fprintf(&b, "%s=%s; path=%s; domain=%s;", c.Name, c.Value, cookiePath(c.Path), c.Domain)
		if c.Secure {
			b.WriteString(" secure;")
		}
		b.WriteString("\n")
	}
	return b.String()
}

func cookiePath(path string) string {
	if path == "" {
		return "/"
	}
	return path
}
