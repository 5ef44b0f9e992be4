package auth

import (
	"bufio"
	"compress/gzip"
	"compress/zlib"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/andybalholm/brotli"
)

// headerTransport applies the session's fixed headers and decodes the
// encodings advertised by the browser-like Accept-Encoding header. Setting
// Accept-Encoding by hand disables net/http's transparent gzip handling.
type headerTransport struct {
	base    http.RoundTripper
	headers http.Header
}

func (t *headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	for name, values := range t.headers {
		if req.Header.Get(name) == "" {
			req.Header[name] = values
		}
	}

	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}

	if err := decodeBody(resp); err != nil {
		_ = resp.Body.Close()
		return nil, err
	}
	return resp, nil
}

// decodedBody opens its decoder on the first Read so responses that carry a
// Content-Encoding header but no payload never fail.
type decodedBody struct {
	raw    io.ReadCloser
	open   func(io.Reader) (io.ReadCloser, error)
	reader io.ReadCloser
	err    error
}

func (b *decodedBody) Read(p []byte) (int, error) {
	if b.reader == nil && b.err == nil {
		buffered := bufio.NewReader(b.raw)
		if _, err := buffered.Peek(1); err != nil {
			b.err = err
		} else {
			b.reader, b.err = b.open(buffered)
		}
	}
	if b.err != nil {
		return 0, b.err
	}
	return b.reader.Read(p)
}

func (b *decodedBody) Close() error {
	var firstErr error
	if b.reader != nil {
		firstErr = b.reader.Close()
	}
	if err := b.raw.Close(); err != nil && firstErr == nil {
		firstErr = err
	}
	return firstErr
}

func openBrotli(r io.Reader) (io.ReadCloser, error) {
	return io.NopCloser(brotli.NewReader(r)), nil
}

func openGzip(r io.Reader) (io.ReadCloser, error) {
	zr, err := gzip.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("open gzip body: %w", err)
	}
	return zr, nil
}

func openDeflate(r io.Reader) (io.ReadCloser, error) {
	zr, err := zlib.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("open deflate body: %w", err)
	}
	return zr, nil
}

func hasNoBody(resp *http.Response) bool {
	switch {
	case resp.ContentLength == 0:
		return true
	case resp.StatusCode == http.StatusNoContent, resp.StatusCode == http.StatusNotModified:
		return true
	case resp.StatusCode >= 300 && resp.StatusCode < 400:
		return true
	case resp.Request != nil && resp.Request.Method == http.MethodHead:
		return true
	}
	return false
}

func decodeBody(resp *http.Response) error {
	encoding := strings.ToLower(strings.TrimSpace(resp.Header.Get("Content-Encoding")))

	var open func(io.Reader) (io.ReadCloser, error)
	switch encoding {
	case "", "identity":
		return nil
	case "br":
		open = openBrotli
	case "gzip":
		open = openGzip
	case "deflate":
		open = openDeflate
	default:
		if hasNoBody(resp) {
			return nil
		}
		return fmt.Errorf("unsupported content encoding %q", encoding)
	}

	if hasNoBody(resp) {
		return nil
	}

	resp.Body = &decodedBody{raw: resp.Body, open: open}
	resp.Header.Del("Content-Encoding")
	resp.Header.Del("Content-Length")
	resp.ContentLength = -1
	resp.Uncompressed = true
	return nil
}
