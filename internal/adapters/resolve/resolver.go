// Package resolve turns a platform page URL into a stream reference.
package resolve

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"strings"

	"github.com/bnema/gfg-downloader/internal/domain"
	"github.com/bnema/gfg-downloader/internal/ports"
)

const maxPageBytes = 16 << 20

type Resolver struct {
	// PlatformDomain selects which URLs are fetched and scanned.
	PlatformDomain string
	// Origin prefixes root-relative references.
	Origin   string
	Matchers []Matcher
	Fallback Matcher
	Logger   *slog.Logger
}

var _ ports.StreamResolver = (*Resolver)(nil)

func NewResolver(logger *slog.Logger) *Resolver {
	return &Resolver{
		PlatformDomain: domain.PlatformDomain,
		Origin:         domain.PlatformOrigin,
		Matchers:       DefaultMatchers(),
		Fallback:       FallbackMatcher(),
		Logger:         logger,
	}
}

// Resolve returns rawURL itself when it is already a manifest or is not a
// platform page. Platform pages are fetched with the session client and
// scanned; domain.ErrNoStream means nothing usable was found.
func (r *Resolver) Resolve(ctx context.Context, rawURL string, session ports.Session) (string, error) {
	if domain.IsManifestURL(rawURL) {
		r.logger().Info("direct HLS url detected")
		return rawURL, nil
	}

	if !strings.Contains(rawURL, r.PlatformDomain) {
		r.logger().Info("using provided url directly")
		return rawURL, nil
	}

	r.logger().Info("extracting video url", "page", rawURL, "video_id", videoID(rawURL))

	body, err := r.fetchPage(ctx, rawURL, session)
	if err != nil {
		return "", err
	}
	r.logger().Debug("page fetched", "bytes", len(body))

	stream, err := r.Extract(body)
	if err != nil {
		return "", err
	}

	r.logger().Info("found video url", "url", stream)
	return stream, nil
}

// Extract applies the matcher cascade to a page body.
func (r *Resolver) Extract(body string) (string, error) {
	candidates := Candidates(body, r.Matchers)
	r.logger().Debug("manifest candidates", "count", len(candidates))

	if stream, ok := SelectManifest(candidates, r.Origin); ok {
		return stream, nil
	}

	if r.Fallback.Find != nil {
		if found := r.Fallback.Find(body); len(found) > 0 {
			r.logger().Info("no manifest in page, using direct media file", "url", found[0])
			return found[0], nil
		}
	}

	return "", domain.ErrNoStream
}

func (r *Resolver) fetchPage(ctx context.Context, pageURL string, session ports.Session) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", fmt.Errorf("%w: create request: %w", domain.ErrPageFetch, err)
	}
	req.Header.Set("Origin", r.Origin)
	req.Header.Set("Referer", pageURL)
	req.Header.Set("User-Agent", domain.UserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")
	req.Header.Set("Accept-Encoding", "gzip, deflate, br")
	req.Header.Set("Connection", "keep-alive")
	req.Header.Set("Upgrade-Insecure-Requests", "1")

	resp, err := clientFor(session).Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrPageFetch, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: status %d", domain.ErrPageFetch, resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxPageBytes))
	if err != nil {
		return "", fmt.Errorf("%w: read body: %w", domain.ErrPageFetch, err)
	}
	return string(data), nil
}

func clientFor(session ports.Session) *http.Client {
	if session != nil && session.Client() != nil {
		return session.Client()
	}
	return http.DefaultClient
}

func videoID(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	base := path.Base(strings.TrimSuffix(parsed.Path, "/"))
	if base == "." || base == "/" {
		return ""
	}
	return base
}

func (r *Resolver) logger() *slog.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return slog.Default()
}
