package auth

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"

	"github.com/bnema/gfg-downloader/internal/adapters/cookies"
	"github.com/bnema/gfg-downloader/internal/domain"
	"github.com/bnema/gfg-downloader/internal/ports"
	"golang.org/x/net/publicsuffix"
)

const maxAuthResponseBytes = 1 << 20

var ErrNoSessionCookie = errors.New("login response did not set a session cookie")

type Endpoints struct {
	LoginURL  string
	LogoutURL string
	// Host pins the Host header on auth requests.
	Host string
}

func DefaultEndpoints() Endpoints {
	return Endpoints{
		LoginURL:  domain.LoginURL,
		LogoutURL: domain.LogoutURL,
		Host:      domain.AuthHost,
	}
}

// Session is the per-run HTTP context: a cookie-jar backed client carrying
// the fixed browser headers, plus the cookie file the download tools read.
type Session struct {
	client      *http.Client
	cookiesFile string
}

var _ ports.Session = (*Session)(nil)

func (s *Session) Client() *http.Client { return s.client }

func (s *Session) CookiesFile() string { return s.cookiesFile }

type Manager struct {
	Endpoints Endpoints
	// Transport overrides the base round tripper, mostly for tests.
	Transport http.RoundTripper
	// RequireSessionCookie makes Login fail unless the jar holds a cookie for
	// the login host afterwards. Without it HTTP 200 alone counts as success.
	RequireSessionCookie bool
	Logger               *slog.Logger
}

var _ ports.Authenticator = (*Manager)(nil)

func NewManager(logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{Endpoints: DefaultEndpoints(), Logger: logger}
}

// NewSession builds a fresh session. Cookies already present in cookiesFile
// are loaded into the jar so page fetches see the same login as the tools.
func (m *Manager) NewSession(cookiesFile string) (*Session, error) {
	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, fmt.Errorf("create cookie jar: %w", err)
	}

	seeded, err := cookies.LoadFile(cookiesFile)
	if err != nil {
		m.logger().Warn("ignoring cookies file", "path", cookiesFile, "error", err)
	}
	seedJar(jar, seeded)

	base := m.Transport
	if base == nil {
		base = http.DefaultTransport
	}

	return &Session{
		client: &http.Client{
			Jar: jar,
			Transport: &headerTransport{
				base:    base,
				headers: http.Header{"User-Agent": {domain.UserAgent}},
			},
		},
		cookiesFile: cookiesFile,
	}, nil
}

func seedJar(jar http.CookieJar, seeded []*http.Cookie) {
	byHost := map[string][]*http.Cookie{}
	for _, c := range seeded {
		host := strings.TrimPrefix(c.Domain, ".")
		if host == "" {
			continue
		}
		byHost[host] = append(byHost[host], c)
	}
	for host, list := range byHost {
		jar.SetCookies(&url.URL{Scheme: "https", Host: host, Path: "/"}, list)
	}
}

func (m *Manager) Login(ctx context.Context, session *Session, settings domain.Settings) error {
	if !settings.HasCredentials() {
		return domain.ErrMissingCredential
	}

	values := url.Values{}
	values.Set("reqType", "Login")
	values.Set("user", settings.Email)
	values.Set("pass", settings.Password)
	values.Set("rem", "on")
	values.Set("to", domain.LoginRedirect)
	values.Set("g-recaptcha-response", "")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.Endpoints.LoginURL, strings.NewReader(values.Encode()))
	if err != nil {
		return fmt.Errorf("create login request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	m.pinHost(req)

	resp, err := session.client.Do(req)
	if err != nil {
		return fmt.Errorf("request login: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxAuthResponseBytes))

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: status %d", domain.ErrAuthFailed, resp.StatusCode)
	}

	if m.RequireSessionCookie && len(session.client.Jar.Cookies(req.URL)) == 0 {
		return fmt.Errorf("%w: %w", domain.ErrAuthFailed, ErrNoSessionCookie)
	}

	return nil
}

func (m *Manager) Logout(ctx context.Context, session *Session) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, m.Endpoints.LogoutURL, nil)
	if err != nil {
		return fmt.Errorf("create logout request: %w", err)
	}
	m.pinHost(req)

	resp, err := session.client.Do(req)
	if err != nil {
		return fmt.Errorf("request logout: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxAuthResponseBytes))

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("logout: status %d", resp.StatusCode)
	}
	return nil
}

// Authenticate opens a session and logs in. Failures are logged, never returned.
func (m *Manager) Authenticate(ctx context.Context, settings domain.Settings) (ports.Session, bool) {
	if !settings.HasCredentials() {
		m.logger().Error("login skipped", "error", domain.ErrMissingCredential)
		return nil, false
	}

	session, err := m.NewSession(settings.CookiesFile)
	if err != nil {
		m.logger().Error("login failed", "error", err)
		return nil, false
	}

	m.logger().Info("logging in", "user", settings.Email)
	if err := m.Login(ctx, session, settings); err != nil {
		m.logger().Error("login failed", "error", err)
		return nil, false
	}

	m.logger().Info("login successful")
	return session, true
}

func (m *Manager) Deauthenticate(ctx context.Context, session ports.Session) bool {
	s, ok := session.(*Session)
	if !ok || s == nil {
		m.logger().Warn("logout skipped: no active session")
		return false
	}

	if err := m.Logout(ctx, s); err != nil {
		m.logger().Warn("logout failed", "error", err)
		return false
	}

	m.logger().Info("logged out")
	return true
}

func (m *Manager) pinHost(req *http.Request) {
	if m.Endpoints.Host != "" {
		req.Host = m.Endpoints.Host
	}
}

func (m *Manager) logger() *slog.Logger {
	if m.Logger != nil {
		return m.Logger
	}
	return slog.Default()
}
