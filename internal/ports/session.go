package ports

import (
	"context"
	"net/http"

	"github.com/bnema/gfg-downloader/internal/domain"
)

// Session is the authenticated HTTP context of one workflow run.
type Session interface {
	Client() *http.Client
	CookiesFile() string
}

type Authenticator interface {
	Authenticate(ctx context.Context, settings domain.Settings) (Session, bool)
	Deauthenticate(ctx context.Context, session Session) bool
}
