package ports

import (
	"context"

	"github.com/bnema/gfg-downloader/internal/domain"
)

type StreamResolver interface {
	Resolve(ctx context.Context, rawURL string, session Session) (string, error)
}

type ProgressFunc func(domain.ProgressEvent)

type Downloader interface {
	Fetch(ctx context.Context, req domain.DownloadRequest, preferred domain.Tool, progress ProgressFunc) domain.Outcome
}
