package ports

import (
	"context"

	"github.com/bnema/gfg-downloader/internal/domain"
)

type SettingsRepository interface {
	Load(ctx context.Context) (domain.Settings, error)
	Save(ctx context.Context, settings domain.Settings) error
	Set(ctx context.Context, key string, value string) (domain.Settings, error)
	Path() string
}
