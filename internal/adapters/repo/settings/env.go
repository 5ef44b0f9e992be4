package settings

import (
	"strings"

	"github.com/bnema/gfg-downloader/internal/domain"
	"github.com/spf13/viper"
)

const EnvPrefix = "GFGDL"

var overridableKeys = []string{
	domain.KeyEmail,
	domain.KeyPassword,
	domain.KeyOutputDirectory,
	domain.KeyPreferredDownloader,
	domain.KeyVideoQuality,
	domain.KeyCookiesFile,
}

// BindEnv makes GFGDL_* variables visible through cfg, including GFGDL_CONFIG.
func BindEnv(cfg *viper.Viper) {
	cfg.SetEnvPrefix(EnvPrefix)
	cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	cfg.AutomaticEnv()
	_ = cfg.BindEnv(PathKey)
	for _, key := range overridableKeys {
		_ = cfg.BindEnv(key)
	}
}

// ApplyOverrides layers values set through cfg (env or flags) over s.
// Overrides are never written back to the settings document.
func ApplyOverrides(cfg *viper.Viper, s domain.Settings) domain.Settings {
	if cfg == nil {
		return s
	}
	for _, key := range overridableKeys {
		if !cfg.IsSet(key) {
			continue
		}
		value := cfg.GetString(key)
		if value == "" {
			continue
		}
		// An invalid downloader name keeps the persisted value.
		_ = s.Set(key, value)
	}
	return s
}
