package settings

import "github.com/bnema/gfg-downloader/internal/domain"

// fileSchema mirrors the settings document. Key names are part of the
// on-disk contract shared with the original config.json layout.
type fileSchema struct {
	Email               string            `json:"email" toml:"email"`
	Password            string            `json:"password" toml:"password"`
	OutputDirectory     string            `json:"output_directory" toml:"output_directory"`
	PreferredDownloader string            `json:"preferred_downloader" toml:"preferred_downloader"`
	VideoQuality        string            `json:"video_quality" toml:"video_quality"`
	CustomHeaders       map[string]string `json:"custom_headers" toml:"custom_headers"`
	CookiesFile         string            `json:"cookies_file,omitempty" toml:"cookies_file,omitempty"`
}

func toSchema(s domain.Settings) fileSchema {
	return fileSchema{
		Email:               s.Email,
		Password:            s.Password,
		OutputDirectory:     s.OutputDirectory,
		PreferredDownloader: string(s.PreferredDownloader),
		VideoQuality:        s.VideoQuality,
		CustomHeaders:       s.CustomHeaders,
		CookiesFile:         s.CookiesFile,
	}
}

func fromSchema(f fileSchema) domain.Settings {
	return domain.Settings{
		Email:               f.Email,
		Password:            f.Password,
		OutputDirectory:     f.OutputDirectory,
		PreferredDownloader: domain.Tool(f.PreferredDownloader),
		VideoQuality:        f.VideoQuality,
		CustomHeaders:       f.CustomHeaders,
		CookiesFile:         f.CookiesFile,
	}.WithDefaults()
}
