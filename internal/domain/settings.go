package domain

import (
	"fmt"
	"maps"
	"strings"
)

type Tool string

const (
	ToolYTDLP  Tool = "yt-dlp"
	ToolFFmpeg Tool = "ffmpeg"
)

func (t Tool) Valid() bool {
	switch t {
	case ToolYTDLP, ToolFFmpeg:
		return true
	default:
		return false
	}
}

// Alternate returns the tool used as fallback when t fails.
func (t Tool) Alternate() Tool {
	if t == ToolFFmpeg {
		return ToolYTDLP
	}
	return ToolFFmpeg
}

// Normalized maps unknown identifiers to the default tool.
func (t Tool) Normalized() Tool {
	if t.Valid() {
		return t
	}
	return DefaultTool
}

const (
	DefaultOutputDirectory = "downloads"
	DefaultTool            = ToolYTDLP
	DefaultQuality         = "best"
	DefaultCookiesFile     = "cookies.txt"
)

// Setting keys as they appear in the settings document.
const (
	KeyEmail               = "email"
	KeyPassword            = "password"
	KeyOutputDirectory     = "output_directory"
	KeyPreferredDownloader = "preferred_downloader"
	KeyVideoQuality        = "video_quality"
	KeyCustomHeaders       = "custom_headers"
	KeyCookiesFile         = "cookies_file"
)

type Settings struct {
	Email               string
	Password            string
	OutputDirectory     string
	PreferredDownloader Tool
	VideoQuality        string
	CustomHeaders       map[string]string
	CookiesFile         string
}

func DefaultHeaders() map[string]string {
	return map[string]string{
		"Origin":  PlatformOrigin,
		"Referer": PlatformOrigin,
	}
}

func DefaultSettings() Settings {
	return Settings{
		OutputDirectory:     DefaultOutputDirectory,
		PreferredDownloader: DefaultTool,
		VideoQuality:        DefaultQuality,
		CustomHeaders:       DefaultHeaders(),
		CookiesFile:         DefaultCookiesFile,
	}
}

// WithDefaults fills every empty field with its documented default.
// Credentials stay empty; an unknown tool identifier is left as-is.
func (s Settings) WithDefaults() Settings {
	if s.OutputDirectory == "" {
		s.OutputDirectory = DefaultOutputDirectory
	}
	if s.PreferredDownloader == "" {
		s.PreferredDownloader = DefaultTool
	}
	if s.VideoQuality == "" {
		s.VideoQuality = DefaultQuality
	}
	if s.CustomHeaders == nil {
		s.CustomHeaders = DefaultHeaders()
	} else {
		s.CustomHeaders = maps.Clone(s.CustomHeaders)
	}
	if s.CookiesFile == "" {
		s.CookiesFile = DefaultCookiesFile
	}
	return s
}

func (s Settings) HasCredentials() bool {
	return s.Email != "" && s.Password != ""
}

// Set assigns a single field by its document key. Headers use "custom_headers.<Name>".
func (s *Settings) Set(key, value string) error {
	switch key {
	case KeyEmail:
		s.Email = value
	case KeyPassword:
		s.Password = value
	case KeyOutputDirectory:
		s.OutputDirectory = value
	case KeyPreferredDownloader:
		tool := Tool(value)
		if !tool.Valid() {
			return fmt.Errorf("%s must be %q or %q, got %q", key, ToolYTDLP, ToolFFmpeg, value)
		}
		s.PreferredDownloader = tool
	case KeyVideoQuality:
		s.VideoQuality = value
	case KeyCookiesFile:
		s.CookiesFile = value
	default:
		name, ok := strings.CutPrefix(key, KeyCustomHeaders+".")
		if !ok || name == "" {
			return fmt.Errorf("%w %q", ErrUnknownSetting, key)
		}
		if s.CustomHeaders == nil {
			s.CustomHeaders = map[string]string{}
		}
		if value == "" {
			delete(s.CustomHeaders, name)
			return nil
		}
		s.CustomHeaders[name] = value
	}
	return nil
}
