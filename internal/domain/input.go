package domain

import (
	"fmt"
	"strings"
)

const InvalidFilenameChars = `<>:"/\|?*`

const DefaultVideoExtension = ".mp4"

var allowedExtensions = []string{".mp4", ".mkv", ".webm", ".avi"}

func ValidateVideoURL(raw string) error {
	raw = strings.TrimSpace(raw)
	if raw == "" || !(strings.HasPrefix(raw, "http://") || strings.HasPrefix(raw, "https://")) {
		return ErrInvalidURL
	}
	return nil
}

// NormalizeFilename validates name and appends the default extension when needed.
// An empty name stays empty so the tool can pick its own.
func NormalizeFilename(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", nil
	}
	if strings.ContainsAny(name, InvalidFilenameChars) {
		return "", fmt.Errorf("%w: %s", ErrInvalidFilename, InvalidFilenameChars)
	}
	for _, ext := range allowedExtensions {
		if strings.HasSuffix(name, ext) {
			return name, nil
		}
	}
	return name + DefaultVideoExtension, nil
}
