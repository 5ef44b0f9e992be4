package domain

import "strings"

const (
	PlatformDomain = "geeksforgeeks.org"
	PlatformOrigin = "https://www.geeksforgeeks.org"

	AuthHost  = "auth.geeksforgeeks.org"
	LoginURL  = "https://auth.geeksforgeeks.org/auth.php"
	LogoutURL = "https://auth.geeksforgeeks.org/logout.php"

	// LoginRedirect is sent pre-encoded; the auth endpoint expects the double-escaped form.
	LoginRedirect = "https%3A%2F%2Fauth.geeksforgeeks.org%2F%3Fto%3Dhttps%253A%252F%252Fpractice.geeksforgeeks.org%252Ftransactions"

	UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

	ManifestSuffix = ".m3u8"
	FallbackSuffix = ".mp4"
)

func IsManifestURL(raw string) bool {
	return strings.HasSuffix(raw, ManifestSuffix)
}

func IsPlatformURL(raw string) bool {
	return strings.Contains(raw, PlatformDomain)
}
