package resolve

import (
	"regexp"
	"strings"

	"github.com/bnema/gfg-downloader/internal/domain"
)

// Matcher finds candidate stream references in a page body. Matchers are
// independent; order in the slice is the trust ranking.
type Matcher struct {
	Name string
	Find func(body string) []string
}

func regexpMatcher(name string, re *regexp.Regexp) Matcher {
	return Matcher{
		Name: name,
		Find: func(body string) []string {
			found := re.FindAllStringSubmatch(body, -1)
			out := make([]string, 0, len(found))
			for _, m := range found {
				if len(m) > 1 {
					out = append(out, m[1])
					continue
				}
				out = append(out, m[0])
			}
			return out
		},
	}
}

var (
	absoluteManifestRe = regexp.MustCompile(`https://[^"']*\.m3u8[^"']*`)
	videoManifestRe    = regexp.MustCompile(`(?i)["']([^"']*video[^"']*\.m3u8[^"']*)["']`)
	quotedManifestRe   = regexp.MustCompile(`["']([^"']*\.m3u8[^"']*)["']`)
	srcManifestRe      = regexp.MustCompile(`src=["']([^"']*\.m3u8[^"']*)["']`)
	dataManifestRe     = regexp.MustCompile(`data-[^=]*=["']([^"']*\.m3u8[^"']*)["']`)
	absoluteMP4Re      = regexp.MustCompile(`https://[^"']*\.mp4[^"']*`)
)

func DefaultMatchers() []Matcher {
	return []Matcher{
		regexpMatcher("absolute-manifest", absoluteManifestRe),
		regexpMatcher("video-manifest", videoManifestRe),
		regexpMatcher("quoted-manifest", quotedManifestRe),
		regexpMatcher("src-attribute", srcManifestRe),
		regexpMatcher("data-attribute", dataManifestRe),
	}
}

func FallbackMatcher() Matcher {
	return regexpMatcher("absolute-mp4", absoluteMP4Re)
}

// Candidates concatenates every matcher's output in matcher order.
// Duplicates are kept so selection depends on order only.
func Candidates(body string, matchers []Matcher) []string {
	var all []string
	for _, m := range matchers {
		all = append(all, m.Find(body)...)
	}
	return all
}

// SelectManifest returns the first absolute manifest candidate, or else the
// first relative one that can be made absolute against origin.
func SelectManifest(candidates []string, origin string) (string, bool) {
	for _, c := range candidates {
		if strings.HasPrefix(c, "http") && strings.Contains(c, domain.ManifestSuffix) {
			return c, true
		}
	}

	for _, c := range candidates {
		if !strings.Contains(c, domain.ManifestSuffix) {
			continue
		}
		if abs, ok := absolutize(c, origin); ok {
			return abs, true
		}
	}

	return "", false
}

func absolutize(ref, origin string) (string, bool) {
	switch {
	case strings.HasPrefix(ref, "http"):
		return ref, true
	case strings.HasPrefix(ref, "//"):
		return "https:" + ref, true
	case strings.HasPrefix(ref, "/"):
		return strings.TrimSuffix(origin, "/") + ref, true
	default:
		return "", false
	}
}
