package document

import (
	"regexp"
	"strings"
)

// SlugFallback is the class name used if a name does not yield a slug.
const SlugFallback = "element"

var (
	nonWord      = regexp.MustCompile(`[^\w\s-]`)
	spaceOrUnder = regexp.MustCompile(`[\s_-]+`)
)

// Slugify derives a CSS class name from a human readable name:
// it lower-cases, strips non-word characters, collapses runs of white space,
// underscores and hyphens into single hyphens and trims hyphens at both ends.
//
//    Slugify("Hero Section (new)") => "hero-section-new"
//
// If nothing remains, SlugFallback is returned.
func Slugify(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = nonWord.ReplaceAllString(s, "")
	s = spaceOrUnder.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if s == "" {
		return SlugFallback
	}
	return s
}
