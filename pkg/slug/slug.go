package slug

import (
	"regexp"
	"strings"
)

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// Make derives a URL-safe identifier from a display name. It lower-cases the
// input, collapses every run of non-alphanumeric characters into a single
// hyphen and trims leading/trailing hyphens. Total and idempotent: any input
// yields a (possibly empty) slug, and Make(Make(x)) == Make(x).
func Make(name string) string {
	s := strings.ToLower(name)
	s = nonAlnum.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
