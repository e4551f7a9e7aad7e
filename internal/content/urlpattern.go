package content

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// datePrefix matches a well-formed YYYY-MM-DD- filename prefix.
var datePrefix = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2})-`)

// Location is the output of the URL rule for one item: its slug, the
// file path it renders to (relative to the output root), and the canonical
// URL it is served at. Every artifact generator consumes this struct
// instead of re-deriving paths on its own.
type Location struct {
	Slug       string
	OutputPath string
	URL        string
}

// SlugFromStem strips a well-formed leading YYYY-MM-DD- prefix from the
// filename stem. A malformed prefix (e.g. an impossible date) is left
// untouched.
func SlugFromStem(stem string) string {
	m := datePrefix.FindStringSubmatch(stem)
	if m == nil {
		return stem
	}
	if _, err := time.Parse("2006-01-02", m[1]); err != nil {
		return stem
	}
	return stem[len(m[0]):]
}

// ResolvePattern substitutes the URL-pattern placeholders. Recognized
// placeholders are {stem}, {date}, {year}, {month}, and {day}; anything
// else passes through verbatim so newer patterns keep working against
// older binaries.
func ResolvePattern(pattern, stem string, date time.Time) string {
	replacer := strings.NewReplacer(
		"{stem}", SlugFromStem(stem),
		"{date}", date.Format("2006-01-02"),
		"{year}", fmt.Sprintf("%04d", date.Year()),
		"{month}", fmt.Sprintf("%02d", int(date.Month())),
		"{day}", fmt.Sprintf("%02d", date.Day()),
	)
	return replacer.Replace(pattern)
}

// Resolve applies the single URL rule of the pipeline: pattern substitution
// followed by the clean-URL path shape. With clean URLs the item renders to
// type/resolved/index.html and is canonically addressed as /type/resolved/;
// otherwise it renders to type/resolved.html addressed as /type/resolved.html.
func Resolve(contentType, stem, pattern string, date time.Time, cleanURLs bool) Location {
	resolved := ResolvePattern(pattern, stem, date)
	loc := Location{Slug: SlugFromStem(stem)}
	if cleanURLs {
		loc.OutputPath = contentType + "/" + resolved + "/index.html"
		loc.URL = "/" + contentType + "/" + resolved + "/"
	} else {
		loc.OutputPath = contentType + "/" + resolved + ".html"
		loc.URL = "/" + contentType + "/" + resolved + ".html"
	}
	return loc
}

// IndexURL returns the canonical URL of a content-type index page.
func IndexURL(contentType string, cleanURLs bool) string {
	if cleanURLs {
		return "/" + contentType + "/"
	}
	return "/" + contentType + "/index.html"
}

// IndexOutputPath returns the output path of a content-type index page.
func IndexOutputPath(contentType string) string {
	return contentType + "/index.html"
}
