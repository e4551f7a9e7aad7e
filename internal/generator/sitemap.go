package generator

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-static/internal/content"
)

// buildSitemap emits the sitemap XML: homepage, per-type index pages, and
// every published item, all addressed through the canonical URL rule.
func (s *BuildScope) buildSitemap() (string, error) {
	base := s.Config.BaseURL()
	if base == "" {
		return "", &ArtifactError{Artifact: "sitemap", Err: ErrDomainRequired}
	}

	var builder strings.Builder
	builder.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	builder.WriteString(`<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">` + "\n")

	writeEntry := func(path, lastmod string) {
		builder.WriteString("  <url>\n")
		builder.WriteString(fmt.Sprintf("    <loc>%s%s</loc>\n", base, path))
		if lastmod != "" {
			builder.WriteString(fmt.Sprintf("    <lastmod>%s</lastmod>\n", lastmod))
		}
		builder.WriteString("  </url>\n")
	}

	writeEntry("/", "")
	for _, name := range s.TypeNames() {
		writeEntry(content.IndexURL(name, s.Config.Build.CleanURLs), "")
	}
	for _, item := range s.All {
		writeEntry(item.URL, item.Meta.Date.Format("2006-01-02"))
	}

	builder.WriteString("</urlset>\n")
	return builder.String(), nil
}

// buildRobots emits an allow-all robots.txt linking the sitemap when one is
// generated.
func (s *BuildScope) buildRobots() string {
	var builder strings.Builder
	builder.WriteString("User-agent: *\n")
	builder.WriteString("Allow: /\n")
	if s.Config.Build.Sitemap {
		if base := s.Config.BaseURL(); base != "" {
			builder.WriteString("\n")
			builder.WriteString(fmt.Sprintf("Sitemap: %s/sitemap.xml\n", base))
		}
	}
	return builder.String()
}
