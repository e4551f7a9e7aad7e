package generator

import (
	"fmt"
	"html"
	"strings"
	"time"
)

// buildRSSFeed emits the RSS 2.0 feed. Only items from content types with
// rss_include enabled appear; the input graph is already in canonical
// order, so the feed inherits date-descending item order.
func (s *BuildScope) buildRSSFeed() (string, error) {
	base := s.Config.BaseURL()
	if base == "" {
		return "", &ArtifactError{Artifact: "rss", Err: ErrDomainRequired}
	}

	language := strings.TrimSpace(s.Config.Site.Language)
	if language == "" {
		language = "en"
	}

	var builder strings.Builder
	builder.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	builder.WriteString(`<rss version="2.0" xmlns:atom="http://www.w3.org/2005/Atom">` + "\n")
	builder.WriteString("  <channel>\n")
	builder.WriteString(fmt.Sprintf("    <title>%s</title>\n", escapeXML(s.Config.Site.Title)))
	builder.WriteString(fmt.Sprintf("    <link>%s</link>\n", base))
	builder.WriteString(fmt.Sprintf("    <description>%s</description>\n", escapeXML(s.Config.Site.Tagline)))
	builder.WriteString(fmt.Sprintf("    <language>%s</language>\n", escapeXML(language)))
	builder.WriteString(fmt.Sprintf("    <managingEditor>%s</managingEditor>\n", escapeXML(s.Config.Site.Author)))
	builder.WriteString(fmt.Sprintf("    <atom:link href=\"%s/feed.xml\" rel=\"self\" type=\"application/rss+xml\"/>\n", base))

	for _, item := range s.All {
		tc, ok := s.Config.TypeConfig(item.Type)
		if ok && !tc.IncludeInRSS() {
			continue
		}

		link := base + item.URL
		builder.WriteString("    <item>\n")
		builder.WriteString(fmt.Sprintf("      <title>%s</title>\n", escapeXML(item.Meta.Title)))
		builder.WriteString(fmt.Sprintf("      <link>%s</link>\n", link))
		builder.WriteString(fmt.Sprintf("      <guid>%s</guid>\n", link))
		if description := feedDescription(item.Excerpt, string(item.HTML)); description != "" {
			builder.WriteString(fmt.Sprintf("      <description>%s</description>\n", escapeXML(description)))
		}
		builder.WriteString(fmt.Sprintf("      <author>%s</author>\n", escapeXML(item.Meta.Author)))
		builder.WriteString(fmt.Sprintf("      <pubDate>%s</pubDate>\n", item.Meta.Date.Format(time.RFC1123Z)))
		builder.WriteString("    </item>\n")
	}

	builder.WriteString("  </channel>\n")
	builder.WriteString("</rss>\n")
	return builder.String(), nil
}

// feedDescription prefers the excerpt and falls back to the rendered body.
func feedDescription(excerpt, body string) string {
	if trimmed := strings.TrimSpace(excerpt); trimmed != "" {
		return trimmed
	}
	return strings.TrimSpace(body)
}

func escapeXML(value string) string {
	return html.EscapeString(value)
}
