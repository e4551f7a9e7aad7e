package generator

import (
	"errors"
	"strings"
	"testing"
)

func TestBuildRSSFeedChannel(t *testing.T) {
	scope := fixtureScope(t)

	xml, err := scope.buildRSSFeed()
	if err != nil {
		t.Fatalf("build rss: %v", err)
	}

	for _, want := range []string{
		`<rss version="2.0" xmlns:atom="http://www.w3.org/2005/Atom">`,
		"<title>Example Site</title>",
		"<link>https://example.com</link>",
		"<description>Notes and articles</description>",
		"<managingEditor>Jane Doe</managingEditor>",
		`<atom:link href="https://example.com/feed.xml" rel="self" type="application/rss+xml"/>`,
	} {
		if !strings.Contains(xml, want) {
			t.Fatalf("rss missing %q:\n%s", want, xml)
		}
	}
}

func TestBuildRSSFeedFiltersByTypeInclude(t *testing.T) {
	scope := fixtureScope(t)

	xml, err := scope.buildRSSFeed()
	if err != nil {
		t.Fatalf("build rss: %v", err)
	}

	if !strings.Contains(xml, "https://example.com/articles/newest/") {
		t.Fatalf("rss missing included item:\n%s", xml)
	}
	if strings.Contains(xml, "scratch") {
		t.Fatalf("notes opted out of the feed but appear anyway:\n%s", xml)
	}
}

func TestBuildRSSFeedItemFields(t *testing.T) {
	scope := fixtureScope(t)
	scope.All[0].Excerpt = "<p>An <em>excerpt</em></p>"

	xml, err := scope.buildRSSFeed()
	if err != nil {
		t.Fatalf("build rss: %v", err)
	}
	if !strings.Contains(xml, "<pubDate>Fri, 17 Jan 2025 10:00:00 +0000</pubDate>") {
		t.Fatalf("rss pubDate not RFC1123Z:\n%s", xml)
	}
	// guid mirrors the link.
	if !strings.Contains(xml, "<guid>https://example.com/articles/newest/</guid>") {
		t.Fatalf("rss guid missing:\n%s", xml)
	}
	// Description carries the escaped excerpt.
	if !strings.Contains(xml, "&lt;em&gt;excerpt&lt;/em&gt;") {
		t.Fatalf("rss description should carry the escaped excerpt:\n%s", xml)
	}
}

func TestBuildRSSFeedDescriptionFallsBackToContent(t *testing.T) {
	scope := fixtureScope(t)

	xml, err := scope.buildRSSFeed()
	if err != nil {
		t.Fatalf("build rss: %v", err)
	}
	if !strings.Contains(xml, "&lt;p&gt;newest&lt;/p&gt;") {
		t.Fatalf("rss description should fall back to rendered content:\n%s", xml)
	}
}

func TestBuildRSSFeedRequiresDomain(t *testing.T) {
	scope := fixtureScope(t)
	scope.Config.Site.Domain = ""

	_, err := scope.buildRSSFeed()
	if !errors.Is(err, ErrDomainRequired) {
		t.Fatalf("expected ErrDomainRequired, got %v", err)
	}
}
