package generator

import (
	"errors"
	"strings"
	"testing"
)

func TestBuildSitemapEntries(t *testing.T) {
	scope := fixtureScope(t)

	xml, err := scope.buildSitemap()
	if err != nil {
		t.Fatalf("build sitemap: %v", err)
	}

	for _, want := range []string{
		"<loc>https://example.com/</loc>",
		"<loc>https://example.com/articles/</loc>",
		"<loc>https://example.com/notes/</loc>",
		"<loc>https://example.com/articles/newest/</loc>",
		"<loc>https://example.com/notes/scratch/</loc>",
		"<lastmod>2025-01-17</lastmod>",
	} {
		if !strings.Contains(xml, want) {
			t.Fatalf("sitemap missing %q:\n%s", want, xml)
		}
	}
	if !strings.HasPrefix(xml, `<?xml version="1.0" encoding="UTF-8"?>`) {
		t.Fatalf("sitemap missing XML declaration:\n%s", xml)
	}
}

func TestBuildSitemapRequiresDomain(t *testing.T) {
	scope := fixtureScope(t)
	scope.Config.Site.Domain = ""

	_, err := scope.buildSitemap()
	if !errors.Is(err, ErrDomainRequired) {
		t.Fatalf("expected ErrDomainRequired, got %v", err)
	}
	var aerr *ArtifactError
	if !errors.As(err, &aerr) || aerr.Artifact != "sitemap" {
		t.Fatalf("expected sitemap ArtifactError, got %v", err)
	}
}

func TestBuildSitemapIsDeterministic(t *testing.T) {
	scope := fixtureScope(t)

	first, err := scope.buildSitemap()
	if err != nil {
		t.Fatalf("build sitemap: %v", err)
	}
	second, err := scope.buildSitemap()
	if err != nil {
		t.Fatalf("build sitemap: %v", err)
	}
	if first != second {
		t.Fatal("sitemap output must be byte-identical across runs")
	}
}

func TestBuildRobots(t *testing.T) {
	scope := fixtureScope(t)

	robots := scope.buildRobots()
	if !strings.Contains(robots, "User-agent: *") || !strings.Contains(robots, "Allow: /") {
		t.Fatalf("unexpected robots.txt:\n%s", robots)
	}
	if !strings.Contains(robots, "Sitemap: https://example.com/sitemap.xml") {
		t.Fatalf("robots.txt missing sitemap link:\n%s", robots)
	}

	scope.Config.Build.Sitemap = false
	robots = scope.buildRobots()
	if strings.Contains(robots, "Sitemap:") {
		t.Fatalf("robots.txt should omit sitemap link when disabled:\n%s", robots)
	}
}
