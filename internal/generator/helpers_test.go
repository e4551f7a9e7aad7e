package generator

import (
	"fmt"
	"testing"
	"time"

	"github.com/goliatone/go-static/internal/config"
	"github.com/goliatone/go-static/internal/content"
)

func scopeConfig(t *testing.T) *config.Config {
	t.Helper()
	rssOff := false
	cfg, err := config.Parse([]byte(`
[site]
title = "Example Site"
tagline = "Notes and articles"
domain = "example.com"
author = "Jane Doe"

[build]
clean_urls = true
sitemap = true
rss = true
robots = true
`))
	if err != nil {
		t.Fatalf("parse fixture config: %v", err)
	}
	cfg.Content = map[string]config.ContentTypeConfig{
		"articles": {
			IndexTemplate:   "articles/index.html",
			ContentTemplate: "articles/item.html",
		},
		"notes": {
			IndexTemplate:   "notes/index.html",
			ContentTemplate: "notes/item.html",
			RSSInclude:      &rssOff,
		},
	}
	return cfg
}

func fixtureItem(contentType, slug string, date time.Time) *content.Item {
	return &content.Item{
		SourcePath: fmt.Sprintf("content/%s/%s.md", contentType, slug),
		Type:       contentType,
		Slug:       slug,
		OutputPath: fmt.Sprintf("%s/%s/index.html", contentType, slug),
		URL:        fmt.Sprintf("/%s/%s/", contentType, slug),
		Template:   contentType + "/item.html",
		HTML:       []byte("<p>" + slug + "</p>"),
		Meta: content.Meta{
			Title:  slug,
			Author: "Jane Doe",
			Date:   date,
			Extra:  map[string]string{},
		},
	}
}

func fixtureScope(t *testing.T) *BuildScope {
	t.Helper()
	base := time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)
	items := []*content.Item{
		fixtureItem("articles", "newest", base.AddDate(0, 0, 2)),
		fixtureItem("articles", "older", base),
		fixtureItem("notes", "scratch", base.AddDate(0, 0, 1)),
	}
	return NewBuildScope(scopeConfig(t), items)
}
