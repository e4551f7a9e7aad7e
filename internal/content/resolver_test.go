package content

import (
	"errors"
	"fmt"
	"testing"

	"github.com/goliatone/go-static/internal/config"
)

func testConfig(cleanURLs bool) *config.Config {
	rssOff := false
	cfg, err := config.Parse([]byte(`
[site]
title = "Fixture Site"
domain = "example.com"
`))
	if err != nil {
		panic(fmt.Sprintf("parse fixture config: %v", err))
	}
	cfg.Build.CleanURLs = cleanURLs
	cfg.Content = map[string]config.ContentTypeConfig{
		"articles": {
			IndexTemplate:   "articles/index.html",
			ContentTemplate: "articles/item.html",
			URLPattern:      "{date}-{stem}",
		},
		"notes": {
			IndexTemplate:   "notes/index.html",
			ContentTemplate: "notes/item.html",
			OutputNaming:    "date",
			RSSInclude:      &rssOff,
		},
	}
	return cfg
}

func resolveFixtureItem(t *testing.T, cfg *config.Config, contentType, stem, metaDoc string) (*ResolvedItem, error) {
	t.Helper()
	root := t.TempDir()
	contentPath := writeFixture(t, root, contentType+"/"+stem+".md", "# body")
	metaPath := writeFixture(t, root, contentType+"/"+stem+".meta.toml", metaDoc)

	resolver := NewResolver(cfg)
	return resolver.Resolve(WorkItem{
		ContentPath: contentPath,
		MetaPath:    metaPath,
		Type:        contentType,
	})
}

const validMeta = `
title = "Hello World"
date = "2025-01-15T10:00:00Z"
author = "Jane Doe"
`

func TestResolverComputesLocation(t *testing.T) {
	res, err := resolveFixtureItem(t, testConfig(true), "articles", "2025-01-15-hello-world", validMeta)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if res.Slug != "hello-world" {
		t.Fatalf("unexpected slug %q", res.Slug)
	}
	if res.OutputPath != "articles/2025-01-15-hello-world/index.html" {
		t.Fatalf("unexpected output path %q", res.OutputPath)
	}
	if res.URL != "/articles/2025-01-15-hello-world/" {
		t.Fatalf("unexpected url %q", res.URL)
	}
	if res.Template != "articles/item.html" {
		t.Fatalf("unexpected template %q", res.Template)
	}
}

func TestResolverLegacyNamingMatchesDatePattern(t *testing.T) {
	cfg := testConfig(true)

	viaLegacy, err := resolveFixtureItem(t, cfg, "notes", "my-note", validMeta)
	if err != nil {
		t.Fatalf("resolve legacy naming: %v", err)
	}
	if viaLegacy.OutputPath != "notes/2025-01-15-my-note/index.html" {
		t.Fatalf("legacy naming produced %q", viaLegacy.OutputPath)
	}
}

func TestResolverTemplateOverride(t *testing.T) {
	res, err := resolveFixtureItem(t, testConfig(true), "articles", "custom", validMeta+`template = "special.html"`)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if res.Template != "special.html" {
		t.Fatalf("expected metadata template override, got %q", res.Template)
	}
}

func TestResolverRejectsUnknownType(t *testing.T) {
	_, err := resolveFixtureItem(t, testConfig(true), "gallery", "pic", validMeta)
	if err == nil {
		t.Fatal("expected unknown content type error")
	}
	var merr *MetadataError
	if !errors.As(err, &merr) {
		t.Fatalf("expected MetadataError, got %T", err)
	}
	if !errors.Is(err, ErrUnknownContentType) {
		t.Fatalf("expected ErrUnknownContentType, got %v", err)
	}
}

type rejectingValidator struct{}

func (rejectingValidator) ValidateExtra(string, map[string]string) error {
	return errors.New("series is required")
}

func TestResolverAppliesExtraValidator(t *testing.T) {
	cfg := testConfig(true)
	root := t.TempDir()
	contentPath := writeFixture(t, root, "articles/post.md", "# body")
	metaPath := writeFixture(t, root, "articles/post.meta.toml", validMeta)

	resolver := NewResolver(cfg, WithExtraValidator(rejectingValidator{}))
	_, err := resolver.Resolve(WorkItem{ContentPath: contentPath, MetaPath: metaPath, Type: "articles"})
	if !errors.Is(err, ErrExtraInvalid) {
		t.Fatalf("expected ErrExtraInvalid, got %v", err)
	}
}
