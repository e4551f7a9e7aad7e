package generator

import (
	"sort"

	"github.com/goliatone/go-static/internal/config"
	"github.com/goliatone/go-static/internal/content"
	"github.com/goliatone/go-static/internal/template"
	"github.com/goliatone/go-static/pkg/interfaces"
)

// BuildScope bundles the immutable per-build inputs every render call and
// artifact generator consumes: configuration, the published item graph, and
// the optional theme and asset collaborators.
type BuildScope struct {
	Config *config.Config

	// All is the full published item list in canonical order.
	All []*content.Item

	// ByType partitions All by content type, preserving order.
	ByType map[string][]*content.Item

	Theme  *ThemeContext
	Assets interfaces.AssetResolver
}

// NewBuildScope assembles a scope from the loader's sorted output. Items
// must already be filtered for drafts; partitioning preserves the canonical
// order inside each type.
func NewBuildScope(cfg *config.Config, items []*content.Item) *BuildScope {
	return &BuildScope{
		Config: cfg,
		All:    items,
		ByType: content.GroupByType(items),
	}
}

// TypeNames returns the configured content types in lexical order so
// artifact output stays deterministic regardless of map iteration.
func (s *BuildScope) TypeNames() []string {
	names := make([]string, 0, len(s.Config.Content))
	for name := range s.Config.Content {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SiteScope builds the global template context shared by every render:
// the config view, dynamic variables, and theme values when present.
func (s *BuildScope) SiteScope() map[string]any {
	site := map[string]any{
		"title":    s.Config.Site.Title,
		"tagline":  s.Config.Site.Tagline,
		"domain":   s.Config.Site.Domain,
		"author":   s.Config.Site.Author,
		"language": s.Config.Site.Language,
		"base_url": s.Config.BaseURL(),
	}

	scope := map[string]any{
		"config": map[string]any{
			"site":    site,
			"dynamic": s.Config.Dynamic,
		},
		"site":    site,
		"dynamic": s.Config.Dynamic,
	}
	if s.Theme != nil {
		scope["theme"] = s.Theme.TemplateContext()
	}
	if s.Assets != nil {
		scope["asset"] = func(key string) string {
			if url, ok := s.Assets.AssetURL(key); ok {
				return url
			}
			return "/static/" + key
		}
	}
	return scope
}

// ItemView projects one item into its template-facing shape. The rendered
// body and excerpt are marked safe so the engine does not re-escape them.
func ItemView(item *content.Item) map[string]any {
	return map[string]any{
		"meta": map[string]any{
			"title":    item.Meta.Title,
			"date":     item.Meta.Date,
			"author":   item.Meta.Author,
			"tags":     item.Meta.Tags,
			"template": item.Meta.Template,
			"cover":    item.Meta.Cover,
			"draft":    item.Meta.Draft,
			"extra":    item.Meta.Extra,
		},
		"content":        template.Safe(string(item.HTML)),
		"html":           template.Safe(string(item.HTML)),
		"excerpt":        template.Safe(item.Excerpt),
		"filename":       item.OutputPath,
		"url":            item.URL,
		"slug":           item.Slug,
		"content_type":   item.Type,
		"formatted_date": template.FormatLongDate(item.Meta.Date),
	}
}

// ItemViews projects a list of items, preserving order.
func ItemViews(items []*content.Item) []map[string]any {
	views := make([]map[string]any, 0, len(items))
	for _, item := range items {
		views = append(views, ItemView(item))
	}
	return views
}

// ContentContext is the per-page context of a content template.
func (s *BuildScope) ContentContext(item *content.Item) map[string]any {
	ctx := map[string]any{
		"content": template.Safe(string(item.HTML)),
		"excerpt": template.Safe(item.Excerpt),
		"meta":    ItemView(item)["meta"],
		"item":    ItemView(item),
	}
	return ctx
}

// IndexContext is the context of a type index template: the type's own
// items under "contents" plus the cross-type aggregate under "all_content".
func (s *BuildScope) IndexContext(contentType string) map[string]any {
	return map[string]any{
		"contents":     ItemViews(s.ByType[contentType]),
		"all_content":  ItemViews(s.All),
		"content_type": contentType,
	}
}

// SiteIndexContext is the context of the site-wide index template.
func (s *BuildScope) SiteIndexContext() map[string]any {
	return map[string]any{
		"contents":    ItemViews(s.All),
		"all_content": ItemViews(s.All),
	}
}
