package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"runtime"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// DefaultPath is the config file loaded when the CLI receives no override.
const DefaultPath = "config.toml"

// legacy output_naming values accepted for backwards compatibility.
const (
	outputNamingDefault = "default"
	outputNamingDate    = "date"
)

// dateNamingPattern is the url_pattern equivalent of output_naming = "date".
const dateNamingPattern = "{date}-{stem}"

// Config is the root of the site configuration document.
type Config struct {
	Site  SiteConfig  `toml:"site"`
	Build BuildConfig `toml:"build"`

	// Content maps a content-type name (the directory name under the
	// content root) to its per-type settings.
	Content map[string]ContentTypeConfig `toml:"content"`

	// Redirects maps retired URL paths to their replacements. Each entry
	// becomes a meta-refresh stub in the output tree.
	Redirects map[string]string `toml:"redirects"`

	// Dynamic holds custom key/value pairs surfaced to every template
	// under the site scope.
	Dynamic map[string]string `toml:"dynamic"`
}

// SiteConfig carries site identity and the source/output directory layout.
type SiteConfig struct {
	Title    string `toml:"title"`
	Tagline  string `toml:"tagline"`
	Domain   string `toml:"domain"`
	Author   string `toml:"author"`
	Language string `toml:"language"`

	OutputDir   string `toml:"output_dir"`
	ContentDir  string `toml:"content_dir"`
	TemplateDir string `toml:"template_dir"`
	StaticDir   string `toml:"static_dir"`

	// SiteIndexTemplate renders the site-wide index page.
	SiteIndexTemplate string `toml:"site_index_template"`

	// RootStatic maps output filenames to source paths relative to the
	// static directory, for files that must live at the site root
	// (favicon.ico, verification files, and so on).
	RootStatic map[string]string `toml:"root_static"`

	Theme *ThemeConfig `toml:"theme"`
}

// ThemeConfig selects an optional theme manifest directory whose tokens and
// assets are exposed to templates under the site scope.
type ThemeConfig struct {
	Dir     string `toml:"dir"`
	Name    string `toml:"name"`
	Variant string `toml:"variant"`
}

// BuildConfig groups pipeline toggles that apply across content types.
type BuildConfig struct {
	CleanURLs bool `toml:"clean_urls"`
	Sitemap   bool `toml:"sitemap"`
	RSS       bool `toml:"rss"`
	Robots    bool `toml:"robots"`

	Highlight      bool   `toml:"highlight"`
	HighlightTheme string `toml:"highlight_theme"`

	// Workers bounds the content loader pool. Zero means NumCPU.
	Workers int `toml:"workers"`

	HashAssets bool `toml:"hash_assets"`

	// ManifestPath, when set, exports the asset manifest as JSON at this
	// path relative to the output directory.
	ManifestPath string `toml:"manifest_path"`
}

// ContentTypeConfig holds the per-type template and URL settings.
type ContentTypeConfig struct {
	IndexTemplate   string `toml:"index_template"`
	ContentTemplate string `toml:"content_template"`

	// URLPattern is a placeholder template ({stem}, {date}, {year},
	// {month}, {day}) controlling output naming. Takes precedence over
	// OutputNaming when both are set.
	URLPattern string `toml:"url_pattern"`

	// OutputNaming is the legacy naming switch: "default" or "date".
	OutputNaming string `toml:"output_naming"`

	// RSSInclude controls feed membership. Defaults to true.
	RSSInclude *bool `toml:"rss_include"`

	// Schema points at an optional JSON Schema file validating each
	// item's extra metadata, relative to the config file's directory.
	Schema string `toml:"schema"`
}

// IncludeInRSS reports whether items of this type belong in the feed.
func (c ContentTypeConfig) IncludeInRSS() bool {
	return c.RSSInclude == nil || *c.RSSInclude
}

// Pattern returns the effective url pattern for this type, translating the
// legacy output_naming switch and falling back to "{stem}".
func (c ContentTypeConfig) Pattern() string {
	if p := strings.TrimSpace(c.URLPattern); p != "" {
		return p
	}
	if strings.TrimSpace(c.OutputNaming) == outputNamingDate {
		return dateNamingPattern
	}
	return "{stem}"
}

// Load reads and parses the TOML config at path, applies defaults, and
// validates the result.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &NotFoundError{Path: path}
		}
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(raw)
}

// Parse decodes a TOML config document, applies defaults, and validates it.
func Parse(raw []byte) (*Config, error) {
	cfg := &Config{}
	dec := toml.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		var details *toml.StrictMissingError
		if errors.As(err, &details) {
			return nil, &ParseError{Detail: details.String()}
		}
		return nil, &ParseError{Detail: err.Error()}
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Site.OutputDir == "" {
		c.Site.OutputDir = "dist"
	}
	if c.Site.ContentDir == "" {
		c.Site.ContentDir = "content"
	}
	if c.Site.TemplateDir == "" {
		c.Site.TemplateDir = "templates"
	}
	if c.Site.StaticDir == "" {
		c.Site.StaticDir = "static"
	}
	if c.Site.SiteIndexTemplate == "" {
		c.Site.SiteIndexTemplate = "index.html"
	}
	if c.Build.HighlightTheme == "" {
		c.Build.HighlightTheme = "monokai"
	}
	if c.Build.Workers <= 0 {
		c.Build.Workers = runtime.NumCPU()
	}
	if c.Content == nil {
		c.Content = map[string]ContentTypeConfig{}
	}
	if c.Dynamic == nil {
		c.Dynamic = map[string]string{}
	}
}

// TypeConfig looks up the settings for a content-type directory name.
func (c *Config) TypeConfig(name string) (ContentTypeConfig, bool) {
	tc, ok := c.Content[name]
	return tc, ok
}

// BaseURL returns the absolute site origin derived from the configured
// domain, e.g. "https://example.com".
func (c *Config) BaseURL() string {
	domain := strings.TrimSpace(c.Site.Domain)
	if domain == "" {
		return ""
	}
	if strings.HasPrefix(domain, "http://") || strings.HasPrefix(domain, "https://") {
		return strings.TrimRight(domain, "/")
	}
	return "https://" + strings.TrimRight(domain, "/")
}
