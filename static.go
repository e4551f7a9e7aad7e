package static

import (
	"context"
	"path/filepath"

	"github.com/goliatone/go-static/internal/config"
	"github.com/goliatone/go-static/internal/content"
	"github.com/goliatone/go-static/internal/generator"
	"github.com/goliatone/go-static/internal/highlight"
	"github.com/goliatone/go-static/internal/markdown"
	"github.com/goliatone/go-static/internal/template"
	"github.com/goliatone/go-static/internal/validation"
	"github.com/goliatone/go-static/pkg/interfaces"
)

// Config exports the site configuration document.
type Config = config.Config

// BuildOptions exports the per-build switches.
type BuildOptions = generator.BuildOptions

// BuildResult exports the build summary.
type BuildResult = generator.BuildResult

// Item exports the immutable loaded content item.
type Item = content.Item

// LoadConfig reads, parses, and validates the TOML configuration at path.
func LoadConfig(path string) (*Config, error) {
	return config.Load(path)
}

// Option customises module construction.
type Option func(*Module)

// WithLogger installs a logger provider; the default is a no-op logger.
func WithLogger(provider interfaces.LoggerProvider) Option {
	return func(m *Module) {
		m.logger = provider
	}
}

// WithBaseDir anchors relative config paths (schemas, directories) at dir.
// NewFromFile sets this to the config file's directory automatically.
func WithBaseDir(dir string) Option {
	return func(m *Module) {
		m.baseDir = dir
	}
}

// Module is the top level build pipeline facade. Construct it once per
// configuration and run as many builds as needed.
type Module struct {
	cfg     *config.Config
	baseDir string
	logger  interfaces.LoggerProvider
	service *generator.Service
}

// New wires the pipeline from an already parsed configuration: the markdown
// converter, the optional highlighter and schema validators, the template
// renderer with theme fallback, the asset manifest, and the build service.
func New(cfg *config.Config, opts ...Option) (*Module, error) {
	m := &Module{cfg: cfg, baseDir: "."}
	for _, opt := range opts {
		opt(m)
	}

	converter := markdown.NewConverter()

	loaderOpts := []content.LoaderOption{
		content.WithWorkers(cfg.Build.Workers),
		content.WithLoaderLogger(m.logger),
	}
	if cfg.Build.Highlight {
		loaderOpts = append(loaderOpts, content.WithHighlighter(highlight.New(cfg.Build.HighlightTheme)))
	}
	loader := content.NewLoader(converter, loaderOpts...)

	resolverOpts := []content.ResolverOption{
		content.WithResolverLogger(m.logger),
	}
	schemas, err := validation.LoadSchemas(cfg, m.baseDir)
	if err != nil {
		return nil, err
	}
	if schemas.Len() > 0 {
		resolverOpts = append(resolverOpts, content.WithExtraValidator(schemas))
	}
	resolver := content.NewResolver(cfg, resolverOpts...)

	theme, err := generator.LoadTheme(cfg.Site.Theme)
	if err != nil {
		return nil, err
	}

	var templateDirs []string
	if theme != nil {
		if dir := theme.TemplateDir(); dir != "" {
			templateDirs = append(templateDirs, dir)
		}
	}
	renderer, err := template.New(cfg.Site.TemplateDir, templateDirs, template.WithLogger(m.logger))
	if err != nil {
		return nil, err
	}
	template.RegisterFilters()

	var assets *generator.AssetManifest
	if cfg.Build.HashAssets {
		assets, err = generator.HashAssets(cfg.Site.StaticDir)
		if err != nil {
			return nil, err
		}
	}

	m.service = generator.New(cfg, generator.Dependencies{
		Renderer: renderer,
		Resolver: resolver,
		Loader:   loader,
		Theme:    theme,
		Assets:   assets,
		Logger:   m.logger,
	})
	return m, nil
}

// NewFromFile loads the configuration at path and wires the pipeline,
// anchoring relative paths at the config file's directory.
func NewFromFile(path string, opts ...Option) (*Module, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	opts = append([]Option{WithBaseDir(filepath.Dir(path))}, opts...)
	return New(cfg, opts...)
}

// Config returns the module's configuration.
func (m *Module) Config() *Config {
	return m.cfg
}

// Build runs the full pipeline and returns its summary. Nothing is written
// to the output directory unless every stage succeeds.
func (m *Module) Build(ctx context.Context, opts BuildOptions) (*BuildResult, error) {
	return m.service.Build(ctx, opts)
}
