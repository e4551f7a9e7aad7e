package generator

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/goliatone/go-static/internal/config"
	"github.com/goliatone/go-static/internal/content"
	"github.com/goliatone/go-static/internal/logging"
	"github.com/goliatone/go-static/pkg/interfaces"
)

// Dependencies bundles the collaborators a build needs. Renderer, Resolver,
// and Loader are mandatory; Theme and Assets are optional.
type Dependencies struct {
	Renderer interfaces.TemplateRenderer
	Resolver *content.Resolver
	Loader   *content.Loader
	Theme    *ThemeContext
	Assets   *AssetManifest
	Logger   interfaces.LoggerProvider
}

// BuildOptions carries per-invocation switches.
type BuildOptions struct {
	// IncludeDrafts keeps draft items in every collection and artifact.
	IncludeDrafts bool
}

// BuildResult summarises one completed build.
type BuildResult struct {
	RunID     uuid.UUID
	Items     int
	Drafts    int
	Pages     int
	Indexes   int
	Artifacts int
	OutputDir string
	Duration  time.Duration
}

// Service orchestrates the pipeline: discovery, resolution, parallel
// loading, context assembly, rendering, derived artifacts, and the final
// flush. A Service is built once per configuration and may run many builds;
// no item state survives between runs.
type Service struct {
	cfg    *config.Config
	deps   Dependencies
	logger interfaces.Logger
}

// New constructs a build service.
func New(cfg *config.Config, deps Dependencies) *Service {
	return &Service{
		cfg:    cfg,
		deps:   deps,
		logger: logging.GeneratorLogger(deps.Logger),
	}
}

// Build runs the whole pipeline. Output is written only when every stage
// has succeeded; the first error aborts the run with nothing on disk.
func (s *Service) Build(ctx context.Context, opts BuildOptions) (*BuildResult, error) {
	start := time.Now()
	result := &BuildResult{
		RunID:     uuid.New(),
		OutputDir: s.cfg.Site.OutputDir,
	}
	logger := logging.WithFields(s.logger, map[string]any{"run_id": result.RunID.String()})
	logger.Info("build started", "content_dir", s.cfg.Site.ContentDir)
	ctx = logging.ContextWithFields(ctx, map[string]any{"run_id": result.RunID.String()})

	discovered, err := content.Discover(s.cfg.Site.ContentDir)
	if err != nil {
		return nil, err
	}
	if len(discovered) == 0 {
		return nil, ErrNothingToBuild
	}

	resolved, err := s.deps.Resolver.ResolveAll(discovered)
	if err != nil {
		return nil, err
	}

	// Drafts are loaded and validated like everything else; they are only
	// excluded from aggregation and artifacts below.
	items, err := s.deps.Loader.Load(ctx, resolved)
	if err != nil {
		return nil, err
	}
	result.Items = len(items)

	published := content.FilterPublished(items, opts.IncludeDrafts)
	result.Drafts = len(items) - len(published)

	scope := NewBuildScope(s.cfg, published)
	scope.Theme = s.deps.Theme
	if s.deps.Assets != nil {
		scope.Assets = s.deps.Assets
	}
	s.deps.Renderer.Globals(scope.SiteScope())

	writer := newArtifactWriter(s.deps.Logger)

	pages, err := s.renderPages(scope, writer)
	if err != nil {
		return nil, err
	}
	result.Pages = pages

	indexes, err := s.renderIndexes(scope, writer)
	if err != nil {
		return nil, err
	}
	result.Indexes = indexes

	artifacts, err := s.stageArtifacts(scope, writer)
	if err != nil {
		return nil, err
	}
	result.Artifacts = artifacts

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := writer.Flush(s.cfg.Site.OutputDir); err != nil {
		return nil, err
	}

	result.Duration = time.Since(start)
	logger.Info("build finished",
		"items", result.Items,
		"pages", result.Pages,
		"indexes", result.Indexes,
		"artifacts", result.Artifacts,
		"duration", result.Duration.String(),
	)
	return result, nil
}

// stageArtifacts produces the derived documents: sitemap, feed, robots,
// redirect stubs, hashed assets, and the optional manifest export.
func (s *Service) stageArtifacts(scope *BuildScope, writer *artifactWriter) (int, error) {
	count := 0

	if s.cfg.Build.Sitemap {
		sitemap, err := scope.buildSitemap()
		if err != nil {
			return count, err
		}
		if err := writer.Stage(artifact{Path: "sitemap.xml", Body: []byte(sitemap), Category: categorySitemap}); err != nil {
			return count, err
		}
		count++
	}

	if s.cfg.Build.RSS {
		feed, err := scope.buildRSSFeed()
		if err != nil {
			return count, err
		}
		if err := writer.Stage(artifact{Path: "feed.xml", Body: []byte(feed), Category: categoryFeed}); err != nil {
			return count, err
		}
		count++
	}

	if s.cfg.Build.Robots {
		if err := writer.Stage(artifact{Path: "robots.txt", Body: []byte(scope.buildRobots()), Category: categoryRobots}); err != nil {
			return count, err
		}
		count++
	}

	redirects := scope.buildRedirects()
	if err := writer.StageAll(redirects); err != nil {
		return count, err
	}
	count += len(redirects)

	rootStatic, err := s.stageRootStatic()
	if err != nil {
		return count, err
	}
	if err := writer.StageAll(rootStatic); err != nil {
		return count, err
	}
	count += len(rootStatic)

	if s.deps.Assets != nil && s.deps.Assets.Len() > 0 {
		hashed, err := s.deps.Assets.artifacts()
		if err != nil {
			return count, err
		}
		if err := writer.StageAll(hashed); err != nil {
			return count, err
		}
		count += len(hashed)

		if path := s.cfg.Build.ManifestPath; path != "" {
			export, err := s.deps.Assets.ExportJSON()
			if err != nil {
				return count, err
			}
			if err := writer.Stage(artifact{Path: path, Body: export, Category: categoryManifest}); err != nil {
				return count, err
			}
			count++
		}
	}

	return count, nil
}

// stageRootStatic reads the configured root_static sources and stages each
// one at its site-root filename (favicon.ico, verification files).
func (s *Service) stageRootStatic() ([]artifact, error) {
	if len(s.cfg.Site.RootStatic) == 0 {
		return nil, nil
	}
	names := make([]string, 0, len(s.cfg.Site.RootStatic))
	for name := range s.cfg.Site.RootStatic {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]artifact, 0, len(names))
	for _, name := range names {
		source := filepath.Join(s.cfg.Site.StaticDir, filepath.FromSlash(s.cfg.Site.RootStatic[name]))
		body, err := os.ReadFile(source)
		if err != nil {
			return nil, &ArtifactError{Artifact: "root static", Err: err}
		}
		out = append(out, artifact{Path: name, Body: body, Category: categoryAsset})
	}
	return out, nil
}
