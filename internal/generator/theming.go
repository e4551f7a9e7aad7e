package generator

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	gotheme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-static/internal/config"
)

// ThemeContext carries the selected theme of a build: its manifest-backed
// selection plus the directory templates and assets resolve against.
type ThemeContext struct {
	Dir       string
	Selection *gotheme.Selection
}

// LoadTheme resolves the configured theme manifest directory. A nil theme
// config yields a nil context; builds without themes are the common case.
func LoadTheme(themeCfg *config.ThemeConfig) (*ThemeContext, error) {
	if themeCfg == nil {
		return nil, nil
	}

	dir := filepath.Clean(strings.TrimSpace(themeCfg.Dir))
	manifest, err := gotheme.LoadDir(os.DirFS(dir), ".")
	if err != nil {
		return nil, &ArtifactError{Artifact: "theme", Err: fmt.Errorf("load manifest from %s: %w", dir, err)}
	}

	registry := gotheme.NewRegistry()
	if err := registry.Register(manifest); err != nil {
		return nil, &ArtifactError{Artifact: "theme", Err: fmt.Errorf("register manifest: %w", err)}
	}

	selector := gotheme.Selector{
		Registry:       registry,
		DefaultTheme:   manifest.Name,
		DefaultVariant: themeCfg.Variant,
	}

	name := strings.TrimSpace(themeCfg.Name)
	if name == "" {
		name = manifest.Name
	}
	selection, err := selector.Select(name, strings.TrimSpace(themeCfg.Variant))
	if err != nil {
		return nil, &ArtifactError{Artifact: "theme", Err: fmt.Errorf("select theme %s: %w", name, err)}
	}

	return &ThemeContext{Dir: dir, Selection: selection}, nil
}

// TemplateDir returns the theme's template lookup root when it exists, so
// the renderer can fall back to theme-provided templates.
func (t *ThemeContext) TemplateDir() string {
	if t == nil {
		return ""
	}
	dir := filepath.Join(t.Dir, "templates")
	if info, err := os.Stat(dir); err == nil && info.IsDir() {
		return dir
	}
	return ""
}

// TemplateContext exposes the theme's tokens and variables to templates
// under the site scope.
func (t *ThemeContext) TemplateContext() map[string]any {
	if t == nil || t.Selection == nil {
		return nil
	}
	ctx := map[string]any{
		"name":          t.Selection.Theme,
		"variant":       t.Selection.Variant,
		"tokens":        t.Selection.Tokens(),
		"css_variables": t.Selection.CSSVariables("--"),
	}
	return ctx
}
