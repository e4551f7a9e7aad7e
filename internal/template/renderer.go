package template

import (
	"fmt"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-static/internal/logging"
	"github.com/goliatone/go-static/pkg/interfaces"
)

// Error reports a template resolution or execution failure.
type Error struct {
	Template string
	Err      error
}

func (e *Error) Error() string {
	return fmt.Sprintf("template: %s: %v", e.Template, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Renderer implements interfaces.TemplateRenderer over a pongo2 template
// set. The set is constructed once per build and never mutated afterwards;
// the lazily populated template cache inside pongo2 is concurrency safe.
type Renderer struct {
	set    *pongo2.TemplateSet
	logger interfaces.Logger
}

var _ interfaces.TemplateRenderer = (*Renderer)(nil)

// Option customises a Renderer.
type Option func(*Renderer)

// WithLogger attaches a logger provider to the renderer.
func WithLogger(provider interfaces.LoggerProvider) Option {
	return func(r *Renderer) { r.logger = logging.TemplateLogger(provider) }
}

// New builds a renderer rooted at dir. Extra directories, such as a theme's
// template root, act as fallback lookup locations in order.
func New(dir string, extraDirs []string, opts ...Option) (*Renderer, error) {
	loaders := make([]pongo2.TemplateLoader, 0, 1+len(extraDirs))
	primary, err := pongo2.NewLocalFileSystemLoader(dir)
	if err != nil {
		return nil, &Error{Template: dir, Err: err}
	}
	loaders = append(loaders, primary)
	for _, extra := range extraDirs {
		loader, err := pongo2.NewLocalFileSystemLoader(extra)
		if err != nil {
			return nil, &Error{Template: extra, Err: err}
		}
		loaders = append(loaders, loader)
	}

	r := &Renderer{
		set:    pongo2.NewSet("site", loaders...),
		logger: logging.NoOp(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Render resolves the named template and executes it with the given data.
func (r *Renderer) Render(name string, data map[string]any) ([]byte, error) {
	tpl, err := r.set.FromCache(name)
	if err != nil {
		return nil, &Error{Template: name, Err: err}
	}
	out, err := tpl.ExecuteBytes(pongo2.Context(data))
	if err != nil {
		return nil, &Error{Template: name, Err: err}
	}
	r.logger.Trace("rendered template", "template", name, "bytes", len(out))
	return out, nil
}

// RenderString executes an inline template. Useful for one-off snippets
// that never live on disk.
func (r *Renderer) RenderString(templateContent string, data map[string]any) ([]byte, error) {
	tpl, err := r.set.FromString(templateContent)
	if err != nil {
		return nil, &Error{Template: "<inline>", Err: err}
	}
	out, err := tpl.ExecuteBytes(pongo2.Context(data))
	if err != nil {
		return nil, &Error{Template: "<inline>", Err: err}
	}
	return out, nil
}

// Globals merges values into the set-wide context visible to every
// template. Call before rendering starts; the set is immutable afterwards.
func (r *Renderer) Globals(data map[string]any) {
	for key, value := range data {
		r.set.Globals[key] = value
	}
}

// Safe marks rendered HTML as safe so pongo2 does not re-escape it.
func Safe(html string) *pongo2.Value {
	return pongo2.AsSafeValue(html)
}
