package content

import (
	"fmt"

	"github.com/goliatone/go-static/internal/config"
	"github.com/goliatone/go-static/internal/logging"
	"github.com/goliatone/go-static/pkg/interfaces"
)

// ExtraValidator checks an item's extra metadata against a per-type schema.
// Implementations return nil when no schema is registered for the type.
type ExtraValidator interface {
	ValidateExtra(contentType string, extra map[string]string) error
}

// Resolver turns discovered work items into ResolvedItems: parsed,
// validated metadata plus the computed slug, output path, and URL.
type Resolver struct {
	cfg    *config.Config
	extras ExtraValidator
	logger interfaces.Logger
}

// ResolverOption customises a Resolver.
type ResolverOption func(*Resolver)

// WithExtraValidator wires schema validation of extra metadata.
func WithExtraValidator(v ExtraValidator) ResolverOption {
	return func(r *Resolver) { r.extras = v }
}

// WithResolverLogger attaches a logger provider to the resolver.
func WithResolverLogger(provider interfaces.LoggerProvider) ResolverOption {
	return func(r *Resolver) { r.logger = logging.ContentLogger(provider) }
}

// NewResolver builds a resolver bound to one immutable configuration.
func NewResolver(cfg *config.Config, opts ...ResolverOption) *Resolver {
	r := &Resolver{cfg: cfg, logger: logging.NoOp()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve parses and validates one work item's metadata and computes its
// location. Unknown content types, invalid metadata, and schema failures
// all surface as MetadataError carrying the source path.
func (r *Resolver) Resolve(item WorkItem) (*ResolvedItem, error) {
	tc, ok := r.cfg.TypeConfig(item.Type)
	if !ok {
		return nil, &MetadataError{
			Path: item.ContentPath,
			Err:  fmt.Errorf("%w: %q", ErrUnknownContentType, item.Type),
		}
	}

	meta, err := ParseMetaFile(item.MetaPath)
	if err != nil {
		return nil, err
	}

	if r.extras != nil {
		if err := r.extras.ValidateExtra(item.Type, meta.Extra); err != nil {
			return nil, &MetadataError{
				Path: item.MetaPath,
				Err:  fmt.Errorf("%w: %v", ErrExtraInvalid, err),
			}
		}
	}

	loc := Resolve(item.Type, item.Stem(), tc.Pattern(), meta.Date, r.cfg.Build.CleanURLs)

	template := tc.ContentTemplate
	if meta.Template != "" {
		template = meta.Template
	}

	r.logger.Debug("resolved content item",
		"path", item.ContentPath,
		"type", item.Type,
		"slug", loc.Slug,
		"url", loc.URL,
	)

	return &ResolvedItem{
		WorkItem:   item,
		Meta:       meta,
		Slug:       loc.Slug,
		OutputPath: loc.OutputPath,
		URL:        loc.URL,
		Template:   template,
	}, nil
}

// ResolveAll resolves every discovered item, failing fast on the first
// error.
func (r *Resolver) ResolveAll(items []WorkItem) ([]*ResolvedItem, error) {
	resolved := make([]*ResolvedItem, 0, len(items))
	for _, item := range items {
		ri, err := r.Resolve(item)
		if err != nil {
			return nil, err
		}
		resolved = append(resolved, ri)
	}
	return resolved, nil
}
