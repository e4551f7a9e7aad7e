package content

import (
	"context"
	"os"
	"runtime"
	"sort"
	"sync"

	"github.com/goliatone/go-static/internal/logging"
	"github.com/goliatone/go-static/pkg/interfaces"
)

// Loader fans resolved items out to a bounded worker pool, invoking the
// markdown and highlighting collaborators per item, and joins the results
// into a deterministically ordered list. The first item failure cancels the
// pool and aborts the load.
type Loader struct {
	converter   interfaces.MarkdownConverter
	highlighter interfaces.Highlighter
	workers     int
	logger      interfaces.Logger
}

// LoaderOption customises a Loader.
type LoaderOption func(*Loader)

// WithWorkers bounds the pool. Values below one fall back to NumCPU.
func WithWorkers(n int) LoaderOption {
	return func(l *Loader) { l.workers = n }
}

// WithHighlighter enables the syntax-highlighting pass over rendered HTML.
func WithHighlighter(h interfaces.Highlighter) LoaderOption {
	return func(l *Loader) { l.highlighter = h }
}

// WithLoaderLogger attaches a logger provider to the loader.
func WithLoaderLogger(provider interfaces.LoggerProvider) LoaderOption {
	return func(l *Loader) { l.logger = logging.ContentLogger(provider) }
}

// NewLoader builds a loader around the mandatory markdown converter.
func NewLoader(converter interfaces.MarkdownConverter, opts ...LoaderOption) *Loader {
	l := &Loader{
		converter: converter,
		workers:   runtime.NumCPU(),
		logger:    logging.NoOp(),
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.workers < 1 {
		l.workers = runtime.NumCPU()
	}
	return l
}

type loadOutcome struct {
	index int
	item  *Item
	err   error
}

// Load processes every resolved item concurrently and returns the complete
// item list sorted by date descending with ties broken by slug ascending.
// Worker completion order never leaks into the result. The first failure
// cancels outstanding work and is returned as a LoadError.
func (l *Loader) Load(ctx context.Context, resolved []*ResolvedItem) ([]*Item, error) {
	if len(resolved) == 0 {
		return nil, nil
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	logger := logging.WithFields(l.logger, logging.ContextFields(ctx))

	var (
		mu       sync.Mutex
		items    = make([]*Item, len(resolved))
		firstErr error
	)

	collect := func(outcome loadOutcome) {
		mu.Lock()
		defer mu.Unlock()
		if outcome.err != nil {
			if firstErr == nil {
				firstErr = outcome.err
				cancel()
			}
			return
		}
		items[outcome.index] = outcome.item
	}

	workers := l.workers
	if workers > len(resolved) {
		workers = len(resolved)
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				select {
				case <-ctx.Done():
					return
				default:
					res := resolved[idx]
					item, err := l.loadItem(res)
					if err != nil {
						logging.WithContentContext(logger, res.ContentPath, res.Type, "load").
							Error("content item failed", "error", err)
					}
					collect(loadOutcome{index: idx, item: item, err: err})
				}
			}
		}()
	}

dispatch:
	for idx := range resolved {
		select {
		case <-ctx.Done():
			break dispatch
		case jobs <- idx:
		}
	}
	close(jobs)
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := make([]*Item, 0, len(items))
	for _, item := range items {
		if item != nil {
			out = append(out, item)
		}
	}
	SortItems(out)

	logger.Info("content loaded", "items", len(out), "workers", workers)
	return out, nil
}

// loadItem reads, converts, and optionally highlights a single item.
func (l *Loader) loadItem(res *ResolvedItem) (*Item, error) {
	raw, err := os.ReadFile(res.ContentPath)
	if err != nil {
		return nil, &LoadError{Path: res.ContentPath, Err: err}
	}

	html, err := l.converter.Convert(raw)
	if err != nil {
		return nil, &LoadError{Path: res.ContentPath, Err: err}
	}
	excerpt, err := l.converter.Excerpt(raw)
	if err != nil {
		return nil, &LoadError{Path: res.ContentPath, Err: err}
	}

	if l.highlighter != nil {
		if html, err = l.highlighter.Highlight(html); err != nil {
			return nil, &LoadError{Path: res.ContentPath, Err: err}
		}
	}

	return &Item{
		SourcePath: res.ContentPath,
		Type:       res.Type,
		Slug:       res.Slug,
		OutputPath: res.OutputPath,
		URL:        res.URL,
		Template:   res.Template,
		Raw:        raw,
		HTML:       html,
		Excerpt:    string(excerpt),
		Meta:       res.Meta,
	}, nil
}

// SortItems orders items by date descending, breaking ties by slug
// ascending. This is the canonical order of every aggregated collection.
func SortItems(items []*Item) {
	sort.SliceStable(items, func(i, j int) bool {
		if !items[i].Meta.Date.Equal(items[j].Meta.Date) {
			return items[i].Meta.Date.After(items[j].Meta.Date)
		}
		return items[i].Slug < items[j].Slug
	})
}

// FilterPublished removes draft items unless drafts are included. The input
// slice is never mutated.
func FilterPublished(items []*Item, includeDrafts bool) []*Item {
	if includeDrafts {
		return items
	}
	out := make([]*Item, 0, len(items))
	for _, item := range items {
		if !item.Meta.Draft {
			out = append(out, item)
		}
	}
	return out
}

// GroupByType partitions items by content type, preserving their order.
func GroupByType(items []*Item) map[string][]*Item {
	grouped := map[string][]*Item{}
	for _, item := range items {
		grouped[item.Type] = append(grouped[item.Type], item)
	}
	return grouped
}
