package generator

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/goliatone/go-static/internal/logging"
	"github.com/goliatone/go-static/pkg/interfaces"
)

type writeCategory string

const (
	categoryPage     writeCategory = "page"
	categoryIndex    writeCategory = "index"
	categorySitemap  writeCategory = "sitemap"
	categoryFeed     writeCategory = "feed"
	categoryRobots   writeCategory = "robots"
	categoryRedirect writeCategory = "redirect"
	categoryAsset    writeCategory = "asset"
	categoryManifest writeCategory = "manifest"
)

// artifact is one staged output document. Path is relative to the output
// directory, always slash separated.
type artifact struct {
	Path     string
	Body     []byte
	Category writeCategory
}

// artifactWriter stages artifacts in memory and flushes them only when the
// whole pipeline has succeeded, so a failing build never leaves partial
// output behind.
type artifactWriter struct {
	staged []artifact
	byPath map[string]writeCategory
	logger interfaces.Logger
}

func newArtifactWriter(provider interfaces.LoggerProvider) *artifactWriter {
	return &artifactWriter{
		byPath: map[string]writeCategory{},
		logger: logging.GeneratorLogger(provider),
	}
}

// Stage records an artifact for the final flush. Two artifacts claiming the
// same path is a build error; it usually means two items resolved to the
// same output location.
func (w *artifactWriter) Stage(a artifact) error {
	clean := filepath.ToSlash(filepath.Clean(a.Path))
	if prev, ok := w.byPath[clean]; ok {
		return fmt.Errorf("%w: %s claimed by %s and %s", ErrOutputConflict, clean, prev, a.Category)
	}
	w.byPath[clean] = a.Category
	a.Path = clean
	w.staged = append(w.staged, a)
	return nil
}

// StageAll stages a batch, stopping at the first conflict.
func (w *artifactWriter) StageAll(artifacts []artifact) error {
	for _, a := range artifacts {
		if err := w.Stage(a); err != nil {
			return err
		}
	}
	return nil
}

// Staged returns the staged artifacts sorted by path.
func (w *artifactWriter) Staged() []artifact {
	out := append([]artifact(nil), w.staged...)
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out
}

// Flush writes every staged artifact under outputDir, creating directories
// as needed. Directories are cached so deep trees do not re-stat parents.
func (w *artifactWriter) Flush(outputDir string) error {
	dirCache := map[string]struct{}{}
	for _, a := range w.Staged() {
		full := filepath.Join(outputDir, filepath.FromSlash(a.Path))
		dir := filepath.Dir(full)
		if _, ok := dirCache[dir]; !ok {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("generator: ensure dir %s: %w", dir, err)
			}
			dirCache[dir] = struct{}{}
		}
		if err := os.WriteFile(full, a.Body, 0o644); err != nil {
			return fmt.Errorf("generator: write %s: %w", full, err)
		}
		w.logger.Trace("wrote artifact",
			"path", a.Path,
			"category", string(a.Category),
			"bytes", len(a.Body),
			"checksum", computeHash(a.Body),
		)
	}
	w.logger.Info("flushed artifacts", "count", len(w.staged), "output_dir", outputDir)
	return nil
}

func computeHash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
