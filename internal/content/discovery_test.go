package content

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFixture(t *testing.T, root, rel, body string) string {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir fixture dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write fixture %s: %v", rel, err)
	}
	return path
}

func TestDiscoverPairsContentWithMetadata(t *testing.T) {
	root := t.TempDir()
	writeFixture(t, root, "articles/hello.md", "# Hello")
	writeFixture(t, root, "articles/hello.meta.toml", `title = "Hello"`)
	writeFixture(t, root, "notes/scratch.markdown", "note")
	writeFixture(t, root, "notes/scratch.meta.toml", `title = "Scratch"`)
	writeFixture(t, root, "articles/ignore.txt", "not content")

	items, err := Discover(root)
	if err != nil {
		t.Fatalf("discover: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 work items, got %d", len(items))
	}

	byType := map[string]WorkItem{}
	for _, item := range items {
		byType[item.Type] = item
	}
	article, ok := byType["articles"]
	if !ok {
		t.Fatalf("expected an articles item, got %v", items)
	}
	if article.Stem() != "hello" {
		t.Fatalf("unexpected stem %q", article.Stem())
	}
	if filepath.Base(article.MetaPath) != "hello.meta.toml" {
		t.Fatalf("unexpected meta path %q", article.MetaPath)
	}
}

func TestDiscoverFailsOnMissingMetadata(t *testing.T) {
	root := t.TempDir()
	writeFixture(t, root, "articles/orphan.md", "# Orphan")

	_, err := Discover(root)
	if err == nil {
		t.Fatal("expected discovery error for missing metadata")
	}
	var derr *DiscoveryError
	if !errors.As(err, &derr) {
		t.Fatalf("expected DiscoveryError, got %T", err)
	}
	if !errors.Is(err, ErrMissingMetadata) {
		t.Fatalf("expected ErrMissingMetadata, got %v", err)
	}
}

func TestDiscoverRootLevelFilesHaveEmptyType(t *testing.T) {
	root := t.TempDir()
	writeFixture(t, root, "stray.md", "stray")
	writeFixture(t, root, "stray.meta.toml", `title = "Stray"`)

	items, err := Discover(root)
	if err != nil {
		t.Fatalf("discover: %v", err)
	}
	if len(items) != 1 || items[0].Type != "" {
		t.Fatalf("expected one untyped item, got %v", items)
	}
}

func TestDiscoverMissingRoot(t *testing.T) {
	_, err := Discover(filepath.Join(t.TempDir(), "absent"))
	var derr *DiscoveryError
	if !errors.As(err, &derr) {
		t.Fatalf("expected DiscoveryError for missing root, got %v", err)
	}
}
