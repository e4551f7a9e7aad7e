package content

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// MetaSuffix is the recognized metadata filename suffix. A content file
// stem.md pairs with stem.meta.toml in the same directory.
const MetaSuffix = ".meta.toml"

var contentExtensions = map[string]bool{
	".md":       true,
	".markdown": true,
}

// Discover walks the content root and pairs every markdown file with its
// metadata sibling. A markdown file without a metadata file is a fatal
// discovery error; metadata is mandatory. The returned order follows the
// filesystem traversal and carries no stability guarantee.
func Discover(root string) ([]WorkItem, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, &DiscoveryError{Path: root, Err: err}
	}
	if !info.IsDir() {
		return nil, &DiscoveryError{Path: root, Err: fmt.Errorf("not a directory")}
	}

	var items []WorkItem
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return &DiscoveryError{Path: path, Err: err}
		}
		if d.IsDir() {
			return nil
		}
		if !contentExtensions[strings.ToLower(filepath.Ext(path))] {
			return nil
		}

		stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		metaPath := filepath.Join(filepath.Dir(path), stem+MetaSuffix)
		if _, err := os.Stat(metaPath); err != nil {
			return &DiscoveryError{Path: path, Err: ErrMissingMetadata}
		}

		items = append(items, WorkItem{
			ContentPath: path,
			MetaPath:    metaPath,
			Type:        typeForPath(root, path),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

// typeForPath derives the content type from the file's immediate parent
// directory. Files directly under the root yield an empty type, which the
// resolver rejects as an unknown content type.
func typeForPath(root, path string) string {
	parent := filepath.Dir(path)
	if filepath.Clean(parent) == filepath.Clean(root) {
		return ""
	}
	return filepath.Base(parent)
}

// Stem returns the content file's name without directory or extension.
func (w WorkItem) Stem() string {
	base := filepath.Base(w.ContentPath)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
