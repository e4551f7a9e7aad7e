package generator

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/goliatone/go-static/pkg/interfaces"
)

// assetHashLength is the number of hash hex characters embedded in a
// revisioned filename, e.g. style.a1b2c3d4.css.
const assetHashLength = 8

var hashableExtensions = map[string]bool{
	".css": true,
	".js":  true,
}

// AssetManifest maps a source-relative asset key (e.g. "css/style.css") to
// the public URL of its content-hashed revision
// (e.g. "/static/css/style.a1b2c3d4.css"). It also remembers the hashed
// relative path so the writer can stage the revisioned copy.
type AssetManifest struct {
	urls    map[string]string
	outputs map[string]string
	sources map[string]string
}

var _ interfaces.AssetResolver = (*AssetManifest)(nil)

// AssetURL satisfies interfaces.AssetResolver.
func (m *AssetManifest) AssetURL(key string) (string, bool) {
	if m == nil {
		return "", false
	}
	url, ok := m.urls[key]
	return url, ok
}

// Len reports how many assets were hashed.
func (m *AssetManifest) Len() int {
	if m == nil {
		return 0
	}
	return len(m.urls)
}

// Keys returns the manifest keys in lexical order.
func (m *AssetManifest) Keys() []string {
	keys := make([]string, 0, len(m.urls))
	for key := range m.urls {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// ExportJSON serializes the manifest as a JSON object with lexically
// ordered keys, so repeated builds emit byte-identical documents.
func (m *AssetManifest) ExportJSON() ([]byte, error) {
	ordered := map[string]string{}
	for key, url := range m.urls {
		ordered[key] = url
	}
	// encoding/json sorts map keys, which keeps the export deterministic.
	out, err := json.MarshalIndent(ordered, "", "  ")
	if err != nil {
		return nil, &ArtifactError{Artifact: "asset-manifest", Err: err}
	}
	return append(out, '\n'), nil
}

// HashAssets walks the static directory and computes content-hashed names
// for every stylesheet and script. Nothing is written; the returned
// manifest tells the writer which revisioned copies to stage and tells
// templates which URLs to emit.
func HashAssets(staticDir string) (*AssetManifest, error) {
	manifest := &AssetManifest{
		urls:    map[string]string{},
		outputs: map[string]string{},
		sources: map[string]string{},
	}

	info, err := os.Stat(staticDir)
	if err != nil {
		if os.IsNotExist(err) {
			return manifest, nil
		}
		return nil, &ArtifactError{Artifact: "assets", Err: err}
	}
	if !info.IsDir() {
		return manifest, nil
	}

	err = filepath.WalkDir(staticDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !hashableExtensions[strings.ToLower(filepath.Ext(path))] {
			return nil
		}

		raw, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		sum := sha256.Sum256(raw)
		hash := hex.EncodeToString(sum[:])[:assetHashLength]

		rel, err := filepath.Rel(staticDir, path)
		if err != nil {
			return err
		}
		key := filepath.ToSlash(rel)
		hashed := hashedAssetName(key, hash)

		manifest.urls[key] = "/static/" + hashed
		manifest.outputs[key] = "static/" + hashed
		manifest.sources[key] = path
		return nil
	})
	if err != nil {
		return nil, &ArtifactError{Artifact: "assets", Err: err}
	}
	return manifest, nil
}

// hashedAssetName splices the hash before the extension:
// css/style.css + a1b2c3d4 -> css/style.a1b2c3d4.css.
func hashedAssetName(key, hash string) string {
	dot := strings.LastIndex(key, ".")
	if dot < 0 {
		return fmt.Sprintf("%s.%s", key, hash)
	}
	return fmt.Sprintf("%s.%s%s", key[:dot], hash, key[dot:])
}

// artifacts stages one revisioned copy per hashed asset.
func (m *AssetManifest) artifacts() ([]artifact, error) {
	out := make([]artifact, 0, len(m.urls))
	for _, key := range m.Keys() {
		raw, err := os.ReadFile(m.sources[key])
		if err != nil {
			return nil, &ArtifactError{Artifact: "assets", Err: err}
		}
		out = append(out, artifact{
			Path:     m.outputs[key],
			Body:     raw,
			Category: categoryAsset,
		})
	}
	return out, nil
}
