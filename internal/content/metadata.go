package content

import (
	"fmt"
	"os"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// metaDocument mirrors the on-disk metadata schema. Date stays untyped so
// quoted RFC3339 strings and native TOML datetimes both decode.
type metaDocument struct {
	Title    string            `toml:"title"`
	Date     any               `toml:"date"`
	Author   string            `toml:"author"`
	Tags     []string          `toml:"tags"`
	Template string            `toml:"template"`
	Cover    string            `toml:"cover"`
	Draft    bool              `toml:"draft"`
	Extra    map[string]string `toml:"extra"`
}

// ParseMetaFile reads and validates the metadata document at path. Every
// failure is reported as a MetadataError carrying the file path.
func ParseMetaFile(path string) (Meta, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Meta{}, &MetadataError{Path: path, Err: err}
	}
	meta, err := parseMeta(raw)
	if err != nil {
		return Meta{}, &MetadataError{Path: path, Err: err}
	}
	return meta, nil
}

func parseMeta(raw []byte) (Meta, error) {
	doc := metaDocument{}
	if err := toml.Unmarshal(raw, &doc); err != nil {
		return Meta{}, err
	}

	meta := Meta{
		Title:    strings.TrimSpace(doc.Title),
		Author:   strings.TrimSpace(doc.Author),
		Tags:     doc.Tags,
		Template: strings.TrimSpace(doc.Template),
		Cover:    strings.TrimSpace(doc.Cover),
		Draft:    doc.Draft,
		Extra:    doc.Extra,
	}
	if meta.Extra == nil {
		meta.Extra = map[string]string{}
	}

	if meta.Title == "" {
		return Meta{}, ErrTitleRequired
	}
	if meta.Author == "" {
		return Meta{}, ErrAuthorRequired
	}

	date, err := parseDate(doc.Date)
	if err != nil {
		return Meta{}, err
	}
	meta.Date = date
	return meta, nil
}

// parseDate accepts a quoted RFC3339 string or a native TOML datetime.
func parseDate(value any) (time.Time, error) {
	switch v := value.(type) {
	case nil:
		return time.Time{}, ErrDateRequired
	case string:
		if strings.TrimSpace(v) == "" {
			return time.Time{}, ErrDateRequired
		}
		parsed, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %q", ErrDateInvalid, v)
		}
		return parsed, nil
	case time.Time:
		return v, nil
	default:
		return time.Time{}, fmt.Errorf("%w: unexpected value %v", ErrDateInvalid, value)
	}
}
