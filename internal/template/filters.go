package template

import (
	"sync"
	"time"

	"github.com/flosch/pongo2/v6"
)

// longDateLayout is the human-facing date format used by item views.
const longDateLayout = "January 2, 2006"

var registerOnce sync.Once

// RegisterFilters installs the pipeline's pongo2 filters. pongo2 filters
// are process global, so registration happens once regardless of how many
// renderers a process builds.
func RegisterFilters() {
	registerOnce.Do(func() {
		pongo2.RegisterFilter("long_date", filterLongDate)
	})
}

// filterLongDate formats a time.Time or RFC3339 string as a long-form date,
// e.g. "January 15, 2025".
func filterLongDate(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	switch v := in.Interface().(type) {
	case time.Time:
		return pongo2.AsValue(v.Format(longDateLayout)), nil
	case string:
		parsed, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return in, nil
		}
		return pongo2.AsValue(parsed.Format(longDateLayout)), nil
	default:
		return in, nil
	}
}

// FormatLongDate is the Go-side twin of the long_date filter, used when a
// context value is pre-formatted instead of filtered in the template.
func FormatLongDate(t time.Time) string {
	return t.Format(longDateLayout)
}
