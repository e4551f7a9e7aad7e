package content

import (
	"errors"
	"fmt"
)

var (
	ErrMissingMetadata    = errors.New("content: metadata file is missing")
	ErrUnknownContentType = errors.New("content: no configuration for content type")
	ErrTitleRequired      = errors.New("content: title is required")
	ErrAuthorRequired     = errors.New("content: author is required")
	ErrDateRequired       = errors.New("content: date is required")
	ErrDateInvalid        = errors.New("content: date must be an RFC3339 timestamp")
	ErrExtraInvalid       = errors.New("content: extra metadata failed schema validation")
)

// DiscoveryError reports a failure while walking the content root, most
// commonly a content file with no metadata sibling.
type DiscoveryError struct {
	Path string
	Err  error
}

func (e *DiscoveryError) Error() string {
	return fmt.Sprintf("discovery: %s: %v", e.Path, e.Err)
}

func (e *DiscoveryError) Unwrap() error { return e.Err }

// MetadataError reports a missing or invalid metadata field for one item.
type MetadataError struct {
	Path string
	Err  error
}

func (e *MetadataError) Error() string {
	return fmt.Sprintf("metadata: %s: %v", e.Path, e.Err)
}

func (e *MetadataError) Unwrap() error { return e.Err }

// LoadError reports a conversion or highlighting failure for one item.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load: %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }
