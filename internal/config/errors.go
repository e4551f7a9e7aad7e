package config

import (
	"errors"
	"fmt"
)

var (
	ErrSiteTitleRequired  = errors.New("config: site title is required")
	ErrContentTypeInvalid = errors.New("config: content type name is invalid")
	ErrDomainRequired     = errors.New("config: sitemap requires a domain")
)

// NotFoundError reports a missing configuration file.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("config: file not found: %s", e.Path)
}

// ParseError reports a malformed configuration document.
type ParseError struct {
	Detail string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("config: parse error: %s", e.Detail)
}
