package generator

import (
	"errors"
	"fmt"
)

var (
	ErrDomainRequired   = errors.New("generator: artifact requires a configured domain")
	ErrNothingToBuild   = errors.New("generator: no content discovered")
	ErrOutputConflict   = errors.New("generator: conflicting output path")
	ErrTemplateRequired = errors.New("generator: template name is required")
)

// ArtifactError reports a failure while producing one derived artifact.
type ArtifactError struct {
	Artifact string
	Err      error
}

func (e *ArtifactError) Error() string {
	return fmt.Sprintf("artifact: %s: %v", e.Artifact, e.Err)
}

func (e *ArtifactError) Unwrap() error { return e.Err }

// RenderError reports a template failure for one page, carrying the source
// path of the item being rendered.
type RenderError struct {
	Path     string
	Template string
	Err      error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render: %s (template %s): %v", e.Path, e.Template, e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }
