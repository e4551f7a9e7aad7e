package validation

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/goliatone/go-static/internal/config"
)

var (
	ErrSchemaInvalid    = errors.New("validation: schema invalid")
	ErrSchemaValidation = errors.New("validation: schema validation failed")
)

// ValidationIssue captures a single validation failure.
type ValidationIssue struct {
	Location string
	Message  string
}

// PayloadValidationError surfaces validation issues with schema-aware context.
type PayloadValidationError struct {
	Issues []ValidationIssue
	Cause  error
}

func (e *PayloadValidationError) Error() string {
	if len(e.Issues) == 0 {
		if e.Cause != nil {
			return e.Cause.Error()
		}
		return ErrSchemaValidation.Error()
	}
	parts := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		location := strings.TrimSpace(issue.Location)
		if location == "" {
			location = "#"
		} else if !strings.HasPrefix(location, "#") {
			location = "#" + location
		}
		if issue.Message == "" {
			parts = append(parts, location)
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %s", location, issue.Message))
	}
	return strings.Join(parts, "; ")
}

func (e *PayloadValidationError) Unwrap() error {
	return ErrSchemaValidation
}

// SchemaSet holds the compiled per-content-type schemas for extra metadata.
// Types without a configured schema validate trivially.
type SchemaSet struct {
	schemas map[string]*jsonschema.Schema
}

// LoadSchemas compiles the schema file of every content type that declares
// one. Paths are resolved relative to baseDir (the config file's directory).
func LoadSchemas(cfg *config.Config, baseDir string) (*SchemaSet, error) {
	set := &SchemaSet{schemas: map[string]*jsonschema.Schema{}}
	for name, tc := range cfg.Content {
		path := strings.TrimSpace(tc.Schema)
		if path == "" {
			continue
		}
		if !filepath.IsAbs(path) {
			path = filepath.Join(baseDir, path)
		}
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("%w: read schema for %s: %v", ErrSchemaInvalid, name, err)
		}
		compiled, err := compileSchema(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: compile schema for %s: %v", ErrSchemaInvalid, name, err)
		}
		set.schemas[name] = compiled
	}
	return set, nil
}

// Len reports how many content types registered a schema.
func (s *SchemaSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.schemas)
}

// ValidateExtra checks an item's extra metadata against the content type's
// schema, if one is registered.
func (s *SchemaSet) ValidateExtra(contentType string, extra map[string]string) error {
	if s == nil {
		return nil
	}
	schema, ok := s.schemas[contentType]
	if !ok {
		return nil
	}

	payload := make(map[string]any, len(extra))
	for k, v := range extra {
		payload[k] = v
	}

	if err := schema.Validate(payload); err != nil {
		var validationErr *jsonschema.ValidationError
		if errors.As(err, &validationErr) {
			return &PayloadValidationError{
				Issues: collectValidationIssues(validationErr),
				Cause:  err,
			}
		}
		return &PayloadValidationError{Cause: err}
	}
	return nil
}

func compileSchema(raw []byte) (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err := compiler.AddResource("schema.json", bytes.NewReader(raw)); err != nil {
		return nil, err
	}
	return compiler.Compile("schema.json")
}

func collectValidationIssues(err *jsonschema.ValidationError) []ValidationIssue {
	if err == nil {
		return nil
	}
	issues := []ValidationIssue{}
	var walk func(*jsonschema.ValidationError)
	walk = func(node *jsonschema.ValidationError) {
		if node == nil {
			return
		}
		if len(node.Causes) == 0 {
			issues = append(issues, ValidationIssue{
				Location: strings.TrimSpace(node.InstanceLocation),
				Message:  strings.TrimSpace(node.Message),
			})
			return
		}
		for _, cause := range node.Causes {
			walk(cause)
		}
	}
	walk(err)
	return issues
}
