package markdown

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/adrg/frontmatter"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/goliatone/go-static/pkg/interfaces"
)

// excerptHeading introduces the section used as an item's excerpt.
const excerptHeading = "## Context"

// Converter implements interfaces.MarkdownConverter using the goldmark
// engine. The converter is stateless and safe for concurrent use, which the
// loader relies on when sharing one instance across its worker pool.
type Converter struct {
	engine goldmark.Markdown
}

var _ interfaces.MarkdownConverter = (*Converter)(nil)

// NewConverter builds a converter with GFM extensions, auto heading IDs, and
// raw HTML pass-through enabled. Raw HTML stays enabled because content
// authors control their own sources; there is no untrusted input path.
func NewConverter() *Converter {
	return &Converter{
		engine: goldmark.New(
			goldmark.WithExtensions(
				extension.GFM,
				extension.Linkify,
				extension.TaskList,
			),
			goldmark.WithParserOptions(
				parser.WithAutoHeadingID(),
			),
			goldmark.WithRendererOptions(
				html.WithUnsafe(),
			),
		),
	}
}

// Convert renders the markdown body into HTML. A leading frontmatter block
// is stripped first; the sibling metadata file stays authoritative, the
// embedded block is a leftover of content migrated from frontmatter-driven
// generators.
func (c *Converter) Convert(markdown []byte) ([]byte, error) {
	body := StripFrontMatter(markdown)
	var buf bytes.Buffer
	if err := c.engine.Convert(body, &buf); err != nil {
		return nil, fmt.Errorf("markdown convert: %w", err)
	}
	return buf.Bytes(), nil
}

// Excerpt renders the excerpt section into HTML. The excerpt is the markdown
// between a "## Context" heading and the next heading of any level; items
// without that section yield an empty excerpt.
func (c *Converter) Excerpt(markdown []byte) ([]byte, error) {
	section := excerptSection(StripFrontMatter(markdown))
	if len(section) == 0 {
		return nil, nil
	}
	var buf bytes.Buffer
	if err := c.engine.Convert(section, &buf); err != nil {
		return nil, fmt.Errorf("markdown excerpt: %w", err)
	}
	return buf.Bytes(), nil
}

// StripFrontMatter removes a leading frontmatter block when present and
// returns the markdown body unchanged otherwise.
func StripFrontMatter(source []byte) []byte {
	discard := map[string]any{}
	body, err := frontmatter.Parse(bytes.NewReader(source), &discard)
	if err != nil {
		return source
	}
	return body
}

// excerptSection extracts the raw markdown of the excerpt section.
func excerptSection(body []byte) []byte {
	lines := strings.Split(string(body), "\n")
	var collected []string
	inSection := false
	for _, line := range lines {
		trimmed := strings.TrimRight(line, "\r")
		if !inSection {
			if strings.TrimSpace(trimmed) == excerptHeading {
				inSection = true
			}
			continue
		}
		if strings.HasPrefix(strings.TrimSpace(trimmed), "#") {
			break
		}
		collected = append(collected, trimmed)
	}
	if !inSection {
		return nil
	}
	section := strings.TrimSpace(strings.Join(collected, "\n"))
	if section == "" {
		return nil
	}
	return []byte(section)
}
