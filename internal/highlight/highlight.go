package highlight

import (
	"bytes"
	"fmt"
	stdhtml "html"
	"regexp"
	"strings"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"

	"github.com/goliatone/go-static/pkg/interfaces"
)

// codeBlock matches the fenced code blocks goldmark emits. The language
// class is optional capture group content; the body is HTML-escaped.
var codeBlock = regexp.MustCompile(`(?s)<pre><code class="language-([a-zA-Z0-9_+-]+)">(.*?)</code></pre>`)

// Chroma rewrites fenced code blocks in rendered HTML into highlighted
// markup using the configured style. Blocks with unknown languages are left
// untouched.
type Chroma struct {
	style     *chroma.Style
	formatter *chromahtml.Formatter
}

var _ interfaces.Highlighter = (*Chroma)(nil)

// New builds a highlighter for the named style. Unknown style names fall
// back to chroma's default.
func New(styleName string) *Chroma {
	style := styles.Get(styleName)
	if style == nil {
		style = styles.Fallback
	}
	return &Chroma{
		style: style,
		formatter: chromahtml.New(
			chromahtml.WithClasses(false),
			chromahtml.TabWidth(4),
		),
	}
}

// Highlight satisfies interfaces.Highlighter.
func (c *Chroma) Highlight(html []byte) ([]byte, error) {
	var firstErr error
	out := codeBlock.ReplaceAllFunc(html, func(block []byte) []byte {
		m := codeBlock.FindSubmatch(block)
		if m == nil {
			return block
		}
		lang := string(m[1])
		code := stdhtml.UnescapeString(string(m[2]))

		highlighted, err := c.highlightCode(code, lang)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			return block
		}
		if highlighted == "" {
			return block
		}
		return []byte(highlighted)
	})
	if firstErr != nil {
		return nil, firstErr
	}
	return out, nil
}

// highlightCode renders one code block. An empty return signals an unknown
// language so the caller keeps the original block.
func (c *Chroma) highlightCode(code, lang string) (string, error) {
	lexer := lexers.Get(lang)
	if lexer == nil {
		return "", nil
	}
	lexer = chroma.Coalesce(lexer)

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return "", fmt.Errorf("highlight: tokenise %s: %w", lang, err)
	}

	var buf bytes.Buffer
	if err := c.formatter.Format(&buf, c.style, iterator); err != nil {
		return "", fmt.Errorf("highlight: format %s: %w", lang, err)
	}
	return strings.TrimSpace(buf.String()), nil
}
