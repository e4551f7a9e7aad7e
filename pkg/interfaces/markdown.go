package interfaces

// MarkdownConverter defines how raw Markdown bytes are converted into HTML.
// Implementations should be safe for concurrent use so the content loader can
// share one instance across its worker pool.
type MarkdownConverter interface {
	// Convert renders the full document body into HTML.
	Convert(markdown []byte) ([]byte, error)
	// Excerpt renders the excerpt section of the document into HTML. It
	// returns an empty slice when the document carries no excerpt.
	Excerpt(markdown []byte) ([]byte, error)
}

// Highlighter rewrites fenced code blocks inside rendered HTML into
// syntax-highlighted markup. Unknown languages must pass through unchanged.
type Highlighter interface {
	Highlight(html []byte) ([]byte, error)
}
