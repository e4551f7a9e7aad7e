package highlight

import (
	"strings"
	"testing"
)

func TestHighlightRewritesKnownLanguage(t *testing.T) {
	h := New("monokai")

	input := `<p>intro</p><pre><code class="language-go">fmt.Println(&quot;hi&quot;)
</code></pre>`
	out, err := h.Highlight([]byte(input))
	if err != nil {
		t.Fatalf("highlight: %v", err)
	}
	got := string(out)
	if strings.Contains(got, `class="language-go"`) {
		t.Fatalf("expected code block to be rewritten, got %q", got)
	}
	if !strings.Contains(got, "<span") {
		t.Fatalf("expected highlighted spans, got %q", got)
	}
	if !strings.Contains(got, "<p>intro</p>") {
		t.Fatalf("surrounding HTML must survive, got %q", got)
	}
}

func TestHighlightLeavesUnknownLanguage(t *testing.T) {
	h := New("monokai")

	input := `<pre><code class="language-nosuchlang">keep me</code></pre>`
	out, err := h.Highlight([]byte(input))
	if err != nil {
		t.Fatalf("highlight: %v", err)
	}
	if string(out) != input {
		t.Fatalf("unknown language block must pass through, got %q", out)
	}
}

func TestHighlightIgnoresPlainCodeBlocks(t *testing.T) {
	h := New("monokai")

	input := `<pre><code>no language class</code></pre>`
	out, err := h.Highlight([]byte(input))
	if err != nil {
		t.Fatalf("highlight: %v", err)
	}
	if string(out) != input {
		t.Fatalf("plain block must pass through, got %q", out)
	}
}

func TestNewFallsBackOnUnknownStyle(t *testing.T) {
	h := New("definitely-not-a-style")
	if h.style == nil {
		t.Fatal("expected fallback style")
	}
}
