package generator

import (
	"strings"
	"testing"
)

func TestRedirectOutputPath(t *testing.T) {
	cases := []struct {
		from string
		want string
	}{
		{"/old/", "old/index.html"},
		{"/articles/old-slug/", "articles/old-slug/index.html"},
		{"/articles/old-slug.html", "articles/old-slug.html"},
		{"/articles/old-slug", "articles/old-slug/index.html"},
	}
	for _, tc := range cases {
		if got := redirectOutputPath(tc.from); got != tc.want {
			t.Fatalf("redirectOutputPath(%q) = %q, want %q", tc.from, got, tc.want)
		}
	}
}

func TestBuildRedirectHTML(t *testing.T) {
	scope := fixtureScope(t)

	html := scope.buildRedirectHTML("/articles/new-post/")
	for _, want := range []string{
		"<!DOCTYPE html>",
		`content="0; url=/articles/new-post/"`,
		`<link rel="canonical" href="https://example.com/articles/new-post/">`,
		`<a href="/articles/new-post/">/articles/new-post/</a>`,
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("redirect html missing %q:\n%s", want, html)
		}
	}
}

func TestBuildRedirectsDeterministicOrder(t *testing.T) {
	scope := fixtureScope(t)
	scope.Config.Redirects = map[string]string{
		"/z-old/": "/z-new/",
		"/a-old/": "/a-new/",
	}

	artifacts := scope.buildRedirects()
	if len(artifacts) != 2 {
		t.Fatalf("expected 2 redirect artifacts, got %d", len(artifacts))
	}
	if artifacts[0].Path != "a-old/index.html" || artifacts[1].Path != "z-old/index.html" {
		t.Fatalf("redirects not path ordered: %v, %v", artifacts[0].Path, artifacts[1].Path)
	}
	if !strings.Contains(string(artifacts[0].Body), "/a-new/") {
		t.Fatalf("redirect body should target the mapped path:\n%s", artifacts[0].Body)
	}
}
