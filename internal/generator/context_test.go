package generator

import (
	"testing"
)

func TestSiteScopeCarriesConfigAndDynamicVars(t *testing.T) {
	scope := fixtureScope(t)
	scope.Config.Dynamic = map[string]string{"github": "https://github.com/example"}

	site := scope.SiteScope()
	cfgView, ok := site["config"].(map[string]any)
	if !ok {
		t.Fatalf("expected config view, got %T", site["config"])
	}
	siteView, ok := cfgView["site"].(map[string]any)
	if !ok || siteView["title"] != "Example Site" {
		t.Fatalf("unexpected site view %v", cfgView["site"])
	}
	if siteView["base_url"] != "https://example.com" {
		t.Fatalf("unexpected base_url %v", siteView["base_url"])
	}
	dynamic, ok := site["dynamic"].(map[string]string)
	if !ok || dynamic["github"] == "" {
		t.Fatalf("dynamic vars missing: %v", site["dynamic"])
	}
}

func TestItemViewShape(t *testing.T) {
	scope := fixtureScope(t)
	view := ItemView(scope.All[0])

	meta, ok := view["meta"].(map[string]any)
	if !ok || meta["title"] != "newest" {
		t.Fatalf("unexpected meta view %v", view["meta"])
	}
	if view["url"] != "/articles/newest/" {
		t.Fatalf("unexpected url %v", view["url"])
	}
	if view["filename"] != "articles/newest/index.html" {
		t.Fatalf("unexpected filename %v", view["filename"])
	}
	if view["formatted_date"] != "January 17, 2025" {
		t.Fatalf("unexpected formatted date %v", view["formatted_date"])
	}
}

func TestIndexContextPartitionsByType(t *testing.T) {
	scope := fixtureScope(t)

	idx := scope.IndexContext("articles")
	contents, ok := idx["contents"].([]map[string]any)
	if !ok || len(contents) != 2 {
		t.Fatalf("expected 2 article views, got %v", idx["contents"])
	}
	all, ok := idx["all_content"].([]map[string]any)
	if !ok || len(all) != 3 {
		t.Fatalf("expected 3 total views, got %v", idx["all_content"])
	}
	if contents[0]["slug"] != "newest" {
		t.Fatalf("type scope must preserve canonical order, got %v", contents[0]["slug"])
	}
}

func TestTypeNamesAreSorted(t *testing.T) {
	scope := fixtureScope(t)
	names := scope.TypeNames()
	if len(names) != 2 || names[0] != "articles" || names[1] != "notes" {
		t.Fatalf("unexpected type names %v", names)
	}
}

type stubAssets struct{}

func (stubAssets) AssetURL(key string) (string, bool) {
	if key == "css/style.css" {
		return "/static/css/style.deadbeef.css", true
	}
	return "", false
}

func TestSiteScopeAssetFunction(t *testing.T) {
	scope := fixtureScope(t)
	scope.Assets = stubAssets{}

	site := scope.SiteScope()
	assetFn, ok := site["asset"].(func(string) string)
	if !ok {
		t.Fatalf("expected asset function, got %T", site["asset"])
	}
	if got := assetFn("css/style.css"); got != "/static/css/style.deadbeef.css" {
		t.Fatalf("unexpected asset url %q", got)
	}
	if got := assetFn("img/logo.png"); got != "/static/img/logo.png" {
		t.Fatalf("unhashed assets should fall back to /static, got %q", got)
	}
}
