package interfaces

// TemplateRenderer resolves a template by name and renders it with the
// supplied context. Context values follow the pipeline's page contract:
// plain maps, slices, and scalar values only.
type TemplateRenderer interface {
	Render(name string, data map[string]any) ([]byte, error)
	RenderString(templateContent string, data map[string]any) ([]byte, error)
	Globals(data map[string]any)
}

// AssetResolver maps a source-relative asset key (e.g. "css/style.css") to
// the public URL of its published revision.
type AssetResolver interface {
	AssetURL(key string) (string, bool)
}
