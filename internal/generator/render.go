package generator

import (
	"strings"

	"github.com/goliatone/go-static/internal/content"
)

// renderPages renders every published item through its content template
// and stages the result at the item's output path.
func (s *Service) renderPages(scope *BuildScope, writer *artifactWriter) (int, error) {
	count := 0
	for _, item := range scope.All {
		template := strings.TrimSpace(item.Template)
		if template == "" {
			return count, &RenderError{Path: item.SourcePath, Template: template, Err: ErrTemplateRequired}
		}
		body, err := s.deps.Renderer.Render(template, scope.ContentContext(item))
		if err != nil {
			return count, &RenderError{Path: item.SourcePath, Template: template, Err: err}
		}
		if err := writer.Stage(artifact{Path: item.OutputPath, Body: body, Category: categoryPage}); err != nil {
			return count, err
		}
		count++
	}
	return count, nil
}

// renderIndexes renders one index page per configured content type plus the
// site-wide index.
func (s *Service) renderIndexes(scope *BuildScope, writer *artifactWriter) (int, error) {
	count := 0
	for _, name := range scope.TypeNames() {
		tc, _ := scope.Config.TypeConfig(name)
		body, err := s.deps.Renderer.Render(tc.IndexTemplate, scope.IndexContext(name))
		if err != nil {
			return count, &RenderError{Path: name, Template: tc.IndexTemplate, Err: err}
		}
		if err := writer.Stage(artifact{Path: content.IndexOutputPath(name), Body: body, Category: categoryIndex}); err != nil {
			return count, err
		}
		count++
	}

	siteIndex := scope.Config.Site.SiteIndexTemplate
	body, err := s.deps.Renderer.Render(siteIndex, scope.SiteIndexContext())
	if err != nil {
		return count, &RenderError{Path: "site index", Template: siteIndex, Err: err}
	}
	if err := writer.Stage(artifact{Path: "index.html", Body: body, Category: categoryIndex}); err != nil {
		return count, err
	}
	return count + 1, nil
}
