package config

import (
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/goliatone/go-slug"
)

// Validate checks the decoded configuration for structural problems that
// would otherwise surface mid-build. Field keys in the returned error map
// use the TOML section names so messages point at the offending entry.
func (c *Config) Validate() error {
	errs := validation.Errors{}

	if strings.TrimSpace(c.Site.Title) == "" {
		errs["site.title"] = validation.NewError("static.config.title_required", "site title is required")
	}
	if strings.TrimSpace(c.Site.ContentDir) == "" {
		errs["site.content_dir"] = validation.NewError("static.config.content_dir_required", "content_dir is required")
	}
	if strings.TrimSpace(c.Site.OutputDir) == "" {
		errs["site.output_dir"] = validation.NewError("static.config.output_dir_required", "output_dir is required")
	}
	if c.Build.Sitemap && strings.TrimSpace(c.Site.Domain) == "" {
		errs["site.domain"] = validation.NewError("static.config.domain_required", "sitemap generation requires site.domain")
	}
	if c.Build.RSS && strings.TrimSpace(c.Site.Domain) == "" {
		errs["site.domain"] = validation.NewError("static.config.domain_required", "rss generation requires site.domain")
	}

	for name, tc := range c.Content {
		key := fmt.Sprintf("content.%s", name)
		if !slug.IsValid(name) {
			errs[key] = validation.NewError("static.config.type_name_invalid", "content type name must be a valid slug")
			continue
		}
		if strings.TrimSpace(tc.ContentTemplate) == "" {
			errs[key+".content_template"] = validation.NewError("static.config.content_template_required", "content_template is required")
		}
		if strings.TrimSpace(tc.IndexTemplate) == "" {
			errs[key+".index_template"] = validation.NewError("static.config.index_template_required", "index_template is required")
		}
		if naming := strings.TrimSpace(tc.OutputNaming); naming != "" && naming != outputNamingDefault && naming != outputNamingDate {
			errs[key+".output_naming"] = validation.NewError("static.config.output_naming_invalid", `output_naming must be "default" or "date"`)
		}
	}

	for from, to := range c.Redirects {
		if strings.TrimSpace(from) == "" || strings.TrimSpace(to) == "" {
			errs["redirects"] = validation.NewError("static.config.redirect_invalid", "redirect entries must map a non-empty path to a non-empty target")
			break
		}
	}

	if theme := c.Site.Theme; theme != nil {
		if strings.TrimSpace(theme.Dir) == "" {
			errs["site.theme.dir"] = validation.NewError("static.config.theme_dir_required", "theme.dir is required when a theme is configured")
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
