package generator

import (
	"fmt"
	"sort"
	"strings"
)

// redirectTemplate is the meta-refresh stub served at a retired path. The
// canonical link keeps crawlers pointed at the target.
const redirectTemplate = `<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <meta http-equiv="refresh" content="0; url=%[1]s">
  <link rel="canonical" href="%[2]s">
  <title>Redirecting...</title>
</head>
<body>
  <p>Redirecting to <a href="%[1]s">%[1]s</a>...</p>
</body>
</html>
`

// buildRedirectHTML renders one redirect stub pointing at target.
func (s *BuildScope) buildRedirectHTML(target string) string {
	canonical := s.Config.BaseURL() + target
	return fmt.Sprintf(redirectTemplate, target, canonical)
}

// redirectOutputPath maps a retired URL path to the file that serves it:
// trailing slash paths gain index.html, explicit .html paths stay as-is,
// and extensionless paths are treated as clean URLs.
func redirectOutputPath(fromPath string) string {
	path := strings.TrimPrefix(fromPath, "/")
	switch {
	case strings.HasSuffix(fromPath, "/"):
		return path + "index.html"
	case strings.HasSuffix(fromPath, ".html"):
		return path
	default:
		return path + "/index.html"
	}
}

// buildRedirects produces one artifact per redirect map entry in
// deterministic path order.
func (s *BuildScope) buildRedirects() []artifact {
	if len(s.Config.Redirects) == 0 {
		return nil
	}
	froms := make([]string, 0, len(s.Config.Redirects))
	for from := range s.Config.Redirects {
		froms = append(froms, from)
	}
	sort.Strings(froms)

	artifacts := make([]artifact, 0, len(froms))
	for _, from := range froms {
		artifacts = append(artifacts, artifact{
			Path:     redirectOutputPath(from),
			Body:     []byte(s.buildRedirectHTML(s.Config.Redirects[from])),
			Category: categoryRedirect,
		})
	}
	return artifacts
}
