package library

import (
	"fmt"

	"github.com/goliatone/go-readmegen/pkg/metadata"
)

// Badge colors by release level. Unknown levels fall through to red so a
// typo in the metadata is visible in the rendered badge rather than silently
// promoted.
func badgeColor(releaseLevel string) string {
	switch releaseLevel {
	case metadata.ReleaseLevelGA:
		return "green"
	case metadata.ReleaseLevelBeta:
		return "yellow"
	case metadata.ReleaseLevelAlpha:
		return "orange"
	default:
		return "red"
	}
}

// Java runtimes the CI status table reports on.
var ciJavaVersions = []string{"7", "8", "8-osx", "8-win", "11"}

// buildContext flattens a record into the template context. Every derived
// value lives here so the template stays pure presentation; the conditional
// blocks in the template only test pre-resolved strings and booleans.
func (r *Renderer) buildContext(record metadata.Record) map[string]any {
	repo := record.Repo

	bomSnippet, _ := record.Snippet(repo.Name + "_install_with_bom")
	installSnippet, _ := record.Snippet(repo.Name + "_install_without_bom")

	samples := make([]map[string]any, 0, len(record.Samples))
	for _, sample := range record.Samples {
		samples = append(samples, map[string]any{
			"title":      sample.Title,
			"file":       sample.File,
			"source_url": fmt.Sprintf("https://github.com/%s/blob/main/%s", repo.Repo, sample.File),
			"shell_url": fmt.Sprintf(
				"https://console.cloud.google.com/cloudshell/open?git_repo=https://github.com/%s&page=editor&open_in_editor=%s",
				repo.Repo, sample.File),
		})
	}

	ciRows := make([]map[string]any, 0, len(ciJavaVersions))
	for _, version := range ciJavaVersions {
		ciRows = append(ciRows, map[string]any{
			"version": version,
			"badge":   fmt.Sprintf("https://storage.googleapis.com/cloud-devrel-public/java/badges/%s/java%s.svg", repo.RepoShort(), version),
			"link":    fmt.Sprintf("https://storage.googleapis.com/cloud-devrel-public/java/badges/%s/java%s.html", repo.RepoShort(), version),
		})
	}

	return map[string]any{
		"name":               repo.Name,
		"name_pretty":        repo.NamePretty,
		"repo":               repo.Repo,
		"repo_short":         repo.RepoShort(),
		"group_id":           repo.GroupID(),
		"artifact_id":        repo.ArtifactID(),
		"release_level":      repo.ReleaseLevel,
		"badge_color":        badgeColor(repo.ReleaseLevel),
		"requires_billing":   repo.RequiresBilling,
		"api_id":             repo.APIID,
		"api_description":    repo.APIDescription,
		"product_docs":       repo.ProductDocumentation,
		"client_docs":        repo.ClientDocumentation,
		"transport":          repo.Transport,
		"latest_version":     record.LatestVersion,
		"latest_bom_version": record.LatestBOMVersion,
		"min_java_version":   record.MinJava(),
		"bom_snippet":        bomSnippet,
		"install_snippet":    installSnippet,
		"about":              r.partial(record.Partials.About),
		"custom_content":     r.partial(record.Partials.CustomContent),
		"contributing":       r.partial(record.Partials.Contributing),
		"samples":            samples,
		"ci_rows":            ciRows,
	}
}
