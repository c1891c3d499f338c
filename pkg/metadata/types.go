// Package metadata defines the typed record that drives README rendering:
// the .repo-metadata.json document, partial overrides, discovered samples,
// and snippet overrides, plus the validation run at the pipeline boundary.
package metadata

import (
	"strings"
)

// Release levels recognised in .repo-metadata.json. Anything else is treated
// as unknown when selecting badge colors and stability notices.
const (
	ReleaseLevelAlpha = "alpha"
	ReleaseLevelBeta  = "beta"
	ReleaseLevelGA    = "ga"
)

// Transport values recognised in .repo-metadata.json.
const (
	TransportGRPC = "grpc"
	TransportHTTP = "http"
	TransportBoth = "both"
	TransportNone = "none"
)

// Repo mirrors the .repo-metadata.json document that every googleapis
// library repository carries at its root. Field names follow the JSON keys
// so records round-trip without translation tables.
type Repo struct {
	// DistributionName is the Maven coordinate in "groupId:artifactId" form.
	DistributionName string `json:"distribution_name"`
	// Name is the short API name, e.g. "asset".
	Name string `json:"name"`
	// NamePretty is the human title used in README headings.
	NamePretty string `json:"name_pretty"`
	// Repo is the GitHub repository in "owner/name" form.
	Repo string `json:"repo"`
	// ReleaseLevel is one of alpha, beta, ga; other values map to unknown.
	ReleaseLevel string `json:"release_level"`
	// RequiresBilling toggles the billing-enablement prose and footnote.
	RequiresBilling bool `json:"requires_billing"`

	ProductDocumentation string `json:"product_documentation"`
	ClientDocumentation  string `json:"client_documentation"`
	IssueTracker         string `json:"issue_tracker,omitempty"`

	// Transport is one of grpc, http, both, none. When empty, the README
	// omits the Transport section entirely.
	Transport string `json:"transport,omitempty"`

	// APIID is the fully qualified service identifier used to enable the
	// API, e.g. "cloudasset.googleapis.com". Optional.
	APIID string `json:"api_id,omitempty"`

	APIShortname   string `json:"api_shortname,omitempty"`
	APIDescription string `json:"api_description,omitempty"`

	// MinJavaVersion overrides the default minimum supported Java runtime.
	MinJavaVersion int `json:"min_java_version,omitempty"`
}

// Partials carries hand-crafted markdown overrides loaded from
// .readme-partials.yaml. Every field is optional; empty fields fall back to
// the synthesized defaults in the README template.
type Partials struct {
	About         string `yaml:"about,omitempty"`
	CustomContent string `yaml:"custom_content,omitempty"`
	Contributing  string `yaml:"contributing,omitempty"`
}

// Sample points at one runnable sample file discovered under samples/.
type Sample struct {
	Title string `json:"title"`
	File  string `json:"file"`
}

// DefaultMinJavaVersion is assumed when neither the record nor the repo
// metadata names a minimum runtime.
const DefaultMinJavaVersion = 7

// Record is the complete input for one render: repository metadata, release
// versions, discovered samples and snippet overrides. Renderers treat a
// Record as read-only; rendering the same Record twice produces identical
// bytes.
type Record struct {
	Repo             Repo              `json:"repo"`
	LatestVersion    string            `json:"latest_version"`
	LatestBOMVersion string            `json:"latest_bom_version"`
	Samples          []Sample          `json:"samples,omitempty"`
	Partials         Partials          `json:"partials,omitempty"`
	Snippets         map[string]string `json:"snippets,omitempty"`
	MinJavaVersion   int               `json:"min_java_version,omitempty"`
}

// GroupID returns the Maven groupId half of the distribution name.
func (r Repo) GroupID() string {
	group, _, _ := strings.Cut(r.DistributionName, ":")
	return group
}

// ArtifactID returns the Maven artifactId half of the distribution name.
func (r Repo) ArtifactID() string {
	_, artifact, _ := strings.Cut(r.DistributionName, ":")
	return artifact
}

// RepoShort returns the repository name without its owner prefix, e.g.
// "java-asset" for "googleapis/java-asset".
func (r Repo) RepoShort() string {
	parts := strings.Split(r.Repo, "/")
	return parts[len(parts)-1]
}

// Snippet returns the named snippet override and whether a non-empty
// override exists.
func (r Record) Snippet(key string) (string, bool) {
	if len(r.Snippets) == 0 {
		return "", false
	}
	snippet, ok := r.Snippets[key]
	if !ok || strings.TrimSpace(snippet) == "" {
		return "", false
	}
	return snippet, true
}

// MinJava resolves the minimum supported Java runtime, preferring the record
// value, then the repo metadata, then the default.
func (r Record) MinJava() int {
	if r.MinJavaVersion > 0 {
		return r.MinJavaVersion
	}
	if r.Repo.MinJavaVersion > 0 {
		return r.Repo.MinJavaVersion
	}
	return DefaultMinJavaVersion
}
