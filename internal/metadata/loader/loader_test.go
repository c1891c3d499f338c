package loader

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	pkgmetadata "github.com/goliatone/go-readmegen/pkg/metadata"
)

const repoMetadataJSON = `{
  "distribution_name": "com.google.cloud:google-cloud-asset",
  "name": "asset",
  "name_pretty": "Cloud Asset Inventory",
  "repo": "googleapis/java-asset",
  "release_level": "ga",
  "requires_billing": true,
  "product_documentation": "https://cloud.google.com/asset-inventory/docs",
  "client_documentation": "https://cloud.google.com/java/docs/reference/google-cloud-asset/latest",
  "transport": "grpc",
  "api_id": "cloudasset.googleapis.com",
  "api_description": "provides inventory services based on a time series database."
}`

const partialsYAML = `about: |
  Custom about prose.
custom_content: |
  ## Extra section
`

func TestLoadFromFS(t *testing.T) {
	fsys := fstest.MapFS{
		".repo-metadata.json": &fstest.MapFile{Data: []byte(repoMetadataJSON)},
	}

	loader := New(pkgmetadata.LoaderOptions{FileSystem: fsys})

	record, err := loader.Load(context.Background(), pkgmetadata.SourceFromFS(".repo-metadata.json"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if record.Repo.Name != "asset" {
		t.Fatalf("name: got %q", record.Repo.Name)
	}
	if record.Repo.GroupID() != "com.google.cloud" {
		t.Fatalf("group id: got %q", record.Repo.GroupID())
	}
	if !record.Repo.RequiresBilling {
		t.Fatalf("expected requires_billing to be set")
	}
	if record.Partials.About != "" {
		t.Fatalf("expected no partials without a partials file, got %q", record.Partials.About)
	}
}

func TestLoadFromFSWithPartials(t *testing.T) {
	fsys := fstest.MapFS{
		"meta/.repo-metadata.json":   &fstest.MapFile{Data: []byte(repoMetadataJSON)},
		"meta/.readme-partials.yaml": &fstest.MapFile{Data: []byte(partialsYAML)},
	}

	loader := New(pkgmetadata.LoaderOptions{FileSystem: fsys})

	record, err := loader.Load(context.Background(), pkgmetadata.SourceFromFS("meta/.repo-metadata.json"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if record.Partials.About != "Custom about prose.\n" {
		t.Fatalf("about partial: got %q", record.Partials.About)
	}
	if record.Partials.CustomContent != "## Extra section\n" {
		t.Fatalf("custom content partial: got %q", record.Partials.CustomContent)
	}
	if record.Partials.Contributing != "" {
		t.Fatalf("contributing partial should be empty, got %q", record.Partials.Contributing)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	metadataPath := filepath.Join(dir, ".repo-metadata.json")
	if err := os.WriteFile(metadataPath, []byte(repoMetadataJSON), 0o644); err != nil {
		t.Fatalf("write metadata: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, ".readme-partials.yml"), []byte(partialsYAML), 0o644); err != nil {
		t.Fatalf("write partials: %v", err)
	}

	loader := New(pkgmetadata.LoaderOptions{})

	record, err := loader.Load(context.Background(), pkgmetadata.SourceFromFile(metadataPath))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if record.Repo.Repo != "googleapis/java-asset" {
		t.Fatalf("repo: got %q", record.Repo.Repo)
	}
	if record.Partials.About != "Custom about prose.\n" {
		t.Fatalf("about partial: got %q", record.Partials.About)
	}
}

func TestLoadErrors(t *testing.T) {
	loader := New(pkgmetadata.LoaderOptions{})

	if _, err := loader.Load(context.Background(), nil); err == nil {
		t.Fatalf("expected error for nil source")
	}
	if _, err := loader.Load(context.Background(), pkgmetadata.SourceFromFS("x.json")); err == nil {
		t.Fatalf("expected error for fs source without file system")
	}

	fsys := fstest.MapFS{
		"bad.json": &fstest.MapFile{Data: []byte("{not json")},
	}
	badLoader := New(pkgmetadata.LoaderOptions{FileSystem: fsys})
	if _, err := badLoader.Load(context.Background(), pkgmetadata.SourceFromFS("bad.json")); err == nil {
		t.Fatalf("expected error for malformed metadata")
	}
}

func TestLoadMalformedPartials(t *testing.T) {
	fsys := fstest.MapFS{
		".repo-metadata.json":  &fstest.MapFile{Data: []byte(repoMetadataJSON)},
		".readme-partials.yml": &fstest.MapFile{Data: []byte("about: [unclosed")},
	}

	loader := New(pkgmetadata.LoaderOptions{FileSystem: fsys})

	if _, err := loader.Load(context.Background(), pkgmetadata.SourceFromFS(".repo-metadata.json")); err == nil {
		t.Fatalf("expected error for malformed partials")
	}
}
