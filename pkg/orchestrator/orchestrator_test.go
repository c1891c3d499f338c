package orchestrator_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-readmegen/pkg/metadata"
	"github.com/goliatone/go-readmegen/pkg/orchestrator"
	"github.com/goliatone/go-readmegen/pkg/render"
	"github.com/goliatone/go-readmegen/pkg/testsupport"
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

func TestGenerateEndToEnd(t *testing.T) {
	metadataFS := fstest.MapFS{
		".repo-metadata.json": &fstest.MapFile{Data: []byte(repoMetadataJSON)},
	}
	samplesFS := fstest.MapFS{
		"snippets/src/main/java/com/example/asset/QuickstartSample.java": &fstest.MapFile{
			Data: []byte("public class QuickstartSample {}\n"),
		},
	}

	gen := orchestrator.New(orchestrator.WithLoaderFS(metadataFS))

	out, err := gen.Generate(testsupport.Context(), orchestrator.Request{
		Source:           metadata.SourceFromFS(".repo-metadata.json"),
		SamplesFS:        samplesFS,
		LatestVersion:    "3.0.1",
		LatestBOMVersion: "26.1.3",
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	readme := string(out)
	if !strings.Contains(readme, "# Google Cloud Asset Inventory Client for Java") {
		t.Fatalf("missing title")
	}
	if !strings.Contains(readme, "<version>3.0.1</version>") {
		t.Fatalf("latest version not stamped onto the record")
	}
	if !strings.Contains(readme, "| Quickstart Sample |") {
		t.Fatalf("scanned sample missing from output:\n%s", readme)
	}
}

func TestGenerateFromRecordSkipsLoader(t *testing.T) {
	record := metadata.Record{
		Repo: metadata.Repo{
			DistributionName:     "com.google.cloud:google-cloud-foo",
			Name:                 "foo",
			NamePretty:           "Cloud Foo",
			Repo:                 "googleapis/java-foo",
			ReleaseLevel:         metadata.ReleaseLevelBeta,
			ProductDocumentation: "https://cloud.google.com/foo/docs",
			ClientDocumentation:  "https://cloud.google.com/java/docs/reference/google-cloud-foo/latest",
		},
		LatestVersion:    "0.9.0",
		LatestBOMVersion: "26.0.0",
	}

	gen := orchestrator.New()

	out, err := gen.Generate(testsupport.Context(), orchestrator.Request{Record: &record})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.Contains(string(out), "# Google Cloud Foo Client for Java") {
		t.Fatalf("missing title")
	}
	if !strings.Contains(string(out), "work-in-progress") {
		t.Fatalf("beta record should render the work-in-progress notice")
	}
}

func TestGenerateRejectsInvalidRecord(t *testing.T) {
	record := metadata.Record{
		Repo: metadata.Repo{
			DistributionName: "not-a-coordinate",
			Repo:             "googleapis/java-foo",
		},
	}

	gen := orchestrator.New()

	_, err := gen.Generate(testsupport.Context(), orchestrator.Request{Record: &record})
	if !errors.Is(err, metadata.ErrInvalidRecord) {
		t.Fatalf("expected ErrInvalidRecord, got %v", err)
	}
}

func TestGenerateRequiresSourceOrRecord(t *testing.T) {
	gen := orchestrator.New()

	if _, err := gen.Generate(testsupport.Context(), orchestrator.Request{}); err == nil {
		t.Fatalf("expected error for empty request")
	}
}

func TestGenerateUnknownRenderer(t *testing.T) {
	record := metadata.Record{
		Repo: metadata.Repo{
			DistributionName: "com.google.cloud:google-cloud-foo",
			Repo:             "googleapis/java-foo",
		},
	}

	gen := orchestrator.New()

	_, err := gen.Generate(testsupport.Context(), orchestrator.Request{
		Record:   &record,
		Renderer: "nope",
	})
	if !errors.Is(err, render.ErrRendererNotFound) {
		t.Fatalf("expected ErrRendererNotFound, got %v", err)
	}
}

func TestGenerateWithCustomRegistry(t *testing.T) {
	registry := render.NewRegistry()
	registry.MustRegister(staticRenderer{})

	record := metadata.Record{
		Repo: metadata.Repo{
			DistributionName: "com.google.cloud:google-cloud-foo",
			Repo:             "googleapis/java-foo",
		},
	}

	gen := orchestrator.New(
		orchestrator.WithRegistry(registry),
		orchestrator.WithDefaultRenderer("static"),
	)

	out, err := gen.Generate(testsupport.Context(), orchestrator.Request{Record: &record})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if string(out) != "static output" {
		t.Fatalf("unexpected output %q", out)
	}
}

type staticRenderer struct{}

func (staticRenderer) Name() string { return "static" }

func (staticRenderer) Render(_ context.Context, _ metadata.Record, _ render.RenderOptions) ([]byte, error) {
	return []byte("static output"), nil
}
