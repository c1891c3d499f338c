package readmegen_test

import (
	"strings"
	"testing"
	"testing/fstest"

	readmegen "github.com/goliatone/go-readmegen"
	"github.com/goliatone/go-readmegen/pkg/orchestrator"
	"github.com/goliatone/go-readmegen/pkg/testsupport"
)

func TestGenerateFacade(t *testing.T) {
	fsys := fstest.MapFS{
		".repo-metadata.json": &fstest.MapFile{Data: []byte(`{
  "distribution_name": "com.google.cloud:google-cloud-foo",
  "name": "foo",
  "name_pretty": "Cloud Foo",
  "repo": "googleapis/java-foo",
  "release_level": "ga",
  "product_documentation": "https://cloud.google.com/foo/docs",
  "client_documentation": "https://cloud.google.com/java/docs/reference/google-cloud-foo/latest"
}`)},
	}

	out, err := readmegen.Generate(
		testsupport.Context(),
		readmegen.SourceFromFS(".repo-metadata.json"),
		orchestrator.WithLoaderFS(fsys),
	)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.Contains(string(out), "# Google Cloud Foo Client for Java") {
		t.Fatalf("missing title")
	}
}

func TestGenerateFromRecordFacade(t *testing.T) {
	record := readmegen.Record{
		Repo: readmegen.Repo{
			DistributionName: "com.google.cloud:google-cloud-foo",
			Name:             "foo",
			NamePretty:       "Cloud Foo",
			Repo:             "googleapis/java-foo",
		},
		LatestVersion: "1.0.0",
	}

	out, err := readmegen.GenerateFromRecord(testsupport.Context(), record)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.Contains(string(out), "compile 'com.google.cloud:google-cloud-foo:1.0.0'") {
		t.Fatalf("missing gradle dependency line")
	}
}
