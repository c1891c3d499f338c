package readmegen

import (
	"context"

	"github.com/goliatone/go-readmegen/pkg/metadata"
	"github.com/goliatone/go-readmegen/pkg/orchestrator"
	"github.com/goliatone/go-readmegen/pkg/render"
)

// Record aliases the metadata record exported via the root package for
// convenience.
type Record = metadata.Record

// Repo mirrors the .repo-metadata.json document shape.
type Repo = metadata.Repo

// Sample points at one discovered sample file.
type Sample = metadata.Sample

// RenderOptions describes per-request renderer overrides.
type RenderOptions = render.RenderOptions

// Request describes one generation run.
type Request = orchestrator.Request

// SourceFromFile returns a metadata source pointing at an on-disk file.
var SourceFromFile = metadata.SourceFromFile

// SourceFromFS returns a metadata source inside an fs.FS.
var SourceFromFS = metadata.SourceFromFS

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module so callers can wire custom loaders, scanners, and registries.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// Generate loads the metadata source and renders the README with the default
// library renderer. It is the simplest entry point for callers that just
// want document bytes.
func Generate(ctx context.Context, source metadata.Source, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{Source: source})
}

// GenerateFromRecord renders a pre-built record, bypassing the loader stage
// while still delegating to the orchestrator.
func GenerateFromRecord(ctx context.Context, record Record, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{Record: &record})
}
