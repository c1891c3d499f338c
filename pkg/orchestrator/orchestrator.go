// Package orchestrator coordinates the full pipeline from repo metadata to
// rendered README: load, scan samples, validate, render. It applies sensible
// defaults (library renderer, embedded templates) while remaining open to
// dependency injection.
package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	internalloader "github.com/goliatone/go-readmegen/internal/metadata/loader"
	internalsamples "github.com/goliatone/go-readmegen/internal/samples"
	"github.com/goliatone/go-readmegen/pkg/metadata"
	"github.com/goliatone/go-readmegen/pkg/render"
	"github.com/goliatone/go-readmegen/pkg/renderers/library"
)

const defaultRendererName = library.RendererName

// ScanResult carries the samples and snippet overrides one scan produced.
type ScanResult struct {
	Samples  []metadata.Sample
	Snippets map[string]string
}

// Scanner discovers samples and snippets for a record. The default walks a
// samples tree; tests can inject a stub.
type Scanner func(ctx context.Context, fsys fs.FS) (ScanResult, error)

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithLoader injects a custom metadata loader.
func WithLoader(loader metadata.Loader) Option {
	return func(o *Orchestrator) {
		o.loader = loader
	}
}

// WithLoaderFS backs fs.FS metadata sources with the given file system.
func WithLoaderFS(fsys fs.FS) Option {
	return func(o *Orchestrator) {
		o.loaderFS = fsys
	}
}

// WithScanner injects a custom samples scanner.
func WithScanner(scanner Scanner) Option {
	return func(o *Orchestrator) {
		o.scanner = scanner
	}
}

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) {
		o.defaultRenderer = name
	}
}

// Request describes one generation run.
type Request struct {
	// Source locates the .repo-metadata.json document. Required unless
	// Record is supplied.
	Source metadata.Source
	// Record bypasses the loader stage when the caller already holds a
	// populated record.
	Record *metadata.Record
	// SamplesFS, when set, is scanned for samples and snippet regions that
	// are merged into the record before rendering.
	SamplesFS fs.FS
	// Renderer names the registered renderer to use; empty selects the
	// default.
	Renderer string
	// Options are forwarded to the renderer untouched.
	Options render.RenderOptions

	// LatestVersion and LatestBOMVersion are stamped onto loaded records.
	// Version discovery is the caller's concern, not this module's.
	LatestVersion    string
	LatestBOMVersion string
}

// Orchestrator coordinates the pipeline. Missing dependencies are
// initialised with the built-in implementations so callers can start with a
// single constructor call.
type Orchestrator struct {
	loader          metadata.Loader
	loaderFS        fs.FS
	scanner         Scanner
	registry        *render.Registry
	defaultRenderer string
	initialiseErr   error
}

// New constructs an Orchestrator applying any provided options.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultRenderer: defaultRendererName,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Generate runs the pipeline for one request and returns the rendered
// document bytes.
func (o *Orchestrator) Generate(ctx context.Context, req Request) ([]byte, error) {
	if o.initialiseErr != nil {
		return nil, o.initialiseErr
	}

	record, err := o.resolveRecord(ctx, req)
	if err != nil {
		return nil, err
	}

	if req.LatestVersion != "" {
		record.LatestVersion = req.LatestVersion
	}
	if req.LatestBOMVersion != "" {
		record.LatestBOMVersion = req.LatestBOMVersion
	}

	if req.SamplesFS != nil {
		result, err := o.scanner(ctx, req.SamplesFS)
		if err != nil {
			return nil, fmt.Errorf("orchestrator: scan samples: %w", err)
		}
		record.Samples = result.Samples
		if len(result.Snippets) > 0 {
			record.Snippets = result.Snippets
		}
	}

	if err := record.Validate(); err != nil {
		return nil, err
	}

	renderer, err := o.rendererFor(req.Renderer)
	if err != nil {
		return nil, err
	}

	out, err := renderer.Render(ctx, record, req.Options)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: render: %w", err)
	}
	return out, nil
}

func (o *Orchestrator) resolveRecord(ctx context.Context, req Request) (metadata.Record, error) {
	if req.Record != nil {
		return *req.Record, nil
	}
	if req.Source == nil {
		return metadata.Record{}, errors.New("orchestrator: request needs a Source or a Record")
	}
	record, err := o.loader.Load(ctx, req.Source)
	if err != nil {
		return metadata.Record{}, fmt.Errorf("orchestrator: load metadata: %w", err)
	}
	return record, nil
}

func (o *Orchestrator) rendererFor(name string) (render.Renderer, error) {
	if name == "" {
		name = o.defaultRenderer
	}
	return o.registry.Get(name)
}

func (o *Orchestrator) applyDefaults() {
	if o.loader == nil {
		o.loader = internalloader.New(metadata.LoaderOptions{FileSystem: o.loaderFS})
	}
	if o.scanner == nil {
		o.scanner = func(ctx context.Context, fsys fs.FS) (ScanResult, error) {
			result, err := internalsamples.Scan(ctx, fsys)
			if err != nil {
				return ScanResult{}, err
			}
			return ScanResult{Samples: result.Samples, Snippets: result.Snippets}, nil
		}
	}
	if o.registry == nil {
		o.registry = render.NewRegistry()
	}
	if !o.registry.Has(defaultRendererName) {
		renderer, err := library.New()
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: initialise library renderer: %w", err)
			return
		}
		if err := o.registry.Register(renderer); err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: register library renderer: %w", err)
		}
	}
}
