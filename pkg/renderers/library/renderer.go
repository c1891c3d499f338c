// Package library renders the README.md for a Java client library
// repository from a metadata record. The document template is authored in
// pongo2 (Jinja2) syntax and embedded in the binary.
package library

import (
	"context"
	"fmt"
	"io/fs"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-readmegen/pkg/metadata"
	"github.com/goliatone/go-readmegen/pkg/render"
	"github.com/goliatone/go-readmegen/pkg/render/template"
	"github.com/goliatone/go-readmegen/pkg/render/template/gotemplate"
)

const (
	// RendererName is the name this renderer registers under.
	RendererName = "library"

	defaultTemplate = "templates/readme.md"
)

// Option configures the renderer during construction.
type Option func(*Renderer)

// WithTemplateRenderer swaps the template engine, mainly for tests.
func WithTemplateRenderer(engine template.TemplateRenderer) Option {
	return func(r *Renderer) {
		r.engine = engine
	}
}

// WithTemplateFS overrides the embedded template bundle.
func WithTemplateFS(fsys fs.FS) Option {
	return func(r *Renderer) {
		r.templates = fsys
	}
}

// WithSanitizedPartials runs partial prose through bluemonday's UGC policy
// before it is injected into the document. Snippet overrides are never
// sanitized: install blocks must pass through byte for byte.
func WithSanitizedPartials() Option {
	return func(r *Renderer) {
		r.sanitizer = bluemonday.UGCPolicy()
	}
}

// Renderer produces README documents. Safe for concurrent use once built.
type Renderer struct {
	engine    template.TemplateRenderer
	templates fs.FS
	sanitizer *bluemonday.Policy
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs a Renderer, defaulting to the embedded templates and the
// pongo2 engine.
func New(options ...Option) (*Renderer, error) {
	r := &Renderer{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}

	if r.templates == nil {
		r.templates = embeddedTemplates
	}
	if r.engine == nil {
		engine, err := gotemplate.New(gotemplate.WithFS(r.templates))
		if err != nil {
			return nil, fmt.Errorf("library: create template engine: %w", err)
		}
		r.engine = engine
	}
	return r, nil
}

// Name identifies the renderer inside a registry.
func (r *Renderer) Name() string {
	return RendererName
}

// Render produces the README document for a record. The record must already
// have passed metadata validation; rendering itself never fails for a
// well-formed record.
func (r *Renderer) Render(ctx context.Context, record metadata.Record, options render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	name := options.Template
	if name == "" {
		name = defaultTemplate
	}

	out, err := r.engine.RenderTemplate(name, r.buildContext(record))
	if err != nil {
		return nil, fmt.Errorf("library: render %q: %w", name, err)
	}
	return []byte(out), nil
}

// partial normalises a partial override: trailing whitespace is trimmed and,
// when sanitization is enabled, HTML is filtered through the UGC policy.
func (r *Renderer) partial(text string) string {
	trimmed := strings.TrimRight(text, "\n ")
	if trimmed == "" || r.sanitizer == nil {
		return trimmed
	}
	return strings.TrimRight(r.sanitizer.Sanitize(trimmed), "\n ")
}
