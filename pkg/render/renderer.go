package render

import (
	"context"

	"github.com/goliatone/go-readmegen/pkg/metadata"
)

// Renderer turns a validated metadata record into document bytes. Renderers
// must be deterministic: the same record and options yield identical output
// on every call.
type Renderer interface {
	// Name identifies the renderer inside a Registry.
	Name() string
	// Render produces the document. Implementations must not mutate the
	// record.
	Render(ctx context.Context, record metadata.Record, options RenderOptions) ([]byte, error)
}

// RenderOptions carries per-request overrides that renderers can honour
// without reconfiguration.
type RenderOptions struct {
	// Template selects a template other than the renderer default. Empty
	// means the renderer's default document.
	Template string
}
