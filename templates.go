package readmegen

import (
	"io/fs"

	"github.com/goliatone/go-readmegen/pkg/renderers/library"
)

// EmbeddedTemplates exposes the built-in README templates so callers can
// reuse or extend them without importing the renderer package directly.
func EmbeddedTemplates() fs.FS {
	return library.TemplatesFS()
}
