package library

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tmpl
var embeddedTemplates embed.FS

// TemplatesFS exposes the embedded template bundle so callers can reuse or
// extend the built-in README rendering.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}
