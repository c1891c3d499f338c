package template

import "io"

// TemplateRenderer is the seam between document renderers and the underlying
// template engine, so rendering logic can be tested with a stub and callers
// can swap engines without touching renderer code.
type TemplateRenderer interface {
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	RenderString(templateContent string, data any, out ...io.Writer) (string, error)
	RegisterFilter(name string, fn func(input any, param any) (any, error)) error
}
