package render

import "errors"

// ErrRendererNotFound is returned by Registry lookups for unregistered
// renderer names.
var ErrRendererNotFound = errors.New("render: renderer not found")

// ErrNilRenderer is returned when a nil renderer is registered.
var ErrNilRenderer = errors.New("render: renderer is nil")
