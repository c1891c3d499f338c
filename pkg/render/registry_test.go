package render_test

import (
	"context"
	"errors"
	"testing"

	"github.com/goliatone/go-readmegen/pkg/metadata"
	"github.com/goliatone/go-readmegen/pkg/render"
)

type stubRenderer struct {
	name string
}

func (s stubRenderer) Name() string { return s.name }

func (s stubRenderer) Render(context.Context, metadata.Record, render.RenderOptions) ([]byte, error) {
	return []byte(s.name), nil
}

func TestRegistryRegisterAndGet(t *testing.T) {
	registry := render.NewRegistry()

	if err := registry.Register(stubRenderer{name: "library"}); err != nil {
		t.Fatalf("register: %v", err)
	}

	renderer, err := registry.Get("library")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if renderer.Name() != "library" {
		t.Fatalf("unexpected renderer %q", renderer.Name())
	}
}

func TestRegistryLookupIsCaseInsensitive(t *testing.T) {
	registry := render.NewRegistry()
	registry.MustRegister(stubRenderer{name: "Library"})

	if !registry.Has("LIBRARY") {
		t.Fatalf("expected case-insensitive lookup")
	}
	if _, err := registry.Get("library"); err != nil {
		t.Fatalf("get: %v", err)
	}
}

func TestRegistryRejectsDuplicatesAndNil(t *testing.T) {
	registry := render.NewRegistry()
	registry.MustRegister(stubRenderer{name: "library"})

	if err := registry.Register(stubRenderer{name: "library"}); err == nil {
		t.Fatalf("expected duplicate registration to fail")
	}
	if err := registry.Register(nil); !errors.Is(err, render.ErrNilRenderer) {
		t.Fatalf("expected ErrNilRenderer, got %v", err)
	}
}

func TestRegistryGetUnknown(t *testing.T) {
	registry := render.NewRegistry()

	_, err := registry.Get("missing")
	if !errors.Is(err, render.ErrRendererNotFound) {
		t.Fatalf("expected ErrRendererNotFound, got %v", err)
	}
}

func TestRegistryList(t *testing.T) {
	registry := render.NewRegistry()
	registry.MustRegister(stubRenderer{name: "zeta"})
	registry.MustRegister(stubRenderer{name: "alpha"})

	names := registry.List()
	if len(names) != 2 || names[0] != "alpha" || names[1] != "zeta" {
		t.Fatalf("expected sorted names, got %v", names)
	}
}
