package testsupport

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	pkgmetadata "github.com/goliatone/go-readmegen/pkg/metadata"
)

// MustLoadRecord reads a JSON fixture into a Record. Testing helpers fail
// fast to keep contract tests concise.
func MustLoadRecord(t *testing.T, path string) pkgmetadata.Record {
	t.Helper()

	record, err := LoadRecord(path)
	if err != nil {
		t.Fatalf("load record: %v", err)
	}
	return record
}

// LoadRecord reads a JSON fixture into a Record, returning an error for
// callers managing setup outside of *testing.T.
func LoadRecord(path string) (pkgmetadata.Record, error) {
	if path == "" {
		return pkgmetadata.Record{}, errors.New("testsupport: record path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return pkgmetadata.Record{}, fmt.Errorf("testsupport: read record: %w", err)
	}
	var out pkgmetadata.Record
	if err := json.Unmarshal(data, &out); err != nil {
		return pkgmetadata.Record{}, fmt.Errorf("testsupport: unmarshal record: %w", err)
	}
	return out, nil
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}
