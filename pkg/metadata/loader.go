package metadata

import (
	"context"
	"io/fs"
)

// Loader resolves a Source into a Record. Implementations read the repo
// metadata document and any partials file found alongside it; they never
// populate samples or snippets, which come from the samples scanner.
type Loader interface {
	Load(ctx context.Context, src Source) (Record, error)
}

// LoaderOptions configures loader construction.
type LoaderOptions struct {
	// FileSystem backs SourceKindFS sources. Required when loading from an
	// fs.FS, ignored otherwise.
	FileSystem fs.FS
}
