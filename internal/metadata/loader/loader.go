package loader

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"

	pkgmetadata "github.com/goliatone/go-readmegen/pkg/metadata"
)

// Partials filenames probed next to the repo metadata document, in order.
var partialsNames = []string{".readme-partials.yaml", ".readme-partials.yml"}

// Loader implements pkgmetadata.Loader by delegating to file or fs.FS
// strategies.
type Loader struct {
	fs fs.FS
}

var _ pkgmetadata.Loader = (*Loader)(nil)

// New constructs a Loader from pre-resolved options.
func New(options pkgmetadata.LoaderOptions) *Loader {
	return &Loader{fs: options.FileSystem}
}

// Load reads the repo metadata document the source points at and merges in
// any .readme-partials.yaml found beside it. A missing partials file is not
// an error; a malformed one is.
func (l *Loader) Load(ctx context.Context, src pkgmetadata.Source) (pkgmetadata.Record, error) {
	if src == nil {
		return pkgmetadata.Record{}, errors.New("metadata loader: source is nil")
	}

	var (
		data     []byte
		partials []byte
		err      error
	)

	switch src.Kind() {
	case pkgmetadata.SourceKindFile:
		data, partials, err = loadFile(ctx, src.Location())
	case pkgmetadata.SourceKindFS:
		data, partials, err = loadFromFS(ctx, l.fs, src.Location())
	default:
		err = fmt.Errorf("metadata loader: unsupported source kind %q", src.Kind())
	}
	if err != nil {
		return pkgmetadata.Record{}, err
	}

	var record pkgmetadata.Record
	if err := json.Unmarshal(data, &record.Repo); err != nil {
		return pkgmetadata.Record{}, fmt.Errorf("metadata loader: parse %s: %w", src.Location(), err)
	}

	if len(partials) > 0 {
		if err := yaml.Unmarshal(partials, &record.Partials); err != nil {
			return pkgmetadata.Record{}, fmt.Errorf("metadata loader: parse partials: %w", err)
		}
	}

	return record, nil
}
