package loader

import (
	"context"
	"errors"
	"io/fs"
	"path"
)

func loadFromFS(ctx context.Context, fsys fs.FS, name string) (data, partials []byte, err error) {
	if fsys == nil {
		return nil, nil, errors.New("metadata loader: fs source requires a file system")
	}
	if name == "" {
		return nil, nil, errors.New("metadata loader: fs path is required")
	}
	select {
	case <-ctx.Done():
		return nil, nil, ctx.Err()
	default:
	}

	data, err = fs.ReadFile(fsys, name)
	if err != nil {
		return nil, nil, err
	}

	dir := path.Dir(name)
	for _, candidate := range partialsNames {
		full := candidate
		if dir != "." {
			full = path.Join(dir, candidate)
		}
		payload, readErr := fs.ReadFile(fsys, full)
		if readErr == nil {
			partials = payload
			break
		}
		if !errors.Is(readErr, fs.ErrNotExist) {
			return nil, nil, readErr
		}
	}
	return data, partials, nil
}
