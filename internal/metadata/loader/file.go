package loader

import (
	"context"
	"errors"
	"os"
	"path/filepath"
)

func loadFile(ctx context.Context, path string) (data, partials []byte, err error) {
	if path == "" {
		return nil, nil, errors.New("metadata loader: file path is required")
	}
	select {
	case <-ctx.Done():
		return nil, nil, ctx.Err()
	default:
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, nil, err
	}

	data, err = os.ReadFile(abs)
	if err != nil {
		return nil, nil, err
	}

	dir := filepath.Dir(abs)
	for _, name := range partialsNames {
		candidate, readErr := os.ReadFile(filepath.Join(dir, name))
		if readErr == nil {
			partials = candidate
			break
		}
		if !errors.Is(readErr, os.ErrNotExist) {
			return nil, nil, readErr
		}
	}
	return data, partials, nil
}
