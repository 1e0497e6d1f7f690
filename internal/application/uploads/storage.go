package uploads

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Object is a stored file. Remote stores set RedirectURL instead of Body.
type Object struct {
	Body        io.ReadCloser
	ContentType string
	RedirectURL string
}

// Storage persists uploaded files under flat, generated names.
type Storage interface {
	Put(ctx context.Context, name, contentType string, data []byte) error
	Get(ctx context.Context, name string) (*Object, error)
}

// LocalStorage writes files under Dir.
type LocalStorage struct {
	Dir string
}

func (l *LocalStorage) Put(ctx context.Context, name, contentType string, data []byte) error {
	if err := os.MkdirAll(l.Dir, 0o755); err != nil {
		return fmt.Errorf("local storage: create dir: %w", err)
	}
	if err := os.WriteFile(filepath.Join(l.Dir, name), data, 0o644); err != nil {
		return fmt.Errorf("local storage: write: %w", err)
	}
	return nil
}

func (l *LocalStorage) Get(ctx context.Context, name string) (*Object, error) {
	f, err := os.Open(filepath.Join(l.Dir, filepath.Base(name)))
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrFileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("local storage: open: %w", err)
	}
	return &Object{Body: f, ContentType: contentTypeFor(name)}, nil
}
