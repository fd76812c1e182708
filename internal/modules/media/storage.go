package media

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Storage persists uploaded files and yields the public URL they are
// served from.
type Storage interface {
	// Name reports the backend identifier recorded on each media row.
	Name() string
	Save(ctx context.Context, fileName string, contentType string, data []byte) (url string, err error)
	Remove(ctx context.Context, fileName string) error
}

// LocalStorage writes uploads to a directory on disk; files are served
// back through GET /api/uploads/:name.
type LocalStorage struct {
	dir string
}

func NewLocalStorage(dir string) (*LocalStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create uploads dir: %w", err)
	}
	return &LocalStorage{dir: dir}, nil
}

func (s *LocalStorage) Name() string { return "local" }

func (s *LocalStorage) Save(_ context.Context, fileName, _ string, data []byte) (string, error) {
	if !safeFileName(fileName) {
		return "", fmt.Errorf("invalid file name %q", fileName)
	}
	path := filepath.Join(s.dir, fileName)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write upload: %w", err)
	}
	return "/api/uploads/" + fileName, nil
}

func (s *LocalStorage) Remove(_ context.Context, fileName string) error {
	if !safeFileName(fileName) {
		return fmt.Errorf("invalid file name %q", fileName)
	}
	err := os.Remove(filepath.Join(s.dir, fileName))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Path resolves a stored file for serving. The second return is false
// when the name is unsafe or the file does not exist.
func (s *LocalStorage) Path(fileName string) (string, bool) {
	if !safeFileName(fileName) {
		return "", false
	}
	path := filepath.Join(s.dir, fileName)
	if _, err := os.Stat(path); err != nil {
		return "", false
	}
	return path, true
}

// safeFileName rejects anything that could escape the uploads dir.
func safeFileName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	if strings.ContainsAny(name, "/\\") {
		return false
	}
	return true
}
