package upload

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// LocalBackend stores documents on the local filesystem under a base
// directory, one subdirectory per category. Used in development and tests.
type LocalBackend struct {
	baseDir string
}

// NewLocalBackend creates the base directory if needed.
func NewLocalBackend(baseDir string) (*LocalBackend, error) {
	if baseDir == "" {
		return nil, fmt.Errorf("local storage directory is not configured")
	}
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}
	return &LocalBackend{baseDir: baseDir}, nil
}

// Store writes the document and returns its reference.
func (l *LocalBackend) Store(_ context.Context, category, name string, r io.Reader, _ int64, _ string) (string, error) {
	stored := objectName(name)
	dir := filepath.Join(l.baseDir, category)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create category directory: %w", err)
	}

	f, err := os.Create(filepath.Join(dir, stored))
	if err != nil {
		return "", fmt.Errorf("failed to create document file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("failed to write document: %w", err)
	}
	return category + "/" + stored, nil
}

// Exists reports whether a stored reference resolves to a file.
func (l *LocalBackend) Exists(_ context.Context, reference string) (bool, error) {
	parts := strings.SplitN(reference, "/", 2)
	if len(parts) != 2 {
		return false, nil
	}
	_, err := os.Stat(filepath.Join(l.baseDir, parts[0], parts[1]))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
