// Package upload stores incoming verification documents and resolves file
// uploads inside validated step payloads into durable storage references.
package upload

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/towoju5/bridge-verification-system-sub001/config"
)

// Backend persists document bytes and answers existence checks. Store
// returns the opaque reference ("<category>/<name>") the rest of the
// system carries instead of the bytes.
type Backend interface {
	Store(ctx context.Context, category, name string, r io.Reader, size int64, contentType string) (string, error)
	Exists(ctx context.Context, reference string) (bool, error)
}

// NewBackend builds the backend selected by configuration.
func NewBackend(cfg *config.StorageConfiguration) (Backend, error) {
	switch cfg.Backend {
	case "s3":
		return NewMinioBackend(cfg)
	case "local", "":
		return NewLocalBackend(cfg.LocalDir)
	default:
		return nil, fmt.Errorf("unknown storage backend: %s", cfg.Backend)
	}
}

// objectName derives a collision-free stored name keeping the original
// extension for content-type sniffing downstream.
func objectName(original string) string {
	ext := strings.ToLower(filepath.Ext(original))
	if len(ext) > 10 {
		ext = ""
	}
	return uuid.New().String() + ext
}
