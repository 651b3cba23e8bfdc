// Package storage persists uploaded files and inline base64 images.
package storage

import (
	"encoding/base64"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Harshanand45/WorkNest/config"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Store writes files under a configured upload directory.
type Store struct {
	dir string
	log *zap.SugaredLogger
}

// New creates the upload directory if missing and returns a store.
func New(cfg config.StorageConfig, log *zap.SugaredLogger) (*Store, error) {
	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Store{dir: cfg.UploadDir, log: log.Named("storage")}, nil
}

// Dir returns the upload directory path for static serving.
func (s *Store) Dir() string {
	return s.dir
}

// Save writes the reader content under the given file name and returns the
// public URL path.
func (s *Store) Save(name string, r io.Reader) (string, error) {
	name = filepath.Base(name)
	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("create upload: %w", err)
	}
	defer func() { _ = dst.Close() }()

	if _, err := io.Copy(dst, r); err != nil {
		return "", fmt.Errorf("write upload: %w", err)
	}

	s.log.Infow("file stored", "name", name)
	return "/uploads/" + name, nil
}

// SaveBase64Image decodes a data-URL image, stores it under a generated
// name and returns the stored file path.
func (s *Store) SaveBase64Image(dataURL string) (string, error) {
	header, encoded, found := strings.Cut(dataURL, ",")
	if !found {
		return "", fmt.Errorf("invalid base64 image data")
	}

	ext := "png"
	if slash := strings.Index(header, "/"); slash >= 0 {
		rest := header[slash+1:]
		if semi := strings.Index(rest, ";"); semi >= 0 {
			rest = rest[:semi]
		}
		if rest != "" {
			ext = rest
		}
	}

	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("invalid base64 image data: %w", err)
	}

	name := uuid.NewString() + "." + ext
	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return "", fmt.Errorf("write image: %w", err)
	}

	s.log.Infow("image stored", "path", path)
	return path, nil
}
