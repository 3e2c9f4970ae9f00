package storage

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// LocalStorage stores blobs on the local filesystem under a root directory.
// Locators are slash-separated relative paths like pets/{id}/{file}.
type LocalStorage struct {
	rootDir string
	baseURL string
}

// NewLocalStorage creates a disk-backed storage rooted at rootDir
func NewLocalStorage(rootDir, baseURL string) (*LocalStorage, error) {
	if err := os.MkdirAll(rootDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage root: %w", err)
	}
	return &LocalStorage{
		rootDir: rootDir,
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}, nil
}

// Save writes the blob under {root}/{ownerKind}/{ownerID}/ with a fresh
// random file name, keeping the original extension.
func (s *LocalStorage) Save(_ context.Context, ownerKind string, ownerID uuid.UUID, fileName string, data []byte) (string, error) {
	dir := filepath.Join(s.rootDir, ownerKind, ownerID.String())
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	name := uuid.New().String() + strings.ToLower(filepath.Ext(fileName))
	if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write upload: %w", err)
	}

	return path.Join(ownerKind, ownerID.String(), name), nil
}

// Delete removes the blob at the given locator
func (s *LocalStorage) Delete(_ context.Context, locator string) error {
	full := filepath.Join(s.rootDir, filepath.FromSlash(locator))
	if err := os.Remove(full); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to delete upload: %w", err)
	}
	return nil
}

// URL resolves a locator to the path served by the static file route
func (s *LocalStorage) URL(locator string) string {
	return s.baseURL + "/" + locator
}

// Locator maps a served URL back to its relative locator
func (s *LocalStorage) Locator(url string) string {
	return strings.TrimPrefix(url, s.baseURL+"/")
}

// Root returns the storage root directory, used to mount the static route
func (s *LocalStorage) Root() string {
	return s.rootDir
}
