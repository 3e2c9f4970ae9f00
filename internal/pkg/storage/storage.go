// Package storage persists uploaded image bytes behind an opaque locator.
// Deleting a blob is best-effort: callers log failures and proceed with the
// database row removal.
package storage

import (
	"context"

	"github.com/google/uuid"
)

//go:generate mockgen -destination=mocks/mock_storage.go -package=mocks github.com/cutiepets/admin/internal/pkg/storage Storage

// Storage persists and removes uploaded blobs
type Storage interface {
	// Save writes the blob and returns its locator
	Save(ctx context.Context, ownerKind string, ownerID uuid.UUID, fileName string, data []byte) (string, error)
	// Delete removes the blob at the given locator
	Delete(ctx context.Context, locator string) error
	// URL resolves a locator to the URL served to clients
	URL(locator string) string
	// Locator maps a URL previously produced by URL back to its locator
	Locator(url string) string
}
