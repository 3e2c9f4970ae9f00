package storage

import (
	"bytes"
	"context"
	"fmt"
	"mime"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	storagego "github.com/supabase-community/storage-go"
)

// SupabaseStorage stores blobs in a Supabase storage bucket
type SupabaseStorage struct {
	client  *storagego.Client
	bucket  string
	baseURL string
}

// NewSupabaseStorage creates a storage client for the given project and bucket
func NewSupabaseStorage(projectURL, serviceKey, bucket string) *SupabaseStorage {
	baseURL := strings.TrimSuffix(projectURL, "/")
	client := storagego.NewClient(baseURL+"/storage/v1", serviceKey, nil)

	return &SupabaseStorage{
		client:  client,
		bucket:  bucket,
		baseURL: baseURL,
	}
}

// Save uploads the blob under {ownerKind}/{ownerID}/ with a fresh random
// file name, keeping the original extension.
func (s *SupabaseStorage) Save(_ context.Context, ownerKind string, ownerID uuid.UUID, fileName string, data []byte) (string, error) {
	ext := strings.ToLower(filepath.Ext(fileName))
	locator := path.Join(ownerKind, ownerID.String(), uuid.New().String()+ext)

	contentType := mime.TypeByExtension(ext)
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	upsert := true

	_, err := s.client.UploadFile(s.bucket, locator, bytes.NewReader(data), storagego.FileOptions{
		ContentType: &contentType,
		Upsert:      &upsert,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload file: %w", err)
	}

	return locator, nil
}

// Delete removes the blob at the given locator
func (s *SupabaseStorage) Delete(_ context.Context, locator string) error {
	if _, err := s.client.RemoveFile(s.bucket, []string{locator}); err != nil {
		return fmt.Errorf("failed to remove file: %w", err)
	}
	return nil
}

// URL resolves a locator to the bucket's public object URL
func (s *SupabaseStorage) URL(locator string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", s.baseURL, s.bucket, locator)
}

// Locator maps a public object URL back to its bucket-relative locator
func (s *SupabaseStorage) Locator(url string) string {
	prefix := fmt.Sprintf("%s/storage/v1/object/public/%s/", s.baseURL, s.bucket)
	return strings.TrimPrefix(url, prefix)
}
