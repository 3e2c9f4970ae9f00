package models

import (
	"time"

	"github.com/google/uuid"
)

// Image represents an image attachment belonging to a pet or a product.
// OwnerID references exactly one owning entity; at most one image per owner
// carries IsPrimary, and exactly one when the owner has any images.
type Image struct {
	ID         uuid.UUID `json:"id" db:"id"`
	OwnerID    uuid.UUID `json:"owner_id" db:"owner_id"`
	URL        string    `json:"image_url" db:"image_url"`
	IsPrimary  bool      `json:"is_primary" db:"is_primary"`
	UploadedAt time.Time `json:"uploaded_at" db:"uploaded_at"`
}

// ImageUpload carries one uploaded file from the transport layer to the
// usecase before it has been written to blob storage.
type ImageUpload struct {
	FileName string
	Content  []byte
}
