package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/cutiepets/admin/internal/pkg/images"
	"github.com/cutiepets/admin/internal/pkg/logger"
	"github.com/cutiepets/admin/internal/pkg/models"
)

const petOwnerKind = "pets"

// saveUploads writes the uploaded files to blob storage and builds their
// image rows. Primary flags are assigned by the caller.
func (u *PetUC) saveUploads(ctx context.Context, petID uuid.UUID, uploads []models.ImageUpload, now time.Time) ([]models.Image, error) {
	imgs := make([]models.Image, 0, len(uploads))
	for _, upload := range uploads {
		locator, err := u.store.Save(ctx, petOwnerKind, petID, upload.FileName, upload.Content)
		if err != nil {
			return nil, fmt.Errorf("failed to store upload %s: %w", upload.FileName, err)
		}

		imgs = append(imgs, models.Image{
			ID:         uuid.New(),
			OwnerID:    petID,
			URL:        u.store.URL(locator),
			UploadedAt: now,
		})
	}
	return imgs, nil
}

// deleteBlobs removes the blobs behind the given image rows. Failures are
// logged; the database rows are already gone.
func (u *PetUC) deleteBlobs(ctx context.Context, imgs []models.Image) {
	for _, img := range imgs {
		if err := u.store.Delete(ctx, u.store.Locator(img.URL)); err != nil {
			logger.Warn("Failed to delete image blob",
				logger.Err(err),
				logger.String("image_url", img.URL))
		}
	}
}

// DeletePetImage removes one image from a pet. When the deleted image was
// primary, the earliest-uploaded remaining image is promoted in the same
// transaction as the row removal.
func (u *PetUC) DeletePetImage(ctx context.Context, petID, imageID uuid.UUID) error {
	img, err := u.petRepo.GetPetImage(ctx, petID, imageID)
	if err != nil {
		return err
	}

	all, err := u.petRepo.GetPetImages(ctx, petID)
	if err != nil {
		return err
	}

	remaining := make([]models.Image, 0, len(all))
	for _, candidate := range all {
		if candidate.ID != imageID {
			remaining = append(remaining, candidate)
		}
	}

	var promoteID *uuid.UUID
	if promoted, ok := images.ReassignOnDelete(*img, remaining); ok {
		promoteID = &promoted.ID
	}

	if err := u.petRepo.DeletePetImage(ctx, petID, imageID, promoteID); err != nil {
		return err
	}

	u.deleteBlobs(ctx, []models.Image{*img})
	return nil
}
