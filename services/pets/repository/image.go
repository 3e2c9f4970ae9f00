package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/cutiepets/admin/internal/pkg/apperr"
	"github.com/cutiepets/admin/internal/pkg/models"
)

func insertPetImages(ctx context.Context, tx *sqlx.Tx, images []models.Image) error {
	query := `
		INSERT INTO pet_images (id, pet_id, image_url, is_primary, uploaded_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	for _, img := range images {
		if _, err := tx.ExecContext(ctx, query, img.ID, img.OwnerID, img.URL, img.IsPrimary, img.UploadedAt); err != nil {
			return fmt.Errorf("failed to insert pet image: %w", err)
		}
	}
	return nil
}

// GetPetImages returns the pet's images ordered by upload time, ties by ID
func (r *PetRepo) GetPetImages(ctx context.Context, petID uuid.UUID) ([]models.Image, error) {
	query := `
		SELECT id, pet_id AS owner_id, image_url, is_primary, uploaded_at
		FROM pet_images
		WHERE pet_id = $1
		ORDER BY uploaded_at, id
	`

	images := []models.Image{}
	if err := r.db.SelectContext(ctx, &images, query, petID); err != nil {
		return nil, fmt.Errorf("failed to list pet images: %w", err)
	}
	return images, nil
}

// GetPetImage returns the image only if it belongs to the given pet
func (r *PetRepo) GetPetImage(ctx context.Context, petID, imageID uuid.UUID) (*models.Image, error) {
	query := `
		SELECT id, pet_id AS owner_id, image_url, is_primary, uploaded_at
		FROM pet_images
		WHERE id = $1 AND pet_id = $2
	`

	var img models.Image
	if err := r.db.GetContext(ctx, &img, query, imageID, petID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get pet image: %w", err)
	}
	return &img, nil
}

// DeletePetImage removes the image row and, when promoteID is set, marks that
// image primary in the same transaction
func (r *PetRepo) DeletePetImage(ctx context.Context, petID, imageID uuid.UUID, promoteID *uuid.UUID) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, `DELETE FROM pet_images WHERE id = $1 AND pet_id = $2`, imageID, petID)
	if err != nil {
		return fmt.Errorf("failed to delete pet image: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if rows == 0 {
		return apperr.ErrNotFound
	}

	if promoteID != nil {
		if _, err := tx.ExecContext(ctx, `UPDATE pet_images SET is_primary = TRUE WHERE id = $1`, *promoteID); err != nil {
			return fmt.Errorf("failed to promote pet image: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
