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

func insertProductImages(ctx context.Context, tx *sqlx.Tx, images []models.Image) error {
	query := `
		INSERT INTO product_images (id, product_id, image_url, is_primary, uploaded_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	for _, img := range images {
		if _, err := tx.ExecContext(ctx, query, img.ID, img.OwnerID, img.URL, img.IsPrimary, img.UploadedAt); err != nil {
			return fmt.Errorf("failed to insert product image: %w", err)
		}
	}
	return nil
}

// GetProductImages returns the product's images ordered by upload time, ties
// by ID
func (r *ProductRepo) GetProductImages(ctx context.Context, productID uuid.UUID) ([]models.Image, error) {
	query := `
		SELECT id, product_id AS owner_id, image_url, is_primary, uploaded_at
		FROM product_images
		WHERE product_id = $1
		ORDER BY uploaded_at, id
	`

	images := []models.Image{}
	if err := r.db.SelectContext(ctx, &images, query, productID); err != nil {
		return nil, fmt.Errorf("failed to list product images: %w", err)
	}
	return images, nil
}

// GetProductImage returns the image only if it belongs to the given product
func (r *ProductRepo) GetProductImage(ctx context.Context, productID, imageID uuid.UUID) (*models.Image, error) {
	query := `
		SELECT id, product_id AS owner_id, image_url, is_primary, uploaded_at
		FROM product_images
		WHERE id = $1 AND product_id = $2
	`

	var img models.Image
	if err := r.db.GetContext(ctx, &img, query, imageID, productID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get product image: %w", err)
	}
	return &img, nil
}

// DeleteProductImage removes the image row and, when promoteID is set, marks
// that image primary in the same transaction
func (r *ProductRepo) DeleteProductImage(ctx context.Context, productID, imageID uuid.UUID, promoteID *uuid.UUID) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, `DELETE FROM product_images WHERE id = $1 AND product_id = $2`, imageID, productID)
	if err != nil {
		return fmt.Errorf("failed to delete product image: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if rows == 0 {
		return apperr.ErrNotFound
	}

	if promoteID != nil {
		if _, err := tx.ExecContext(ctx, `UPDATE product_images SET is_primary = TRUE WHERE id = $1`, *promoteID); err != nil {
			return fmt.Errorf("failed to promote product image: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
