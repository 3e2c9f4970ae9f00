package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/cutiepets/admin/internal/pkg/apperr"
	"github.com/cutiepets/admin/internal/pkg/models"
)

// ListProducts returns the admin list view: category name and primary image
// URL resolved per product
func (r *ProductRepo) ListProducts(ctx context.Context) ([]models.ProductSummary, error) {
	query := `
		SELECT p.id, p.name, c.name AS category, p.price, p.stock_quantity, p.available,
			COALESCE(i.image_url, '') AS primary_image_url
		FROM products p
		JOIN categories c ON c.id = p.category_id
		LEFT JOIN product_images i ON i.product_id = p.id AND i.is_primary
		ORDER BY p.name
	`

	summaries := []models.ProductSummary{}
	if err := r.db.SelectContext(ctx, &summaries, query); err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return summaries, nil
}

// GetProduct returns a product by ID with category, pet type and images
func (r *ProductRepo) GetProduct(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	query := `
		SELECT p.id, p.name, p.description, p.price, p.stock_quantity, p.available,
			p.category_id, p.pet_type_id,
			c.name, t.name
		FROM products p
		JOIN categories c ON c.id = p.category_id
		LEFT JOIN pet_types t ON t.id = p.pet_type_id
		WHERE p.id = $1
	`

	var product models.Product
	var categoryName string
	var petTypeName sql.NullString

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&product.ID,
		&product.Name,
		&product.Description,
		&product.Price,
		&product.StockQuantity,
		&product.Available,
		&product.CategoryID,
		&product.PetTypeID,
		&categoryName,
		&petTypeName,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	product.Category = &models.Category{ID: product.CategoryID, Name: categoryName}
	if product.PetTypeID != nil && petTypeName.Valid {
		product.PetType = &models.PetType{ID: *product.PetTypeID, Name: petTypeName.String}
	}

	images, err := r.GetProductImages(ctx, product.ID)
	if err != nil {
		return nil, err
	}
	product.Images = images

	return &product, nil
}

// CreateProduct inserts the product and its image rows in one transaction
func (r *ProductRepo) CreateProduct(ctx context.Context, product *models.Product, images []models.Image) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO products (id, name, description, price, stock_quantity,
			available, category_id, pet_type_id
		) VALUES (:id, :name, :description, :price, :stock_quantity,
			:available, :category_id, :pet_type_id)
	`
	if _, err := tx.NamedExecContext(ctx, query, product); err != nil {
		return fmt.Errorf("failed to insert product: %w", err)
	}

	if err := insertProductImages(ctx, tx, images); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// UpdateProduct updates the product's fields and inserts any new image rows
// in one transaction
func (r *ProductRepo) UpdateProduct(ctx context.Context, product *models.Product, images []models.Image) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		UPDATE products
		SET name = :name, description = :description, price = :price,
			stock_quantity = :stock_quantity, available = :available,
			category_id = :category_id, pet_type_id = :pet_type_id
		WHERE id = :id
	`
	result, err := tx.NamedExecContext(ctx, query, product)
	if err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if rows == 0 {
		return apperr.ErrNotFound
	}

	if err := insertProductImages(ctx, tx, images); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// DeleteProduct removes the product and its image rows in one transaction
func (r *ProductRepo) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM product_images WHERE product_id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete product images: %w", err)
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if rows == 0 {
		return apperr.ErrNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
