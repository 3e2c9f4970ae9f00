package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/cutiepets/admin/internal/pkg/models"
)

// ListCategories returns all product categories
func (u *ProductUC) ListCategories(ctx context.Context) ([]models.Category, error) {
	return u.productRepo.ListCategories(ctx)
}

// CreateCategory creates a new product category
func (u *ProductUC) CreateCategory(ctx context.Context, name string) (*models.Category, error) {
	category := &models.Category{
		ID:   uuid.New(),
		Name: name,
	}
	if err := u.productRepo.CreateCategory(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return category, nil
}

// UpdateCategory renames an existing category
func (u *ProductUC) UpdateCategory(ctx context.Context, id uuid.UUID, name string) (*models.Category, error) {
	category := &models.Category{
		ID:   id,
		Name: name,
	}
	if err := u.productRepo.UpdateCategory(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// DeleteCategory removes a category
func (u *ProductUC) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	return u.productRepo.DeleteCategory(ctx, id)
}
