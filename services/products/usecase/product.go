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

// ListProducts returns the admin list view of all products
func (u *ProductUC) ListProducts(ctx context.Context) ([]models.ProductSummary, error) {
	return u.productRepo.ListProducts(ctx)
}

// GetProduct returns a single product with category, pet type and images
func (u *ProductUC) GetProduct(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	return u.productRepo.GetProduct(ctx, id)
}

// CreateProduct creates a product with its uploaded images. Availability
// follows the stock level; the first image becomes the primary one.
func (u *ProductUC) CreateProduct(ctx context.Context, form *models.ProductForm) (*models.Product, error) {
	product := &models.Product{
		ID:            uuid.New(),
		Name:          form.Name,
		Description:   form.Description,
		Price:         form.Price,
		StockQuantity: form.StockQuantity,
		Available:     form.StockQuantity > 0,
		CategoryID:    form.CategoryID,
		PetTypeID:     form.PetTypeID,
	}

	incoming, err := u.saveUploads(ctx, product.ID, form.Images, time.Now())
	if err != nil {
		return nil, err
	}

	attached := images.AssignOnAdd(nil, incoming)
	if err := u.productRepo.CreateProduct(ctx, product, attached); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	product.Images = attached
	logger.Info("Product created",
		logger.String("product_id", product.ID.String()),
		logger.Int("images", len(attached)))

	return product, nil
}

// UpdateProduct updates a product's fields and appends any newly uploaded
// images. An existing primary image is never displaced by an appended one.
func (u *ProductUC) UpdateProduct(ctx context.Context, id uuid.UUID, form *models.ProductForm) (*models.Product, error) {
	product, err := u.productRepo.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	product.Name = form.Name
	product.Description = form.Description
	product.Price = form.Price
	product.StockQuantity = form.StockQuantity
	product.Available = form.StockQuantity > 0
	product.CategoryID = form.CategoryID
	product.PetTypeID = form.PetTypeID

	incoming, err := u.saveUploads(ctx, product.ID, form.Images, time.Now())
	if err != nil {
		return nil, err
	}

	appended := images.AssignOnAdd(product.Images, incoming)
	if err := u.productRepo.UpdateProduct(ctx, product, appended); err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	product.Images = append(product.Images, appended...)
	return product, nil
}

// DeleteProduct removes a product, its image rows and, best-effort, their blobs
func (u *ProductUC) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	imgs, err := u.productRepo.GetProductImages(ctx, id)
	if err != nil {
		return err
	}

	if err := u.productRepo.DeleteProduct(ctx, id); err != nil {
		return err
	}

	u.deleteBlobs(ctx, imgs)
	logger.Info("Product deleted", logger.String("product_id", id.String()))
	return nil
}
