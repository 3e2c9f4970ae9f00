package products

import (
	"context"

	"github.com/google/uuid"

	"github.com/cutiepets/admin/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/cutiepets/admin/services/products ProductRepo

// ProductRepo defines the product repository interface
type ProductRepo interface {
	ListProducts(ctx context.Context) ([]models.ProductSummary, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*models.Product, error)
	// CreateProduct inserts the product and its image rows in one transaction
	CreateProduct(ctx context.Context, product *models.Product, images []models.Image) error
	// UpdateProduct updates the product's fields and inserts any new image
	// rows in one transaction
	UpdateProduct(ctx context.Context, product *models.Product, images []models.Image) error
	// DeleteProduct removes the product and all its image rows in one transaction
	DeleteProduct(ctx context.Context, id uuid.UUID) error

	GetProductImages(ctx context.Context, productID uuid.UUID) ([]models.Image, error)
	// GetProductImage returns the image only if it belongs to the product
	GetProductImage(ctx context.Context, productID, imageID uuid.UUID) (*models.Image, error)
	// DeleteProductImage removes the image row and, when promoteID is set,
	// marks that image primary in the same transaction
	DeleteProductImage(ctx context.Context, productID, imageID uuid.UUID, promoteID *uuid.UUID) error

	ListCategories(ctx context.Context) ([]models.Category, error)
	CreateCategory(ctx context.Context, category *models.Category) error
	UpdateCategory(ctx context.Context, category *models.Category) error
	DeleteCategory(ctx context.Context, id uuid.UUID) error
}
