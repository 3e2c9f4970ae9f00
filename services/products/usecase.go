package products

import (
	"context"

	"github.com/google/uuid"

	"github.com/cutiepets/admin/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/cutiepets/admin/services/products ProductUC

// ProductUC represents the product usecase interface
type ProductUC interface {
	ListProducts(ctx context.Context) ([]models.ProductSummary, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*models.Product, error)
	CreateProduct(ctx context.Context, form *models.ProductForm) (*models.Product, error)
	UpdateProduct(ctx context.Context, id uuid.UUID, form *models.ProductForm) (*models.Product, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) error

	// handle image attachments
	DeleteProductImage(ctx context.Context, productID, imageID uuid.UUID) error

	// handle categories
	ListCategories(ctx context.Context) ([]models.Category, error)
	CreateCategory(ctx context.Context, name string) (*models.Category, error)
	UpdateCategory(ctx context.Context, id uuid.UUID, name string) (*models.Category, error)
	DeleteCategory(ctx context.Context, id uuid.UUID) error
}
