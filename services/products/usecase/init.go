package usecase

import (
	"github.com/cutiepets/admin/internal/pkg/models"
	"github.com/cutiepets/admin/internal/pkg/storage"
	"github.com/cutiepets/admin/services/products"
)

type ProductUC struct {
	productRepo products.ProductRepo
	store       storage.Storage
	cfg         *models.Config
}

// NewProductUC creates a new product usecase instance
func NewProductUC(
	productRepo products.ProductRepo,
	store storage.Storage,
	cfg *models.Config,
) *ProductUC {
	return &ProductUC{
		productRepo: productRepo,
		store:       store,
		cfg:         cfg,
	}
}
