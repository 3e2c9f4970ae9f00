package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/cutiepets/admin/services/products/handler/http"
)

// Handler coordinates the product service HTTP handlers
type Handler struct {
	productHandler  *http.ProductHandler
	categoryHandler *http.CategoryHandler
}

// NewHandler creates and initializes the product handler group
func NewHandler(productHandler *http.ProductHandler, categoryHandler *http.CategoryHandler) *Handler {
	return &Handler{
		productHandler:  productHandler,
		categoryHandler: categoryHandler,
	}
}

// RegisterRoutes registers the product and category routes on the given
// (JWT-protected) group
func (h *Handler) RegisterRoutes(g *echo.Group) {
	productGroup := g.Group("/products")
	productGroup.GET("", h.productHandler.ListProducts)
	productGroup.POST("", h.productHandler.CreateProduct)
	productGroup.GET("/:id", h.productHandler.GetProduct)
	productGroup.PUT("/:id", h.productHandler.UpdateProduct)
	productGroup.DELETE("/:id", h.productHandler.DeleteProduct)
	productGroup.DELETE("/:id/images/:imageId", h.productHandler.DeleteProductImage)

	categoryGroup := g.Group("/categories")
	categoryGroup.GET("", h.categoryHandler.ListCategories)
	categoryGroup.POST("", h.categoryHandler.CreateCategory)
	categoryGroup.PUT("/:id", h.categoryHandler.UpdateCategory)
	categoryGroup.DELETE("/:id", h.categoryHandler.DeleteCategory)
}
