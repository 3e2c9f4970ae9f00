package http

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/cutiepets/admin/internal/pkg/apperr"
	"github.com/cutiepets/admin/internal/pkg/logger"
	"github.com/cutiepets/admin/internal/pkg/models"
	"github.com/cutiepets/admin/internal/utils"
	"github.com/cutiepets/admin/services/products"
)

// ProductHandler handles HTTP requests for product administration
type ProductHandler struct {
	productUC products.ProductUC
}

// NewProductHandler creates a new product handler
func NewProductHandler(productUC products.ProductUC) *ProductHandler {
	return &ProductHandler{productUC: productUC}
}

// ListProducts handles product list requests
func (h *ProductHandler) ListProducts(c echo.Context) error {
	list, err := h.productUC.ListProducts(c.Request().Context())
	if err != nil {
		logger.Error("Failed to list products", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to list products")
	}
	return utils.SuccessResponse(c, http.StatusOK, "", list)
}

// GetProduct handles single product retrieval requests
func (h *ProductHandler) GetProduct(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid product ID")
	}

	product, err := h.productUC.GetProduct(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return utils.NotFoundResponse(c, "Product not found")
		}
		logger.Error("Failed to get product", logger.Err(err), logger.String("product_id", id.String()))
		return utils.InternalServerErrorResponse(c, "Failed to get product")
	}
	return utils.SuccessResponse(c, http.StatusOK, "", product)
}

// bindProductForm reads the product fields and any uploaded images
func bindProductForm(c echo.Context) (*models.ProductForm, error) {
	var form models.ProductForm
	if err := c.Bind(&form); err != nil {
		return nil, err
	}

	uploads, err := utils.ReadImageUploads(c, "images")
	if err != nil {
		return nil, err
	}
	form.Images = uploads

	return &form, nil
}

// CreateProduct handles product creation requests
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	form, err := bindProductForm(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if form.Name == "" {
		return utils.BadRequestResponse(c, "Name is required")
	}

	product, err := h.productUC.CreateProduct(c.Request().Context(), form)
	if err != nil {
		logger.Error("Failed to create product", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to create product")
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Product created", product)
}

// UpdateProduct handles product update requests
func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid product ID")
	}

	form, err := bindProductForm(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	product, err := h.productUC.UpdateProduct(c.Request().Context(), id, form)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return utils.NotFoundResponse(c, "Product not found")
		}
		logger.Error("Failed to update product", logger.Err(err), logger.String("product_id", id.String()))
		return utils.InternalServerErrorResponse(c, "Failed to update product")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Product updated", product)
}

// DeleteProduct handles product deletion requests
func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid product ID")
	}

	if err := h.productUC.DeleteProduct(c.Request().Context(), id); err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return utils.NotFoundResponse(c, "Product not found")
		}
		logger.Error("Failed to delete product", logger.Err(err), logger.String("product_id", id.String()))
		return utils.InternalServerErrorResponse(c, "Failed to delete product")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Product deleted", nil)
}

// DeleteProductImage handles removal of one image from a product
func (h *ProductHandler) DeleteProductImage(c echo.Context) error {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid product ID")
	}
	imageID, err := uuid.Parse(c.Param("imageId"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid image ID")
	}

	if err := h.productUC.DeleteProductImage(c.Request().Context(), productID, imageID); err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return utils.NotFoundResponse(c, "Image not found")
		}
		logger.Error("Failed to delete product image",
			logger.Err(err),
			logger.String("product_id", productID.String()),
			logger.String("image_id", imageID.String()))
		return utils.InternalServerErrorResponse(c, "Failed to delete image")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Image deleted", nil)
}
