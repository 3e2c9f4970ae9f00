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

// CategoryHandler handles HTTP requests for product categories
type CategoryHandler struct {
	productUC products.ProductUC
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(productUC products.ProductUC) *CategoryHandler {
	return &CategoryHandler{productUC: productUC}
}

// ListCategories handles category list requests
func (h *CategoryHandler) ListCategories(c echo.Context) error {
	categories, err := h.productUC.ListCategories(c.Request().Context())
	if err != nil {
		logger.Error("Failed to list categories", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to list categories")
	}
	return utils.SuccessResponse(c, http.StatusOK, "", categories)
}

// CreateCategory handles category creation requests
func (h *CategoryHandler) CreateCategory(c echo.Context) error {
	var form models.CategoryForm
	if err := c.Bind(&form); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if form.Name == "" {
		return utils.BadRequestResponse(c, "Name is required")
	}

	category, err := h.productUC.CreateCategory(c.Request().Context(), form.Name)
	if err != nil {
		logger.Error("Failed to create category", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to create category")
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Category created", category)
}

// UpdateCategory handles category rename requests
func (h *CategoryHandler) UpdateCategory(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid category ID")
	}

	var form models.CategoryForm
	if err := c.Bind(&form); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if form.Name == "" {
		return utils.BadRequestResponse(c, "Name is required")
	}

	category, err := h.productUC.UpdateCategory(c.Request().Context(), id, form.Name)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return utils.NotFoundResponse(c, "Category not found")
		}
		logger.Error("Failed to update category", logger.Err(err), logger.String("category_id", id.String()))
		return utils.InternalServerErrorResponse(c, "Failed to update category")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Category updated", category)
}

// DeleteCategory handles category deletion requests
func (h *CategoryHandler) DeleteCategory(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid category ID")
	}

	if err := h.productUC.DeleteCategory(c.Request().Context(), id); err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return utils.NotFoundResponse(c, "Category not found")
		}
		logger.Error("Failed to delete category", logger.Err(err), logger.String("category_id", id.String()))
		return utils.InternalServerErrorResponse(c, "Failed to delete category")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Category deleted", nil)
}
