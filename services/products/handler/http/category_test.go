package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cutiepets/admin/internal/pkg/apperr"
	"github.com/cutiepets/admin/internal/pkg/models"
	"github.com/cutiepets/admin/services/products/mocks"
)

func setupCategoryHandlerTest(t *testing.T) (*CategoryHandler, *mocks.MockProductUC) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockUC := mocks.NewMockProductUC(ctrl)
	return NewCategoryHandler(mockUC), mockUC
}

func TestCategoryHandler_CreateCategory(t *testing.T) {
	handler, mockUC := setupCategoryHandlerTest(t)

	mockUC.EXPECT().
		CreateCategory(gomock.Any(), "Toys").
		Return(&models.Category{ID: uuid.New(), Name: "Toys"}, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/categories", strings.NewReader(`{"name":"Toys"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, handler.CreateCategory(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestCategoryHandler_CreateCategory_MissingName(t *testing.T) {
	handler, _ := setupCategoryHandlerTest(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/categories", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, handler.CreateCategory(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCategoryHandler_UpdateCategory_NotFound(t *testing.T) {
	handler, mockUC := setupCategoryHandlerTest(t)

	categoryID := uuid.New()
	mockUC.EXPECT().
		UpdateCategory(gomock.Any(), categoryID, "Pet Toys").
		Return(nil, apperr.ErrNotFound)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPut, "/categories/"+categoryID.String(), strings.NewReader(`{"name":"Pet Toys"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(categoryID.String())

	require.NoError(t, handler.UpdateCategory(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCategoryHandler_DeleteCategory(t *testing.T) {
	handler, mockUC := setupCategoryHandlerTest(t)

	categoryID := uuid.New()
	mockUC.EXPECT().DeleteCategory(gomock.Any(), categoryID).Return(nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/categories/"+categoryID.String(), nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(categoryID.String())

	require.NoError(t, handler.DeleteCategory(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
