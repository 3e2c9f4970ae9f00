package http

import (
	"encoding/json"
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
	"github.com/cutiepets/admin/internal/utils"
	"github.com/cutiepets/admin/services/products/mocks"
)

func setupProductHandlerTest(t *testing.T) (*ProductHandler, *mocks.MockProductUC) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockUC := mocks.NewMockProductUC(ctrl)
	return NewProductHandler(mockUC), mockUC
}

func TestProductHandler_ListProducts(t *testing.T) {
	handler, mockUC := setupProductHandlerTest(t)

	mockUC.EXPECT().
		ListProducts(gomock.Any()).
		Return([]models.ProductSummary{{ID: uuid.New(), Name: "Dog Food", Category: "Food"}}, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/products", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, handler.ListProducts(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp utils.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
}

func TestProductHandler_GetProduct_InvalidID(t *testing.T) {
	handler, _ := setupProductHandlerTest(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/products/not-a-uuid", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	require.NoError(t, handler.GetProduct(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProductHandler_GetProduct_NotFound(t *testing.T) {
	handler, mockUC := setupProductHandlerTest(t)

	productID := uuid.New()
	mockUC.EXPECT().
		GetProduct(gomock.Any(), productID).
		Return(nil, apperr.ErrNotFound)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/products/"+productID.String(), nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(productID.String())

	require.NoError(t, handler.GetProduct(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestProductHandler_CreateProduct(t *testing.T) {
	handler, mockUC := setupProductHandlerTest(t)

	categoryID := uuid.New()
	mockUC.EXPECT().
		CreateProduct(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx interface{}, form *models.ProductForm) (*models.Product, error) {
			assert.Equal(t, "Dog Food", form.Name)
			assert.Equal(t, 10, form.StockQuantity)
			return &models.Product{ID: uuid.New(), Name: form.Name, Available: true}, nil
		})

	body := `{"name":"Dog Food","price":12.5,"stock_quantity":10,"category_id":"` + categoryID.String() + `"}`
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/products", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, handler.CreateProduct(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestProductHandler_CreateProduct_MissingName(t *testing.T) {
	handler, _ := setupProductHandlerTest(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/products", strings.NewReader(`{"price":5}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, handler.CreateProduct(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProductHandler_DeleteProductImage(t *testing.T) {
	handler, mockUC := setupProductHandlerTest(t)

	productID, imageID := uuid.New(), uuid.New()
	mockUC.EXPECT().
		DeleteProductImage(gomock.Any(), productID, imageID).
		Return(nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/products/"+productID.String()+"/images/"+imageID.String(), nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id", "imageId")
	c.SetParamValues(productID.String(), imageID.String())

	require.NoError(t, handler.DeleteProductImage(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestProductHandler_DeleteProductImage_NotFound(t *testing.T) {
	handler, mockUC := setupProductHandlerTest(t)

	productID, imageID := uuid.New(), uuid.New()
	mockUC.EXPECT().
		DeleteProductImage(gomock.Any(), productID, imageID).
		Return(apperr.ErrNotFound)

	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/products/"+productID.String()+"/images/"+imageID.String(), nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id", "imageId")
	c.SetParamValues(productID.String(), imageID.String())

	require.NoError(t, handler.DeleteProductImage(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
