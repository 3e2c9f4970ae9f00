package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cutiepets/admin/internal/pkg/apperr"
	"github.com/cutiepets/admin/internal/pkg/models"
	"github.com/cutiepets/admin/internal/utils"
	"github.com/cutiepets/admin/services/pets/mocks"
)

func setupPetHandlerTest(t *testing.T) (*PetHandler, *mocks.MockPetUC) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockUC := mocks.NewMockPetUC(ctrl)
	return NewPetHandler(mockUC), mockUC
}

func newGetContext(t *testing.T, target string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestPetHandler_ListPets(t *testing.T) {
	handler, mockUC := setupPetHandlerTest(t)

	mockUC.EXPECT().
		ListPets(gomock.Any()).
		Return([]models.Pet{{ID: uuid.New(), Name: "Milo"}}, nil)

	c, rec := newGetContext(t, "/pets")
	require.NoError(t, handler.ListPets(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp utils.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
}

func TestPetHandler_GetPet_InvalidID(t *testing.T) {
	handler, _ := setupPetHandlerTest(t)

	c, rec := newGetContext(t, "/pets/not-a-uuid")
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	require.NoError(t, handler.GetPet(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPetHandler_GetPet_NotFound(t *testing.T) {
	handler, mockUC := setupPetHandlerTest(t)

	petID := uuid.New()
	mockUC.EXPECT().
		GetPet(gomock.Any(), petID).
		Return(nil, apperr.ErrNotFound)

	c, rec := newGetContext(t, "/pets/"+petID.String())
	c.SetParamNames("id")
	c.SetParamValues(petID.String())

	require.NoError(t, handler.GetPet(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPetHandler_DeletePetImage(t *testing.T) {
	handler, mockUC := setupPetHandlerTest(t)

	petID, imageID := uuid.New(), uuid.New()
	mockUC.EXPECT().
		DeletePetImage(gomock.Any(), petID, imageID).
		Return(nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/pets/"+petID.String()+"/images/"+imageID.String(), nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id", "imageId")
	c.SetParamValues(petID.String(), imageID.String())

	require.NoError(t, handler.DeletePetImage(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPetHandler_DeletePetImage_NotFound(t *testing.T) {
	handler, mockUC := setupPetHandlerTest(t)

	petID, imageID := uuid.New(), uuid.New()
	mockUC.EXPECT().
		DeletePetImage(gomock.Any(), petID, imageID).
		Return(apperr.ErrNotFound)

	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/pets/"+petID.String()+"/images/"+imageID.String(), nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id", "imageId")
	c.SetParamValues(petID.String(), imageID.String())

	require.NoError(t, handler.DeletePetImage(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPetHandler_ListBreeds_FilterByPetType(t *testing.T) {
	handler, mockUC := setupPetHandlerTest(t)

	petTypeID := uuid.New()
	mockUC.EXPECT().
		ListBreeds(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx interface{}, id *uuid.UUID) ([]models.Breed, error) {
			require.NotNil(t, id)
			assert.Equal(t, petTypeID, *id)
			return []models.Breed{{ID: uuid.New(), Name: "Corgi", PetTypeID: petTypeID}}, nil
		})

	c, rec := newGetContext(t, "/breeds?pet_type_id="+petTypeID.String())
	require.NoError(t, handler.ListBreeds(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPetHandler_ListBreeds_InvalidPetType(t *testing.T) {
	handler, _ := setupPetHandlerTest(t)

	c, rec := newGetContext(t, "/breeds?pet_type_id=nope")
	require.NoError(t, handler.ListBreeds(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
