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
	"github.com/cutiepets/admin/services/pets"
)

// PetHandler handles HTTP requests for pet administration
type PetHandler struct {
	petUC pets.PetUC
}

// NewPetHandler creates a new pet handler
func NewPetHandler(petUC pets.PetUC) *PetHandler {
	return &PetHandler{petUC: petUC}
}

// ListPets handles pet list requests
func (h *PetHandler) ListPets(c echo.Context) error {
	list, err := h.petUC.ListPets(c.Request().Context())
	if err != nil {
		logger.Error("Failed to list pets", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to list pets")
	}
	return utils.SuccessResponse(c, http.StatusOK, "", list)
}

// GetPet handles single pet retrieval requests
func (h *PetHandler) GetPet(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid pet ID")
	}

	pet, err := h.petUC.GetPet(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return utils.NotFoundResponse(c, "Pet not found")
		}
		logger.Error("Failed to get pet", logger.Err(err), logger.String("pet_id", id.String()))
		return utils.InternalServerErrorResponse(c, "Failed to get pet")
	}
	return utils.SuccessResponse(c, http.StatusOK, "", pet)
}

// bindPetForm reads the pet fields and any uploaded images from the request
func bindPetForm(c echo.Context) (*models.PetForm, error) {
	var form models.PetForm
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

// CreatePet handles pet creation requests
func (h *PetHandler) CreatePet(c echo.Context) error {
	form, err := bindPetForm(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if form.Name == "" {
		return utils.BadRequestResponse(c, "Name is required")
	}

	pet, err := h.petUC.CreatePet(c.Request().Context(), form)
	if err != nil {
		logger.Error("Failed to create pet", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to create pet")
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Pet created", pet)
}

// UpdatePet handles pet update requests
func (h *PetHandler) UpdatePet(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid pet ID")
	}

	form, err := bindPetForm(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	pet, err := h.petUC.UpdatePet(c.Request().Context(), id, form)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return utils.NotFoundResponse(c, "Pet not found")
		}
		logger.Error("Failed to update pet", logger.Err(err), logger.String("pet_id", id.String()))
		return utils.InternalServerErrorResponse(c, "Failed to update pet")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Pet updated", pet)
}

// DeletePet handles pet deletion requests
func (h *PetHandler) DeletePet(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid pet ID")
	}

	if err := h.petUC.DeletePet(c.Request().Context(), id); err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return utils.NotFoundResponse(c, "Pet not found")
		}
		logger.Error("Failed to delete pet", logger.Err(err), logger.String("pet_id", id.String()))
		return utils.InternalServerErrorResponse(c, "Failed to delete pet")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Pet deleted", nil)
}

// DeletePetImage handles removal of one image from a pet
func (h *PetHandler) DeletePetImage(c echo.Context) error {
	petID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid pet ID")
	}
	imageID, err := uuid.Parse(c.Param("imageId"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid image ID")
	}

	if err := h.petUC.DeletePetImage(c.Request().Context(), petID, imageID); err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return utils.NotFoundResponse(c, "Image not found")
		}
		logger.Error("Failed to delete pet image",
			logger.Err(err),
			logger.String("pet_id", petID.String()),
			logger.String("image_id", imageID.String()))
		return utils.InternalServerErrorResponse(c, "Failed to delete image")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Image deleted", nil)
}

// ListPetTypes handles pet type reference data requests
func (h *PetHandler) ListPetTypes(c echo.Context) error {
	types, err := h.petUC.ListPetTypes(c.Request().Context())
	if err != nil {
		logger.Error("Failed to list pet types", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to list pet types")
	}
	return utils.SuccessResponse(c, http.StatusOK, "", types)
}

// ListBreeds handles breed reference data requests, optionally narrowed by
// the pet_type_id query parameter
func (h *PetHandler) ListBreeds(c echo.Context) error {
	var petTypeID *uuid.UUID
	if raw := c.QueryParam("pet_type_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return utils.BadRequestResponse(c, "Invalid pet type ID")
		}
		petTypeID = &id
	}

	breeds, err := h.petUC.ListBreeds(c.Request().Context(), petTypeID)
	if err != nil {
		logger.Error("Failed to list breeds", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to list breeds")
	}
	return utils.SuccessResponse(c, http.StatusOK, "", breeds)
}
