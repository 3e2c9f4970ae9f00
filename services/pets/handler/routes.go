package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/cutiepets/admin/services/pets/handler/http"
)

// Handler coordinates the pet service HTTP handlers
type Handler struct {
	petHandler *http.PetHandler
}

// NewHandler creates and initializes the pet handler group
func NewHandler(petHandler *http.PetHandler) *Handler {
	return &Handler{petHandler: petHandler}
}

// RegisterRoutes registers the pet routes on the given (JWT-protected) group
func (h *Handler) RegisterRoutes(g *echo.Group) {
	petGroup := g.Group("/pets")
	petGroup.GET("", h.petHandler.ListPets)
	petGroup.POST("", h.petHandler.CreatePet)
	petGroup.GET("/:id", h.petHandler.GetPet)
	petGroup.PUT("/:id", h.petHandler.UpdatePet)
	petGroup.DELETE("/:id", h.petHandler.DeletePet)
	petGroup.DELETE("/:id/images/:imageId", h.petHandler.DeletePetImage)

	g.GET("/pet-types", h.petHandler.ListPetTypes)
	g.GET("/breeds", h.petHandler.ListBreeds)
}
