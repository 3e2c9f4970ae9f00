package pets

import (
	"context"

	"github.com/google/uuid"

	"github.com/cutiepets/admin/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/cutiepets/admin/services/pets PetRepo

// PetRepo defines the pet repository interface
type PetRepo interface {
	ListPets(ctx context.Context) ([]models.Pet, error)
	GetPet(ctx context.Context, id uuid.UUID) (*models.Pet, error)
	// CreatePet inserts the pet and its image rows in one transaction
	CreatePet(ctx context.Context, pet *models.Pet, images []models.Image) error
	// UpdatePet updates the pet's fields and replaces the primary flags on
	// its image rows, inserting any new images, in one transaction
	UpdatePet(ctx context.Context, pet *models.Pet, images []models.Image) error
	// DeletePet removes the pet and all its image rows in one transaction
	DeletePet(ctx context.Context, id uuid.UUID) error

	GetPetImages(ctx context.Context, petID uuid.UUID) ([]models.Image, error)
	// GetPetImage returns the image only if it belongs to the pet
	GetPetImage(ctx context.Context, petID, imageID uuid.UUID) (*models.Image, error)
	// DeletePetImage removes the image row and, when promoteID is set,
	// marks that image primary in the same transaction
	DeletePetImage(ctx context.Context, petID, imageID uuid.UUID, promoteID *uuid.UUID) error

	ListPetTypes(ctx context.Context) ([]models.PetType, error)
	ListBreeds(ctx context.Context, petTypeID *uuid.UUID) ([]models.Breed, error)
}
