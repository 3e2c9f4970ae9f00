package pets

import (
	"context"

	"github.com/google/uuid"

	"github.com/cutiepets/admin/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/cutiepets/admin/services/pets PetUC

// PetUC represents the pet usecase interface
type PetUC interface {
	ListPets(ctx context.Context) ([]models.Pet, error)
	GetPet(ctx context.Context, id uuid.UUID) (*models.Pet, error)
	CreatePet(ctx context.Context, form *models.PetForm) (*models.Pet, error)
	UpdatePet(ctx context.Context, id uuid.UUID, form *models.PetForm) (*models.Pet, error)
	DeletePet(ctx context.Context, id uuid.UUID) error

	// handle image attachments
	DeletePetImage(ctx context.Context, petID, imageID uuid.UUID) error

	// reference data
	ListPetTypes(ctx context.Context) ([]models.PetType, error)
	ListBreeds(ctx context.Context, petTypeID *uuid.UUID) ([]models.Breed, error)
}
