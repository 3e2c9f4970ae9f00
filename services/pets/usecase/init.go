package usecase

import (
	"github.com/cutiepets/admin/internal/pkg/models"
	"github.com/cutiepets/admin/internal/pkg/storage"
	"github.com/cutiepets/admin/services/pets"
)

type PetUC struct {
	petRepo pets.PetRepo
	store   storage.Storage
	cfg     *models.Config
}

// NewPetUC creates a new pet usecase instance
func NewPetUC(
	petRepo pets.PetRepo,
	store storage.Storage,
	cfg *models.Config,
) *PetUC {
	return &PetUC{
		petRepo: petRepo,
		store:   store,
		cfg:     cfg,
	}
}
