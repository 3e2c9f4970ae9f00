package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/cutiepets/admin/internal/pkg/images"
	"github.com/cutiepets/admin/internal/pkg/logger"
	"github.com/cutiepets/admin/internal/pkg/models"
)

// ListPets returns all pets with their breed, pet type and images
func (u *PetUC) ListPets(ctx context.Context) ([]models.Pet, error) {
	return u.petRepo.ListPets(ctx)
}

// GetPet returns a single pet by ID
func (u *PetUC) GetPet(ctx context.Context, id uuid.UUID) (*models.Pet, error) {
	return u.petRepo.GetPet(ctx, id)
}

// CreatePet creates a pet with its uploaded images. The first image becomes
// the primary one.
func (u *PetUC) CreatePet(ctx context.Context, form *models.PetForm) (*models.Pet, error) {
	now := time.Now()
	pet := &models.Pet{
		ID:          uuid.New(),
		Name:        form.Name,
		Age:         form.Age,
		Gender:      form.Gender,
		Description: form.Description,
		Price:       form.Price,
		Available:   true,
		BreedID:     form.BreedID,
		SubmittedAt: now,
	}

	incoming, err := u.saveUploads(ctx, pet.ID, form.Images, now)
	if err != nil {
		return nil, err
	}

	attached := images.AssignOnAdd(nil, incoming)
	if err := u.petRepo.CreatePet(ctx, pet, attached); err != nil {
		return nil, fmt.Errorf("failed to create pet: %w", err)
	}

	pet.Images = attached
	logger.Info("Pet created",
		logger.String("pet_id", pet.ID.String()),
		logger.Int("images", len(attached)))

	return pet, nil
}

// UpdatePet updates a pet's fields and appends any newly uploaded images.
// An existing primary image is never displaced by an appended one.
func (u *PetUC) UpdatePet(ctx context.Context, id uuid.UUID, form *models.PetForm) (*models.Pet, error) {
	pet, err := u.petRepo.GetPet(ctx, id)
	if err != nil {
		return nil, err
	}

	pet.Name = form.Name
	pet.Age = form.Age
	pet.Gender = form.Gender
	pet.Description = form.Description
	pet.Price = form.Price
	pet.BreedID = form.BreedID

	incoming, err := u.saveUploads(ctx, pet.ID, form.Images, time.Now())
	if err != nil {
		return nil, err
	}

	appended := images.AssignOnAdd(pet.Images, incoming)
	if err := u.petRepo.UpdatePet(ctx, pet, appended); err != nil {
		return nil, fmt.Errorf("failed to update pet: %w", err)
	}

	pet.Images = append(pet.Images, appended...)
	return pet, nil
}

// DeletePet removes a pet, its image rows and, best-effort, their blobs
func (u *PetUC) DeletePet(ctx context.Context, id uuid.UUID) error {
	imgs, err := u.petRepo.GetPetImages(ctx, id)
	if err != nil {
		return err
	}

	if err := u.petRepo.DeletePet(ctx, id); err != nil {
		return err
	}

	u.deleteBlobs(ctx, imgs)
	logger.Info("Pet deleted", logger.String("pet_id", id.String()))
	return nil
}

// ListPetTypes returns the pet type reference data
func (u *PetUC) ListPetTypes(ctx context.Context) ([]models.PetType, error) {
	return u.petRepo.ListPetTypes(ctx)
}

// ListBreeds returns breeds, optionally narrowed to one pet type
func (u *PetUC) ListBreeds(ctx context.Context, petTypeID *uuid.UUID) ([]models.Breed, error) {
	return u.petRepo.ListBreeds(ctx, petTypeID)
}
