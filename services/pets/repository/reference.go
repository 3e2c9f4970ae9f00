package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/cutiepets/admin/internal/pkg/models"
)

// ListPetTypes returns all pet types ordered by name
func (r *PetRepo) ListPetTypes(ctx context.Context) ([]models.PetType, error) {
	types := []models.PetType{}
	if err := r.db.SelectContext(ctx, &types, `SELECT id, name FROM pet_types ORDER BY name`); err != nil {
		return nil, fmt.Errorf("failed to list pet types: %w", err)
	}
	return types, nil
}

// ListBreeds returns breeds, optionally narrowed to one pet type
func (r *PetRepo) ListBreeds(ctx context.Context, petTypeID *uuid.UUID) ([]models.Breed, error) {
	breeds := []models.Breed{}

	if petTypeID != nil {
		query := `SELECT id, name, pet_type_id FROM breeds WHERE pet_type_id = $1 ORDER BY name`
		if err := r.db.SelectContext(ctx, &breeds, query, *petTypeID); err != nil {
			return nil, fmt.Errorf("failed to list breeds: %w", err)
		}
		return breeds, nil
	}

	if err := r.db.SelectContext(ctx, &breeds, `SELECT id, name, pet_type_id FROM breeds ORDER BY name`); err != nil {
		return nil, fmt.Errorf("failed to list breeds: %w", err)
	}
	return breeds, nil
}
