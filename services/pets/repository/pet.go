package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/cutiepets/admin/internal/pkg/apperr"
	"github.com/cutiepets/admin/internal/pkg/models"
)

// ListPets returns all pets with breed, pet type and images, newest first
func (r *PetRepo) ListPets(ctx context.Context) ([]models.Pet, error) {
	query := `
		SELECT p.id, p.name, p.age, p.gender, p.description, p.price, p.available,
			p.breed_id, p.submitted_at,
			b.name, b.pet_type_id, t.name
		FROM pets p
		JOIN breeds b ON b.id = p.breed_id
		JOIN pet_types t ON t.id = b.pet_type_id
		ORDER BY p.submitted_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list pets: %w", err)
	}
	defer rows.Close()

	pets := []models.Pet{}
	for rows.Next() {
		pet, err := scanPet(rows)
		if err != nil {
			return nil, err
		}
		pets = append(pets, *pet)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read pets: %w", err)
	}

	for i := range pets {
		images, err := r.GetPetImages(ctx, pets[i].ID)
		if err != nil {
			return nil, err
		}
		pets[i].Images = images
	}

	return pets, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanPet(row rowScanner) (*models.Pet, error) {
	var pet models.Pet
	var breed models.Breed
	var petType models.PetType

	err := row.Scan(
		&pet.ID,
		&pet.Name,
		&pet.Age,
		&pet.Gender,
		&pet.Description,
		&pet.Price,
		&pet.Available,
		&pet.BreedID,
		&pet.SubmittedAt,
		&breed.Name,
		&breed.PetTypeID,
		&petType.Name,
	)
	if err != nil {
		return nil, err
	}

	breed.ID = pet.BreedID
	petType.ID = breed.PetTypeID
	breed.PetType = &petType
	pet.Breed = &breed

	return &pet, nil
}

// GetPet returns a pet by ID with its breed, pet type and images
func (r *PetRepo) GetPet(ctx context.Context, id uuid.UUID) (*models.Pet, error) {
	query := `
		SELECT p.id, p.name, p.age, p.gender, p.description, p.price, p.available,
			p.breed_id, p.submitted_at,
			b.name, b.pet_type_id, t.name
		FROM pets p
		JOIN breeds b ON b.id = p.breed_id
		JOIN pet_types t ON t.id = b.pet_type_id
		WHERE p.id = $1
	`

	pet, err := scanPet(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get pet: %w", err)
	}

	images, err := r.GetPetImages(ctx, pet.ID)
	if err != nil {
		return nil, err
	}
	pet.Images = images

	return pet, nil
}

// CreatePet inserts the pet and its image rows in one transaction
func (r *PetRepo) CreatePet(ctx context.Context, pet *models.Pet, images []models.Image) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO pets (id, name, age, gender, description, price, available,
			breed_id, submitted_at
		) VALUES (:id, :name, :age, :gender, :description, :price, :available,
			:breed_id, :submitted_at)
	`
	if _, err := tx.NamedExecContext(ctx, query, pet); err != nil {
		return fmt.Errorf("failed to insert pet: %w", err)
	}

	if err := insertPetImages(ctx, tx, images); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// UpdatePet updates the pet's fields and inserts any new image rows in one
// transaction
func (r *PetRepo) UpdatePet(ctx context.Context, pet *models.Pet, images []models.Image) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		UPDATE pets
		SET name = :name, age = :age, gender = :gender, description = :description,
			price = :price, available = :available, breed_id = :breed_id
		WHERE id = :id
	`
	result, err := tx.NamedExecContext(ctx, query, pet)
	if err != nil {
		return fmt.Errorf("failed to update pet: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if rows == 0 {
		return apperr.ErrNotFound
	}

	if err := insertPetImages(ctx, tx, images); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// DeletePet removes the pet and its image rows in one transaction
func (r *PetRepo) DeletePet(ctx context.Context, id uuid.UUID) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM pet_images WHERE pet_id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete pet images: %w", err)
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM pets WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete pet: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if rows == 0 {
		return apperr.ErrNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
