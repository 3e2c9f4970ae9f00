package models

import (
	"time"

	"github.com/google/uuid"
)

// PetType represents a kind of animal (dog, cat, ...)
type PetType struct {
	ID   uuid.UUID `json:"id" db:"id"`
	Name string    `json:"name" db:"name"`
}

// Breed represents a breed within a pet type
type Breed struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	PetTypeID uuid.UUID `json:"pet_type_id" db:"pet_type_id"`
	PetType   *PetType  `json:"pet_type,omitempty" db:"-"`
}

// Pet represents a pet listed for sale
type Pet struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Age         int       `json:"age" db:"age"`
	Gender      string    `json:"gender" db:"gender"`
	Description string    `json:"description" db:"description"`
	Price       float64   `json:"price" db:"price"`
	Available   bool      `json:"available" db:"available"`
	BreedID     uuid.UUID `json:"breed_id" db:"breed_id"`
	Breed       *Breed    `json:"breed,omitempty" db:"-"`
	Images      []Image   `json:"images" db:"-"`
	SubmittedAt time.Time `json:"submitted_at" db:"submitted_at"`
}

// PetForm represents the create/update payload for a pet
type PetForm struct {
	Name        string        `json:"name" form:"name"`
	Age         int           `json:"age" form:"age"`
	Gender      string        `json:"gender" form:"gender"`
	Description string        `json:"description" form:"description"`
	Price       float64       `json:"price" form:"price"`
	BreedID     uuid.UUID     `json:"breed_id" form:"breed_id"`
	Images      []ImageUpload `json:"-" form:"-"`
}
