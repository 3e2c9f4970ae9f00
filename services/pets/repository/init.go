package repository

import (
	"github.com/jmoiron/sqlx"
)

// PetRepo persists pets, their images and reference data in PostgreSQL
type PetRepo struct {
	db *sqlx.DB
}

// NewPetRepo creates a new pet repository
func NewPetRepo(db *sqlx.DB) *PetRepo {
	return &PetRepo{db: db}
}
