package repository

import (
	"github.com/jmoiron/sqlx"
)

// ProductRepo persists products, their images and categories in PostgreSQL
type ProductRepo struct {
	db *sqlx.DB
}

// NewProductRepo creates a new product repository
func NewProductRepo(db *sqlx.DB) *ProductRepo {
	return &ProductRepo{db: db}
}
