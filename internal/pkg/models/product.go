package models

import (
	"github.com/google/uuid"
)

// Category represents a product category
type Category struct {
	ID   uuid.UUID `json:"id" db:"id"`
	Name string    `json:"name" db:"name"`
}

// Product represents a store product
type Product struct {
	ID            uuid.UUID  `json:"id" db:"id"`
	Name          string     `json:"name" db:"name"`
	Description   string     `json:"description" db:"description"`
	Price         float64    `json:"price" db:"price"`
	StockQuantity int        `json:"stock_quantity" db:"stock_quantity"`
	Available     bool       `json:"available" db:"available"`
	CategoryID    uuid.UUID  `json:"category_id" db:"category_id"`
	PetTypeID     *uuid.UUID `json:"pet_type_id,omitempty" db:"pet_type_id"`
	Category      *Category  `json:"category,omitempty" db:"-"`
	PetType       *PetType   `json:"pet_type,omitempty" db:"-"`
	Images        []Image    `json:"images" db:"-"`
}

// ProductSummary represents a product row in the admin list view
type ProductSummary struct {
	ID              uuid.UUID `json:"id" db:"id"`
	Name            string    `json:"name" db:"name"`
	Category        string    `json:"category" db:"category"`
	Price           float64   `json:"price" db:"price"`
	StockQuantity   int       `json:"stock_quantity" db:"stock_quantity"`
	Available       bool      `json:"available" db:"available"`
	PrimaryImageURL string    `json:"primary_image_url" db:"primary_image_url"`
}

// ProductForm represents the create/update payload for a product
type ProductForm struct {
	Name          string        `json:"name" form:"name"`
	Description   string        `json:"description" form:"description"`
	Price         float64       `json:"price" form:"price"`
	StockQuantity int           `json:"stock_quantity" form:"stock_quantity"`
	CategoryID    uuid.UUID     `json:"category_id" form:"category_id"`
	PetTypeID     *uuid.UUID    `json:"pet_type_id" form:"pet_type_id"`
	Images        []ImageUpload `json:"-" form:"-"`
}

// CategoryForm represents the create/update payload for a category
type CategoryForm struct {
	Name string `json:"name" validate:"required"`
}
