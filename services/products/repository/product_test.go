package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cutiepets/admin/internal/pkg/apperr"
	"github.com/cutiepets/admin/internal/pkg/models"
)

func setupProductRepoTest(t *testing.T) (*ProductRepo, sqlmock.Sqlmock, func()) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")
	repo := NewProductRepo(sqlxDB)

	cleanup := func() {
		sqlxDB.Close()
	}

	return repo, mock, cleanup
}

func TestProductRepo_ListProducts(t *testing.T) {
	repo, mock, cleanup := setupProductRepoTest(t)
	defer cleanup()

	rows := sqlmock.NewRows([]string{"id", "name", "category", "price", "stock_quantity", "available", "primary_image_url"}).
		AddRow(uuid.New(), "Dog Food", "Food", 12.5, 40, true, "/uploads/products/x/a.png").
		AddRow(uuid.New(), "Cat Tree", "Furniture", 89.0, 0, false, "")

	mock.ExpectQuery("LEFT JOIN product_images").WillReturnRows(rows)

	summaries, err := repo.ListProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, summaries, 2)
	assert.Equal(t, "Food", summaries[0].Category)
	assert.Equal(t, "/uploads/products/x/a.png", summaries[0].PrimaryImageURL)
	assert.Empty(t, summaries[1].PrimaryImageURL)
}

func TestProductRepo_GetProduct(t *testing.T) {
	repo, mock, cleanup := setupProductRepoTest(t)
	defer cleanup()

	productID := uuid.New()
	categoryID := uuid.New()
	petTypeID := uuid.New()

	productRow := sqlmock.NewRows([]string{
		"id", "name", "description", "price", "stock_quantity", "available",
		"category_id", "pet_type_id", "name", "name",
	}).AddRow(productID, "Dog Food", "Tasty kibble", 12.5, 40, true,
		categoryID, petTypeID, "Food", "Dog")

	mock.ExpectQuery("SELECT p.id, p.name, p.description").
		WithArgs(productID).
		WillReturnRows(productRow)

	mock.ExpectQuery("FROM product_images").
		WithArgs(productID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "owner_id", "image_url", "is_primary", "uploaded_at"}).
			AddRow(uuid.New(), productID, "/uploads/products/x/a.png", true, time.Now()))

	product, err := repo.GetProduct(context.Background(), productID)
	require.NoError(t, err)
	require.NotNil(t, product.Category)
	assert.Equal(t, "Food", product.Category.Name)
	require.NotNil(t, product.PetType)
	assert.Equal(t, "Dog", product.PetType.Name)
	require.Len(t, product.Images, 1)
}

func TestProductRepo_GetProduct_NoPetType(t *testing.T) {
	repo, mock, cleanup := setupProductRepoTest(t)
	defer cleanup()

	productID := uuid.New()
	categoryID := uuid.New()

	productRow := sqlmock.NewRows([]string{
		"id", "name", "description", "price", "stock_quantity", "available",
		"category_id", "pet_type_id", "name", "name",
	}).AddRow(productID, "Universal Bowl", "", 6.0, 15, true,
		categoryID, nil, "Accessories", nil)

	mock.ExpectQuery("SELECT p.id, p.name, p.description").
		WithArgs(productID).
		WillReturnRows(productRow)

	mock.ExpectQuery("FROM product_images").
		WithArgs(productID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "owner_id", "image_url", "is_primary", "uploaded_at"}))

	product, err := repo.GetProduct(context.Background(), productID)
	require.NoError(t, err)
	assert.Nil(t, product.PetTypeID)
	assert.Nil(t, product.PetType)
	assert.Empty(t, product.Images)
}

func TestProductRepo_GetProduct_NotFound(t *testing.T) {
	repo, mock, cleanup := setupProductRepoTest(t)
	defer cleanup()

	productID := uuid.New()
	mock.ExpectQuery("SELECT p.id, p.name, p.description").
		WithArgs(productID).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "name", "description", "price", "stock_quantity", "available",
			"category_id", "pet_type_id", "name", "name",
		}))

	product, err := repo.GetProduct(context.Background(), productID)
	assert.Nil(t, product)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestProductRepo_CreateProduct(t *testing.T) {
	repo, mock, cleanup := setupProductRepoTest(t)
	defer cleanup()

	productID := uuid.New()
	product := &models.Product{
		ID:            productID,
		Name:          "Dog Food",
		Price:         12.5,
		StockQuantity: 40,
		Available:     true,
		CategoryID:    uuid.New(),
	}
	images := []models.Image{
		{ID: uuid.New(), OwnerID: productID, URL: "/uploads/products/x/a.png", IsPrimary: true, UploadedAt: time.Now()},
	}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO products").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO product_images").
		WithArgs(images[0].ID, productID, images[0].URL, true, images[0].UploadedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.CreateProduct(context.Background(), product, images))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepo_DeleteProductImage_WithPromotion(t *testing.T) {
	repo, mock, cleanup := setupProductRepoTest(t)
	defer cleanup()

	productID, imageID, promoteID := uuid.New(), uuid.New(), uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM product_images").
		WithArgs(imageID, productID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE product_images SET is_primary").
		WithArgs(promoteID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.DeleteProductImage(context.Background(), productID, imageID, &promoteID))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepo_Categories(t *testing.T) {
	repo, mock, cleanup := setupProductRepoTest(t)
	defer cleanup()

	category := &models.Category{ID: uuid.New(), Name: "Toys"}

	mock.ExpectExec("INSERT INTO categories").
		WithArgs(category.ID, "Toys").
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.CreateCategory(context.Background(), category))

	mock.ExpectExec("UPDATE categories").
		WithArgs("Pet Toys", category.ID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.UpdateCategory(context.Background(), &models.Category{ID: category.ID, Name: "Pet Toys"}))

	mock.ExpectExec("DELETE FROM categories").
		WithArgs(category.ID).
		WillReturnResult(sqlmock.NewResult(0, 0))
	assert.ErrorIs(t, repo.DeleteCategory(context.Background(), category.ID), apperr.ErrNotFound)
}
