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
)

func setupAccountRepoTest(t *testing.T) (*AccountRepo, sqlmock.Sqlmock, func()) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")
	repo := NewAccountRepo(sqlxDB)

	cleanup := func() {
		sqlxDB.Close()
	}

	return repo, mock, cleanup
}

func TestAccountRepo_GetByEmail(t *testing.T) {
	repo, mock, cleanup := setupAccountRepoTest(t)
	defer cleanup()

	accountID := uuid.New()
	now := time.Now()

	rows := sqlmock.NewRows([]string{"id", "email", "name", "password_hash", "role", "created_at", "updated_at"}).
		AddRow(accountID, "admin@cutiepets.com", "Admin", "$2a$10$hash", "admin", now, now)

	mock.ExpectQuery("SELECT id, email, name, password_hash, role, created_at, updated_at").
		WithArgs("admin@cutiepets.com").
		WillReturnRows(rows)

	account, err := repo.GetByEmail(context.Background(), "admin@cutiepets.com")
	require.NoError(t, err)
	assert.Equal(t, accountID, account.ID)
	assert.Equal(t, "admin@cutiepets.com", account.Email)
	assert.Equal(t, "$2a$10$hash", account.PasswordHash)
	assert.Equal(t, "admin", account.Role)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepo_GetByEmail_NotFound(t *testing.T) {
	repo, mock, cleanup := setupAccountRepoTest(t)
	defer cleanup()

	mock.ExpectQuery("SELECT id, email, name, password_hash, role, created_at, updated_at").
		WithArgs("ghost@cutiepets.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "name", "password_hash", "role", "created_at", "updated_at"}))

	account, err := repo.GetByEmail(context.Background(), "ghost@cutiepets.com")
	assert.Nil(t, account)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepo_UpdatePassword(t *testing.T) {
	repo, mock, cleanup := setupAccountRepoTest(t)
	defer cleanup()

	mock.ExpectExec("UPDATE accounts").
		WithArgs("$2a$10$newhash", sqlmock.AnyArg(), "admin@cutiepets.com").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdatePassword(context.Background(), "admin@cutiepets.com", "$2a$10$newhash")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepo_UpdatePassword_UnknownAccount(t *testing.T) {
	repo, mock, cleanup := setupAccountRepoTest(t)
	defer cleanup()

	mock.ExpectExec("UPDATE accounts").
		WithArgs("$2a$10$newhash", sqlmock.AnyArg(), "ghost@cutiepets.com").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdatePassword(context.Background(), "ghost@cutiepets.com", "$2a$10$newhash")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
