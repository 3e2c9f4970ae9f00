package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/cutiepets/admin/internal/pkg/apperr"
	"github.com/cutiepets/admin/internal/pkg/models"
)

// GetByEmail retrieves an account by its normalized email
func (r *AccountRepo) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	query := `
		SELECT id, email, name, password_hash, role, created_at, updated_at
		FROM accounts
		WHERE email = $1
	`

	var account models.Account
	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&account.ID,
		&account.Email,
		&account.Name,
		&account.PasswordHash,
		&account.Role,
		&account.CreatedAt,
		&account.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	return &account, nil
}

// UpdatePassword replaces the password hash for the account with the given email
func (r *AccountRepo) UpdatePassword(ctx context.Context, email, passwordHash string) error {
	query := `
		UPDATE accounts
		SET password_hash = $1, updated_at = $2
		WHERE email = $3
	`

	result, err := r.db.ExecContext(ctx, query, passwordHash, time.Now(), email)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if rows == 0 {
		return apperr.ErrNotFound
	}

	return nil
}
