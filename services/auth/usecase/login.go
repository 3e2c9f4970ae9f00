package usecase

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/cutiepets/admin/internal/pkg/apperr"
	jwtpkg "github.com/cutiepets/admin/internal/pkg/jwt"
	"github.com/cutiepets/admin/internal/pkg/logger"
	"github.com/cutiepets/admin/internal/pkg/models"
	"github.com/cutiepets/admin/internal/utils"
)

// Login authenticates an admin account by email and password
func (u *AuthUC) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	email := utils.NormalizeEmail(req.Email)

	account, err := u.accountRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil, apperr.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to load account: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperr.ErrInvalidCredentials
	}

	token, expiresAt, err := jwtpkg.GenerateToken(account.ID, account.Email, account.Role, u.cfg.JWT)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	logger.Info("Admin logged in",
		logger.String("user_id", account.ID.String()),
		logger.String("email", account.Email))

	return &models.AuthResponse{
		Token:     token,
		UserID:    account.ID.String(),
		Email:     account.Email,
		Role:      account.Role,
		ExpiresAt: expiresAt,
	}, nil
}

// ResetPassword sets a new password for an account that completed OTP
// verification. The reset grant is consumed so a second reset requires a
// fresh verification.
func (u *AuthUC) ResetPassword(ctx context.Context, email, newPassword string) error {
	email = utils.NormalizeEmail(email)

	if err := u.challengeRepo.ConsumeResetGrant(ctx, email); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := u.accountRepo.UpdatePassword(ctx, email, string(hash)); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	logger.Info("Password reset completed", logger.String("email", email))
	return nil
}
