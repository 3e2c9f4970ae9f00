package auth

import (
	"context"

	"github.com/cutiepets/admin/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/cutiepets/admin/services/auth AuthUC

// AuthUC represents the auth usecase interface
type AuthUC interface {
	Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)

	// handle OTP
	SendChallenge(ctx context.Context, email string) error
	VerifyChallenge(ctx context.Context, email, code string) error

	// handle password reset
	ResetPassword(ctx context.Context, email, newPassword string) error
}
