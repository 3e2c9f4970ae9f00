package auth

import (
	"context"
	"time"

	"github.com/cutiepets/admin/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/cutiepets/admin/services/auth AccountRepo,ChallengeRepo

// AccountRepo defines the account repository interface
type AccountRepo interface {
	GetByEmail(ctx context.Context, email string) (*models.Account, error)
	UpdatePassword(ctx context.Context, email, passwordHash string) error
}

// ChallengeRepo defines the OTP challenge store interface
type ChallengeRepo interface {
	// PutChallenge stores the challenge, replacing any prior challenge for
	// the same email
	PutChallenge(ctx context.Context, challenge *models.OtpChallenge, ttl time.Duration) error
	// GetChallenge returns the pending challenge, or apperr.ErrNoChallenge
	GetChallenge(ctx context.Context, email string) (*models.OtpChallenge, error)
	// CompareAndDeleteChallenge removes the challenge only if the stored
	// value still matches the given one, reporting whether it was removed
	CompareAndDeleteChallenge(ctx context.Context, challenge *models.OtpChallenge) (bool, error)
	// DeleteChallenge removes the challenge unconditionally
	DeleteChallenge(ctx context.Context, email string) error

	// PutResetGrant records a successful verification for the email
	PutResetGrant(ctx context.Context, email string, ttl time.Duration) error
	// ConsumeResetGrant removes the grant, or apperr.ErrNoResetGrant
	ConsumeResetGrant(ctx context.Context, email string) error
}
