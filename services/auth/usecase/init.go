package usecase

import (
	"github.com/cutiepets/admin/internal/pkg/models"
	"github.com/cutiepets/admin/services/auth"
)

type AuthUC struct {
	accountRepo   auth.AccountRepo
	challengeRepo auth.ChallengeRepo
	mailGW        auth.MailGW
	cfg           *models.Config
}

// NewAuthUC creates a new auth usecase instance
func NewAuthUC(
	accountRepo auth.AccountRepo,
	challengeRepo auth.ChallengeRepo,
	mailGW auth.MailGW,
	cfg *models.Config,
) *AuthUC {
	return &AuthUC{
		accountRepo:   accountRepo,
		challengeRepo: challengeRepo,
		mailGW:        mailGW,
		cfg:           cfg,
	}
}
