package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"github.com/cutiepets/admin/internal/pkg/apperr"
	"github.com/cutiepets/admin/internal/pkg/models"
	"github.com/cutiepets/admin/services/auth/mocks"
)

func testConfig() *models.Config {
	return &models.Config{
		JWT: models.JWTConfig{
			Secret:     "test-secret",
			Expiration: 180,
			Issuer:     "cutiepets-admin",
		},
		OTP: models.OTPConfig{
			CodeTTL:       5,
			ResetGrantTTL: 10,
		},
	}
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(hash)
}

func TestAuthUC_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAccounts := mocks.NewMockAccountRepo(ctrl)
	mockChallenges := mocks.NewMockChallengeRepo(ctrl)
	mockMail := mocks.NewMockMailGW(ctrl)

	uc := NewAuthUC(mockAccounts, mockChallenges, mockMail, testConfig())

	account := &models.Account{
		ID:           uuid.New(),
		Email:        "admin@cutiepets.com",
		Name:         "Admin",
		PasswordHash: hashPassword(t, "secret123"),
		Role:         "admin",
		CreatedAt:    time.Now(),
	}

	mockAccounts.EXPECT().
		GetByEmail(gomock.Any(), "admin@cutiepets.com").
		Return(account, nil)

	resp, err := uc.Login(context.Background(), &models.LoginRequest{
		Email:    " Admin@CutiePets.com ",
		Password: "secret123",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, account.ID.String(), resp.UserID)
	assert.Equal(t, "admin@cutiepets.com", resp.Email)
	assert.Equal(t, "admin", resp.Role)
	assert.Greater(t, resp.ExpiresAt, time.Now().Unix())
}

func TestAuthUC_Login_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAccounts := mocks.NewMockAccountRepo(ctrl)
	mockChallenges := mocks.NewMockChallengeRepo(ctrl)
	mockMail := mocks.NewMockMailGW(ctrl)

	uc := NewAuthUC(mockAccounts, mockChallenges, mockMail, testConfig())

	account := &models.Account{
		ID:           uuid.New(),
		Email:        "admin@cutiepets.com",
		PasswordHash: hashPassword(t, "secret123"),
		Role:         "admin",
	}

	mockAccounts.EXPECT().
		GetByEmail(gomock.Any(), "admin@cutiepets.com").
		Return(account, nil)

	resp, err := uc.Login(context.Background(), &models.LoginRequest{
		Email:    "admin@cutiepets.com",
		Password: "wrong-password",
	})

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, apperr.ErrInvalidCredentials)
}

func TestAuthUC_Login_UnknownAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAccounts := mocks.NewMockAccountRepo(ctrl)
	mockChallenges := mocks.NewMockChallengeRepo(ctrl)
	mockMail := mocks.NewMockMailGW(ctrl)

	uc := NewAuthUC(mockAccounts, mockChallenges, mockMail, testConfig())

	mockAccounts.EXPECT().
		GetByEmail(gomock.Any(), "ghost@cutiepets.com").
		Return(nil, apperr.ErrNotFound)

	resp, err := uc.Login(context.Background(), &models.LoginRequest{
		Email:    "ghost@cutiepets.com",
		Password: "whatever",
	})

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, apperr.ErrInvalidCredentials)
}

func TestAuthUC_Login_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAccounts := mocks.NewMockAccountRepo(ctrl)
	mockChallenges := mocks.NewMockChallengeRepo(ctrl)
	mockMail := mocks.NewMockMailGW(ctrl)

	uc := NewAuthUC(mockAccounts, mockChallenges, mockMail, testConfig())

	mockAccounts.EXPECT().
		GetByEmail(gomock.Any(), "admin@cutiepets.com").
		Return(nil, errors.New("connection refused"))

	resp, err := uc.Login(context.Background(), &models.LoginRequest{
		Email:    "admin@cutiepets.com",
		Password: "secret123",
	})

	assert.Nil(t, resp)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, apperr.ErrInvalidCredentials)
}

func TestAuthUC_ResetPassword_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAccounts := mocks.NewMockAccountRepo(ctrl)
	mockChallenges := mocks.NewMockChallengeRepo(ctrl)
	mockMail := mocks.NewMockMailGW(ctrl)

	uc := NewAuthUC(mockAccounts, mockChallenges, mockMail, testConfig())

	mockChallenges.EXPECT().
		ConsumeResetGrant(gomock.Any(), "admin@cutiepets.com").
		Return(nil)

	mockAccounts.EXPECT().
		UpdatePassword(gomock.Any(), "admin@cutiepets.com", gomock.Any()).
		DoAndReturn(func(ctx context.Context, email, hash string) error {
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("new-secret")))
			return nil
		})

	err := uc.ResetPassword(context.Background(), "Admin@CutiePets.com", "new-secret")
	assert.NoError(t, err)
}

func TestAuthUC_ResetPassword_NoGrant(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAccounts := mocks.NewMockAccountRepo(ctrl)
	mockChallenges := mocks.NewMockChallengeRepo(ctrl)
	mockMail := mocks.NewMockMailGW(ctrl)

	uc := NewAuthUC(mockAccounts, mockChallenges, mockMail, testConfig())

	mockChallenges.EXPECT().
		ConsumeResetGrant(gomock.Any(), "admin@cutiepets.com").
		Return(apperr.ErrNoResetGrant)

	err := uc.ResetPassword(context.Background(), "admin@cutiepets.com", "new-secret")
	assert.ErrorIs(t, err, apperr.ErrNoResetGrant)
}
