package usecase

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/cutiepets/admin/internal/pkg/apperr"
	"github.com/cutiepets/admin/internal/pkg/logger"
	"github.com/cutiepets/admin/internal/pkg/models"
	"github.com/cutiepets/admin/internal/utils"
)

const (
	otpCodeMin  = 100000
	otpCodeSpan = 900000
)

// generateCode draws a uniformly random six digit code
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(otpCodeSpan))
	if err != nil {
		return "", fmt.Errorf("failed to draw random code: %w", err)
	}
	return fmt.Sprintf("%06d", otpCodeMin+n.Int64()), nil
}

// SendChallenge issues a fresh one-time code for a registered email and hands
// it to the mail gateway. Any pending challenge for the email is replaced.
func (u *AuthUC) SendChallenge(ctx context.Context, email string) error {
	email = utils.NormalizeEmail(email)

	if _, err := u.accountRepo.GetByEmail(ctx, email); err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return apperr.ErrUnknownEmail
		}
		return fmt.Errorf("failed to load account: %w", err)
	}

	code, err := generateCode()
	if err != nil {
		return err
	}

	now := time.Now()
	challenge := &models.OtpChallenge{
		Email:     email,
		Code:      code,
		CreatedAt: now,
		ExpiresAt: now.Add(time.Duration(u.cfg.OTP.CodeTTL) * time.Minute),
	}

	// Keep the record around past its own expiry so verification can tell
	// an expired code apart from one that never existed.
	storeTTL := 2 * time.Duration(u.cfg.OTP.CodeTTL) * time.Minute
	if err := u.challengeRepo.PutChallenge(ctx, challenge, storeTTL); err != nil {
		return fmt.Errorf("failed to store challenge: %w", err)
	}

	// Delivery failures are logged rather than surfaced: the challenge is
	// live and the client may retry sending.
	if err := u.mailGW.SendOtpEmail(ctx, email, code); err != nil {
		logger.Error("Failed to dispatch OTP email",
			logger.Err(err),
			logger.String("email", email))
	}

	logger.Info("OTP challenge issued", logger.String("email", email))
	return nil
}

// VerifyChallenge checks a submitted code against the pending challenge. On
// success the challenge is consumed and a password reset grant is recorded;
// a mismatched code leaves the challenge in place for another attempt.
func (u *AuthUC) VerifyChallenge(ctx context.Context, email, code string) error {
	email = utils.NormalizeEmail(email)

	challenge, err := u.challengeRepo.GetChallenge(ctx, email)
	if err != nil {
		return err
	}

	if challenge.Expired(time.Now()) {
		if err := u.challengeRepo.DeleteChallenge(ctx, email); err != nil {
			logger.Warn("Failed to drop expired challenge",
				logger.Err(err),
				logger.String("email", email))
		}
		return apperr.ErrChallengeExpired
	}

	if challenge.Code != code {
		return apperr.ErrCodeMismatch
	}

	removed, err := u.challengeRepo.CompareAndDeleteChallenge(ctx, challenge)
	if err != nil {
		return fmt.Errorf("failed to consume challenge: %w", err)
	}
	if !removed {
		// The challenge was replaced or consumed since we read it
		return apperr.ErrNoChallenge
	}

	grantTTL := time.Duration(u.cfg.OTP.ResetGrantTTL) * time.Minute
	if err := u.challengeRepo.PutResetGrant(ctx, email, grantTTL); err != nil {
		return fmt.Errorf("failed to record reset grant: %w", err)
	}

	logger.Info("OTP challenge verified", logger.String("email", email))
	return nil
}
