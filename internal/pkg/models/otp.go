package models

import (
	"time"
)

// OtpChallenge represents a one-time code bound to a normalized email address.
// At most one live challenge exists per email; issuing a new one overwrites
// any prior challenge.
type OtpChallenge struct {
	Email     string    `json:"email"`
	Code      string    `json:"code"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the challenge is past its expiry at the given instant
func (c *OtpChallenge) Expired(now time.Time) bool {
	return now.After(c.ExpiresAt)
}

// SendOtpRequest represents a request to issue a one-time code
type SendOtpRequest struct {
	Email string `json:"email" validate:"required"`
}

// VerifyOtpRequest represents a request to verify a one-time code
type VerifyOtpRequest struct {
	Email string `json:"email" validate:"required"`
	Code  string `json:"code" validate:"required"`
}

// ResetPasswordRequest represents a request to set a new password after a
// successful OTP verification
type ResetPasswordRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// EmailMessage represents an outbound email job handed to the mail transport
type EmailMessage struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}
