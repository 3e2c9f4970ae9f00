package apperr

import "errors"

var (
	// ErrNotFound is returned when a referenced entity, attachment or
	// account does not exist (or does not belong to the stated owner).
	ErrNotFound = errors.New("resource not found")

	// ErrInvalidCredentials is returned when login email/password do not match
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUnknownEmail is returned when an OTP is requested for an
	// unregistered address. Codes are never created for unknown emails.
	ErrUnknownEmail = errors.New("email not registered")

	// ErrNoChallenge is returned when verification finds no pending code
	ErrNoChallenge = errors.New("no code found for this email")

	// ErrChallengeExpired is returned when the code is past its TTL; the
	// stored challenge is deleted on detection.
	ErrChallengeExpired = errors.New("code expired")

	// ErrCodeMismatch is returned when the submitted code does not match;
	// the stored challenge is retained.
	ErrCodeMismatch = errors.New("invalid code")

	// ErrNoResetGrant is returned when a password reset is attempted
	// without a preceding successful verification.
	ErrNoResetGrant = errors.New("verification required before password reset")
)
