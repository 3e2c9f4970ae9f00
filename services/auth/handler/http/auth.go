package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cutiepets/admin/internal/pkg/apperr"
	"github.com/cutiepets/admin/internal/pkg/logger"
	"github.com/cutiepets/admin/internal/pkg/models"
	"github.com/cutiepets/admin/internal/utils"
	"github.com/cutiepets/admin/services/auth"
)

// AuthHandler handles HTTP requests for authentication
type AuthHandler struct {
	authUC auth.AuthUC
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authUC auth.AuthUC) *AuthHandler {
	return &AuthHandler{authUC: authUC}
}

// Login handles admin login requests
func (h *AuthHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.Email == "" || req.Password == "" {
		return utils.BadRequestResponse(c, "Email and password are required")
	}

	resp, err := h.authUC.Login(c.Request().Context(), &req)
	if err != nil {
		if errors.Is(err, apperr.ErrInvalidCredentials) {
			return utils.UnauthorizedResponse(c, "Invalid email or password")
		}
		logger.Error("Login failed", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to login")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Login successful", resp)
}

// SendOtp handles requests to issue a one-time code
func (h *AuthHandler) SendOtp(c echo.Context) error {
	var req models.SendOtpRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if !utils.ValidEmail(req.Email) {
		return utils.BadRequestResponse(c, "Invalid email")
	}

	if err := h.authUC.SendChallenge(c.Request().Context(), req.Email); err != nil {
		if errors.Is(err, apperr.ErrUnknownEmail) {
			return utils.BadRequestResponse(c, "Email is not registered")
		}
		logger.Error("Failed to send OTP", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to send code")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Verification code sent", nil)
}

// VerifyOtp handles requests to verify a one-time code
func (h *AuthHandler) VerifyOtp(c echo.Context) error {
	var req models.VerifyOtpRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.Email == "" || req.Code == "" {
		return utils.BadRequestResponse(c, "Email and code are required")
	}

	err := h.authUC.VerifyChallenge(c.Request().Context(), req.Email, req.Code)
	if err != nil {
		switch {
		case errors.Is(err, apperr.ErrNoChallenge):
			return utils.BadRequestResponse(c, "No code found for this email")
		case errors.Is(err, apperr.ErrChallengeExpired):
			return utils.BadRequestResponse(c, "Code has expired")
		case errors.Is(err, apperr.ErrCodeMismatch):
			return utils.BadRequestResponse(c, "Invalid code")
		default:
			logger.Error("Failed to verify OTP", logger.Err(err))
			return utils.InternalServerErrorResponse(c, "Failed to verify code")
		}
	}

	return utils.SuccessResponse(c, http.StatusOK, "Code verified", nil)
}

// ResetPassword handles password reset requests following a verified code
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var req models.ResetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.Email == "" || req.Password == "" {
		return utils.BadRequestResponse(c, "Email and password are required")
	}

	if err := h.authUC.ResetPassword(c.Request().Context(), req.Email, req.Password); err != nil {
		switch {
		case errors.Is(err, apperr.ErrNoResetGrant):
			return utils.BadRequestResponse(c, "Verification required before password reset")
		case errors.Is(err, apperr.ErrNotFound):
			return utils.NotFoundResponse(c, "Account not found")
		default:
			logger.Error("Failed to reset password", logger.Err(err))
			return utils.InternalServerErrorResponse(c, "Failed to reset password")
		}
	}

	return utils.SuccessResponse(c, http.StatusOK, "Password updated", nil)
}
