package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/cutiepets/admin/services/auth/handler/http"
)

// Handler coordinates the auth service HTTP handlers
type Handler struct {
	authHandler *http.AuthHandler
}

// NewHandler creates and initializes the auth handler group
func NewHandler(authHandler *http.AuthHandler) *Handler {
	return &Handler{authHandler: authHandler}
}

// RegisterRoutes registers the public authentication routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	authGroup := e.Group("/auth")
	authGroup.POST("/login", h.authHandler.Login)
	authGroup.POST("/otp/send", h.authHandler.SendOtp)
	authGroup.POST("/otp/verify", h.authHandler.VerifyOtp)
	authGroup.POST("/password/reset", h.authHandler.ResetPassword)
}
