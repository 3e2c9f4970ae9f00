package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	jwtpkg "github.com/cutiepets/admin/internal/pkg/jwt"
	"github.com/cutiepets/admin/internal/pkg/models"
)

func TestJWTMiddleware(t *testing.T) {
	cfg := models.JWTConfig{
		Secret:     "test-secret",
		Expiration: 60,
		Issuer:     "cutiepets-admin",
	}

	userID := uuid.New()
	token, _, err := jwtpkg.GenerateToken(userID, "admin@cutiepets.io", "admin", cfg)
	require.NoError(t, err)

	e := echo.New()
	e.GET("/protected", func(c echo.Context) error {
		assert.Equal(t, userID.String(), c.Get("user_id"))
		assert.Equal(t, "admin", c.Get("role"))
		return c.NoContent(http.StatusOK)
	}, JWTMiddleware(cfg))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestJWTMiddleware_MissingToken(t *testing.T) {
	cfg := models.JWTConfig{Secret: "test-secret"}

	e := echo.New()
	e.GET("/protected", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}, JWTMiddleware(cfg))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestJWTMiddleware_BadSignature(t *testing.T) {
	cfg := models.JWTConfig{Secret: "test-secret", Expiration: 60}

	token, _, err := jwtpkg.GenerateToken(uuid.New(), "admin@cutiepets.io", "admin", models.JWTConfig{
		Secret:     "other-secret",
		Expiration: 60,
	})
	require.NoError(t, err)

	e := echo.New()
	e.GET("/protected", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}, JWTMiddleware(cfg))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
