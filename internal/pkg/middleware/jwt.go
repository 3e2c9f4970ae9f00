package middleware

import (
	"strings"

	"github.com/golang-jwt/jwt/v4"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"github.com/cutiepets/admin/internal/pkg/models"
)

// JWTMiddleware returns the configured JWT middleware for protected routes.
// On success the user_id, email and role claims are placed on the context.
func JWTMiddleware(cfg models.JWTConfig) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(cfg.Secret),
		SuccessHandler: func(c echo.Context) {
			authHeader := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				return
			}

			token, err := jwt.Parse(authHeader[7:], func(token *jwt.Token) (interface{}, error) {
				return []byte(cfg.Secret), nil
			})
			if err != nil || !token.Valid {
				return
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				return
			}
			if userID, exists := claims["user_id"]; exists {
				c.Set("user_id", userID)
			}
			if email, exists := claims["email"]; exists {
				c.Set("email", email)
			}
			if role, exists := claims["role"]; exists {
				c.Set("role", role)
			}
		},
	})
}
