package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"peerplan/pkg/auth/service"
)

// JWT verifies the Bearer token on each request and puts the caller's user id
// into the echo context under "uid".
func JWT(auth service.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "no token provided"})
			}
			claims, err := auth.VerifyToken(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": err.Error()})
			}
			c.Set("uid", claims.UserID)
			return next(c)
		}
	}
}
