package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"collection-orders/internal/auth"
	"collection-orders/internal/dto"
)

// RequireAdmin gates a route group behind a valid bearer token. Missing,
// malformed, badly signed and expired tokens all get the same 401.
func RequireAdmin(tokens *auth.Manager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			tokenString, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || tokenString == "" {
				return c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Требуется авторизация"})
			}

			claims, err := tokens.Verify(tokenString)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Недействительный токен"})
			}

			c.Set("role", claims.Role)
			return next(c)
		}
	}
}
