package middleware

import (
	"errors"
	"net/http"
	"strings"

	"rentmart/internal/common"
	"rentmart/internal/repositories"

	"github.com/labstack/echo/v4"
)

// AuthHeader carries the bearer session token.
const AuthHeader = "X-Authorization"

// SessionAuth resolves the X-Authorization bearer token to a user id via
// the sessions table and stores it in the request context. An absent token
// and an expired one yield distinct 401 messages.
func SessionAuth(sessions repositories.SessionRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := strings.TrimPrefix(c.Request().Header.Get(AuthHeader), "Bearer ")
			if token == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Authorization required")
			}

			userID, err := sessions.ResolveUserID(c.Request().Context(), token)
			if err != nil {
				if errors.Is(err, repositories.ErrSessionNotFound) {
					return echo.NewHTTPError(http.StatusUnauthorized, "Session expired")
				}
				return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
			}

			c.SetRequest(c.Request().WithContext(common.WithUserID(c.Request().Context(), userID)))
			return next(c)
		}
	}
}
