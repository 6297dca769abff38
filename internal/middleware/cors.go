package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// CORSPreflight answers every OPTIONS request with 200 and an empty body;
// echo's CORS middleware would reply 204, which some of our browser
// clients mishandle. Non-OPTIONS requests pass through to the CORS
// middleware behind it.
func CORSPreflight() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().Method != http.MethodOptions {
				return next(c)
			}
			h := c.Response().Header()
			h.Set(echo.HeaderAccessControlAllowOrigin, "*")
			h.Set(echo.HeaderAccessControlAllowMethods, "GET, POST, OPTIONS")
			h.Set(echo.HeaderAccessControlAllowHeaders, "Content-Type, "+AuthHeader)
			h.Set(echo.HeaderAccessControlMaxAge, "86400")
			return c.NoContent(http.StatusOK)
		}
	}
}
