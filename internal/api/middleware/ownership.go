package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Ownership ensures the route's account path parameter matches the
// authenticated session's account. Profiles are strictly per-account; no
// caller may read or write someone else's record.
func Ownership(param string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			accountID, _ := c.Get("account_id").(string)
			if accountID == "" || c.Param(param) != accountID {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			return next(c)
		}
	}
}
