package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RequireUser enforces that an identity is present when strict mode is on.
// It checks the X-User-Id header first, then the identity cookie, and
// rejects with 401 when neither is set. With enabled=false it passes
// through (DevLogin covers development).
func RequireUser(enabled bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !enabled {
				return next(c)
			}
			uid := c.Request().Header.Get("X-User-Id")
			if uid == "" {
				if ck, err := c.Cookie(UIDCookie); err == nil {
					uid = ck.Value
				}
			}
			if uid == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing user id"})
			}
			c.Set("uid", uid)
			return next(c)
		}
	}
}
