package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

const (
	UIDCookie  = "PT_UID"
	DefaultUID = "dev"
)

// DevLogin resolves the current user id from a cookie (seeding a default one
// when absent) and stores it on the context as "uid". Handlers read it for
// created_by stamping; nothing is ever rejected.
func DevLogin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			uid := ""
			if ck, err := c.Cookie(UIDCookie); err == nil {
				uid = ck.Value
			}
			if uid == "" {
				if q := c.QueryParam("uid"); q != "" {
					uid = q
				} else {
					uid = DefaultUID
				}
				c.SetCookie(&http.Cookie{Name: UIDCookie, Value: uid, Path: "/"})
			}
			c.Set("uid", uid)
			return next(c)
		}
	}
}
