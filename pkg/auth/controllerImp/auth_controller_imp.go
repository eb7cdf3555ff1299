package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"palmtrack/pkg/auth/controller"
	mw "palmtrack/pkg/middleware"
)

type authCtrl struct{}

func NewAuthController() controller.AuthController { return &authCtrl{} }

// DevLogin sets the identity cookie for local development. There is no real
// login flow; every record's created_by is just whatever uid is active.
func (h *authCtrl) DevLogin(c echo.Context) error {
	uid := c.QueryParam("uid")
	if uid == "" {
		uid = mw.DefaultUID
	}
	c.SetCookie(&http.Cookie{Name: mw.UIDCookie, Value: uid, Path: "/"})
	return c.JSON(http.StatusOK, map[string]string{"uid": uid})
}

func (h *authCtrl) WhoAmI(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	return c.JSON(http.StatusOK, map[string]string{"uid": uid})
}
