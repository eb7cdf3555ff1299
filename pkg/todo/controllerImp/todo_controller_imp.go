package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"palmtrack/pkg/todo/service"
)

type TodoCtrl struct{ svc service.TodoService }

func New(svc service.TodoService) *TodoCtrl { return &TodoCtrl{svc} }

func (h *TodoCtrl) List(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.All())
}

func (h *TodoCtrl) Grouped(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.Grouped())
}

func (h *TodoCtrl) Count(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]int{"count": h.svc.Count()})
}
