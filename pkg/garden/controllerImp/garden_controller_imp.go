package controllerImp

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"palmtrack/pkg/garden/controller"
	"palmtrack/pkg/garden/repository"
	"palmtrack/pkg/garden/service"
)

type GardenCtrl struct{ svc service.GardenService }

func New(svc service.GardenService) controller.GardenController { return &GardenCtrl{svc} }

func (h *GardenCtrl) Create(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	var in service.GardenInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	g, err := h.svc.Create(in, uid)
	if err != nil {
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, g)
}

func (h *GardenCtrl) List(c echo.Context) error {
	out, err := h.svc.List(c.QueryParam("status"), c.QueryParam("q"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *GardenCtrl) Get(c echo.Context) error {
	g, err := h.svc.Get(c.Param("id"))
	if err != nil {
		return jsonErr(c, err)
	}
	return c.JSON(http.StatusOK, g)
}

func (h *GardenCtrl) Update(c echo.Context) error {
	var in service.GardenInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	g, err := h.svc.Update(c.Param("id"), in)
	if err != nil {
		return jsonErr(c, err)
	}
	return c.JSON(http.StatusOK, g)
}

func (h *GardenCtrl) Delete(c echo.Context) error {
	if err := h.svc.Delete(c.Param("id")); err != nil {
		return jsonErr(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "deleted"})
}

func jsonErr(c echo.Context, err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
}
