package controllerImp

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"palmtrack/entities"
	gardensvc "palmtrack/pkg/garden/service"
	"palmtrack/pkg/harvest/repository"
	"palmtrack/pkg/harvest/service"
)

type HarvestCtrl struct {
	svc      service.HarvestService
	resolver gardensvc.Resolver
}

func New(svc service.HarvestService, resolver gardensvc.Resolver) *HarvestCtrl {
	return &HarvestCtrl{svc: svc, resolver: resolver}
}

type harvestReq struct {
	Date       string                  `json:"date"` // YYYY-MM-DD
	QuantityKg float64                 `json:"quantity_kg"`
	PricePerKg float64                 `json:"price_per_kg"`
	Quality    entities.HarvestQuality `json:"quality"`
	Note       string                  `json:"note"`
}

func (h *HarvestCtrl) Create(c echo.Context) error {
	gid, err := h.resolver.Resolve(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "garden not found"})
	}
	var req harvestReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	d := time.Now()
	if req.Date != "" {
		if dd, err := time.Parse("2006-01-02", req.Date); err == nil {
			d = dd
		}
	}
	hv := &entities.Harvest{
		GardenID:   gid,
		Date:       d,
		QuantityKg: req.QuantityKg,
		PricePerKg: req.PricePerKg,
		Quality:    req.Quality,
		Note:       req.Note,
	}
	out, err := h.svc.Create(hv)
	if err != nil {
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *HarvestCtrl) List(c echo.Context) error {
	gid, err := h.resolver.Resolve(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "garden not found"})
	}
	out, err := h.svc.ListByGarden(gid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *HarvestCtrl) Stats(c echo.Context) error {
	gid, err := h.resolver.Resolve(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "garden not found"})
	}
	out, err := h.svc.StatsByGarden(gid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *HarvestCtrl) Update(c echo.Context) error {
	var p service.HarvestPatch
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	out, err := h.svc.Update(c.Param("harvest_id"), p)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
		}
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *HarvestCtrl) Delete(c echo.Context) error {
	if err := h.svc.Delete(c.Param("harvest_id")); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "deleted"})
}
