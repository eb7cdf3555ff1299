package controllerImp

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"palmtrack/entities"
	gardensvc "palmtrack/pkg/garden/service"
	"palmtrack/pkg/maintenance/repository"
	"palmtrack/pkg/maintenance/service"
)

type MaintenanceCtrl struct {
	svc      service.MaintenanceService
	resolver gardensvc.Resolver
}

func New(svc service.MaintenanceService, resolver gardensvc.Resolver) *MaintenanceCtrl {
	return &MaintenanceCtrl{svc: svc, resolver: resolver}
}

type maintReq struct {
	Type                  string `json:"type"`
	Title                 string `json:"title"`
	ScheduledAt           string `json:"scheduled_at"` // YYYY-MM-DD
	Detail                string `json:"detail"`
	AssignedTo            string `json:"assigned_to"`
	IsRecurring           bool   `json:"is_recurring"`
	RecurringIntervalDays *int   `json:"recurring_interval_days"`
}

func (h *MaintenanceCtrl) Create(c echo.Context) error {
	gid, err := h.resolver.Resolve(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "garden not found"})
	}
	var req maintReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	m := &entities.Maintenance{
		GardenID:              gid,
		Type:                  req.Type,
		Title:                 req.Title,
		Detail:                req.Detail,
		AssignedTo:            req.AssignedTo,
		IsRecurring:           req.IsRecurring,
		RecurringIntervalDays: req.RecurringIntervalDays,
	}
	if req.ScheduledAt != "" {
		if d, err := time.Parse("2006-01-02", req.ScheduledAt); err == nil {
			m.ScheduledAt = d
		}
	}
	out, err := h.svc.Create(m)
	if err != nil {
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *MaintenanceCtrl) List(c echo.Context) error {
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

func (h *MaintenanceCtrl) Update(c echo.Context) error {
	var p service.MaintenancePatch
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	out, err := h.svc.Update(c.Param("maintenance_id"), p)
	if err != nil {
		return h.mapErr(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *MaintenanceCtrl) MarkDone(c echo.Context) error {
	out, err := h.svc.MarkDone(c.Param("maintenance_id"))
	if err != nil {
		return h.mapErr(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *MaintenanceCtrl) Delete(c echo.Context) error {
	if err := h.svc.Delete(c.Param("maintenance_id")); err != nil {
		return h.mapErr(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *MaintenanceCtrl) mapErr(c echo.Context, err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
}
