package controllerImp

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"palmtrack/entities"
	gardensvc "palmtrack/pkg/garden/service"
	"palmtrack/pkg/issue/repository"
	"palmtrack/pkg/issue/service"
)

type IssueCtrl struct {
	svc      service.IssueService
	resolver gardensvc.Resolver
}

func New(svc service.IssueService, resolver gardensvc.Resolver) *IssueCtrl {
	return &IssueCtrl{svc: svc, resolver: resolver}
}

type issueReq struct {
	Title        string                 `json:"title"`
	Description  string                 `json:"description"`
	AffectedArea string                 `json:"affected_area"`
	Severity     entities.IssueSeverity `json:"severity"`
	PhotoURLs    []string               `json:"photo_urls"`
	ReportedAt   string                 `json:"reported_at"` // YYYY-MM-DD, defaults to today
}

func (h *IssueCtrl) Create(c echo.Context) error {
	gid, err := h.resolver.Resolve(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "garden not found"})
	}
	var req issueReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	i := &entities.Issue{
		GardenID:     gid,
		Title:        req.Title,
		Description:  req.Description,
		AffectedArea: req.AffectedArea,
		Severity:     req.Severity,
		PhotoURLs:    req.PhotoURLs,
	}
	if req.ReportedAt != "" {
		if d, err := time.Parse("2006-01-02", req.ReportedAt); err == nil {
			i.ReportedAt = d
		}
	}
	out, err := h.svc.Create(i)
	if err != nil {
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *IssueCtrl) List(c echo.Context) error {
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

func (h *IssueCtrl) Update(c echo.Context) error {
	var p service.IssuePatch
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	out, err := h.svc.Update(c.Param("issue_id"), p)
	if err != nil {
		return h.mapErr(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *IssueCtrl) SetStatus(c echo.Context) error {
	var body struct {
		Status entities.IssueStatus `json:"status"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	out, err := h.svc.SetStatus(c.Param("issue_id"), body.Status)
	if err != nil {
		return h.mapErr(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *IssueCtrl) Delete(c echo.Context) error {
	if err := h.svc.Delete(c.Param("issue_id")); err != nil {
		return h.mapErr(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *IssueCtrl) mapErr(c echo.Context, err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
}
