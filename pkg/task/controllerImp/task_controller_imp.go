package controllerImp

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"palmtrack/entities"
	gardensvc "palmtrack/pkg/garden/service"
	"palmtrack/pkg/task/repository"
)

type TaskCtrl struct {
	repo     repository.TaskRepository
	resolver gardensvc.Resolver
}

func New(repo repository.TaskRepository, resolver gardensvc.Resolver) *TaskCtrl {
	return &TaskCtrl{repo: repo, resolver: resolver}
}

type taskReq struct {
	Title       string                `json:"title"`
	Description string                `json:"description"`
	Category    string                `json:"category"`
	Priority    entities.TaskPriority `json:"priority"`
	Status      entities.TaskStatus   `json:"status"`
	TargetDate  string                `json:"target_date"` // YYYY-MM-DD
	AssignedTo  string                `json:"assigned_to"`
}

func (h *TaskCtrl) Create(c echo.Context) error {
	gid, err := h.resolver.Resolve(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "garden not found"})
	}
	var req taskReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if req.Title == "" {
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": "title is required"})
	}
	if req.Priority == "" {
		req.Priority = entities.TaskPriorityNormal
	}
	if req.Status == "" {
		req.Status = entities.TaskStatusTodo
	}
	t := &entities.Task{
		GardenID:    gid,
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Priority:    req.Priority,
		Status:      req.Status,
		AssignedTo:  req.AssignedTo,
	}
	if req.TargetDate != "" {
		if d, err := time.Parse("2006-01-02", req.TargetDate); err == nil {
			t.TargetDate = d
		}
	}
	if err := h.repo.Create(t); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, t)
}

func (h *TaskCtrl) List(c echo.Context) error {
	gid, err := h.resolver.Resolve(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "garden not found"})
	}
	out, err := h.repo.ListByGarden(gid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

// Patch is the quick-action status toggle on the task list.
func (h *TaskCtrl) Patch(c echo.Context) error {
	var body struct {
		Status entities.TaskStatus `json:"status"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	switch body.Status {
	case entities.TaskStatusTodo, entities.TaskStatusInProgress, entities.TaskStatusDone:
	default:
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": "invalid status"})
	}
	t, err := h.repo.FindByID(c.Param("task_id"))
	if err != nil {
		return h.mapErr(c, err)
	}
	t.Status = body.Status
	if err := h.repo.Update(t); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, t)
}

func (h *TaskCtrl) Update(c echo.Context) error {
	t, err := h.repo.FindByID(c.Param("task_id"))
	if err != nil {
		return h.mapErr(c, err)
	}
	var req taskReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if req.Title != "" {
		t.Title = req.Title
	}
	if req.Description != "" {
		t.Description = req.Description
	}
	if req.Category != "" {
		t.Category = req.Category
	}
	if req.Priority != "" {
		t.Priority = req.Priority
	}
	if req.Status != "" {
		t.Status = req.Status
	}
	if req.AssignedTo != "" {
		t.AssignedTo = req.AssignedTo
	}
	if req.TargetDate != "" {
		if d, err := time.Parse("2006-01-02", req.TargetDate); err == nil {
			t.TargetDate = d
		}
	}
	if err := h.repo.Update(t); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, t)
}

func (h *TaskCtrl) Delete(c echo.Context) error {
	if err := h.repo.Delete(c.Param("task_id")); err != nil {
		return h.mapErr(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *TaskCtrl) mapErr(c echo.Context, err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
}
