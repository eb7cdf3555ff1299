package controllerImp

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"palmtrack/entities"
	"palmtrack/pkg/expense/repository"
	gardensvc "palmtrack/pkg/garden/service"
	"palmtrack/pkg/stats"
)

type ExpenseCtrl struct {
	repo     repository.ExpenseRepository
	resolver gardensvc.Resolver
}

func New(repo repository.ExpenseRepository, resolver gardensvc.Resolver) *ExpenseCtrl {
	return &ExpenseCtrl{repo: repo, resolver: resolver}
}

type expenseReq struct {
	Date        string  `json:"date"` // YYYY-MM-DD
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Note        string  `json:"note"`
}

func (h *ExpenseCtrl) Create(c echo.Context) error {
	gid, err := h.resolver.Resolve(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "garden not found"})
	}
	var req expenseReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if req.Amount <= 0 {
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": "amount must be positive"})
	}
	e := &entities.Expense{
		GardenID:    gid,
		Category:    req.Category,
		Description: req.Description,
		Amount:      req.Amount,
		Note:        req.Note,
		Date:        time.Now(),
	}
	if req.Date != "" {
		if d, err := time.Parse("2006-01-02", req.Date); err == nil {
			e.Date = d
		}
	}
	if err := h.repo.Create(e); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, e)
}

func (h *ExpenseCtrl) List(c echo.Context) error {
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

// Monthly returns per-month expense totals for the trailing N months
// (default 6), zero-filled so charts keep a continuous axis.
func (h *ExpenseCtrl) Monthly(c echo.Context) error {
	gid, err := h.resolver.Resolve(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "garden not found"})
	}
	months := 6
	if v := c.QueryParam("months"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 36 {
			months = n
		}
	}
	es, err := h.repo.ListByGarden(gid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	now := time.Now()
	out := stats.MonthlyExpenses(es, now.AddDate(0, -(months-1), 0), now)
	return c.JSON(http.StatusOK, out)
}

func (h *ExpenseCtrl) Update(c echo.Context) error {
	e, err := h.repo.FindByID(c.Param("expense_id"))
	if err != nil {
		return h.mapErr(c, err)
	}
	var req expenseReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if req.Category != "" {
		e.Category = req.Category
	}
	if req.Description != "" {
		e.Description = req.Description
	}
	if req.Amount > 0 {
		e.Amount = req.Amount
	}
	if req.Note != "" {
		e.Note = req.Note
	}
	if req.Date != "" {
		if d, err := time.Parse("2006-01-02", req.Date); err == nil {
			e.Date = d
		}
	}
	if err := h.repo.Update(e); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, e)
}

func (h *ExpenseCtrl) Delete(c echo.Context) error {
	if err := h.repo.Delete(c.Param("expense_id")); err != nil {
		return h.mapErr(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *ExpenseCtrl) mapErr(c echo.Context, err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
}
