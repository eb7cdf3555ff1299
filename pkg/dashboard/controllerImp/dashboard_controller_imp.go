package controllerImp

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	gardenRepo "palmtrack/pkg/garden/repository"
	harvestRepo "palmtrack/pkg/harvest/repository"
	issueRepo "palmtrack/pkg/issue/repository"
	"palmtrack/pkg/stats"
	todoSvc "palmtrack/pkg/todo/service"
)

// DashboardCtrl backs the landing page: summary cards and the production
// chart across all gardens.
type DashboardCtrl struct {
	gardens  gardenRepo.GardenRepository
	harvests harvestRepo.HarvestRepository
	issues   issueRepo.IssueRepository
	todos    todoSvc.TodoService
}

func New(g gardenRepo.GardenRepository, h harvestRepo.HarvestRepository, i issueRepo.IssueRepository, t todoSvc.TodoService) *DashboardCtrl {
	return &DashboardCtrl{gardens: g, harvests: h, issues: i, todos: t}
}

func (d *DashboardCtrl) Summary(c echo.Context) error {
	gs, err := d.gardens.List()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	var areaHa float64
	var trees int
	for _, g := range gs {
		areaHa += g.AreaHa
		trees += g.TreeCount
	}
	openIssues, err := d.issues.CountOpen()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{
		"total_gardens": len(gs),
		"total_area_ha": areaHa,
		"total_trees":   trees,
		"open_issues":   openIssues,
		"pending_todos": d.todos.Count(),
	})
}

func (d *DashboardCtrl) Production(c echo.Context) error {
	months := 6
	if v := c.QueryParam("months"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 36 {
			months = n
		}
	}
	hs, err := d.harvests.ListAll()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	now := time.Now()
	return c.JSON(http.StatusOK, stats.MonthlyProduction(hs, now.AddDate(0, -(months-1), 0), now))
}
