package router

import (
	"github.com/labstack/echo/v4"

	"palmtrack/pkg/middleware"
)

type crud interface {
	Create(echo.Context) error
	List(echo.Context) error
	Update(echo.Context) error
	Delete(echo.Context) error
}

// Controllers collects everything the route table needs. The route shapes
// follow one rule: collection endpoints live under /gardens/:id (slug or
// canonical id, the controller resolves), item endpoints live at the top
// level under the item's own id.
type Controllers struct {
	Garden interface {
		crud
		Get(echo.Context) error
	}
	Task interface {
		crud
		Patch(echo.Context) error
	}
	Harvest interface {
		crud
		Stats(echo.Context) error
	}
	Issue interface {
		crud
		SetStatus(echo.Context) error
	}
	Maintenance interface {
		crud
		MarkDone(echo.Context) error
	}
	Doc interface {
		crud
		IngestURL(echo.Context) error
	}
	Expense interface {
		crud
		Monthly(echo.Context) error
	}
	Todo interface {
		List(echo.Context) error
		Grouped(echo.Context) error
		Count(echo.Context) error
	}
	Dashboard interface {
		Summary(echo.Context) error
		Production(echo.Context) error
	}
	Report interface{ Export(echo.Context) error }
	Auth interface {
		DevLogin(echo.Context) error
		WhoAmI(echo.Context) error
	}
	Health interface{ Health(echo.Context) error }
}

func New(e *echo.Echo, c Controllers, strictAuth bool) *echo.Echo {
	identity := middleware.DevLogin()
	if strictAuth {
		identity = middleware.RequireUser(true)
	}

	// health and devlogin stay reachable without an identity
	e.GET("/health", c.Health.Health)
	e.GET("/devlogin", c.Auth.DevLogin)

	api := e.Group("", identity)
	api.GET("/whoami", c.Auth.WhoAmI)

	api.GET("/gardens", c.Garden.List)
	api.POST("/gardens", c.Garden.Create)
	api.GET("/gardens/:id", c.Garden.Get)
	api.PUT("/gardens/:id", c.Garden.Update)
	api.DELETE("/gardens/:id", c.Garden.Delete)

	g := api.Group("/gardens/:id")
	g.GET("/tasks", c.Task.List)
	g.POST("/tasks", c.Task.Create)
	g.GET("/harvests", c.Harvest.List)
	g.POST("/harvests", c.Harvest.Create)
	g.GET("/harvests/stats", c.Harvest.Stats)
	g.GET("/issues", c.Issue.List)
	g.POST("/issues", c.Issue.Create)
	g.GET("/maintenances", c.Maintenance.List)
	g.POST("/maintenances", c.Maintenance.Create)
	g.GET("/docs", c.Doc.List)
	g.POST("/docs", c.Doc.Create)
	g.POST("/docs/url", c.Doc.IngestURL)
	g.GET("/expenses", c.Expense.List)
	g.POST("/expenses", c.Expense.Create)
	g.GET("/expenses/monthly", c.Expense.Monthly)
	g.GET("/report", c.Report.Export)

	api.PUT("/tasks/:task_id", c.Task.Update)
	api.PATCH("/tasks/:task_id", c.Task.Patch)
	api.DELETE("/tasks/:task_id", c.Task.Delete)
	api.PUT("/harvests/:harvest_id", c.Harvest.Update)
	api.DELETE("/harvests/:harvest_id", c.Harvest.Delete)
	api.PUT("/issues/:issue_id", c.Issue.Update)
	api.PATCH("/issues/:issue_id/status", c.Issue.SetStatus)
	api.DELETE("/issues/:issue_id", c.Issue.Delete)
	api.PUT("/maintenances/:maintenance_id", c.Maintenance.Update)
	api.PATCH("/maintenances/:maintenance_id/done", c.Maintenance.MarkDone)
	api.DELETE("/maintenances/:maintenance_id", c.Maintenance.Delete)
	api.PUT("/docs/:doc_id", c.Doc.Update)
	api.DELETE("/docs/:doc_id", c.Doc.Delete)
	api.PUT("/expenses/:expense_id", c.Expense.Update)
	api.DELETE("/expenses/:expense_id", c.Expense.Delete)

	api.GET("/todos", c.Todo.List)
	api.GET("/todos/grouped", c.Todo.Grouped)
	api.GET("/todos/count", c.Todo.Count)

	api.GET("/dashboard/summary", c.Dashboard.Summary)
	api.GET("/dashboard/production", c.Dashboard.Production)
	return e
}
