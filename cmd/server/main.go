package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"palmtrack/config"
	"palmtrack/database"
	"palmtrack/router"

	authCtrlImp "palmtrack/pkg/auth/controllerImp"
	dashCtrlImp "palmtrack/pkg/dashboard/controllerImp"
	docCtrlImp "palmtrack/pkg/documentation/controllerImp"
	docRepoImp "palmtrack/pkg/documentation/repositoryImp"
	expCtrlImp "palmtrack/pkg/expense/controllerImp"
	expRepoImp "palmtrack/pkg/expense/repositoryImp"
	gardenCtrlImp "palmtrack/pkg/garden/controllerImp"
	gardenRepoImp "palmtrack/pkg/garden/repositoryImp"
	gardenSvcImp "palmtrack/pkg/garden/serviceImp"
	harvCtrlImp "palmtrack/pkg/harvest/controllerImp"
	harvRepoImp "palmtrack/pkg/harvest/repositoryImp"
	harvSvcImp "palmtrack/pkg/harvest/serviceImp"
	healthCtrlImp "palmtrack/pkg/health/controllerImp"
	issueCtrlImp "palmtrack/pkg/issue/controllerImp"
	issueRepoImp "palmtrack/pkg/issue/repositoryImp"
	issueSvcImp "palmtrack/pkg/issue/serviceImp"
	maintCtrlImp "palmtrack/pkg/maintenance/controllerImp"
	maintRepoImp "palmtrack/pkg/maintenance/repositoryImp"
	maintSvcImp "palmtrack/pkg/maintenance/serviceImp"
	reportCtrlImp "palmtrack/pkg/report/controllerImp"
	taskCtrlImp "palmtrack/pkg/task/controllerImp"
	taskRepoImp "palmtrack/pkg/task/repositoryImp"
	todoCtrlImp "palmtrack/pkg/todo/controllerImp"
	todoSvcImp "palmtrack/pkg/todo/serviceImp"
)

func main() {
	cfg := config.Load()

	if loc, err := time.LoadLocation(cfg.Timezone); err == nil {
		time.Local = loc
	} else {
		log.Printf("WARN: timezone %q not found, using system local", cfg.Timezone)
	}

	db := database.OpenSQLite(cfg.DBPath)

	gardenRepo := gardenRepoImp.New(db)
	taskRepo := taskRepoImp.New(db)
	harvRepo := harvRepoImp.New(db)
	issueRepo := issueRepoImp.New(db)
	maintRepo := maintRepoImp.New(db)
	docRepo := docRepoImp.New(db)
	expRepo := expRepoImp.New(db)

	gardenSvc := gardenSvcImp.NewGardenService(gardenRepo)
	harvSvc := harvSvcImp.NewHarvestService(harvRepo)
	issueSvc := issueSvcImp.NewIssueService(issueRepo)
	maintSvc := maintSvcImp.NewMaintenanceService(maintRepo)
	todoSvc := todoSvcImp.NewTodoService(gardenRepo, maintRepo, issueRepo)

	e := echo.New()
	e.Use(echoMiddleware.Recover())
	if cfg.EnableReqLog {
		e.Use(echoMiddleware.Logger())
	}

	r := router.New(e, router.Controllers{
		Garden:      gardenCtrlImp.New(gardenSvc),
		Task:        taskCtrlImp.New(taskRepo, gardenSvc),
		Harvest:     harvCtrlImp.New(harvSvc, gardenSvc),
		Issue:       issueCtrlImp.New(issueSvc, gardenSvc),
		Maintenance: maintCtrlImp.New(maintSvc, gardenSvc),
		Doc:         docCtrlImp.New(docRepo, gardenSvc, cfg.DocDomains, cfg.DocMaxBytes),
		Expense:     expCtrlImp.New(expRepo, gardenSvc),
		Todo:        todoCtrlImp.New(todoSvc),
		Dashboard:   dashCtrlImp.New(gardenRepo, harvRepo, issueRepo, todoSvc),
		Report:      reportCtrlImp.New(gardenSvc, harvRepo, expRepo),
		Auth:        authCtrlImp.NewAuthController(),
		Health:      healthCtrlImp.NewHealthCtrl(db),
	}, cfg.StrictAuth)

	log.Printf("listening on :%s", cfg.Port)
	if err := r.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
