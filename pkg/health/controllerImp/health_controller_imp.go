package controllerImp

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

var appStart = time.Now()

type HealthCtrl struct {
	db *gorm.DB
}

func NewHealthCtrl(db *gorm.DB) *HealthCtrl { return &HealthCtrl{db: db} }

// Health pings the database with a short deadline and reports uptime. A
// failed ping flips the whole endpoint to 503 so load balancers can act
// on it.
func (h *HealthCtrl) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 800*time.Millisecond)
	defer cancel()

	dbOK := true
	dbErr := ""
	sqlDB, err := h.db.DB()
	if err != nil {
		dbOK = false
		dbErr = err.Error()
	} else if err := sqlDB.PingContext(ctx); err != nil {
		dbOK = false
		dbErr = err.Error()
	}

	status := http.StatusOK
	if !dbOK {
		status = http.StatusServiceUnavailable
	}

	return c.JSON(status, map[string]any{
		"ok":         dbOK,
		"db_error":   dbErr,
		"uptime_sec": int(time.Since(appStart).Seconds()),
		"time":       time.Now().Format(time.RFC3339),
	})
}
