package controllerImp

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

type HealthCtrl struct{ started time.Time }

func New() *HealthCtrl {
	return &HealthCtrl{started: time.Now()}
}

func (h *HealthCtrl) Check(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status": "ok",
		"uptime": time.Since(h.started).Round(time.Second).String(),
	})
}
