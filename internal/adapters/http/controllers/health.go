package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const healthCheckTimeout = 2 * time.Second

type HealthResponse struct {
	Status   string            `json:"status" example:"ok"`
	Services map[string]string `json:"services" example:"postgres:ok,redis:ok"`
}

type HealthChecker struct {
	Name  string
	Check func(ctx context.Context) error
}

type HealthController struct {
	checkers []HealthChecker
}

func NewHealthController(checkers []HealthChecker) *HealthController {
	return &HealthController{checkers: checkers}
}

// Health godoc
// @Summary     Health check
// @Description Reports the state of the database and the rate-limit store
// @Tags        health
// @Produce     json
// @Success     200 {object} HealthResponse
// @Failure     503 {object} HealthResponse
// @Router      /health [get]
func (h *HealthController) Health(c *gin.Context) {
	status := "ok"
	services := make(map[string]string, len(h.checkers))

	for _, checker := range h.checkers {
		ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
		err := checker.Check(ctx)
		cancel()

		if err != nil {
			services[checker.Name] = err.Error()
			status = "degraded"
		} else {
			services[checker.Name] = "ok"
		}
	}

	code := http.StatusOK
	if status != "ok" {
		code = http.StatusServiceUnavailable
	}

	c.JSON(code, HealthResponse{
		Status:   status,
		Services: services,
	})
}
