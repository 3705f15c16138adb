package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/manish-reddy7/Manish-Reddy-Portfolio/types"
)

// HealthChecker reports component health.
type HealthChecker interface {
	CheckHealth(ctx context.Context) types.HealthCheck
}

type HealthHandler struct {
	healthService HealthChecker
}

func NewHealthHandler(healthService HealthChecker) *HealthHandler {
	return &HealthHandler{
		healthService: healthService,
	}
}

// LivenessCheck godoc
// @Summary  Liveness probe
// @Tags     health
// @Success  200
// @Router   /health/liveness [get]
func (h *HealthHandler) LivenessCheck(c *gin.Context) {
	c.Status(http.StatusOK)
}

// ReadinessCheck godoc
// @Summary  Readiness probe
// @Description  A degraded store still reports ready: submissions are relayed without it.
// @Tags     health
// @Produce  json
// @Success  200  {object}  types.HealthCheck
// @Failure  503  {object}  types.HealthCheck
// @Router   /health/readiness [get]
func (h *HealthHandler) ReadinessCheck(c *gin.Context) {
	health := h.healthService.CheckHealth(c.Request.Context())

	if health.Status == types.HealthStatusDown {
		c.JSON(http.StatusServiceUnavailable, health)
		return
	}

	c.JSON(http.StatusOK, health)
}

// DetailedHealth godoc
// @Summary  Component health
// @Tags     health
// @Produce  json
// @Success  200  {object}  types.HealthCheck
// @Router   /health [get]
func (h *HealthHandler) DetailedHealth(c *gin.Context) {
	health := h.healthService.CheckHealth(c.Request.Context())
	c.JSON(http.StatusOK, health)
}
