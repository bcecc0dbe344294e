package system_controller

import (
	"context"
	"log"
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/Modeva-Ecommerce/modeva-analytics-backend/models"
)

// PingFunc checks one dependency
type PingFunc func(ctx context.Context) error

type HealthController struct {
	checks  map[string]PingFunc
	timeout time.Duration
}

func NewHealthController(checks map[string]PingFunc, timeout time.Duration) *HealthController {
	return &HealthController{checks: checks, timeout: timeout}
}

// HealthStatus is the per-dependency readiness report
type HealthStatus struct {
	Components map[string]string `json:"components"`
	Failing    []string          `json:"failing,omitempty"`
}

// Health godoc
// @Summary Health check
// @Description Pings MongoDB, the CMS database and Redis
// @Tags System
// @Produce json
// @Success 200 {object} models.ApiResponse{data=system_controller.HealthStatus}
// @Failure 503 {object} models.ApiResponse{data=system_controller.HealthStatus}
// @Router /health [get]
func (hc *HealthController) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), hc.timeout)
	defer cancel()

	names := make([]string, 0, len(hc.checks))
	for name := range hc.checks {
		names = append(names, name)
	}
	sort.Strings(names)

	errs := make([]error, len(names))
	var g errgroup.Group
	for i, name := range names {
		i, name := i, name
		g.Go(func() error {
			errs[i] = hc.checks[name](ctx)
			return nil
		})
	}
	_ = g.Wait()

	status := HealthStatus{Components: make(map[string]string, len(names))}
	for i, name := range names {
		if errs[i] != nil {
			log.Printf("[health] %s failing: %v", name, errs[i])
			status.Components[name] = "unavailable"
			status.Failing = append(status.Failing, name)
			continue
		}
		status.Components[name] = "ok"
	}

	if len(status.Failing) > 0 {
		c.JSON(http.StatusServiceUnavailable, models.ApiResponse{
			Success: false,
			Data:    status,
			Error:   "Service unavailable",
		})
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, status))
}
