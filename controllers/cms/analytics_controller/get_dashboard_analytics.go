package analytics_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Modeva-Ecommerce/modeva-analytics-backend/models"
)

// GetDashboardAnalytics godoc
// @Summary Get dashboard analytics
// @Description Revenue, orders, signups, conversion and AOV for the range with trends against the preceding equal-length period, top sellers, recent orders and a daily series
// @Tags Admin - Analytics
// @Produce json
// @Security BearerAuth
// @Param timeRange query string false "7d, 30d, 90d or 1y (default 30d)"
// @Success 200 {object} models.ApiResponse{data=models.AnalyticsResult}
// @Failure 401 {object} models.ApiResponse
// @Failure 429 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /admin/analytics [get]
func (ac *AnalyticsController) GetDashboardAnalytics(c *gin.Context) {
	principal, ok := ac.requireAdmin(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	timeRange := c.Query("timeRange")
	log.Printf("[admin.analytics] start admin=%s range=%q", principal.Email, timeRange)

	report, err := ac.analytics.GetAnalytics(c.Request.Context(), timeRange)
	if err != nil {
		log.Printf("[admin.analytics] ERROR range=%q err=%v", timeRange, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch analytics"))
		return
	}

	log.Printf("[admin.analytics] done range=%s orders=%d revenue=%.2f",
		report.Window.Range, report.Result.TotalOrders, report.Result.TotalRevenue)
	c.JSON(http.StatusOK, models.SuccessResponse(c, report.Result))
}
