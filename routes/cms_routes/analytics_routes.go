package cms_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Modeva-Ecommerce/modeva-analytics-backend/controllers/cms/analytics_controller"
	"github.com/Modeva-Ecommerce/modeva-analytics-backend/middleware"
	"github.com/Modeva-Ecommerce/modeva-analytics-backend/models"
)

// SetupAnalyticsRoutes registers the dashboard endpoints on the admin group
func SetupAnalyticsRoutes(rg *gin.RouterGroup, ac *analytics_controller.AnalyticsController, recorder middleware.ActivityRecorder) {
	analytics := rg.Group("/analytics")

	analytics.GET("",
		middleware.ActivityLogger(recorder, models.ActionViewAnalytics, models.ResourceTypeAnalytics),
		ac.GetDashboardAnalytics,
	)
	analytics.GET("/report.pdf",
		middleware.ActivityLogger(recorder, models.ActionExportAnalyticsReport, models.ResourceTypeAnalytics),
		ac.DownloadAnalyticsReport,
	)
}
