package analytics_controller

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Modeva-Ecommerce/modeva-analytics-backend/models"
	"github.com/Modeva-Ecommerce/modeva-analytics-backend/services/analytics"
)

// DownloadAnalyticsReport godoc
// @Summary Download analytics report PDF
// @Description Renders the dashboard analytics for the range as a PDF document
// @Tags Admin - Analytics
// @Produce octet-stream
// @Security BearerAuth
// @Param timeRange query string false "7d, 30d, 90d or 1y (default 30d)"
// @Success 200 "PDF file"
// @Failure 401 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /admin/analytics/report.pdf [get]
func (ac *AnalyticsController) DownloadAnalyticsReport(c *gin.Context) {
	principal, ok := ac.requireAdmin(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	timeRange := c.Query("timeRange")
	log.Printf("[admin.analytics-report] start admin=%s range=%q", principal.Email, timeRange)

	report, err := ac.analytics.GetAnalytics(c.Request.Context(), timeRange)
	if err != nil {
		log.Printf("[admin.analytics-report] ERROR range=%q err=%v", timeRange, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to generate report"))
		return
	}

	pdfBuffer, err := analytics.RenderReportPDF(report)
	if err != nil {
		log.Printf("[admin.analytics-report] ERROR render err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to generate report"))
		return
	}

	filename := analytics.ReportFilename(report)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Header("Cache-Control", "no-cache, no-store, must-revalidate")
	c.Data(http.StatusOK, "application/pdf", pdfBuffer.Bytes())

	log.Printf("[admin.analytics-report] sent %s (%d bytes)", filename, pdfBuffer.Len())
}
