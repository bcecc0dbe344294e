package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Modeva-Ecommerce/modeva-analytics-backend/models"
	"github.com/Modeva-Ecommerce/modeva-analytics-backend/services"
)

// ActivityRecorder stores an activity entry. Record must not block on storage.
type ActivityRecorder interface {
	Record(req services.LogActivityRequest)
}

// ActivityLogger records the action for every request made by a resolved
// principal, after the handler has run.
func ActivityLogger(recorder ActivityRecorder, action, resourceType string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		principal, ok := PrincipalFromContext(c)
		if !ok {
			return
		}

		status := models.StatusSuccess
		code := c.Writer.Status()
		if code >= http.StatusBadRequest {
			status = models.StatusFailed
		}

		req := services.LogActivityRequest{
			Principal:    principal,
			Action:       action,
			ResourceType: resourceType,
			Details: map[string]any{
				"time_range":  c.Query("timeRange"),
				"status_code": code,
			},
			Status:    status,
			IPAddress: c.ClientIP(),
			UserAgent: c.Request.UserAgent(),
		}
		recorder.Record(req)
	}
}
