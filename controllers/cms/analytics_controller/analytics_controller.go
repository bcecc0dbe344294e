package analytics_controller

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/Modeva-Ecommerce/modeva-analytics-backend/models"
	"github.com/Modeva-Ecommerce/modeva-analytics-backend/services"
	"github.com/Modeva-Ecommerce/modeva-analytics-backend/services/analytics"
)

// AuthContext exposes the caller resolved for the current request
type AuthContext interface {
	CurrentPrincipal(c *gin.Context) (*models.Principal, bool)
}

type AnalyticsProvider interface {
	GetAnalytics(ctx context.Context, rangeToken string) (*analytics.Report, error)
}

type AnalyticsController struct {
	auth      AuthContext
	analytics AnalyticsProvider
}

func NewAnalyticsController(auth AuthContext, provider AnalyticsProvider) *AnalyticsController {
	return &AnalyticsController{auth: auth, analytics: provider}
}

// requireAdmin reports whether the caller is an administrator
func (ac *AnalyticsController) requireAdmin(c *gin.Context) (*models.Principal, bool) {
	principal, _ := ac.auth.CurrentPrincipal(c)
	if err := services.RequireAdmin(principal); err != nil {
		log.Printf("[admin.analytics] rejected %s %s from %s: %v", c.Request.Method, c.FullPath(), c.ClientIP(), err)
		return nil, false
	}
	return principal, true
}
