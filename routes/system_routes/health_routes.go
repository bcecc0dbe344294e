package system_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Modeva-Ecommerce/modeva-analytics-backend/controllers/system_controller"
)

func SetupHealthRoutes(router *gin.Engine, hc *system_controller.HealthController) {
	router.GET("/health", hc.Health)
}
