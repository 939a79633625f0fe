package router

import (
	"github.com/gin-gonic/gin"

	"github.com/Himan2899/SmartFileOrganizer/pkg/internal/handle"
)

// RegisterHealthCheckRoute registers the per-backend health checks.
func RegisterHealthCheckRoute(g *gin.RouterGroup) {
	healthRoutes := g.Group("/health")
	{
		healthRoutes.GET("/db", handle.HealthDB)
		healthRoutes.GET("/s3", handle.HealthS3)
		healthRoutes.GET("/mq", handle.HealthMQ)
	}
}
