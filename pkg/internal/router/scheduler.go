package router

import (
	"github.com/gin-gonic/gin"

	"github.com/Himan2899/SmartFileOrganizer/pkg/internal/handle"
)

// RegisterSchedulerRoutes registers the maintenance-job management routes.
func RegisterSchedulerRoutes(g *gin.RouterGroup) {
	schedRoutes := g.Group("/scheduler")
	{
		schedRoutes.GET("/jobs", handle.SchedulerJobs)
		schedRoutes.POST("/jobs/:name/run", handle.SchedulerRunJob)
		schedRoutes.POST("/jobs/stop", handle.SchedulerStopJobs)
		schedRoutes.DELETE("/jobs/:id", handle.SchedulerRemoveJob)
		schedRoutes.GET("/queue/waiting", handle.SchedulerQueueWaiting)
	}
}
