package router

import (
	"github.com/gin-gonic/gin"

	"github.com/Himan2899/SmartFileOrganizer/pkg/internal/handle"
)

// RegisterStatsRoutes registers the statistics routes.
func RegisterStatsRoutes(g *gin.RouterGroup) {
	// Recompute aggregate stats over a posted file set.
	g.POST("/stats", handle.ComputeStats)
}
