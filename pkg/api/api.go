// Package api wires the route groups onto the gin engine.
package api

import (
	"github.com/gin-gonic/gin"

	"github.com/Himan2899/SmartFileOrganizer/pkg/internal/router"
)

// RegisterGroup registers every route group under /api/v1.
func RegisterGroup(e *gin.Engine) *gin.Engine {
	v1 := e.Group("/api/v1")

	router.RegisterOrganizeRoutes(v1)
	router.RegisterClassifyRoutes(v1)
	router.RegisterRulesRoutes(v1)
	router.RegisterStatsRoutes(v1)
	router.RegisterHealthCheckRoute(v1)
	router.RegisterSchedulerRoutes(v1)

	return e
}
