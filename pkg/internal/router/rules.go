package router

import (
	"github.com/gin-gonic/gin"

	"github.com/Himan2899/SmartFileOrganizer/pkg/internal/handle"
)

// RegisterRulesRoutes registers the organization rule set routes.
func RegisterRulesRoutes(g *gin.RouterGroup) {
	rulesRoutes := g.Group("/rules")
	{
		rulesRoutes.GET("", handle.GetRules)
		rulesRoutes.PUT("", handle.PutRules)
		rulesRoutes.DELETE("", handle.ResetRules)
	}
}
