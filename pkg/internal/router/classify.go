package router

import (
	"github.com/gin-gonic/gin"

	"github.com/Himan2899/SmartFileOrganizer/pkg/configs"
	"github.com/Himan2899/SmartFileOrganizer/pkg/internal/handle"
	"github.com/Himan2899/SmartFileOrganizer/pkg/middleware"
)

// RegisterClassifyRoutes registers the AI classification routes. The group
// shares the classifier's breaker thresholds so a dead model service fails
// fast at the HTTP edge too.
func RegisterClassifyRoutes(g *gin.RouterGroup) {
	classifyRoutes := g.Group("/classify",
		middleware.CircuitBreakerMiddleware(configs.GetConfig().Classifier.CircuitBreaker))
	{
		// Classify a single uploaded file.
		classifyRoutes.POST("", handle.ClassifyFile)
		// Check connectivity to the classification backend.
		classifyRoutes.GET("/test", handle.TestClassifier)
	}
}
