package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Himan2899/SmartFileOrganizer/pkg/metrics"
)

// PrometheusMiddleware records request count and duration per route.
// Labels use the route template, not the raw path, so batch IDs do not
// explode label cardinality.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}

		metrics.RequestCounter.WithLabelValues(c.Request.Method, route).Inc()
		metrics.RequestDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}
