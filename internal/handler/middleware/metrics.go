package middleware

import (
	"strconv"
	"time"

	"tour-booking/internal/infra/metrics"

	"github.com/gin-gonic/gin"
)

// MetricsMiddleware records request latency by route template, so path ids
// do not explode label cardinality.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.HTTPRequestDuration.
			WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).
			Observe(time.Since(start).Seconds())
	}
}
