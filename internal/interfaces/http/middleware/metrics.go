package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"washloop.backend/pkg/metrics"
)

// MetricsMiddleware records request counts and latencies. The route
// template is used as the path label so path parameters don't explode
// cardinality.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		metrics.HTTPRequests.WithLabelValues(c.Request.Method, path, strconv.Itoa(c.Writer.Status())).Inc()
		metrics.HTTPDuration.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}
