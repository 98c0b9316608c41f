package middleware

import (
	"strconv"
	"time"

	"venuebook/internal/metrics"

	"github.com/gin-gonic/gin"
)

// MetricsMiddleware records request counts and latency. The route template
// (":id" form) is used as the label so cardinality stays bounded.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}

		metrics.IncHTTPRequest(c.Request.Method, route, strconv.Itoa(c.Writer.Status()))
		metrics.ObserveHTTPDuration(c.Request.Method, route, time.Since(start).Seconds())
	}
}
