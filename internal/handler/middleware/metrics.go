package middleware

import (
	"strconv"
	"time"

	"clinic-booking/internal/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// Metrics observes request latency per route template, so /api/visits/:id
// stays one series regardless of the id.
func Metrics() gin.HandlerFunc {
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
