package middleware

import (
	"strconv"
	"time"

	"github.com/SscSPs/brew_notes_app/internal/metrics"
	"github.com/gin-gonic/gin"
)

// MetricsMiddleware records request counts and latency for every handled route.
func MetricsMiddleware(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.ObserveHTTPRequest(c.Request.Method, strconv.Itoa(c.Writer.Status()), route, time.Since(start).Seconds())
	}
}
