package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"anonprint-backend/internal/metrics"
)

// Metrics counts requests by method, matched route and status.
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.HTTPRequestsTotal.WithLabelValues(
			c.Request.Method,
			route,
			strconv.Itoa(c.Writer.Status()),
		).Inc()
	}
}
