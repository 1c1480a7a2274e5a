package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"hypehouse-backend/pkg/metrics"
)

// Metrics ghi số request và latency theo route pattern
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		m.ObserveRequest(
			c.Request.Method,
			c.FullPath(),
			strconv.Itoa(c.Writer.Status()),
			time.Since(start),
		)
	}
}
