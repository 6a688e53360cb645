package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nextstarsoccer/nss-backend/pkg/metrics"
)

// MetricsMiddleware records a request counter and latency histogram per
// route. The route template is used as the endpoint label so path
// parameters do not explode the cardinality.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())
		durationMs := float64(time.Since(start)) / float64(time.Millisecond)

		metrics.RecordHTTPRequest(endpoint, c.Request.Method, status)
		metrics.RecordHTTPRequestDuration(endpoint, c.Request.Method, status, durationMs)
	}
}
