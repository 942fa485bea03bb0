package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pageza/mealcraft/backend/internal/metrics"
)

// Metrics records request count, latency and in-flight requests. Paths are
// labelled by route template; unmatched routes share one label.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		done := metrics.TrackInFlight()
		defer done()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		metrics.ObserveHTTPRequest(c.Request.Method, path, c.Writer.Status(), time.Since(start))
	}
}
