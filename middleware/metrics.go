package middleware

import (
	"time"

	"github.com/MatthewMangion/quantumblack-ai-platform/pkg/metrics"
	"github.com/gin-gonic/gin"
)

// Metrics records request duration and count per route. The route
// template is used as the path label so that client and document ids do
// not explode the label cardinality.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		metrics.RecordHTTPRequest(c.Request.Method, path, c.Writer.Status(), time.Since(start))
	}
}
