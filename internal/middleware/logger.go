package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Logger returns a Gin middleware that logs each request using zap. Public
// site requests additionally carry the tenant subdomain and the id of the
// page that was served, so per-tenant traffic can be filtered in one query.
func Logger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("ip", c.ClientIP()),
		}
		if subdomain := c.Param("subdomain"); subdomain != "" {
			fields = append(fields, zap.String("subdomain", subdomain))
		}
		if pageID := c.Writer.Header().Get("X-Page-ID"); pageID != "" {
			fields = append(fields, zap.String("pageId", pageID))
		}

		log.Info("request", fields...)
	}
}
