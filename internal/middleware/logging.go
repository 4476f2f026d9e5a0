package middleware

import (
	"time"

	"bookshelf-be/internal/logger"
	"bookshelf-be/internal/metrics"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RequestID honors an incoming X-Request-ID, generates one otherwise, and
// makes it available both on the response and in the request context.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		reqID := c.GetHeader("X-Request-ID")
		if reqID == "" {
			reqID = uuid.New().String()
		}

		ctx := logger.WithRequestID(c.Request.Context(), reqID)
		c.Request = c.Request.WithContext(ctx)
		c.Header("X-Request-ID", reqID)

		c.Next()
	}
}

// Logging writes one structured line per request.
func Logging(stats *metrics.Stats) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		stats.Requests.Inc()

		c.Next()

		log := logger.FromCtx(c.Request.Context())
		log.Info("incoming request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.String("ip", c.ClientIP()),
			zap.Duration("duration", time.Since(start)),
		)
	}
}
