package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kruglovma/sklad/internal/core/logger"
)

// LogRequest emits one structured entry per request, leveled by status.
func LogRequest() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		statusCode := c.Writer.Status()
		level := logger.LogLevelInfo
		if statusCode >= 500 {
			level = logger.LogLevelError
		} else if statusCode >= 400 {
			level = logger.LogLevelWarn
		}

		logger.Log(c.Request.Context(), logger.LogEntry{
			Level:   level,
			Message: "HTTP Request",
			Attributes: map[string]any{
				"http.method":      c.Request.Method,
				"http.path":        c.Request.URL.Path,
				"http.route":       c.FullPath(),
				"http.status_code": statusCode,
				"http.duration_ms": time.Since(start).Milliseconds(),
			},
			Timestamp: time.Now(),
		})
	}
}
