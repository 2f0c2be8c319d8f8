package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
)

// requestLogger writes one debug line per request; 5xx responses are logged
// at warn.
func (h *Handler) requestLogger(c *gin.Context) {
	start := time.Now()
	c.Next()
	if h.log == nil {
		return
	}

	fields := []interface{}{
		"method", c.Request.Method,
		"path", c.FullPath(),
		"status", c.Writer.Status(),
		"latency", time.Since(start),
	}
	if c.Writer.Status() >= 500 {
		h.log.Warnw("request_failed", fields...)
		return
	}
	h.log.Debugw("request_served", fields...)
}
