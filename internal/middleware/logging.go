package middleware

import (
	"time"

	"shop_backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// RequestLogger logs every completed request through the structured logger.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.HTTPLog(
			c.Request.Method,
			c.Request.URL.Path,
			c.Writer.Status(),
			time.Since(start),
			c.Writer.Size(),
		)
	}
}
