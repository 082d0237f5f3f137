package middleware

import (
	"log/slog"

	"agro-registry/internal/apperror"

	"github.com/gin-gonic/gin"
)

// ErrorHandler renders the last error attached with ctx.Error. Domain errors
// are returned as-is; anything else becomes a generic 500 and the cause is
// logged.
func ErrorHandler(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		if appErr, ok := apperror.As(err); ok {
			c.AbortWithStatusJSON(appErr.Status, appErr)
			return
		}

		logger.Error("unhandled error",
			"request_id", c.GetString(RequestIDKey),
			"method", c.Request.Method,
			"path", c.FullPath(),
			"error", err.Error(),
		)
		c.AbortWithStatusJSON(apperror.Internal().Status, apperror.Internal())
	}
}

// Recovery handles panics and converts them into 500 responses.
func Recovery(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("panic recovered",
					"request_id", c.GetString(RequestIDKey),
					"method", c.Request.Method,
					"path", c.Request.URL.Path,
					"panic", r,
				)
				c.AbortWithStatusJSON(apperror.Internal().Status, apperror.Internal())
			}
		}()
		c.Next()
	}
}
