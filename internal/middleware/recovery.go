package middleware

import (
	"mediawatch-srv/pkg/log"
	"mediawatch-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

func Recovery(logger log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				ctx := c.Request.Context()
				logger.Errorf(ctx, "Panic recovered: %v | Method: %s | Path: %s",
					err, c.Request.Method, c.Request.URL.Path)

				response.InternalError(c)
				c.Abort()
			}
		}()
		c.Next()
	}
}
