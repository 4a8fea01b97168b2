package httpserver

import (
	"mediawatch-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

const serviceName = "mediawatch-srv"

// healthCheck reports overall service health including collaborators.
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	ctx := c.Request.Context()

	if srv.db != nil {
		sqlDB, err := srv.db.DB()
		if err != nil || sqlDB.PingContext(ctx) != nil {
			response.ServiceUnavailable(c, "database connection failed")
			return
		}
	}
	if srv.redis != nil {
		if err := srv.redis.Ping(ctx).Err(); err != nil {
			response.ServiceUnavailable(c, "redis connection failed")
			return
		}
	}

	response.OK(c, gin.H{
		"status":  "healthy",
		"service": serviceName,
		"version": "1.0.0",
	})
}

// readyCheck reports whether the service is ready to accept run triggers.
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	ctx := c.Request.Context()

	if srv.redis != nil {
		if err := srv.redis.Ping(ctx).Err(); err != nil {
			response.ServiceUnavailable(c, "redis connection not available")
			return
		}
	}

	response.OK(c, gin.H{
		"status":  "ready",
		"service": serviceName,
	})
}

// liveCheck reports process liveness only.
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"service": serviceName,
	})
}
