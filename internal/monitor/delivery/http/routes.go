package http

import "github.com/gin-gonic/gin"

// MapMonitoringRoutes mounts the monitoring trigger endpoint on the internal
// route group. The caller is a scheduler, not an end user.
func MapMonitoringRoutes(r *gin.RouterGroup, h Handler) {
	r.POST("/monitoring/:tenant_id/run", h.Run)
}
