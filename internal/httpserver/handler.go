package httpserver

import (
	"mediawatch-srv/internal/middleware"
	monitorHTTP "mediawatch-srv/internal/monitor/delivery/http"
)

const (
	InternalApi = "/internal/api/v1"
)

func (srv *HTTPServer) mapHandlers() error {
	srv.gin.Use(middleware.Recovery(srv.logger))
	srv.gin.Use(middleware.CORS(middleware.DefaultCORSConfig()))

	// Health check endpoints (no auth required)
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	// Internal API routes
	internal := srv.gin.Group(InternalApi)
	monitorHandler := monitorHTTP.New(srv.logger, srv.monitorUC)
	monitorHTTP.MapMonitoringRoutes(internal, monitorHandler)

	return nil
}
