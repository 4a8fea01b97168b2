package httpserver

import (
	"errors"

	"mediawatch-srv/internal/monitor"
	"mediawatch-srv/pkg/log"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// HTTPServer represents the HTTP server with all dependencies.
// New() only wires dependencies and validates them; Run() starts serving.
type HTTPServer struct {
	gin    *gin.Engine
	logger log.Logger
	port   int
	mode   string

	monitorUC monitor.UseCase

	db    *gorm.DB
	redis *redis.Client
}

// Config is the constructor input for HTTPServer.
// Keep this minimal: only fields really needed by HTTPServer.
type Config struct {
	Port int
	Mode string

	MonitorUC monitor.UseCase

	DB    *gorm.DB
	Redis *redis.Client
}

// New creates a new HTTPServer instance with the provided configuration.
// This does NOT start any goroutines; use (*HTTPServer).Run().
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		gin:       gin.New(),
		logger:    logger,
		port:      cfg.Port,
		mode:      cfg.Mode,
		monitorUC: cfg.MonitorUC,
		db:        cfg.DB,
		redis:     cfg.Redis,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.logger == nil {
		return errors.New("logger is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.monitorUC == nil {
		return errors.New("monitor usecase is required")
	}
	return nil
}
