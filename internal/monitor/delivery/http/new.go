package http

import (
	"mediawatch-srv/internal/monitor"
	pkgLog "mediawatch-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

type Handler interface {
	Run(c *gin.Context)
}

type handler struct {
	l  pkgLog.Logger
	uc monitor.UseCase
}

func New(l pkgLog.Logger, uc monitor.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
