package http

import (
	stdhttp "net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/vovakirdan/feedroom-server/internal/config"
	"github.com/vovakirdan/feedroom-server/internal/core"
)

// NewServer builds the HTTP server: a health probe and the /feed WebSocket
// endpoint.
func NewServer(worker *core.Worker, cfg config.Config, logger *zerolog.Logger) *stdhttp.Server {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(gin.Recovery())
	router.GET("/healthz", healthHandler)
	router.GET("/feed", gin.WrapH(NewWSHandler(worker, cfg.MaxFrameSize, logger)))

	return &stdhttp.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}
}

func healthHandler(c *gin.Context) {
	c.String(stdhttp.StatusOK, "ok")
}
