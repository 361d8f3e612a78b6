// Package api exposes the path search over HTTP using gin.
//
// Routes:
//
//	POST /api/v1/search  – run a search on a grid given as digit rows.
//	GET  /healthz        – liveness probe.
package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// DefaultMaxCells bounds the size of a grid after tiling.
const DefaultMaxCells = 1 << 22

// Config configures the HTTP surface.
type Config struct {
	// MaxCells rejects requests whose tiled grid would exceed this many cells.
	MaxCells int
	// Logger receives one entry per request; nil uses logrus.StandardLogger().
	Logger logrus.FieldLogger
}

// NewRouter builds the gin engine with recovery, request logging and routes.
func NewRouter(cfg Config) *gin.Engine {
	if cfg.MaxCells <= 0 {
		cfg.MaxCells = DefaultMaxCells
	}
	if cfg.Logger == nil {
		cfg.Logger = logrus.StandardLogger()
	}
	h := &handler{maxCells: cfg.MaxCells, log: cfg.Logger}

	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(cfg.Logger))
	r.GET("/healthz", h.health)
	v1 := r.Group("/api/v1")
	v1.POST("/search", h.search)

	return r
}

// requestLogger logs method, path, status and latency of every request.
func requestLogger(log logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.WithFields(logrus.Fields{
			"method":  c.Request.Method,
			"path":    c.FullPath(),
			"status":  c.Writer.Status(),
			"latency": time.Since(start).String(),
		}).Info("request handled")
	}
}
