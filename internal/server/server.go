// Package server exposes maze generation over HTTP and streams live
// generation steps over WebSocket.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/graceful"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/katalvlaran/labyrinth/internal/config"
)

// Server wires the maze handlers into a gin engine.
type Server struct {
	cfg    config.Config
	logger zerolog.Logger
	engine *gin.Engine
}

// New builds the router. cfg.Mode selects the gin mode.
func New(cfg config.Config, logger zerolog.Logger) *Server {
	switch cfg.Mode {
	case "dev":
		gin.SetMode(gin.DebugMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery(), requestLogger(logger))
	engine.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{http.MethodGet, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", headerRequestID},
		ExposeHeaders: []string{"Content-Length", headerRequestID, headerSeed},
		MaxAge:        12 * time.Hour,
	}))

	s := &Server{cfg: cfg, logger: logger, engine: engine}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.engine.GET("/healthz", s.health)

	v1 := s.engine.Group("/api/v1/mazes")
	{
		v1.GET("", s.getJSON)
		v1.GET("/ascii", s.getASCII)
		v1.GET("/png", s.getPNG)
		v1.GET("/stream", s.stream)
	}
}

// Handler returns the HTTP handler, for tests and embedding.
func (s *Server) Handler() http.Handler { return s.engine }

// Run serves on cfg.HTTPAddr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	router, err := graceful.New(s.engine, graceful.WithAddr(s.cfg.HTTPAddr))
	if err != nil {
		return fmt.Errorf("server: %w", err)
	}
	defer router.Close()

	s.logger.Info().Str("addr", s.cfg.HTTPAddr).Msg("maze server listening")
	err = router.RunWithContext(ctx)
	if err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server: %w", err)
	}
	s.logger.Info().Msg("maze server stopped")
	return nil
}
