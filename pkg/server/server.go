package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/spf13/afero"

	"github.com/inkwise/inkwise/pkg/config"
	"github.com/inkwise/inkwise/pkg/environment"
	"github.com/inkwise/inkwise/pkg/imaging"
	"github.com/inkwise/inkwise/pkg/ingest"
	"github.com/inkwise/inkwise/pkg/logging"
	"github.com/inkwise/inkwise/pkg/pipeline"
)

// Server is the HTTP API server for the image processing service.
type Server struct {
	fs        afero.Fs
	cfg       *config.Config
	env       *environment.Environment
	logger    *logging.Logger
	ingestor  *ingest.Manager
	converter *pipeline.Converter
	engine    *gin.Engine

	httpServer *http.Server
}

// NewServer wires the engine, CORS layer, and routes.
func NewServer(fs afero.Fs, cfg *config.Config, env *environment.Environment, logger *logging.Logger) *Server {
	if env.Debug != "1" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if len(cfg.Server.AllowOrigins) == 1 && cfg.Server.AllowOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.Server.AllowOrigins
	}
	corsConfig.AllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodOptions}
	corsConfig.MaxAge = 12 * time.Hour
	engine.Use(cors.New(corsConfig))

	s := &Server{
		fs:        fs,
		cfg:       cfg,
		env:       env,
		logger:    logger,
		ingestor:  ingest.NewManager(logger),
		converter: pipeline.NewConverter(imaging.NewCodec(), logger),
		engine:    engine,
	}

	s.setupRoutes()
	return s
}

// setupRoutes registers the API routes.
func (s *Server) setupRoutes() {
	s.engine.GET("/health", s.handleHealth)
	s.engine.POST("/process", s.handleProcess)
}

// Engine exposes the router, mainly for tests.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// Start runs the HTTP server until it is shut down.
func (s *Server) Start() error {
	addr := s.env.Addr()

	s.logger.Info("starting image processing service", "addr", addr)
	s.logger.Info("route configured", "method", http.MethodGet, "path", "/health")
	s.logger.Info("route configured", "method", http.MethodPost, "path", "/process")

	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.engine,
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
		IdleTimeout:  s.cfg.Server.IdleTimeout,
	}

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	s.logger.Info("shutting down image processing service")
	return s.httpServer.Shutdown(ctx)
}
