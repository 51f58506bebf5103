// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package server serves the idea dashboard and JSON API over HTTP.
// Every request builds its own generator and random source; only the
// read-only catalog is shared between requests.
package server

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/pdiddy/idea-engine/internal/catalog"
	"github.com/pdiddy/idea-engine/internal/logger"
	"github.com/pdiddy/idea-engine/internal/metrics"
	"github.com/pdiddy/idea-engine/internal/render"
	"github.com/pdiddy/idea-engine/pkg/types"
)

const (
	defaultAddr     = ":8080"
	shutdownTimeout = 5 * time.Second
)

// Config holds the settings the server needs from the application config.
type Config struct {
	Server    types.ServerConfig
	Generator types.GeneratorConfig
}

// Server owns the gin engine and its collaborators.
type Server struct {
	cfg     Config
	catalog *catalog.Catalog
	log     *logger.Logger
	metrics *metrics.Collector
	engine  *gin.Engine
}

// New wires routes and middleware. The catalog must already be validated.
// A nil log discards output and a nil m records into a private collector
// nobody scrapes.
func New(cfg Config, c *catalog.Catalog, log *logger.Logger, m *metrics.Collector) *Server {
	if log == nil {
		log = logger.NewNop()
	}
	if m == nil {
		m = metrics.NewCollector("ideaengine")
	}
	s := &Server{
		cfg:     cfg,
		catalog: c,
		log:     log,
		metrics: m,
		engine:  gin.New(),
	}
	s.routes()
	return s
}

// Handler returns the server's HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) routes() {
	r := s.engine
	r.Use(gin.Recovery())
	r.Use(RequestID())
	r.Use(RequestLogger(s.log))
	r.Use(RequestMetrics(s.metrics))
	r.Use(s.cors())

	r.SetHTMLTemplate(template.Must(
		template.New("dashboard").Funcs(template.FuncMap{
			"details": render.Details,
			"inc":     func(i int) int { return i + 1 },
		}).Parse(dashboardHTML),
	))

	r.GET("/", s.handleDashboard)
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})
	r.GET("/metrics", gin.WrapH(s.metrics.Handler()))

	api := r.Group("/api")
	{
		api.GET("/ideas", s.handleIdeas)
		api.GET("/catalog", s.handleCatalog)
	}
}

func (s *Server) cors() gin.HandlerFunc {
	if len(s.cfg.Server.AllowOrigins) == 0 {
		return cors.Default()
	}
	return cors.New(cors.Config{
		AllowOrigins: s.cfg.Server.AllowOrigins,
		AllowMethods: []string{"GET", "OPTIONS"},
		AllowHeaders: []string{"Content-Type", "X-Request-ID"},
		MaxAge:       12 * time.Hour,
	})
}

// Run listens on the configured address until ctx is cancelled, then shuts
// down gracefully.
func (s *Server) Run(ctx context.Context) error {
	addr := s.cfg.Server.Addr
	if addr == "" {
		addr = defaultAddr
	}
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("idea dashboard listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	s.log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
