// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/pdiddy/idea-engine/internal/logger"
	"github.com/pdiddy/idea-engine/internal/metrics"
	"github.com/pdiddy/idea-engine/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the idea dashboard and JSON API",
	Long: `Serve starts an HTTP server with the idea dashboard at /, the JSON API
at /api/ideas and /api/catalog, a liveness probe at /health, and
Prometheus metrics at /metrics. It shuts down gracefully on SIGINT or
SIGTERM.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().String("addr", ":8080", "listen address")
	serveCmd.Flags().String("log-mode", "dev", "log format: dev or prod")
	serveCmd.Flags().StringSlice("allow-origin", nil, "CORS origin allowed to call the API (repeatable)")

	bindFlags(serveCmd, map[string]string{
		"addr":         "server.addr",
		"log-mode":     "server.log_mode",
		"allow-origin": "server.allow_origins",
	})

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	c, err := loadCatalog(cfg)
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.Server.LogMode)
	if err != nil {
		return err
	}
	defer log.Sync()

	if cfg.Server.LogMode == "prod" || cfg.Server.LogMode == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	srv := server.New(server.Config{
		Server:    cfg.Server,
		Generator: cfg.Generator,
	}, c, log, metrics.NewCollector("ideaengine"))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("starting idea-engine", "version", version, "addr", cfg.Server.Addr)
	return srv.Run(ctx)
}
