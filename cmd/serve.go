package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/alexiusacademia/gocable/internal/metrics"
	"github.com/alexiusacademia/gocable/internal/server"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP calculation service",
	Long: `Serve the calculator over HTTP.

Endpoints:
  POST /api/v1/calculate     {load, installation, options} -> result
  POST /api/v1/export        same body, ?format=json|pdf|xlsx -> file
  GET  /api/v1/templates     load category templates
  GET  /api/v1/cables        cable tables and types (?type=&method=&current=)
  GET  /api/v1/cables/alternatives  cheaper types (?type=&size=&budget=)
  GET  /api/v1/methods       installation methods
  GET  /healthz              liveness
  GET  /metrics              prometheus metrics

Examples:
  gocable serve
  gocable serve --addr :9000 --log-level debug`,
	RunE: func(cmd *cobra.Command, args []string) error {
		calc, err := cfg.Calculator()
		if err != nil {
			return err
		}
		addr := cfg.Server.Addr
		if serveAddr != "" {
			addr = serveAddr
		}

		gin.SetMode(gin.ReleaseMode)
		srv := server.New(server.Options{
			Calculator: calc,
			Metrics:    metrics.New(prometheus.DefaultRegisterer),
			Gatherer:   prometheus.DefaultGatherer,
			Logger:     logger,
		})

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return srv.Run(ctx, addr, cfg.Server.ReadTimeout, cfg.Server.WriteTimeout)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (overrides server.addr)")
}
