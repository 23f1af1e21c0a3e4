package main

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/renderkit-go/renderkit/internal/devserver"
	"github.com/renderkit-go/renderkit/internal/snapshot"
	"github.com/renderkit-go/renderkit/internal/telemetry"
)

func serveCmd() *cobra.Command {
	var addr string
	var traceDir string
	var metricsEnabled bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the devtools console (websocket stream + trace storage) over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := snapshot.NewDiskStore(traceDir)
			if err != nil {
				return err
			}
			server := devserver.NewServer(store)

			routes := "GET /ws, GET/POST /traces"
			if metricsEnabled {
				telemetry.Install()
				server.Router.Handle("/metrics", promhttp.Handler())
				routes += ", GET /metrics"
			}

			printBanner()
			success("serving on %s (%s)", addr, routes)
			return http.ListenAndServe(addr, server.Router)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":4173", "address to listen on")
	cmd.Flags().StringVar(&traceDir, "trace-dir", "./renderkit-traces", "directory traces are persisted to")
	cmd.Flags().BoolVar(&metricsEnabled, "metrics", false, "expose Prometheus metrics (telemetry.Install) at GET /metrics")

	return cmd
}
