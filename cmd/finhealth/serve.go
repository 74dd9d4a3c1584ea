package main

import (
	"github.com/spf13/cobra"

	"github.com/rgehrsitz/finhealth/internal/calculation"
	"github.com/rgehrsitz/finhealth/internal/logging"
	"github.com/rgehrsitz/finhealth/internal/server"
)

func (a *app) serveCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the JSON API",
		Long: `Serve the JSON API until interrupted.

Endpoints (under /api/v1):
  GET  /healthz
  POST /evaluate
  POST /report?format=html
  POST /compare
  POST /chat`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = a.settings.Server.Addr
			}

			evaluator := calculation.NewHealthEvaluator()
			evaluator.SetLogger(logging.NewAdapter(a.logger))

			api := server.NewWebAPI(server.Config{
				Addr:            addr,
				ShutdownTimeout: a.settings.Server.ShutdownTimeout,
				Dependencies: server.Dependencies{
					Evaluator: evaluator,
					Advisor:   a.newAdvisor(),
					Logger:    a.logger,
				},
			})
			return api.Start(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default from settings, :8080)")
	return cmd
}
