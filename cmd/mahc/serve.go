package main

import (
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"mahc/internal/config"
	"mahc/internal/log"
	"mahc/internal/server"
)

func newServeCmd(a *app) *cobra.Command {
	var addr, metricsAddr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "serve the scoring API over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("addr") {
				a.cfg.Server.Addr = addr
			}
			if cmd.Flags().Changed("metrics-addr") {
				a.cfg.Server.MetricsAddr = metricsAddr
			}

			srv, err := server.New(a.cfg)
			if err != nil {
				return err
			}
			defer srv.Close()

			err = a.loader.Watch(func(cfg *config.Config, err error) {
				if err != nil {
					log.Warn("reload config: %v", err)
					return
				}
				log.SetLevel(cfg.Log.Level)
				log.Info("config reloaded, log level %s", cfg.Log.Level)
			})
			if err != nil && !errors.Is(err, config.ErrNoConfigFile) {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return srv.Serve(ctx)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, :8080)")
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "runtime dashboard address, empty to disable")
	return cmd
}
