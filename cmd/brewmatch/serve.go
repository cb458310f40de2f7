package main

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/denisok6893-rgb/brew-matching/internal/app"
)

func serveCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr != "" {
				cfg.Server.Address = addr
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			a, err := app.Build(ctx, cfg, logger)
			if err != nil {
				return err
			}
			defer func() { _ = a.Close() }()

			return a.Server.Run(ctx, cfg.Server.Address)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (overrides server.address)")
	return cmd
}
