package main

import (
	"os"
	"os/signal"
	"syscall"

	"blogpreview/internal/app"
	"github.com/spf13/cobra"
)

func newServeCmd(root *rootOptions) *cobra.Command {
	var listenAddr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the preview HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := root.load()
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()
			if listenAddr != "" {
				cfg.ListenAddr = listenAddr
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			a, err := app.New(cfg, log)
			if err != nil {
				return err
			}
			return a.Serve(ctx)
		},
	}
	cmd.Flags().StringVar(&listenAddr, "listen", "", "listen address (overrides PREVIEW_LISTEN_ADDR)")
	return cmd
}
