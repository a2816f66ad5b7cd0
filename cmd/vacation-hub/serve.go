package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/username/vacation-hub/internal/daemon"
	"github.com/username/vacation-hub/internal/transport/http/server"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and the scheduled absence snapshot",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			cfg, manager, closeRepo, err := openManager(ctx)
			if err != nil {
				return err
			}
			defer closeRepo()

			logger.Info("Starting vacation hub",
				zap.String("addr", cfg.Server.Addr()),
				zap.String("backend", cfg.Storage.Backend),
				zap.Int("annual_quota", cfg.Absence.AnnualQuota),
				zap.Bool("login_gate", cfg.Auth.LoginPassword != ""),
				zap.Bool("deletes_enabled", cfg.Auth.AdminPassword != ""))

			g, gctx := errgroup.WithContext(ctx)

			if cfg.Report.Enabled {
				d, err := daemon.NewDaemon(cfg.Report, manager, logger)
				if err != nil {
					return err
				}
				g.Go(func() error { return d.Run(gctx) })
			}

			srv := server.New(cfg, manager, logger)
			g.Go(func() error { return srv.Run(gctx) })

			return g.Wait()
		},
	}
}
