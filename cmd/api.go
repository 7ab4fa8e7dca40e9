package cmd

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/initia-labs/bridgeinfo/api"
	"github.com/initia-labs/bridgeinfo/config"
	"github.com/initia-labs/bridgeinfo/log"
	"github.com/initia-labs/bridgeinfo/metrics"
	"github.com/initia-labs/bridgeinfo/orm"
	"github.com/initia-labs/bridgeinfo/sentry_integration"
	"github.com/initia-labs/bridgeinfo/store"
)

const shutdownTimeout = 10 * time.Second

func apiCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "api",
		Short: "Run the bridge info JSON-RPC server",
		Long: `
Run the bridge info JSON-RPC server.

This command serves get_econConf, get_activeChains, get_confirmations and get_burnStatus
over a single JSON-RPC 2.0 endpoint, backed by PostgreSQL or an in-memory fixture.

You can configure the store, database, logging, metrics and server options via environment variables.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.GetConfig()
			if err != nil {
				return err
			}

			logger := log.NewLogger(cfg)

			if enabled, err := sentry_integration.Init(cfg); err != nil {
				logger.Warn("failed to initialize sentry", slog.Any("error", err))
			} else if enabled {
				defer sentry_integration.Flush(2 * time.Second)
			}

			metrics.Init()

			var db *orm.Database
			if cfg.GetStoreBackend() == config.StoreBackendPostgres {
				db, err = orm.OpenDB(cfg.GetDBConfig(), logger)
				if err != nil {
					return err
				}
				defer db.Close() //nolint:errcheck

				if err := db.Migrate(cmd.Context()); err != nil {
					return err
				}
				metrics.StartDBStatsUpdater(db, logger)
			}

			s, err := store.New(cfg, db, logger)
			if err != nil {
				return err
			}

			server := api.New(cfg, logger, s)
			metricsServer := metrics.NewServer(cfg, logger)

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			g, gctx := errgroup.WithContext(ctx)
			g.Go(func() error {
				defer metrics.RecoverFromPanic("api")
				return server.Start()
			})
			g.Go(func() error {
				defer metrics.RecoverFromPanic("metrics")
				return metricsServer.Start()
			})
			g.Go(func() error {
				defer metrics.RecoverFromPanic("shutdown")
				<-gctx.Done()
				logger.Info("shutting down API server...")

				shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
				defer cancel()

				if err := metricsServer.Shutdown(shutdownCtx); err != nil {
					logger.Error("metrics server shutdown failed", slog.Any("error", err))
				}
				return server.Shutdown()
			})

			if err := g.Wait(); err != nil {
				sentry_integration.CaptureCurrentHubException(err, sentry.LevelFatal)
				return err
			}
			return nil
		},
	}

	return cmd
}
