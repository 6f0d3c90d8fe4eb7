// Package main is the qcs-cargo CLI: serve, migrate and jwt.
package main

import (
	"context"
	"fmt"
	"os"

	"qcscargo/internal/config"
	"qcscargo/pkg/logger"
	"qcscargo/pkg/storage/postgres"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// getPostgres opens the connection pool or exits. The returned func closes it.
func getPostgres(ctx context.Context, cfg *config.Config) (*postgres.PgSQL, func()) {
	pgsql, err := postgres.New(ctx, postgres.Options{
		Username:           cfg.Database.Username,
		Password:           cfg.Database.Password,
		Host:               cfg.Database.Host,
		Port:               cfg.Database.Port,
		Database:           cfg.Database.DatabaseName,
		ConnMaxLifetime:    cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime:    cfg.Database.ConnMaxIdleTime,
		MaxOpenConnections: cfg.Database.MaxOpenConnections,
		MaxIdleConnections: cfg.Database.MaxIdleConnections,
		SslMode:            cfg.Database.SslMode,
	})
	if err != nil {
		logger.Fatal(ctx, "could not create postgres storage",
			zap.String("host", cfg.Database.Host),
			zap.String("database", cfg.Database.DatabaseName),
			zap.Error(err))
	}

	return pgsql, func() {
		logger.Info(ctx, "closing postgres client...")
		if err := pgsql.Close(); err != nil {
			logger.Warn(ctx, "could not close postgres connection", zap.Error(err))
		}
	}
}

// rootCommand loads the config before any subcommand runs. Subcommands get
// the config pointer when they are built and read it only when they run.
func rootCommand() *cobra.Command {
	cfg := &config.Config{}
	var configPath string

	rootCmd := &cobra.Command{
		Use:          "qcs-cargo",
		Short:        "QCS Cargo backend",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load(configPath)
			if err != nil {
				return err
			}
			*cfg = *loaded

			logger.Setup(cfg.Environment, cfg.LogLevel)
			logger.Debug(cmd.Context(), "config loaded",
				zap.String("path", configPath),
				zap.String("environment", cfg.Environment))

			return nil
		},
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.yml", "Config File Path")

	rootCmd.AddCommand(
		migrateCommand(cfg),
		serveCommand(cfg),
		JWTCommand(cfg),
	)

	return rootCmd
}

func main() {
	ctx := context.Background()

	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "captured panic, exiting...", zap.Any("panic", p))
			_ = logger.Get(ctx).Sync()

			panic(p)
		}
	}()

	err := rootCommand().ExecuteContext(ctx)
	_ = logger.Get(ctx).Sync()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1) //nolint: gocritic
	}
}
