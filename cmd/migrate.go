package main

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	root "qcscargo"
	"qcscargo/internal/config"
	"qcscargo/pkg/logger"

	"github.com/pressly/goose/v3"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/rivermigrate"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const migrationsDir = "migrations"

// gooseLogger routes goose output through zap.
type gooseLogger struct {
	*zap.SugaredLogger
}

func (l gooseLogger) Printf(format string, v ...any) {
	l.Infof(strings.TrimSuffix(format, "\n"), v...)
}

func (l gooseLogger) Fatalf(format string, v ...any) {
	l.SugaredLogger.Fatalf(strings.TrimSuffix(format, "\n"), v...)
}

func setupGoose(ctx context.Context) error {
	goose.SetBaseFS(root.Migrations)
	goose.SetLogger(gooseLogger{logger.Get(ctx).Sugar()})

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("could not set goose dialect to postgres: %w", err)
	}

	return nil
}

// migrateQueue brings the River tables to the latest version.
func migrateQueue(ctx context.Context, db *sql.DB) error {
	migrator, err := rivermigrate.New(riverdatabasesql.New(db), nil)
	if err != nil {
		return fmt.Errorf("could not create river queue migrator: %w", err)
	}

	all := migrator.AllVersions()
	latest := all[len(all)-1].Version
	current := 0
	existing, err := migrator.ExistingVersions(ctx)
	if err != nil {
		return fmt.Errorf("could not get existing river queue migrations: %w", err)
	}
	if len(existing) > 0 {
		current = existing[len(existing)-1].Version
	}
	if latest <= current {
		return nil
	}

	if _, err = migrator.Migrate(ctx, rivermigrate.DirectionUp, &rivermigrate.MigrateOpts{
		TargetVersion: latest,
	}); err != nil {
		return fmt.Errorf("could not migrate river queue tables: %w", err)
	}
	logger.Info(ctx, "migrated river queue tables", zap.Int("from", current), zap.Int("to", latest))

	return nil
}

// migrateCommand applies the schema migrations and the River queue
// migrations. --to stops the schema at a given version.
func migrateCommand(cfg *config.Config) *cobra.Command {
	var target int64

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Migrates database to the latest version",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()
			db := strg.DB.(*sql.DB)

			if err := setupGoose(ctx); err != nil {
				logger.Fatal(ctx, "could not set up migrations", zap.Error(err))
			}

			var err error
			if target > 0 {
				err = goose.UpTo(db, migrationsDir, target)
			} else {
				err = goose.Up(db, migrationsDir)
			}
			if err != nil {
				logger.Fatal(ctx, "could not migrate pgsql", zap.Error(err))
			}

			if err := migrateQueue(ctx, db); err != nil {
				logger.Fatal(ctx, "could not migrate river queue", zap.Error(err))
			}
		},
	}
	cmd.Flags().Int64Var(&target, "to", 0, "schema version to migrate to (default latest)")

	cmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Prints the applied and pending schema migrations",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			if err := setupGoose(ctx); err != nil {
				logger.Fatal(ctx, "could not set up migrations", zap.Error(err))
			}
			if err := goose.Status(strg.DB.(*sql.DB), migrationsDir); err != nil {
				logger.Fatal(ctx, "could not read migration status", zap.Error(err))
			}
		},
	})

	return cmd
}
