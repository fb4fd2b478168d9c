package main

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/shenikar/medical_dispatch/internal/config"
	"github.com/shenikar/medical_dispatch/pkg/logger"
	"github.com/shenikar/medical_dispatch/pkg/postgres"
)

func newMigrate(cfg *config.Config) (*migrate.Migrate, error) {
	migrationURL, err := postgres.MigrationURL(cfg)
	if err != nil {
		return nil, err
	}

	m, err := migrate.New(cfg.MigrationsPath, migrationURL)
	if err != nil {
		return nil, fmt.Errorf("could not create migrate instance: %w", err)
	}
	return m, nil
}

func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	m, err := newMigrate(cfg)
	if err != nil {
		return err
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			return runMigrations(cfg, logger.New(cfg.LogLevel))
		},
	})

	downCmd := &cobra.Command{
		Use:   "down",
		Short: "Roll back the last migration",
		RunE: func(cmd *cobra.Command, args []string) error {
			all, _ := cmd.Flags().GetBool("all")

			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			log := logger.New(cfg.LogLevel)

			m, err := newMigrate(cfg)
			if err != nil {
				return err
			}
			defer m.Close()

			if all {
				err = m.Down()
			} else {
				err = m.Steps(-1)
			}
			if err != nil && !errors.Is(err, migrate.ErrNoChange) {
				return fmt.Errorf("failed to roll back migrations: %w", err)
			}

			log.WithField("all", all).Info("Database migrations rolled back")
			return nil
		},
	}
	downCmd.Flags().Bool("all", false, "Roll back every applied migration")
	cmd.AddCommand(downCmd)

	return cmd
}
