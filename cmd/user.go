package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shenikar/medical_dispatch/internal/config"
	"github.com/shenikar/medical_dispatch/internal/models"
	"github.com/shenikar/medical_dispatch/internal/repository"
	"github.com/shenikar/medical_dispatch/internal/service"
	"github.com/shenikar/medical_dispatch/pkg/logger"
	"github.com/shenikar/medical_dispatch/pkg/postgres"
)

func userCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage user accounts",
	}

	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create a dispatcher or medic account",
		RunE: func(cmd *cobra.Command, args []string) error {
			username, _ := cmd.Flags().GetString("username")
			password, _ := cmd.Flags().GetString("password")
			roleName, _ := cmd.Flags().GetString("role")
			fullName, _ := cmd.Flags().GetString("full-name")

			role, err := models.ParseRole(roleName)
			if err != nil {
				return err
			}

			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			log := logger.New(cfg.LogLevel)

			ctx := context.Background()
			dbpool, err := postgres.NewPostgresDB(ctx, cfg)
			if err != nil {
				return fmt.Errorf("failed to connect to PostgreSQL: %w", err)
			}
			defer dbpool.Close()

			// Учет попыток входа здесь не нужен
			authService := service.NewAuthService(repository.NewUserRepository(dbpool), nil, log, cfg)
			user, err := authService.CreateUser(ctx, username, password, fullName, role)
			if err != nil {
				return err
			}

			fmt.Printf("Created %s %q (id %s)\n", user.Role, user.Username, user.ID)
			return nil
		},
	}
	createCmd.Flags().String("username", "", "Login name")
	createCmd.Flags().String("password", "", "Initial password")
	createCmd.Flags().String("role", models.RoleDispatcher.String(), "Role: dispatcher or medic")
	createCmd.Flags().String("full-name", "", "Display name")
	_ = createCmd.MarkFlagRequired("username")
	_ = createCmd.MarkFlagRequired("password")
	cmd.AddCommand(createCmd)

	return cmd
}
