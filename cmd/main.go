package main

import (
	"os"

	"github.com/spf13/cobra"
)

// @title Medical Dispatch API
// @version 1.0
// @description Dispatch coordination backend for emergency medical teams.
// @host localhost:8000
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the access token.
func main() {
	rootCmd := &cobra.Command{
		Use:          "dispatchd",
		Short:        "Medical dispatch API server",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(userCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
