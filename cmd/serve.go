package main

import (
	"fmt"

	"medical-appointment-api/cmd/bootstrap"
	"medical-appointment-api/config"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long: `Starts the HTTP API. With STORE_DRIVER=postgres and DB_AUTO_MIGRATE=true
pending migrations are applied before the server accepts requests.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	app, err := bootstrap.New(cmd.Context(), cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return app.Run(cmd.Context())
}
