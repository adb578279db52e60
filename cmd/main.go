package main

import (
	"fmt"
	"os"

	"clinic-admin/cmd/bootstrap"
	"clinic-admin/config"
	"clinic-admin/internal/infrastructure/database"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "clinic-admin",
		Short: "Clinic administration API: doctors, appointments and staff accounts",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			app, err := bootstrap.New(cfg)
			if err != nil {
				return fmt.Errorf("failed to initialize application: %w", err)
			}
			return app.Run()
		},
	}
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
				return fmt.Errorf("failed to load config: %w", err)
			}
			return bootstrap.RunMigrations(cfg, bootstrap.SetupLogger(cfg.Log.Level))
		},
	})

	downCmd := &cobra.Command{
		Use:   "down",
		Short: "Roll back migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			steps, _ := cmd.Flags().GetInt("steps")

			migrator, err := newMigrator()
			if err != nil {
				return err
			}
			defer migrator.Close()

			return migrator.Down(steps)
		},
	}
	downCmd.Flags().Int("steps", 1, "Number of migrations to roll back")
	cmd.AddCommand(downCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Show the current schema version",
		RunE: func(cmd *cobra.Command, args []string) error {
			migrator, err := newMigrator()
			if err != nil {
				return err
			}
			defer migrator.Close()

			version, dirty, err := migrator.Version()
			if err != nil {
				return fmt.Errorf("failed to read schema version: %w", err)
			}
			fmt.Printf("version=%d dirty=%t\n", version, dirty)
			return nil
		},
	})

	return cmd
}

func newMigrator() (*database.Migrator, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return database.NewMigrator(cfg.DB, bootstrap.SetupLogger(cfg.Log.Level))
}
