package main

import (
	"fmt"
	"os"

	"github.com/jonathan/buildwise/internal/config"
	"github.com/jonathan/buildwise/internal/server"
	"github.com/spf13/cobra"
)

var (
	servePort   int
	serveConfig string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for producing estimates.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", config.DefaultPort, "Port to listen on (overrides config file and BUILDWISE_PORT)")
	serveCmd.Flags().StringVar(&serveConfig, "config", "", "Path to JSON or YAML config file (default $BUILDWISE_CONFIG)")
	rootCmd.AddCommand(serveCmd)
}

// loadConfig resolves the config file from the flag or BUILDWISE_CONFIG.
func loadConfig(path string) (config.Config, error) {
	if path == "" {
		path = os.Getenv("BUILDWISE_CONFIG")
	}
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(serveConfig)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("port") {
		cfg.Port = servePort
	}

	srv, err := server.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
