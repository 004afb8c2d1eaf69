package main

import (
	"fmt"
	"os"

	"github.com/jonathan/resume-ranker/internal/config"
	"github.com/jonathan/resume-ranker/internal/server"
	"github.com/spf13/cobra"
)

var (
	servePort       int
	serveDBPath     string
	serveConfigFile string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server with the browser UI",
	Long:  `Start an HTTP server that serves the upload and rankings UI and exposes the JSON API behind it.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on")
	serveCmd.Flags().StringVar(&serveDBPath, "db", "", "Path to the SQLite database file")
	serveCmd.Flags().StringVar(&serveConfigFile, "config", "", "Path to a JSON config file")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	dbPath := serveDBPath
	if dbPath == "" {
		dbPath = os.Getenv("RESUME_RANKER_DB")
	}

	cfg := config.Config{
		Port:         servePort,
		DatabasePath: dbPath,
	}

	if serveConfigFile != "" {
		fileCfg, err := config.LoadConfig(serveConfigFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
	}

	cfg = cfg.MergeWithDefaults(config.Config{
		Port:         config.DefaultPort,
		DatabasePath: config.DefaultDatabasePath,
		DefaultRole:  config.DefaultRole,
		Roles:        config.DefaultRoles(),
	})

	if err := cfg.Validate(); err != nil {
		return err
	}

	apiKey := cfg.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}

	srv, err := server.New(server.Config{
		Port:         cfg.Port,
		DatabasePath: cfg.DatabasePath,
		APIKey:       apiKey,
		DefaultRole:  cfg.DefaultRole,
		Roles:        cfg.Roles,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
