package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jonathan/resume-ranker/internal/config"
	"github.com/jonathan/resume-ranker/internal/db"
	"github.com/spf13/cobra"
)

var clearDBPath string

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every stored analysis record",
	Long:  "Delete every stored analysis record from the database. The schema is kept so the next analysis starts from an empty leaderboard.",
	RunE:  runClear,
}

func init() {
	clearCmd.Flags().StringVar(&clearDBPath, "db", config.DefaultDatabasePath, "Path to the SQLite database file")

	rootCmd.AddCommand(clearCmd)
}

func runClear(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	store := db.NewStore(clearDBPath)
	if err := store.Init(ctx); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	if err := store.ClearResumes(ctx); err != nil {
		return fmt.Errorf("failed to clear database: %w", err)
	}

	_, _ = fmt.Fprintf(os.Stdout, "All records deleted from %s\n", clearDBPath)
	return nil
}
