package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jonathan/resume-ranker/internal/config"
	"github.com/jonathan/resume-ranker/internal/db"
	"github.com/jonathan/resume-ranker/internal/observability"
	"github.com/jonathan/resume-ranker/internal/pipeline"
	"github.com/spf13/cobra"
)

var candidatesDBPath string

var candidatesCmd = &cobra.Command{
	Use:   "candidates",
	Short: "Print every stored candidate across all roles",
	RunE:  runCandidates,
}

func init() {
	candidatesCmd.Flags().StringVar(&candidatesDBPath, "db", config.DefaultDatabasePath, "Path to the SQLite database file")

	rootCmd.AddCommand(candidatesCmd)
}

func runCandidates(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	store := db.NewStore(candidatesDBPath)
	if err := store.Init(ctx); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	// The controller only reads here; no analyzer call is made.
	controller := pipeline.NewController(store, nil)

	table, err := controller.AllCandidatesView(ctx)
	if err != nil {
		return fmt.Errorf("failed to load candidates: %w", err)
	}

	observability.NewPrinter(os.Stdout).PrintCandidates(table)
	return nil
}
