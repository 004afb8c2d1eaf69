package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jonathan/resume-ranker/internal/config"
	"github.com/jonathan/resume-ranker/internal/db"
	"github.com/jonathan/resume-ranker/internal/observability"
	"github.com/spf13/cobra"
)

var (
	rankingsRole   string
	rankingsDBPath string
)

var rankingsCmd = &cobra.Command{
	Use:   "rankings",
	Short: "Print the leaderboard for a job role",
	RunE:  runRankings,
}

func init() {
	rankingsCmd.Flags().StringVarP(&rankingsRole, "role", "r", config.DefaultRole, "Job role to list rankings for")
	rankingsCmd.Flags().StringVar(&rankingsDBPath, "db", config.DefaultDatabasePath, "Path to the SQLite database file")

	rootCmd.AddCommand(rankingsCmd)
}

func runRankings(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	store := db.NewStore(rankingsDBPath)
	if err := store.Init(ctx); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	entries, err := store.RankingsForRole(ctx, rankingsRole)
	if err != nil {
		return fmt.Errorf("failed to load rankings: %w", err)
	}

	observability.NewPrinter(os.Stdout).PrintRankings(rankingsRole, entries)
	return nil
}
