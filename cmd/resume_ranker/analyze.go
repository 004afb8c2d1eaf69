package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jonathan/resume-ranker/internal/analyzer"
	"github.com/jonathan/resume-ranker/internal/config"
	"github.com/jonathan/resume-ranker/internal/db"
	"github.com/jonathan/resume-ranker/internal/llm"
	"github.com/jonathan/resume-ranker/internal/observability"
	"github.com/jonathan/resume-ranker/internal/pipeline"
	"github.com/spf13/cobra"
)

var (
	analyzeFile   string
	analyzeRole   string
	analyzeDBPath string
	analyzeAPIKey string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze one resume PDF against a job role",
	Long:  "Analyze a resume PDF against a job role, store the result, and print the analysis with the updated rankings for that role.",
	RunE:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeFile, "file", "f", "", "Path to the resume PDF (required)")
	analyzeCmd.Flags().StringVarP(&analyzeRole, "role", "r", config.DefaultRole, "Job role to score against")
	analyzeCmd.Flags().StringVar(&analyzeDBPath, "db", config.DefaultDatabasePath, "Path to the SQLite database file")
	analyzeCmd.Flags().StringVar(&analyzeAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	_ = analyzeCmd.MarkFlagRequired("file")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(_ *cobra.Command, _ []string) error {
	apiKey := analyzeAPIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		return fmt.Errorf("API key is required (set GEMINI_API_KEY environment variable or use --api-key flag)")
	}

	document, err := os.ReadFile(analyzeFile)
	if err != nil {
		return fmt.Errorf("failed to read resume file: %w", err)
	}

	ctx := context.Background()

	store := db.NewStore(analyzeDBPath)
	if err := store.Init(ctx); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	client, err := llm.NewClient(ctx, llm.DefaultConfig(), apiKey)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer client.Close()

	controller := pipeline.NewController(store, analyzer.NewGeminiAnalyzer(client))

	result, err := controller.Analyze(ctx, document, analyzeRole)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintAnalysis(result)
	printer.PrintRankings(result.JobRole, result.Rankings)

	return nil
}
