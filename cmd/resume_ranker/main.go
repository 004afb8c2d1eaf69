// Package main provides the entry point for the Resume Ranker server and CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_ranker",
	Short: "Resume Ranker server and CLI",
	Long:  "Resume Ranker analyzes uploaded resume PDFs against a job role using Gemini, persists the results, and serves a per-role leaderboard.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
