// Package main provides the entry point for the CV Analyzer CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cv_analyzer",
	Short: "CV analysis and job-matching pipeline",
	Long:  "cv_analyzer extracts structured information (skills, work history, profession, seniority) from resume documents, optionally scores them against a job description, and exports the results as CSV or a spreadsheet.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
