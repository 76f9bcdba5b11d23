// Package main provides the entry point for the QA Coaching Agent.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "qa_coach",
	Short: "QA Coaching Agent",
	Long:  "QA Coaching Agent scores support-ticket transcripts against a fixed five-criterion rubric via Gemini and returns coaching guidance.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
