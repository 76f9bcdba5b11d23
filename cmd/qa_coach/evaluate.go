package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/jonathan/qa-coach/internal/evaluation"
	"github.com/jonathan/qa-coach/internal/llm"
	"github.com/jonathan/qa-coach/internal/observability"
	"github.com/spf13/cobra"
)

var (
	evalTicket   string
	evalConfig   string
	evalModel    string
	evalStrict   bool
	evalBalanced bool
	evalJSON     bool
	evalVerbose  bool
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Score one ticket transcript",
	Long:  `Send a ticket transcript to Gemini, validate the returned scores against the rubric, and print the coaching report.`,
	RunE:  runEvaluate,
}

func init() {
	evaluateCmd.Flags().StringVar(&evalTicket, "ticket", "", "Path to transcript text file, or '-' for stdin (required)")
	evaluateCmd.Flags().StringVar(&evalConfig, "config", "", "Path to JSON config file")
	evaluateCmd.Flags().StringVar(&evalModel, "model", "", "Gemini model override")
	evaluateCmd.Flags().BoolVar(&evalStrict, "strict", false, "Schema-validate the evaluation payload")
	evaluateCmd.Flags().BoolVar(&evalBalanced, "balanced", false, "Use balanced-brace JSON extraction instead of the greedy span")
	evaluateCmd.Flags().BoolVar(&evalJSON, "json", false, "Print the raw extracted JSON instead of the report")
	evaluateCmd.Flags().BoolVar(&evalVerbose, "verbose", false, "Print model call details alongside the report")
	_ = evaluateCmd.MarkFlagRequired("ticket")
	rootCmd.AddCommand(evaluateCmd)
}

func runEvaluate(cmd *cobra.Command, _ []string) error {
	transcript, err := readTranscript(evalTicket)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(evalConfig)
	if err != nil {
		return err
	}
	if evalModel != "" {
		cfg.Model = evalModel
	}

	apiKey, err := cfg.ResolveAPIKey()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	client, err := llm.NewGeminiClient(ctx, llm.DefaultConfig().WithModel(cfg.Model), apiKey)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer func() { _ = client.Close() }()

	evaluator := evaluation.NewEvaluator(client, evaluation.Options{
		Strict:             cfg.Strict || evalStrict,
		BalancedExtraction: evalBalanced,
	})

	result, err := evaluator.Evaluate(ctx, transcript)
	if err != nil {
		return err
	}

	printer := observability.NewPrinter(os.Stdout)
	if evalJSON {
		printer.PrintRawJSON(result)
		return nil
	}
	printer.PrintEvaluation(result)
	if cfg.Verbose || evalVerbose {
		printer.PrintCallDetails(client.Model(), result)
	}
	return nil
}

// readTranscript loads the ticket text from a file or stdin.
func readTranscript(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read transcript from stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read transcript file %s: %w", path, err)
	}
	return string(data), nil
}
