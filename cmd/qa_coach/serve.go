package main

import (
	"context"
	"fmt"

	"github.com/jonathan/qa-coach/internal/config"
	"github.com/jonathan/qa-coach/internal/llm"
	"github.com/jonathan/qa-coach/internal/server"
	"github.com/spf13/cobra"
)

var (
	servePort     int
	serveConfig   string
	serveStrict   bool
	serveBalanced bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server and single-page UI",
	Long:  `Start an HTTP server that serves the evaluation UI and the /evaluate, /roi and /health endpoints.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().StringVar(&serveConfig, "config", "", "Path to JSON config file")
	serveCmd.Flags().BoolVar(&serveStrict, "strict", false, "Schema-validate evaluation payloads")
	serveCmd.Flags().BoolVar(&serveBalanced, "balanced", false, "Use balanced-brace JSON extraction instead of the greedy span")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveServeConfig(cmd, serveConfig)
	if err != nil {
		return err
	}

	// Missing credential is fatal here, before anything listens.
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

	srv := server.New(server.Config{
		Port:               cfg.Port,
		Strict:             cfg.Strict || serveStrict,
		BalancedExtraction: serveBalanced,
	}, client)

	return srv.Start()
}

// resolveServeConfig merges the config file with serve flags. The --port flag
// wins only when explicitly set; otherwise a config-file port (or the default)
// is kept.
func resolveServeConfig(cmd *cobra.Command, path string) (*config.Config, error) {
	cfg, err := loadConfig(path)
	if err != nil {
		return nil, err
	}

	if f := cmd.Flags().Lookup("port"); f != nil && f.Changed {
		port, err := cmd.Flags().GetInt("port")
		if err != nil {
			return nil, err
		}
		cfg.Port = port
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadConfig reads the optional config file and fills defaults.
func loadConfig(path string) (*config.Config, error) {
	cfg := &config.Config{}
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	merged := cfg.MergeWithDefaults(config.Config{Port: 8080})
	return &merged, nil
}
