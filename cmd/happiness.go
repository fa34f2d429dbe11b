// Package cmd contains all the CLI commands for the application,
// built using the Cobra library.
package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ehogberg/happygit/internal/config"
	"github.com/ehogberg/happygit/internal/domain"
	"github.com/ehogberg/happygit/internal/gateway"
	"github.com/ehogberg/happygit/internal/usecase"
)

// runAction wires the GitHub client and the aggregator together, then
// dispatches the requested reporting window and prints the result as JSON.
func runAction(cmd *cobra.Command, args []string) {
	ctx := context.Background()

	// Set up the logger from the verbose flag. Default: discard all logs.
	verbose, _ := cmd.Flags().GetBool("verbose")
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	if verbose {
		logger.SetOutput(os.Stderr)
		logger.SetLevel(logrus.DebugLevel)
	}

	// A .env file is optional; variables already in the environment win.
	if err := godotenv.Load(); err == nil {
		logger.Debug("loaded environment from .env file")
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(1)
	}

	// Inject dependencies and run the main business logic.
	client := gateway.NewClient(cfg.Token, cfg.BaseURL, logger)
	aggregator := usecase.NewAggregator(client, cfg.Org, cfg.Repos, logger)

	action := args[0]

	var report func(context.Context) (map[string]domain.RepoHappiness, error)
	switch action {
	case "past-week":
		report = aggregator.PastWeek
	case "past-month":
		report = aggregator.PastMonth
	case "past-year":
		report = aggregator.PastYear
	case "this-month":
		report = aggregator.ThisMonth
	case "this-year":
		report = aggregator.ThisYear
	default:
		fmt.Printf("Unknown action: %s\n", action)
		return
	}

	results, err := report(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to aggregate happiness: %v\n", err)
		os.Exit(1)
	}

	// Marshal the results into a pretty-printed JSON string.
	jsonData, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to marshal results to JSON: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(string(jsonData))
}
