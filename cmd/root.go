// Package cmd contains all the CLI commands for the application,
// built using the Cobra library.
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "happygit <action>",
	Short: "Reports developer happiness across the otter repositories.",
	Long: `happygit scans recent commit history across the organization's
repositories, reads the happiness score developers leave in their commit
messages (the digit after an "h:" marker), and prints the per-repository
average as JSON.

Actions: past-week, past-month, past-year, this-month, this-year.`,
	Args: cobra.ExactArgs(1),
	Run:  runAction,
}

// Execute runs the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	// Add a persistent flag for verbose output.
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose/debug logging")
}
