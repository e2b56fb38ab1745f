package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/pouchkit/internal/logger"
)

var (
	// Global flags
	verbose          bool
	quiet            bool
	jsonOut          bool
	confirmDeref     bool
	translationsPath string
	outPath          string
	inPlace          bool
)

var rootCmd = &cobra.Command{
	Use:   "pmdmctl",
	Short: "Inspect and replay inventory operations on manager captures",
	Long: `pmdmctl loads a capture of the game's inventory manager (an 8-byte
little-endian address followed by the manager's bytes), lists and validates
its items, and replays inventory operations on it, writing the result as a
new capture.`,
	Version: "0.1.0",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return logger.Init(logger.Options{Enabled: verbose, Stderr: true, Level: slog.LevelDebug})
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output and debug logs")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().
		StringVarP(&translationsPath, "translations", "t", "", "JSON file mapping item identifiers to display names")
	rootCmd.PersistentFlags().
		BoolVar(&confirmDeref, "confirm", false, "Ask before following pointers read from the capture")
}

// addOutputFlags registers the flags of commands that write a capture.
func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&outPath, "output", "o", "", "Write the modified capture to this file")
	cmd.Flags().BoolVar(&inPlace, "in-place", false, "Overwrite the input capture")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...any) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...any) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
