package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	schemaFiles []string
	verbose     bool
)

var rootCmd = &cobra.Command{
	Use:   "statlint",
	Short: "Stat declaration linter for the lslib game-data compiler",
	Long: `statlint parses stat declaration files and validates every field value
against the schema definitions:

  - declaration grammar (data lines, collections, nested records, item combos)
  - typed field validation (booleans, numbers, UUIDs, enumerations, references)
  - embedded expression sub-languages (boosts, functors, description params,
    conditions)

Cross-references are resolved against the entities declared in the linted
files themselves.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringSliceVarP(&schemaFiles, "schema", "s", nil, "schema definition file (repeatable; later files extend earlier ones)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
