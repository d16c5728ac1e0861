package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/ShinyHobo/lslib/pkg/stats"
	"github.com/ShinyHobo/lslib/pkg/stats/ast"
	statErrors "github.com/ShinyHobo/lslib/pkg/stats/errors"
	"github.com/ShinyHobo/lslib/pkg/stats/schema"
)

var lintFlags struct {
	file   string
	dir    string
	format string
	watch  bool
}

var lintCmd = &cobra.Command{
	Use:   "lint",
	Short: "Validate stat declaration files",
	Long: `Validate stat declaration files for grammar and value errors.

The lint command parses declaration files and validates every field:
  - declaration grammar (data lines, collections, nested records)
  - field value validation against the schema
  - embedded expression sub-languages

Examples:
  # Lint a single file
  statlint lint --schema definitions.yaml --file weapons.txt

  # Lint a directory
  statlint lint --schema definitions.yaml --dir stats/

  # Re-lint on every change
  statlint lint --schema definitions.yaml --dir stats/ --watch

  # JSON output for CI/CD
  statlint lint --schema definitions.yaml --file weapons.txt --format json`,
	RunE: lintStats,
}

func init() {
	rootCmd.AddCommand(lintCmd)

	lintCmd.Flags().StringVarP(&lintFlags.file, "file", "f", "", "stat file to validate")
	lintCmd.Flags().StringVarP(&lintFlags.dir, "dir", "d", "", "directory of stat files")
	lintCmd.Flags().StringVar(&lintFlags.format, "format", "text", "output format: text, json")
	lintCmd.Flags().BoolVarP(&lintFlags.watch, "watch", "w", false, "re-lint whenever a stat file changes")
}

// ValidationResult is the validation outcome for a single stat file.
type ValidationResult struct {
	File   string            `json:"file"`
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}

// ValidationError is a single diagnostic.
type ValidationError struct {
	Line     int    `json:"line,omitempty"`
	Column   int    `json:"column,omitempty"`
	Property string `json:"property,omitempty"`
	Message  string `json:"message"`
	Type     string `json:"type,omitempty"`
}

func lintStats(cmd *cobra.Command, args []string) error {
	if lintFlags.file == "" && lintFlags.dir == "" {
		return fmt.Errorf("either --file or --dir must be specified")
	}
	if len(schemaFiles) == 0 {
		return fmt.Errorf("at least one --schema definition file is required")
	}

	repo, err := loadSchema()
	if err != nil {
		return err
	}

	files, err := resolveFiles()
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no stat files found")
	}

	results := lintFiles(repo, files)
	if err := printResults(results); err != nil {
		return err
	}

	if lintFlags.watch {
		return watchAndRelint(repo, files)
	}

	if failed := countInvalid(results); failed > 0 {
		return fmt.Errorf("%d file(s) failed validation", failed)
	}
	return nil
}

func loadSchema() (*schema.Repository, error) {
	repo := schema.NewRepository()
	for _, path := range schemaFiles {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read schema file: %w", err)
		}
		if err := repo.LoadBytes(data); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}
	return repo, nil
}

func resolveFiles() ([]string, error) {
	var files []string
	if lintFlags.file != "" {
		files = append(files, lintFlags.file)
	}
	if lintFlags.dir != "" {
		matches, err := filepath.Glob(filepath.Join(lintFlags.dir, "*.txt"))
		if err != nil {
			return nil, fmt.Errorf("failed to list stat files: %w", err)
		}
		files = append(files, matches...)
	}
	sort.Strings(files)
	return files, nil
}

// lintFiles parses every file first to build the reference universe, then
// validates each file against it.
func lintFiles(repo *schema.Repository, files []string) []ValidationResult {
	type parsed struct {
		path     string
		decls    *ast.Declarations
		parseErr error
	}

	refs := newRegistry()
	sources := make([]parsed, 0, len(files))
	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			sources = append(sources, parsed{path: path, parseErr: err})
			continue
		}
		decls, parseErr := stats.Parse(string(data), path)
		refs.collect(decls)
		sources = append(sources, parsed{path: path, decls: decls, parseErr: parseErr})
	}

	results := make([]ValidationResult, 0, len(sources))
	for _, src := range sources {
		result := ValidationResult{File: src.path, Valid: true}

		appendDiagnostics(&result, src.parseErr)
		if src.decls != nil {
			appendDiagnostics(&result, stats.ValidateDeclarations(src.decls, repo, refs))
		}

		results = append(results, result)
	}
	return results
}

func appendDiagnostics(result *ValidationResult, err error) {
	if err == nil {
		return
	}
	result.Valid = false

	list, ok := err.(*statErrors.ErrorList)
	if !ok {
		result.Errors = append(result.Errors, ValidationError{Message: err.Error()})
		return
	}
	for _, e := range list.Errors {
		result.Errors = append(result.Errors, ValidationError{
			Line:     e.Location.StartLine,
			Column:   e.Location.StartCol,
			Property: e.Property,
			Message:  e.Message,
			Type:     string(e.Type),
		})
	}
}

func printResults(results []ValidationResult) error {
	if lintFlags.format == "json" {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(results)
	}

	for _, result := range results {
		if result.Valid {
			if verbose {
				fmt.Printf("✓ %s\n", result.File)
			}
			continue
		}
		fmt.Printf("✗ %s\n", result.File)
		for _, e := range result.Errors {
			if e.Line > 0 {
				fmt.Printf("  %d:%d ", e.Line, e.Column)
			} else {
				fmt.Printf("  ")
			}
			if e.Property != "" {
				fmt.Printf("%s: ", e.Property)
			}
			fmt.Printf("%s\n", e.Message)
		}
	}
	return nil
}

func countInvalid(results []ValidationResult) int {
	count := 0
	for _, result := range results {
		if !result.Valid {
			count++
		}
	}
	return count
}

// watchAndRelint blocks, re-running the whole lint whenever a watched stat
// file changes. The full set is re-linted on each event because the
// reference universe spans all files.
func watchAndRelint(repo *schema.Repository, files []string) error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}
	defer watcher.Close()

	watched := make(map[string]bool)
	for _, path := range files {
		dir := filepath.Dir(path)
		if watched[dir] {
			continue
		}
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
		watched[dir] = true
	}
	logger.Info("watching for changes", "dirs", len(watched), "files", len(files))

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&fsnotify.Chmod == fsnotify.Chmod {
				continue
			}
			if filepath.Ext(event.Name) != ".txt" {
				continue
			}
			logger.Info("change detected", "file", event.Name, "op", event.Op.String())

			current, err := resolveFiles()
			if err != nil {
				logger.Error("failed to list stat files", "error", err)
				continue
			}
			if err := printResults(lintFiles(repo, current)); err != nil {
				logger.Error("failed to print results", "error", err)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error("watcher error", "error", err)
		}
	}
}
