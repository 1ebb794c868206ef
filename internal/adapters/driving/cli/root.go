// Package cli implements the unifill command line interface.
package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/unifill-labs/unifill-cli/internal/adapters/driving/tui"
	"github.com/unifill-labs/unifill-cli/internal/core/domain"
	"github.com/unifill-labs/unifill-cli/internal/logger"
)

// version is overridden at build time via -ldflags.
var version = "dev"

var (
	verboseFlag bool
	backendFlag string
	datasetFlag string
	limitFlag   int
	sourceFlag  string
)

var rootCmd = &cobra.Command{
	Use:   "unifill",
	Short: "Fuzzy search and insert Unicode characters",
	Long: `Unifill searches a local Unicode character catalog by name, alias
and category, ranks the matches, and copies the chosen character to the
clipboard.

Run without arguments in a terminal to open the interactive picker.`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		logger.SetVerbose(verboseFlag)
		return initServices()
	},
	RunE: runRoot,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&backendFlag, "backend", "", "data backend (table, text-full, text-fast, sqlite)")
	rootCmd.PersistentFlags().StringVar(&datasetFlag, "dataset", "", "dataset variant (standard, extended)")
	rootCmd.PersistentFlags().IntVarP(&limitFlag, "limit", "n", 0, "maximum number of results")
	rootCmd.PersistentFlags().StringVar(&sourceFlag, "source", "", "explicit dataset source path")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// ExecuteContext runs the root command with a parent context.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func runRoot(cmd *cobra.Command, _ []string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return cmd.Help()
	}
	return runPicker(cmd)
}

// runPicker starts the interactive TUI and prints the chosen character.
func runPicker(cmd *cobra.Command) error {
	ctx := cmd.Context()

	opts := tui.Options{}
	if catalogService != nil {
		cfg := catalogService.Config()
		if cfg.Backend == domain.BackendTextFull || cfg.Backend == domain.BackendTextFast {
			// Every keystroke spawns the external search tool.
			opts.Throttle = 150 * time.Millisecond
		}
	}

	if reloadableCatalog != nil && catalogService != nil {
		watcher, err := newDatasetWatcher(ctx, catalogService.SourcePath())
		if err != nil {
			logger.Warn("dataset watcher unavailable: %v", err)
		} else {
			opts.Reloader = reloadableCatalog
			opts.Changes = watcher
		}
	}

	chosen, err := tui.Run(ctx, searchService, opts)
	if err != nil {
		return fmt.Errorf("picker failed: %w", err)
	}
	if chosen != nil {
		cmd.Println(chosen.Character)
	}
	return nil
}
