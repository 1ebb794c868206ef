package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/unifill-labs/unifill-cli/internal/core/domain"
)

var (
	searchJSON  bool
	searchCopy  bool
	searchQuick bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the character catalog",
	Long: `Searches the character catalog by name, alias and category and
prints the matches best-first. Multi-word queries require every word to
match.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	searchCmd.Flags().BoolVar(&searchCopy, "copy", false, "copy the top match to the clipboard")
	searchCmd.Flags().BoolVar(&searchQuick, "quick", false, "minimal-parse line search (text-fast backend only)")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	prompt := args[0]

	if searchService == nil {
		return errors.New("search service not configured")
	}

	if searchQuick {
		return runQuickSearch(cmd, prompt)
	}

	results, err := searchService.Search(cmd.Context(), prompt)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if searchCopy && len(results) > 0 {
		if err := clipboard.WriteAll(results[0].Entry.Character); err != nil {
			return fmt.Errorf("clipboard copy failed: %w", err)
		}
	}

	if searchJSON {
		return outputSearchJSON(cmd, results)
	}
	return outputSearchTable(cmd, results)
}

// runQuickSearch bypasses scoring and prints the fast variant's
// pre-joined display lines in file order.
func runQuickSearch(cmd *cobra.Command, prompt string) error {
	if quickSearcher == nil {
		return fmt.Errorf("%w: --quick requires the %s backend", domain.ErrInvalidInput, domain.BackendTextFast)
	}
	if !quickSearcher.Active() {
		return fmt.Errorf("%w: the %s backend is not active", domain.ErrBackendUnavailable, domain.BackendTextFast)
	}

	hits, err := quickSearcher.QuickSearch(cmd.Context(), prompt)
	if err != nil {
		return fmt.Errorf("quick search failed: %w", err)
	}

	if searchJSON {
		data, err := json.MarshalIndent(hits, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal hits: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	for _, hit := range hits {
		cmd.Println(hit.Display)
	}
	return nil
}

func outputSearchJSON(cmd *cobra.Command, results []domain.SearchResult) error {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputSearchTable(cmd *cobra.Command, results []domain.SearchResult) error {
	if len(results) == 0 {
		cmd.Println("No matches found.")
		return nil
	}

	for i := range results {
		entry := results[i].Entry
		cmd.Printf("%s  %s  %s  %s", entry.Character, entry.CodePoint, entry.Name, entry.FriendlyCategory())
		if len(entry.Aliases) > 0 {
			cmd.Printf("  (%s)", strings.Join(entry.Aliases, ", "))
		}
		cmd.Println()
	}
	return nil
}
