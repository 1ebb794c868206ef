package cli

import (
	"sort"

	"github.com/spf13/cobra"

	"github.com/unifill-labs/unifill-cli/internal/core/domain"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List the recognised character categories",
	Run:   runCategories,
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
}

func runCategories(cmd *cobra.Command, _ []string) {
	labels := domain.CategoryLabels()

	codes := make([]string, 0, len(labels))
	for code := range labels {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	for _, code := range codes {
		cmd.Printf("%-3s %s\n", code, labels[code])
	}
}
