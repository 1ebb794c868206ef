package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/unifill-labs/unifill-cli/internal/core/domain"
	"github.com/unifill-labs/unifill-cli/internal/logger"
)

var convertOut string

var datasetCmd = &cobra.Command{
	Use:   "dataset",
	Short: "Inspect and convert the local dataset",
}

var datasetPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the resolved dataset source path",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if catalogService == nil {
			return errors.New("catalog service not configured")
		}
		cmd.Println(catalogService.SourcePath())
		return nil
	},
}

var datasetConvertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert the catalog to the pipe-delimited text format",
	Long: `Loads the catalog through the configured backend and writes it as
pipe-delimited lines, the format consumed by the text backends.`,
	RunE: runDatasetConvert,
}

func init() {
	datasetConvertCmd.Flags().StringVarP(&convertOut, "out", "o", "", "output file (defaults to the source path with a .txt extension)")
	datasetCmd.AddCommand(datasetPathCmd)
	datasetCmd.AddCommand(datasetConvertCmd)
	rootCmd.AddCommand(datasetCmd)
}

func runDatasetConvert(cmd *cobra.Command, _ []string) error {
	if catalogService == nil {
		return errors.New("catalog service not configured")
	}

	entries, err := catalogService.Load(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	out := convertOut
	if out == "" {
		out = textPathFor(catalogService.SourcePath())
	}

	var sb strings.Builder
	for _, entry := range entries {
		sb.WriteString(domain.FormatLine(entry))
		sb.WriteByte('\n')
	}

	if err := os.WriteFile(out, []byte(sb.String()), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", out, err)
	}

	logger.Info("wrote %d entries", len(entries))
	cmd.Println(out)
	return nil
}

// textPathFor swaps the source extension for .txt.
func textPathFor(sourcePath string) string {
	if idx := strings.LastIndex(sourcePath, "."); idx > 0 {
		return sourcePath[:idx] + ".txt"
	}
	return sourcePath + ".txt"
}
