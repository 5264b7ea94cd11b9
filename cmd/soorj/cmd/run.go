package cmd

import (
	"fmt"
	"os"

	"github.com/soorj-lang/soorj/internal/interp"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run <file>",
	Short: "Run a Soorj source file",
	Long: `Execute a Soorj program read from a file.

Example:
  soorj run hello.soorj`,
	Args: cobra.ExactArgs(1),
	RunE: runFile,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runFile(_ *cobra.Command, args []string) error {
	filename := args[0]
	content, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	result := interp.RunSource(string(content), os.Stdout)
	if !result.Ok() {
		for _, diag := range result.Errors {
			fmt.Fprintln(os.Stdout, diag.Format(true))
		}
		return fmt.Errorf("%s failed with %d error(s)", filename, len(result.Errors))
	}

	return nil
}
