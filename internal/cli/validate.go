package cli

import (
	"fmt"

	"github.com/oneclick-labs/ymp/internal/ymp"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file>...",
	Short: "Check .ymp files for well-formedness and repository problems",
	Long: `Parse each file strictly and check every repository against the descriptor
schema: a url with a supported scheme, a known repository format, an alias
without slashes, and well-formed locale tags.

Exits non-zero if any file is missing, malformed, or has issues.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	failed := 0

	for _, path := range args {
		result, err := ymp.ValidateFile(path)
		if err != nil {
			currentLogger().Error("validation aborted", "path", path, "err", err)
			fmt.Fprintf(out, "%s: %v\n", path, err)
			failed++
			continue
		}

		if result.Valid {
			fmt.Fprintf(out, "%s: valid\n", path)
			continue
		}

		failed++
		fmt.Fprintf(out, "%s: %d issue(s)\n", path, len(result.Issues))
		for _, issue := range result.Issues {
			fmt.Fprintf(out, "  %s\n", issue)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d file(s) failed validation", failed, len(args))
	}
	return nil
}
