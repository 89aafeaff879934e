package cmd

import (
	"fmt"

	"github.com/criswit/bai2/bai2"
	"github.com/criswit/bai2/logger"
	"github.com/spf13/cobra"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Verify the control totals of a BAI2 file",
	Long: `Compare the control totals and record counts of every account, group and
file trailer against the records they close.

Every mismatch is listed. The command fails when at least one is found, or when
the file cannot be parsed.`,
	Example: `  # Check a file
  bai2 check statement.bai`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		lines, err := readStatement(args[0])
		if err != nil {
			return err
		}

		report, err := bai2.CheckControlTotals(lines, bai2.WithLogger(logger.FromContext(cmd.Context())))
		if err != nil {
			return fmt.Errorf("failed to check %s: %w", args[0], err)
		}

		if err := displayReport(cmd.OutOrStdout(), report, outputFormat); err != nil {
			return err
		}

		if !report.OK() {
			return fmt.Errorf("%d control total discrepancy(ies) in %s", len(report.Discrepancies), args[0])
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
