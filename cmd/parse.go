package cmd

import (
	"github.com/spf13/cobra"
)

// parseCmd represents the parse command
var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Parse a BAI2 file and display its contents",
	Long: `Parse a BAI2 file into its groups, accounts and transactions.

Every transaction, amount and funds type code is resolved against the standard
code lists. Codes outside the lists are kept and shown as unclassified. The
first malformed record stops the parse with its line number.`,
	Example: `  # Display accounts and transactions
  bai2 parse statement.bai

  # JSON output for other tools
  bai2 parse statement.bai --output json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		file, err := loadStatement(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		return displayFile(cmd.OutOrStdout(), file, outputFormat)
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)
}
