package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/criswit/bai2/bai2"
	"github.com/criswit/bai2/config"
	"github.com/criswit/bai2/logger"
	"github.com/criswit/bai2/model"
	"github.com/spf13/cobra"
)

var (
	outputFormat string
	logLevel     string
	cfg          *config.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "bai2",
	Short: "A CLI tool for reading BAI2 cash management files",
	Long: `bai2 reads BAI2 cash management files as sent by banks for balance and
transaction reporting. It parses a file into its groups, accounts and
transactions, resolves every type code, checks the control totals carried by
the trailer records, and stores parsed statements in SQLite or MongoDB.

Connection settings can come from flags, BAI2_* environment variables or a
JSON secret in AWS Secrets Manager.`,
	Example: `  # Show the accounts and transactions of a file
  bai2 parse statement.bai

  # Print the parsed file as JSON
  bai2 parse statement.bai --output json

  # Verify the trailer control totals
  bai2 check statement.bai

  # Store a file in the local SQLite database
  bai2 store statement.bai

  # Explain a transaction type code
  bai2 lookup transaction 165`,
	Version:       "1.0.0",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		log := logger.New(logLevel, cmd.ErrOrStderr())
		ctx := logger.WithContext(cmd.Context(), log)

		cfg = config.Load(ctx)
		if !cmd.Flags().Changed("output") {
			outputFormat = cfg.Output
		}

		cmd.SetContext(ctx)
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	ctx := context.Background()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "table", "Output format (table, json)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", config.DefaultLogLevel(), "Log level (debug, info, warn, error)")
}

// readStatement reads every line of the file at path.
func readStatement(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	return bai2.ReadLines(f)
}

// loadStatement reads and parses the file at path, logging through the command
// context logger.
func loadStatement(ctx context.Context, path string) (*model.FileRecord, error) {
	lines, err := readStatement(path)
	if err != nil {
		return nil, err
	}

	file, err := bai2.Parse(lines, bai2.WithLogger(logger.FromContext(ctx)))
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return file, nil
}
