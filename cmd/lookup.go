package cmd

import (
	"fmt"
	"io"

	"github.com/criswit/bai2/model"
	"github.com/spf13/cobra"
)

// codeInfo is the resolved classification of one code
type codeInfo struct {
	Kind      string `json:"kind"`
	Code      string `json:"code"`
	Category  string `json:"category"`
	Subtype   string `json:"subtype,omitempty"`
	Direction string `json:"direction,omitempty"`
	Standard  bool   `json:"standard"`
}

// lookupCmd represents the lookup command
var lookupCmd = &cobra.Command{
	Use:   "lookup <transaction|amount|funds> <code>",
	Short: "Explain a BAI2 type code",
	Long: `Resolve a transaction detail, amount summary or funds type code to its
classification.

Codes in the bank-defined ranges resolve to a custom classification. Any other
code missing from the standard lists resolves to unclassified.`,
	Example: `  # Transaction detail code
  bai2 lookup transaction 165

  # Account summary code
  bai2 lookup amount 015

  # Funds type
  bai2 lookup funds S`,
	Args:      cobra.ExactArgs(2),
	ValidArgs: []string{"transaction", "amount", "funds"},
	RunE: func(cmd *cobra.Command, args []string) error {
		info, err := lookupCode(args[0], args[1])
		if err != nil {
			return err
		}

		return displayCodeInfo(cmd.OutOrStdout(), info, outputFormat)
	},
}

func lookupCode(kind, code string) (codeInfo, error) {
	switch kind {
	case "transaction":
		t := model.LookupTransactionType(code)
		return codeInfo{
			Kind:      kind,
			Code:      t.Code,
			Category:  string(t.Category),
			Direction: string(t.Direction),
			Standard:  t.Known(),
		}, nil
	case "amount":
		a := model.LookupAmountType(code)
		return codeInfo{
			Kind:     kind,
			Code:     a.Code,
			Category: string(a.Category),
			Subtype:  string(a.Subtype),
			Standard: a.Known(),
		}, nil
	case "funds":
		f := model.LookupFundsType(code)
		return codeInfo{
			Kind:     kind,
			Code:     f.Code,
			Category: string(f.Category),
			Standard: f.Category != model.FundsUnclassified,
		}, nil
	default:
		return codeInfo{}, fmt.Errorf("unknown code kind %q: want transaction, amount or funds", kind)
	}
}

func displayCodeInfo(w io.Writer, info codeInfo, format string) error {
	switch format {
	case "json":
		return displayJSON(w, info)
	case "table":
		fmt.Fprintf(w, "Code: %s (%s)\n", info.Code, info.Kind)
		fmt.Fprintf(w, "   Category: %s\n", info.Category)
		if info.Subtype != "" {
			fmt.Fprintf(w, "   Subtype: %s\n", info.Subtype)
		}
		if info.Direction != "" {
			fmt.Fprintf(w, "   Direction: %s\n", info.Direction)
		}
		fmt.Fprintf(w, "   Standard: %t\n", info.Standard)
		return nil
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

func init() {
	rootCmd.AddCommand(lookupCmd)
}
