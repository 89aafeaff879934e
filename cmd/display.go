package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/criswit/bai2/bai2"
	"github.com/criswit/bai2/model"
)

// displayFile formats and displays a parsed file
func displayFile(w io.Writer, file *model.FileRecord, format string) error {
	switch format {
	case "json":
		return displayJSON(w, file)
	case "table":
		return displayFileTable(w, file)
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

func displayFileTable(w io.Writer, file *model.FileRecord) error {
	fmt.Fprintf(w, "File %s from %s to %s, created %s\n", file.FileID, file.SenderID, file.ReceiverID, file.CreationDate)
	fmt.Fprintf(w, "Found %d group(s), %d transaction(s)\n\n", len(file.Groups), file.TransactionCount())

	for gi, group := range file.Groups {
		fmt.Fprintf(w, "%d. Group from %s, as of %s (%s)\n", gi+1, group.OriginatorID, group.AsOfDate, group.Status.Status)
		for _, account := range group.Accounts {
			fmt.Fprintf(w, "   Account: %s (%s)\n", account.AccountNumber, account.CurrencyCode)
			for _, amount := range account.Amounts {
				value := "-"
				if amount.Value != nil {
					value = model.FormatMinorUnits(*amount.Value, account.CurrencyCode)
				}
				fmt.Fprintf(w, "   %s %s: %s\n", amount.Type.Code, amount.Type.Subtype, value)
			}
			if len(account.Transactions) > 0 {
				if err := displayTransactions(w, &account); err != nil {
					return err
				}
			}
			fmt.Fprintln(w)
		}
	}
	return nil
}

func displayTransactions(w io.Writer, account *model.Account) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "   CODE\tDIRECTION\tAMOUNT\tBANK REF\tTEXT")
	for _, txn := range account.Transactions {
		fmt.Fprintf(tw, "   %s\t%s\t%s\t%s\t%s\n",
			txn.Type.Code,
			txn.Type.Direction,
			model.FormatMinorUnits(txn.Amount, account.CurrencyCode),
			txn.BankReferenceNumber,
			strings.Join(txn.Text, " "),
		)
	}
	return tw.Flush()
}

// displayReport formats and displays a control total report
func displayReport(w io.Writer, report *bai2.ControlReport, format string) error {
	switch format {
	case "json":
		return displayJSON(w, report)
	case "table":
		if report.OK() {
			fmt.Fprintln(w, "All control totals match")
			return nil
		}
		fmt.Fprintf(w, "Found %d discrepancy(ies):\n", len(report.Discrepancies))
		for i, d := range report.Discrepancies {
			fmt.Fprintf(w, "%d. Line %d, %s %s: reported %d, computed %d\n", i+1, d.Line, d.Level, d.Field, d.Reported, d.Computed)
		}
		return nil
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

func displayJSON(w io.Writer, v interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
