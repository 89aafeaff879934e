package bai2

import (
	"github.com/criswit/bai2/model"
	"github.com/rs/zerolog"
)

// Trailer field positions.
const (
	accountTrailerTotalField   = 1
	accountTrailerRecordsField = 2

	groupTrailerTotalField    = 1
	groupTrailerAccountsField = 2
	groupTrailerRecordsField  = 3

	fileTrailerTotalField   = 1
	fileTrailerGroupsField  = 2
	fileTrailerRecordsField = 3
)

// Discrepancy is a trailer value that disagrees with the records it closes.
type Discrepancy struct {
	Level    string `json:"level"`
	Line     int    `json:"line"`
	Field    string `json:"field"`
	Reported int64  `json:"reported"`
	Computed int64  `json:"computed"`
}

// ControlReport lists every discrepancy found by CheckControlTotals.
type ControlReport struct {
	Discrepancies []Discrepancy `json:"discrepancies"`
}

// OK reports whether every trailer matched.
func (r *ControlReport) OK() bool {
	return len(r.Discrepancies) == 0
}

// CheckControlTotals compares the control totals and record counts of every trailer
// against values computed from the file. Mismatches are collected in the report;
// only malformed input is an error. Parse never runs this check.
func CheckControlTotals(lines []string, opts ...Option) (*ControlReport, error) {
	o := newOptions(opts)

	tree, err := scan(lines, o.log)
	if err != nil {
		return nil, err
	}

	resolved, err := (&resolver{log: o.log}).file(tree)
	if err != nil {
		return nil, err
	}

	c := &checker{log: o.log, report: &ControlReport{}}
	if err := c.file(tree, resolved); err != nil {
		return nil, err
	}
	return c.report, nil
}

// checker walks the scanned tree next to its resolved form. Record counts come
// from the tree, amounts from the resolved records.
type checker struct {
	log    zerolog.Logger
	report *ControlReport
}

func (c *checker) file(node *fileNode, file *model.FileRecord) error {
	var total int64
	records := recordCount(node.header) + recordCount(node.trailer)
	for gi, g := range node.groups {
		groupTotal, groupRecords, err := c.group(g, &file.Groups[gi])
		if err != nil {
			return err
		}
		total += groupTotal
		records += groupRecords
	}

	f := newFieldReader(node.trailer, false)
	if err := c.compare(f, "file", fileTrailerTotalField, "control_total", total); err != nil {
		return err
	}
	if err := c.compare(f, "file", fileTrailerGroupsField, "number_of_groups", int64(len(node.groups))); err != nil {
		return err
	}
	return c.compare(f, "file", fileTrailerRecordsField, "number_of_records", int64(records))
}

func (c *checker) group(node *groupNode, group *model.Group) (int64, int, error) {
	var total int64
	records := recordCount(node.header) + recordCount(node.trailer)
	for ai, a := range node.accounts {
		accountTotal, accountRecords, err := c.account(a, &group.Accounts[ai])
		if err != nil {
			return 0, 0, err
		}
		total += accountTotal
		records += accountRecords
	}

	f := newFieldReader(node.trailer, false)
	if err := c.compare(f, "group", groupTrailerTotalField, "control_total", total); err != nil {
		return 0, 0, err
	}
	if err := c.compare(f, "group", groupTrailerAccountsField, "number_of_accounts", int64(len(node.accounts))); err != nil {
		return 0, 0, err
	}
	if err := c.compare(f, "group", groupTrailerRecordsField, "number_of_records", int64(records)); err != nil {
		return 0, 0, err
	}
	return total, records, nil
}

func (c *checker) account(node *accountNode, account *model.Account) (int64, int, error) {
	total := accountControlTotal(account)
	records := recordCount(node.header) + recordCount(node.trailer)
	for _, rec := range node.transactions {
		records += recordCount(rec)
	}

	f := newFieldReader(node.trailer, false)
	if err := c.compare(f, "account "+account.AccountNumber, accountTrailerTotalField, "control_total", total); err != nil {
		return 0, 0, err
	}
	if err := c.compare(f, "account "+account.AccountNumber, accountTrailerRecordsField, "number_of_records", int64(records)); err != nil {
		return 0, 0, err
	}
	return total, records, nil
}

// compare records a discrepancy when the trailer field at i differs from computed.
// Blank trailer fields are not checked.
func (c *checker) compare(f *fieldReader, level string, i int, field string, computed int64) error {
	reported, err := f.optionalAmount(i, field)
	if err != nil {
		return err
	}
	if reported == nil || *reported == computed {
		return nil
	}

	c.report.Discrepancies = append(c.report.Discrepancies, Discrepancy{
		Level:    level,
		Line:     f.line(i),
		Field:    field,
		Reported: *reported,
		Computed: computed,
	})
	c.log.Debug().Str("level", level).Str("field", field).
		Int64("reported", *reported).Int64("computed", computed).Msg("control total mismatch")
	return nil
}

// accountControlTotal sums every amount of the account identifier and its
// transaction details.
func accountControlTotal(account *model.Account) int64 {
	var total int64
	for _, amount := range account.Amounts {
		if amount.Value != nil {
			total += *amount.Value
		}
	}
	for _, txn := range account.Transactions {
		total += txn.Amount
	}
	return total
}

func recordCount(rec record) int {
	return 1 + len(rec.continuations)
}
