package db

import (
	"context"

	"cloud.google.com/go/civil"
	"github.com/criswit/bai2/model"
)

// StatementStore persists one parsed BAI2 file under an import run id.
type StatementStore interface {
	PutStatement(ctx context.Context, runID string, file *model.FileRecord) error
}

var (
	_ StatementStore = (*DatabaseClient)(nil)
	_ StatementStore = (*MongoStore)(nil)
)

// transactionKey locates a transaction inside its file.
type transactionKey struct {
	GroupIndex       int
	AccountIndex     int
	TransactionIndex int
}

// walkTransactions calls fn for every transaction in file order.
func walkTransactions(file *model.FileRecord, fn func(key transactionKey, group *model.Group, account *model.Account, txn *model.Transaction) error) error {
	for gi := range file.Groups {
		group := &file.Groups[gi]
		for ai := range group.Accounts {
			account := &group.Accounts[ai]
			for ti := range account.Transactions {
				key := transactionKey{GroupIndex: gi, AccountIndex: ai, TransactionIndex: ti}
				if err := fn(key, group, account, &account.Transactions[ti]); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// optionalDate renders a value date as YYYY-MM-DD, or nil when absent.
func optionalDate(d *civil.Date) *string {
	if d == nil {
		return nil
	}
	s := d.String()
	return &s
}
