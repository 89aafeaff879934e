package model

import "strconv"

// Direction is the side of the ledger a transaction type code posts to.
type Direction string

const (
	DirectionCredit       Direction = "credit"
	DirectionDebit        Direction = "debit"
	DirectionUnclassified Direction = "unclassified"
)

// TransactionType is a resolved transaction detail type code. Code always holds the
// code exactly as it appeared in the file, whether or not the code list defines it.
type TransactionType struct {
	Code      string              `json:"code"`
	Direction Direction           `json:"direction"`
	Category  TransactionCategory `json:"category"`
}

type transactionEntry struct {
	direction Direction
	category  TransactionCategory
}

// LookupTransactionType resolves a type code. It never fails: codes outside the
// code list resolve to TxnCustom (bank-defined ranges) or TxnUnclassified.
func LookupTransactionType(code string) TransactionType {
	if entry, ok := transactionTypes[code]; ok {
		return TransactionType{Code: code, Direction: entry.direction, Category: entry.category}
	}

	if n, err := strconv.Atoi(code); err == nil && len(code) == 3 {
		switch {
		case n >= 920 && n <= 959:
			return TransactionType{Code: code, Direction: DirectionCredit, Category: TxnCustom}
		case n >= 960 && n <= 999:
			return TransactionType{Code: code, Direction: DirectionDebit, Category: TxnCustom}
		}
	}

	return TransactionType{Code: code, Direction: DirectionUnclassified, Category: TxnUnclassified}
}

// Known reports whether the code is defined by the standard code list.
func (t TransactionType) Known() bool {
	_, ok := transactionTypes[t.Code]
	return ok
}
