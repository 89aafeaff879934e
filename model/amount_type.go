package model

import "strconv"

// AmountCategory groups account header amount type codes.
type AmountCategory string

const (
	AmountStatus        AmountCategory = "status"
	AmountCreditSummary AmountCategory = "credit_summary"
	AmountDebitSummary  AmountCategory = "debit_summary"
	AmountUnclassified  AmountCategory = "unclassified"
)

// AmountType is a resolved status or summary type code carried by an account header.
type AmountType struct {
	Code     string         `json:"code"`
	Category AmountCategory `json:"category"`
	Subtype  AmountSubtype  `json:"subtype"`
}

type amountEntry struct {
	category AmountCategory
	subtype  AmountSubtype
}

// LookupAmountType resolves an account header type code. Like LookupTransactionType it
// is total; unknown codes keep their raw value with AmountUnclassified.
func LookupAmountType(code string) AmountType {
	if entry, ok := amountTypes[code]; ok {
		return AmountType{Code: code, Category: entry.category, Subtype: entry.subtype}
	}

	if n, err := strconv.Atoi(code); err == nil && len(code) == 3 {
		switch {
		case n >= 900 && n <= 919:
			return AmountType{Code: code, Category: AmountStatus, Subtype: AmtCustomStatus}
		case n >= 920 && n <= 959:
			return AmountType{Code: code, Category: AmountCreditSummary, Subtype: AmtCustomCreditSummary}
		case n >= 960 && n <= 999:
			return AmountType{Code: code, Category: AmountDebitSummary, Subtype: AmtCustomDebitSummary}
		}
	}

	return AmountType{Code: code, Category: AmountUnclassified, Subtype: AmtUnclassified}
}

// Known reports whether the code is defined by the standard code list.
func (a AmountType) Known() bool {
	_, ok := amountTypes[a.Code]
	return ok
}
