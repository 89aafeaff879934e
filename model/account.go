package model

import "cloud.google.com/go/civil"

// Availability is the part of an amount that becomes available after Days days.
type Availability struct {
	Days   int   `json:"days"`
	Amount int64 `json:"amount"`
}

// Amount is one status or summary entry of an account header. Values are in minor
// currency units; a nil Value means the field was left blank.
type Amount struct {
	Type         AmountType     `json:"type"`
	Value        *int64         `json:"value,omitempty"`
	ItemCount    *int           `json:"item_count,omitempty"`
	FundsType    FundsType      `json:"funds_type"`
	Availability []Availability `json:"availability,omitempty"`
	ValueDate    *civil.Date    `json:"value_date,omitempty"`
	ValueTime    *Time          `json:"value_time,omitempty"`
}

// Transaction is a transaction detail record together with its continuation text.
type Transaction struct {
	Type                    TransactionType `json:"type"`
	Amount                  int64           `json:"amount"`
	FundsType               FundsType       `json:"funds_type"`
	Availability            []Availability  `json:"availability,omitempty"`
	ValueDate               *civil.Date     `json:"value_date,omitempty"`
	ValueTime               *Time           `json:"value_time,omitempty"`
	BankReferenceNumber     string          `json:"bank_reference_number"`
	CustomerReferenceNumber string          `json:"customer_reference_number"`
	Text                    []string        `json:"text"`
}

// Account is an account identifier record. TypeCode, Amount, ItemCount and FundsType
// repeat the first entry of Amounts.
type Account struct {
	AccountNumber string        `json:"account_number"`
	CurrencyCode  string        `json:"currency_code"`
	TypeCode      AmountType    `json:"type_code"`
	Amount        *int64        `json:"amount,omitempty"`
	ItemCount     *int          `json:"item_count,omitempty"`
	FundsType     FundsType     `json:"funds_type"`
	Amounts       []Amount      `json:"amounts"`
	Transactions  []Transaction `json:"transactions"`
}

// Credits sums the amounts of every credit transaction.
func (a *Account) Credits() int64 {
	return a.sumDirection(DirectionCredit)
}

// Debits sums the amounts of every debit transaction.
func (a *Account) Debits() int64 {
	return a.sumDirection(DirectionDebit)
}

func (a *Account) sumDirection(direction Direction) int64 {
	var total int64
	for _, txn := range a.Transactions {
		if txn.Type.Direction == direction {
			total += txn.Amount
		}
	}
	return total
}
