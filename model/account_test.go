package model

import (
	"encoding/json"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test fixtures
var (
	openingLedger = int64(500000)

	validAccount = Account{
		AccountNumber: "10200123456",
		CurrencyCode:  "CAD",
		TypeCode:      LookupAmountType("010"),
		Amount:        &openingLedger,
		FundsType:     LookupFundsType(""),
		Amounts: []Amount{
			{Type: LookupAmountType("010"), Value: &openingLedger, FundsType: LookupFundsType("")},
		},
		Transactions: []Transaction{
			{
				Type:                LookupTransactionType("165"),
				Amount:              1500000,
				FundsType:           LookupFundsType("1"),
				BankReferenceNumber: "DD1620",
				Text:                []string{"DEALER PAYMENTS"},
			},
			{
				Type:      LookupTransactionType("475"),
				Amount:    25000,
				FundsType: LookupFundsType("0"),
				Text:      []string{},
			},
			{
				Type:      LookupTransactionType("195"),
				Amount:    1000,
				FundsType: LookupFundsType("0"),
				Text:      []string{},
			},
			{
				Type:      LookupTransactionType("890"),
				Amount:    999,
				FundsType: LookupFundsType("0"),
				Text:      []string{"INFO ONLY"},
			},
		},
	}
)

func TestAccountDirectionTotals(t *testing.T) {
	assert.Equal(t, int64(1501000), validAccount.Credits())
	assert.Equal(t, int64(25000), validAccount.Debits())

	empty := Account{}
	assert.Zero(t, empty.Credits())
	assert.Zero(t, empty.Debits())
}

func TestAccountJSONMarshaling(t *testing.T) {
	data, err := json.Marshal(validAccount)
	require.NoError(t, err)

	var result map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &result))

	assert.Equal(t, "10200123456", result["account_number"])
	assert.Equal(t, "CAD", result["currency_code"])
	assert.Equal(t, float64(500000), result["amount"])
	assert.NotContains(t, result, "item_count")

	typeCode := result["type_code"].(map[string]interface{})
	assert.Equal(t, "010", typeCode["code"])
	assert.Equal(t, "status", typeCode["category"])
	assert.Equal(t, "opening_ledger", typeCode["subtype"])

	txns := result["transactions"].([]interface{})
	require.Len(t, txns, 4)
	first := txns[0].(map[string]interface{})
	txnType := first["type"].(map[string]interface{})
	assert.Equal(t, "165", txnType["code"])
	assert.Equal(t, "credit", txnType["direction"])
	assert.Equal(t, "preauthorized_ach_credit", txnType["category"])
	assert.Equal(t, []interface{}{"DEALER PAYMENTS"}, first["text"])
	assert.NotContains(t, first, "value_date")
}

func TestFileRecordJSONMarshaling(t *testing.T) {
	version := 2
	file := FileRecord{
		SenderID:      "SENDR1",
		ReceiverID:    "RECVR1",
		CreationDate:  civil.Date{Year: 2021, Month: time.July, Day: 6},
		CreationTime:  &Time{Clock: civil.Time{Hour: 16, Minute: 11}},
		FileID:        "0",
		VersionNumber: &version,
		Groups: []Group{
			{
				UltimateReceiverID: "RECVR1",
				OriginatorID:       "SENDR1",
				Status:             LookupGroupStatus("1"),
				AsOfDate:           civil.Date{Year: 2021, Month: time.July, Day: 6},
				AsOfTime:           &Time{EndOfDay: true},
				CurrencyCode:       "CAD",
				Accounts:           []Account{validAccount},
			},
		},
	}

	data, err := json.Marshal(file)
	require.NoError(t, err)

	var result map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &result))

	assert.Equal(t, "2021-07-06", result["creation_date"])
	assert.Equal(t, "16:11:00", result["creation_time"])
	assert.Equal(t, float64(2), result["version_number"])
	assert.NotContains(t, result, "block_size")

	groups := result["groups"].([]interface{})
	require.Len(t, groups, 1)
	group := groups[0].(map[string]interface{})
	assert.Equal(t, "end_of_day", group["as_of_time"])
	assert.Equal(t, map[string]interface{}{"code": "1", "status": "update"}, group["status"])
	assert.NotContains(t, group, "as_of_date_modifier")

	assert.Equal(t, 4, file.TransactionCount())
}

func TestTimeString(t *testing.T) {
	tests := []struct {
		name string
		time Time
		want string
	}{
		{name: "clock", time: Time{Clock: civil.Time{Hour: 8, Minute: 5}}, want: "08:05:00"},
		{name: "end_of_day", time: Time{EndOfDay: true}, want: "end_of_day"},
		{name: "unknown", time: Time{Unknown: true}, want: "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.time.String())

			text, err := tt.time.MarshalText()
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(text))
		})
	}
}

func TestMajorUnits(t *testing.T) {
	tests := []struct {
		name     string
		minor    int64
		currency string
		want     string
	}{
		{name: "two_decimal_currency", minor: 1500000, currency: "USD", want: "15000"},
		{name: "cents", minor: 12345, currency: "CAD", want: "123.45"},
		{name: "negative", minor: -5, currency: "EUR", want: "-0.05"},
		{name: "zero_decimal_currency", minor: 1500, currency: "JPY", want: "1500"},
		{name: "three_decimal_currency", minor: 12345, currency: "KWD", want: "12.345"},
		{name: "lower_case_currency", minor: 12345, currency: "kwd", want: "12.345"},
		{name: "unlisted_currency", minor: 199, currency: "", want: "1.99"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MajorUnits(tt.minor, tt.currency).String())
		})
	}
}

func TestFormatMinorUnits(t *testing.T) {
	tests := []struct {
		name     string
		minor    int64
		currency string
		want     string
	}{
		{name: "keeps_trailing_zeros", minor: 1500000, currency: "USD", want: "15000.00"},
		{name: "negative_cents", minor: -5, currency: "CAD", want: "-0.05"},
		{name: "zero", minor: 0, currency: "EUR", want: "0.00"},
		{name: "zero_decimal_currency", minor: 1500, currency: "JPY", want: "1500"},
		{name: "three_decimal_currency", minor: 1000, currency: "BHD", want: "1.000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatMinorUnits(tt.minor, tt.currency))
		})
	}

	assert.Equal(t, int32(2), MinorUnitExponent("usd"))
	assert.Equal(t, int32(0), MinorUnitExponent("JPY"))
}
