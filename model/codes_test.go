package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupTransactionType(t *testing.T) {
	tests := []struct {
		name      string
		code      string
		want      TransactionType
		wantKnown bool
	}{
		{
			name:      "standard_credit",
			code:      "165",
			want:      TransactionType{Code: "165", Direction: DirectionCredit, Category: TxnPreauthorizedAchCredit},
			wantKnown: true,
		},
		{
			name:      "standard_debit",
			code:      "475",
			want:      TransactionType{Code: "475", Direction: DirectionDebit, Category: TxnCheckPaid},
			wantKnown: true,
		},
		{
			name:      "informational",
			code:      "890",
			want:      TransactionType{Code: "890", Direction: DirectionUnclassified, Category: TxnInfo},
			wantKnown: true,
		},
		{
			name: "custom_credit_lower_bound",
			code: "920",
			want: TransactionType{Code: "920", Direction: DirectionCredit, Category: TxnCustom},
		},
		{
			name: "custom_credit_upper_bound",
			code: "959",
			want: TransactionType{Code: "959", Direction: DirectionCredit, Category: TxnCustom},
		},
		{
			name: "custom_debit_range",
			code: "960",
			want: TransactionType{Code: "960", Direction: DirectionDebit, Category: TxnCustom},
		},
		{
			name: "unlisted_code",
			code: "777",
			want: TransactionType{Code: "777", Direction: DirectionUnclassified, Category: TxnUnclassified},
		},
		{
			name: "custom_range_needs_three_digits",
			code: "0950",
			want: TransactionType{Code: "0950", Direction: DirectionUnclassified, Category: TxnUnclassified},
		},
		{
			name: "empty_code",
			code: "",
			want: TransactionType{Code: "", Direction: DirectionUnclassified, Category: TxnUnclassified},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LookupTransactionType(tt.code)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantKnown, got.Known())
		})
	}
}

func TestLookupAmountType(t *testing.T) {
	tests := []struct {
		name      string
		code      string
		want      AmountType
		wantKnown bool
	}{
		{
			name:      "opening_ledger",
			code:      "010",
			want:      AmountType{Code: "010", Category: AmountStatus, Subtype: AmtOpeningLedger},
			wantKnown: true,
		},
		{
			name:      "total_credits",
			code:      "100",
			want:      AmountType{Code: "100", Category: AmountCreditSummary, Subtype: AmtTotalCredits},
			wantKnown: true,
		},
		{
			name: "custom_status",
			code: "905",
			want: AmountType{Code: "905", Category: AmountStatus, Subtype: AmtCustomStatus},
		},
		{
			name: "custom_credit_summary",
			code: "930",
			want: AmountType{Code: "930", Category: AmountCreditSummary, Subtype: AmtCustomCreditSummary},
		},
		{
			name: "custom_debit_summary",
			code: "999",
			want: AmountType{Code: "999", Category: AmountDebitSummary, Subtype: AmtCustomDebitSummary},
		},
		{
			name: "unlisted_code",
			code: "850",
			want: AmountType{Code: "850", Category: AmountUnclassified, Subtype: AmtUnclassified},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LookupAmountType(tt.code)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantKnown, got.Known())
		})
	}
}

func TestLookupFundsType(t *testing.T) {
	tests := []struct {
		name         string
		code         string
		wantCategory FundsCategory
		wantFixed    bool
		wantVariable bool
	}{
		{name: "immediate", code: "0", wantCategory: FundsImmediate},
		{name: "one_day", code: "1", wantCategory: FundsOneDay},
		{name: "two_or_more_days", code: "2", wantCategory: FundsTwoOrMoreDays},
		{name: "value_dated", code: "V", wantCategory: FundsValueDated},
		{name: "lower_case_value_dated", code: "v", wantCategory: FundsValueDated},
		{name: "fixed_distribution", code: "S", wantCategory: FundsDistributed, wantFixed: true},
		{name: "variable_distribution", code: "D", wantCategory: FundsDistributed, wantVariable: true},
		{name: "unknown", code: "Z", wantCategory: FundsUnclassified},
		{name: "blank", code: "", wantCategory: FundsUnclassified},
		{name: "other", code: "7", wantCategory: FundsUnclassified},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LookupFundsType(tt.code)
			assert.Equal(t, tt.code, got.Code)
			assert.Equal(t, tt.wantCategory, got.Category)
			assert.Equal(t, tt.wantFixed, got.FixedDistribution())
			assert.Equal(t, tt.wantVariable, got.VariableDistribution())
		})
	}
}

func TestLookupGroupCodes(t *testing.T) {
	assert.Equal(t, GroupStatus{Code: "1", Status: GroupUpdate}, LookupGroupStatus("1"))
	assert.Equal(t, GroupStatus{Code: "3", Status: GroupCorrection}, LookupGroupStatus("3"))
	assert.Equal(t, GroupStatus{Code: "8", Status: GroupCustom}, LookupGroupStatus("8"))

	assert.Equal(t, AsOfDateModifier{Code: "3", Modifier: InterimSameDay}, LookupAsOfDateModifier("3"))
	assert.Equal(t, AsOfDateModifier{Code: "X", Modifier: ModifierCustom}, LookupAsOfDateModifier("X"))
}

func TestCodeTablesAreConsistent(t *testing.T) {
	for code, entry := range transactionTypes {
		assert.Len(t, code, 3, "transaction code %q", code)
		assert.NotEqual(t, TxnUnclassified, entry.category, "transaction code %q", code)
	}
	for code, entry := range amountTypes {
		assert.Len(t, code, 3, "amount code %q", code)
		assert.NotEqual(t, AmountUnclassified, entry.category, "amount code %q", code)
	}
}
