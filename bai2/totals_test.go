package bai2

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckControlTotals(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  []Discrepancy
	}{
		{
			name:  "balanced_file",
			lines: splitLines(canonicalFile),
			want:  nil,
		},
		{
			name: "blank_trailer_fields_are_not_checked",
			lines: []string{
				"01,SENDR1,RECVR1,210706,1611,0,,,2/",
				"02,RECVR1,SENDR1,1,210706,1611,USD,2/",
				"03,123,,010,100,,/",
				"49,,/",
				"98,,,/",
				"99,,,/",
			},
			want: nil,
		},
		{
			name: "account_total_mismatch_propagates",
			lines: []string{
				"01,SENDR1,RECVR1,210706,1611,0,,,2/",
				"02,RECVR1,SENDR1,1,210706,1611,USD,2/",
				"03,123,,010,100,,/",
				"16,399,50,0,,,TEXT",
				"49,100,3/",
				"98,100,1,5/",
				"99,150,1,7/",
			},
			want: []Discrepancy{
				{Level: "account 123", Line: 5, Field: "control_total", Reported: 100, Computed: 150},
				{Level: "group", Line: 6, Field: "control_total", Reported: 100, Computed: 150},
			},
		},
		{
			name: "record_and_group_counts",
			lines: []string{
				"01,SENDR1,RECVR1,210706,1611,0,,,2/",
				"02,RECVR1,SENDR1,1,210706,1611,USD,2/",
				"03,123,,010,100,,/",
				"88,015,100,,/",
				"49,200,2/",
				"98,200,2,5/",
				"99,200,2,7/",
			},
			want: []Discrepancy{
				{Level: "account 123", Line: 5, Field: "number_of_records", Reported: 2, Computed: 3},
				{Level: "group", Line: 6, Field: "number_of_accounts", Reported: 2, Computed: 1},
				{Level: "file", Line: 7, Field: "number_of_groups", Reported: 2, Computed: 1},
			},
		},
		{
			name: "negative_totals",
			lines: []string{
				"01,SENDR1,RECVR1,210706,1611,0,,,2/",
				"02,RECVR1,SENDR1,1,210706,1611,USD,2/",
				"03,123,,015,-300,,/",
				"16,475,200,0,,,CHECK",
				"49,-100,3/",
				"98,-100,1,5/",
				"99,-100,1,7/",
			},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report, err := CheckControlTotals(tt.lines)
			require.NoError(t, err)

			assert.Equal(t, tt.want, report.Discrepancies)
			assert.Equal(t, len(tt.want) == 0, report.OK())
		})
	}
}

func TestCheckControlTotalsErrors(t *testing.T) {
	t.Run("malformed_trailer_value", func(t *testing.T) {
		lines := splitLines(canonicalFile)
		lines[5] = "49,26X0000,4/"

		_, err := CheckControlTotals(lines)

		var fieldErr *FieldParseError
		require.ErrorAs(t, err, &fieldErr)
		assert.Equal(t, 6, fieldErr.Line)
		assert.Equal(t, AccountTrailer, fieldErr.RecordType)
		assert.Equal(t, "control_total", fieldErr.Field)
	})

	t.Run("malformed_file_header", func(t *testing.T) {
		lines := splitLines(canonicalFile)
		lines[0] = "01,SENDR1,RECVR1,219999,1611,0,,,2/"

		report, err := CheckControlTotals(lines)
		assert.Nil(t, report)

		var fieldErr *FieldParseError
		require.ErrorAs(t, err, &fieldErr)
		assert.Equal(t, 1, fieldErr.Line)
		assert.Equal(t, FileHeader, fieldErr.RecordType)
		assert.Equal(t, "creation_date", fieldErr.Field)
		assert.Equal(t, "219999", fieldErr.Value)
	})

	t.Run("malformed_group_header", func(t *testing.T) {
		lines := splitLines(canonicalFile)
		lines[1] = "02,RECVR1,SENDR1,1,BADDAT,1611,CAD,2/"

		_, err := CheckControlTotals(lines)

		var fieldErr *FieldParseError
		require.ErrorAs(t, err, &fieldErr)
		assert.Equal(t, 2, fieldErr.Line)
		assert.Equal(t, GroupHeader, fieldErr.RecordType)
		assert.Equal(t, "as_of_date", fieldErr.Field)
	})

	t.Run("malformed_transaction_detail", func(t *testing.T) {
		lines := splitLines(canonicalFile)
		lines[3] = "16,165,15X0000,1,DD1620,,DEALER PAYMENTS"

		_, err := CheckControlTotals(lines)

		var fieldErr *FieldParseError
		require.ErrorAs(t, err, &fieldErr)
		assert.Equal(t, 4, fieldErr.Line)
		assert.Equal(t, "amount", fieldErr.Field)
	})

	t.Run("structural_errors_are_returned", func(t *testing.T) {
		_, err := CheckControlTotals([]string{"01,SENDR1,RECVR1,210706,1611,0,,,2/"})

		var orderErr *UnexpectedRecordOrderError
		assert.ErrorAs(t, err, &orderErr)
	})

	t.Run("empty_input", func(t *testing.T) {
		_, err := CheckControlTotals(nil)
		assert.ErrorIs(t, err, ErrEmptyInput)
	})
}
