package model

import "strings"

// FundsCategory describes when the amount of a summary or detail becomes available.
type FundsCategory string

const (
	FundsImmediate     FundsCategory = "immediate_availability"
	FundsOneDay        FundsCategory = "one_day_availability"
	FundsTwoOrMoreDays FundsCategory = "two_or_more_days_availability"
	FundsValueDated    FundsCategory = "value_dated"
	FundsDistributed   FundsCategory = "distributed_availability"
	FundsUnclassified  FundsCategory = "unclassified"
)

const (
	fundsDistributedFixed    = "S"
	fundsDistributedVariable = "D"
)

// FundsType is a resolved funds type code.
type FundsType struct {
	Code     string        `json:"code"`
	Category FundsCategory `json:"category"`
}

// LookupFundsType resolves a funds type code. Blank, "Z" and any other code
// resolve to FundsUnclassified.
func LookupFundsType(code string) FundsType {
	var category FundsCategory
	switch strings.ToUpper(code) {
	case "0":
		category = FundsImmediate
	case "1":
		category = FundsOneDay
	case "2":
		category = FundsTwoOrMoreDays
	case "V":
		category = FundsValueDated
	case fundsDistributedFixed, fundsDistributedVariable:
		category = FundsDistributed
	default:
		category = FundsUnclassified
	}
	return FundsType{Code: code, Category: category}
}

// FixedDistribution reports whether the code is "S": exactly three availability
// amounts (immediate, one day, two or more days) follow the funds type.
func (f FundsType) FixedDistribution() bool {
	return strings.EqualFold(f.Code, fundsDistributedFixed)
}

// VariableDistribution reports whether the code is "D": a count followed by that many
// (days, amount) pairs.
func (f FundsType) VariableDistribution() bool {
	return strings.EqualFold(f.Code, fundsDistributedVariable)
}
