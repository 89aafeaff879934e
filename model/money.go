package model

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Currencies whose minor unit is not one hundredth of the major unit.
var minorUnitExponents = map[string]int32{
	"BHD": 3,
	"CLP": 0,
	"IQD": 3,
	"ISK": 0,
	"JOD": 3,
	"JPY": 0,
	"KRW": 0,
	"KWD": 3,
	"LYD": 3,
	"OMR": 3,
	"PYG": 0,
	"TND": 3,
	"UGX": 0,
	"VND": 0,
	"XAF": 0,
	"XOF": 0,
}

// MinorUnitExponent is the number of decimal places of currency. Unlisted
// currencies use two.
func MinorUnitExponent(currency string) int32 {
	if exp, ok := minorUnitExponents[strings.ToUpper(currency)]; ok {
		return exp
	}
	return 2
}

// MajorUnits converts an amount in minor units to a decimal in major units of currency.
func MajorUnits(minor int64, currency string) decimal.Decimal {
	return decimal.New(minor, -MinorUnitExponent(currency))
}

// FormatMinorUnits renders an amount in major units with every decimal place of
// currency, e.g. 1500000 USD as "15000.00".
func FormatMinorUnits(minor int64, currency string) string {
	return MajorUnits(minor, currency).StringFixed(MinorUnitExponent(currency))
}
