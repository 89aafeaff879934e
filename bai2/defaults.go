package bai2

import "github.com/criswit/bai2/model"

// DefaultCurrency is the group currency when a group header leaves it blank.
const DefaultCurrency = "USD"

// applyDefaults runs top-down: a group's currency is settled before its accounts
// inherit it.
func applyDefaults(file *model.FileRecord) {
	for gi := range file.Groups {
		group := &file.Groups[gi]
		if group.CurrencyCode == "" {
			group.CurrencyCode = DefaultCurrency
		}
		for ai := range group.Accounts {
			account := &group.Accounts[ai]
			if account.CurrencyCode == "" {
				account.CurrencyCode = group.CurrencyCode
			}
		}
	}
}
