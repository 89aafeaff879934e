package model

import "cloud.google.com/go/civil"

// GroupStatus is the update status of a group of accounts.
type GroupStatus struct {
	Code   string          `json:"code"`
	Status GroupStatusKind `json:"status"`
}

// GroupStatusKind classifies a group status code.
type GroupStatusKind string

const (
	GroupUpdate     GroupStatusKind = "update"
	GroupDeletion   GroupStatusKind = "deletion"
	GroupCorrection GroupStatusKind = "correction"
	GroupTestOnly   GroupStatusKind = "test_only"
	GroupCustom     GroupStatusKind = "custom"
)

// LookupGroupStatus resolves a group status code.
func LookupGroupStatus(code string) GroupStatus {
	status := GroupCustom
	switch code {
	case "1":
		status = GroupUpdate
	case "2":
		status = GroupDeletion
	case "3":
		status = GroupCorrection
	case "4":
		status = GroupTestOnly
	}
	return GroupStatus{Code: code, Status: status}
}

// AsOfDateModifier qualifies the as-of date of a group.
type AsOfDateModifier struct {
	Code     string               `json:"code"`
	Modifier AsOfDateModifierKind `json:"modifier"`
}

// AsOfDateModifierKind classifies an as-of-date modifier code.
type AsOfDateModifierKind string

const (
	InterimPreviousDay AsOfDateModifierKind = "interim_previous_day"
	FinalPreviousDay   AsOfDateModifierKind = "final_previous_day"
	InterimSameDay     AsOfDateModifierKind = "interim_same_day"
	FinalSameDay       AsOfDateModifierKind = "final_same_day"
	ModifierCustom     AsOfDateModifierKind = "custom"
)

// LookupAsOfDateModifier resolves an as-of-date modifier code.
func LookupAsOfDateModifier(code string) AsOfDateModifier {
	modifier := ModifierCustom
	switch code {
	case "1":
		modifier = InterimPreviousDay
	case "2":
		modifier = FinalPreviousDay
	case "3":
		modifier = InterimSameDay
	case "4":
		modifier = FinalSameDay
	}
	return AsOfDateModifier{Code: code, Modifier: modifier}
}

// Group is one group header and the accounts it owns.
type Group struct {
	UltimateReceiverID string            `json:"ultimate_receiver_id"`
	OriginatorID       string            `json:"originator_id"`
	Status             GroupStatus       `json:"status"`
	AsOfDate           civil.Date        `json:"as_of_date"`
	AsOfTime           *Time             `json:"as_of_time,omitempty"`
	CurrencyCode       string            `json:"currency_code"`
	AsOfDateModifier   *AsOfDateModifier `json:"as_of_date_modifier,omitempty"`
	Accounts           []Account         `json:"accounts"`
}
