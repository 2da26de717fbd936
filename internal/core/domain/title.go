package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TitleType tells whether a title is receivable (income) or payable (expense).
type TitleType string

const (
	Income  TitleType = "INCOME"
	Expense TitleType = "EXPENSE"
)

// RecurrenceFrequency describes how often a recurring title repeats.
type RecurrenceFrequency string

const (
	Weekly  RecurrenceFrequency = "WEEKLY"
	Monthly RecurrenceFrequency = "MONTHLY"
	Yearly  RecurrenceFrequency = "YEARLY"
)

// Recurrence is informational metadata; the ledger never expands it into new titles.
type Recurrence struct {
	Frequency   RecurrenceFrequency `json:"frequency"`
	Occurrences int                 `json:"occurrences"` // 0 means open ended
}

// Title is a receivable or payable obligation of a company.
type Title struct {
	TitleID     string          `json:"titleID"`
	CompanyID   string          `json:"companyID"` // Opaque reference to company master data
	Description string          `json:"description"`
	Type        TitleType       `json:"type"`
	Amount      decimal.Decimal `json:"amount"` // Face amount, 2 decimal places
	DueDate     time.Time       `json:"dueDate"`
	Recurrence  *Recurrence     `json:"recurrence,omitempty"`
	IsActive    bool            `json:"isActive"` // Derived: settled total < amount
	PresetID    string          `json:"presetID"` // Nullable FK -> presets.preset_id
	AuditFields
}

// ValidTitleType reports whether t is a known title type.
func ValidTitleType(t TitleType) bool {
	return t == Income || t == Expense
}

// IsActiveFor is the single rule deciding a title's active flag.
func IsActiveFor(amount, settled decimal.Decimal) bool {
	return RoundMoney(settled).LessThan(RoundMoney(amount))
}

// Remaining returns what may still be settled against amount.
func Remaining(amount, settled decimal.Decimal) decimal.Decimal {
	return RoundMoney(amount).Sub(RoundMoney(settled))
}

// TitleBalance summarises a title against its settlements.
type TitleBalance struct {
	TitleID   string          `json:"titleID"`
	Amount    decimal.Decimal `json:"amount"`
	Settled   decimal.Decimal `json:"settled"`
	Remaining decimal.Decimal `json:"remaining"`
	IsActive  bool            `json:"isActive"`
}
