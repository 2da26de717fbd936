package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReferenceType tags the lifecycle event a journal was derived from.
type ReferenceType string

const (
	RefTitleCreation           ReferenceType = "TITLE_CREATION"
	RefTitleSettlement         ReferenceType = "TITLE_SETTLEMENT"
	RefTitleSettlementReversal ReferenceType = "TITLE_SETTLEMENT_REVERSAL"
)

// ValidReferenceType reports whether r is a known reference type.
func ValidReferenceType(r ReferenceType) bool {
	switch r {
	case RefTitleCreation, RefTitleSettlement, RefTitleSettlementReversal:
		return true
	}
	return false
}

// Journal is a balanced double-entry record derived from exactly one obligation event.
// (ReferenceType, ReferenceID) is unique across all journals.
type Journal struct {
	JournalID     string          `json:"journalID"` // Primary Key (UUID)
	CompanyID     string          `json:"companyID"`
	JournalDate   time.Time       `json:"journalDate"`
	Description   string          `json:"description"`
	ReferenceType ReferenceType   `json:"referenceType"`
	ReferenceID   string          `json:"referenceID"`
	TotalDebits   decimal.Decimal `json:"totalDebits"`
	TotalCredits  decimal.Decimal `json:"totalCredits"`
	Lines         []JournalLine   `json:"lines"`
	AuditFields
}

// JournalLine posts either a debit or a credit to one analytic account.
type JournalLine struct {
	LineID    string          `json:"lineID"`
	JournalID string          `json:"journalID"`
	AccountID string          `json:"accountID"`
	Debit     decimal.Decimal `json:"debit"`
	Credit    decimal.Decimal `json:"credit"`
	Memo      string          `json:"memo"`
}

// Swapped returns the mirror image of the line, used by reversals.
func (l JournalLine) Swapped() JournalLine {
	return JournalLine{
		AccountID: l.AccountID,
		Debit:     l.Credit,
		Credit:    l.Debit,
		Memo:      l.Memo,
	}
}
