package dto

import (
	"time"

	"github.com/SscSPs/accountflow_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// JournalLineResponse defines the data returned for a journal line.
type JournalLineResponse struct {
	LineID    string          `json:"lineID"`
	AccountID string          `json:"accountID"`
	Debit     decimal.Decimal `json:"debit"`
	Credit    decimal.Decimal `json:"credit"`
	Memo      string          `json:"memo"`
}

// JournalResponse defines the data returned for a journal entry and its lines.
type JournalResponse struct {
	JournalID     string                `json:"journalID"`
	CompanyID     string                `json:"companyID"`
	Date          time.Time             `json:"date"`
	Description   string                `json:"description"`
	ReferenceType domain.ReferenceType  `json:"referenceType"`
	ReferenceID   string                `json:"referenceID"`
	TotalDebits   decimal.Decimal       `json:"totalDebits"`
	TotalCredits  decimal.Decimal       `json:"totalCredits"`
	Lines         []JournalLineResponse `json:"lines"`
	CreatedAt     time.Time             `json:"createdAt"`
	CreatedBy     string                `json:"createdBy"`
}

// JournalReferenceParams locates the journal derived from one lifecycle event.
type JournalReferenceParams struct {
	ReferenceType domain.ReferenceType `form:"referenceType" binding:"required,oneof=TITLE_CREATION TITLE_SETTLEMENT TITLE_SETTLEMENT_REVERSAL"`
	ReferenceID   string               `form:"referenceID" binding:"required"`
}

// ToJournalLineResponse converts a domain.JournalLine to its DTO.
func ToJournalLineResponse(l *domain.JournalLine) JournalLineResponse {
	return JournalLineResponse{
		LineID:    l.LineID,
		AccountID: l.AccountID,
		Debit:     l.Debit,
		Credit:    l.Credit,
		Memo:      l.Memo,
	}
}

// ToJournalResponse converts a domain.Journal to JournalResponse DTO.
func ToJournalResponse(j *domain.Journal) JournalResponse {
	lines := make([]JournalLineResponse, len(j.Lines))
	for i, l := range j.Lines {
		lines[i] = ToJournalLineResponse(&l)
	}
	return JournalResponse{
		JournalID:     j.JournalID,
		CompanyID:     j.CompanyID,
		Date:          j.JournalDate,
		Description:   j.Description,
		ReferenceType: j.ReferenceType,
		ReferenceID:   j.ReferenceID,
		TotalDebits:   j.TotalDebits,
		TotalCredits:  j.TotalCredits,
		Lines:         lines,
		CreatedAt:     j.CreatedAt,
		CreatedBy:     j.CreatedBy,
	}
}

// ToListJournalResponse converts journals to DTOs.
func ToListJournalResponse(journals []domain.Journal) []JournalResponse {
	res := make([]JournalResponse, len(journals))
	for i, j := range journals {
		res[i] = ToJournalResponse(&j)
	}
	return res
}
