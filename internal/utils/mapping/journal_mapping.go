package mapping

import (
	"github.com/SscSPs/accountflow_ledger/internal/core/domain"
	"github.com/SscSPs/accountflow_ledger/internal/models"
)

// ToModelJournal converts a domain Journal header to a model Journal
func ToModelJournal(d domain.Journal) models.Journal {
	return models.Journal{
		JournalID:     d.JournalID,
		CompanyID:     d.CompanyID,
		JournalDate:   d.JournalDate,
		Description:   d.Description,
		ReferenceType: string(d.ReferenceType),
		ReferenceID:   d.ReferenceID,
		TotalDebits:   d.TotalDebits,
		TotalCredits:  d.TotalCredits,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainJournal converts a model Journal and its lines to a domain Journal
func ToDomainJournal(m models.Journal, lines []models.JournalLine) domain.Journal {
	d := domain.Journal{
		JournalID:     m.JournalID,
		CompanyID:     m.CompanyID,
		JournalDate:   m.JournalDate,
		Description:   m.Description,
		ReferenceType: domain.ReferenceType(m.ReferenceType),
		ReferenceID:   m.ReferenceID,
		TotalDebits:   m.TotalDebits,
		TotalCredits:  m.TotalCredits,
		Lines:         make([]domain.JournalLine, len(lines)),
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
	for i, l := range lines {
		d.Lines[i] = ToDomainJournalLine(l)
	}
	return d
}

// ToModelJournalLine converts the lineNo-th line of a journal
func ToModelJournalLine(d domain.JournalLine, lineNo int) models.JournalLine {
	return models.JournalLine{
		LineID:    d.LineID,
		JournalID: d.JournalID,
		LineNo:    lineNo,
		AccountID: d.AccountID,
		Debit:     d.Debit,
		Credit:    d.Credit,
		Memo:      d.Memo,
	}
}

// ToDomainJournalLine converts a model JournalLine to a domain JournalLine
func ToDomainJournalLine(m models.JournalLine) domain.JournalLine {
	return domain.JournalLine{
		LineID:    m.LineID,
		JournalID: m.JournalID,
		AccountID: m.AccountID,
		Debit:     m.Debit,
		Credit:    m.Credit,
		Memo:      m.Memo,
	}
}
