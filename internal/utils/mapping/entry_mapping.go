package mapping

import (
	"github.com/SscSPs/accountflow_ledger/internal/core/domain"
	"github.com/SscSPs/accountflow_ledger/internal/models"
)

// ToModelEntry converts a domain Entry to a model Entry
func ToModelEntry(d domain.Entry) models.Entry {
	return models.Entry{
		EntryID:       d.EntryID,
		TitleID:       d.TitleID,
		Description:   d.Description,
		Amount:        d.Amount,
		PaidAt:        d.PaidAt,
		PaymentMethod: string(d.PaymentMethod),
		AccountID:     d.AccountID,
		Revision:      d.Revision,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainEntry converts a model Entry to a domain Entry
func ToDomainEntry(m models.Entry) domain.Entry {
	return domain.Entry{
		EntryID:       m.EntryID,
		TitleID:       m.TitleID,
		Description:   m.Description,
		Amount:        m.Amount,
		PaidAt:        m.PaidAt,
		PaymentMethod: domain.PaymentMethod(m.PaymentMethod),
		AccountID:     m.AccountID,
		Revision:      m.Revision,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}
