package mapping

import (
	"database/sql"

	"github.com/SscSPs/accountflow_ledger/internal/core/domain"
	"github.com/SscSPs/accountflow_ledger/internal/models"
)

// ToModelTitle converts a domain Title to a model Title
func ToModelTitle(d domain.Title) models.Title {
	m := models.Title{
		TitleID:     d.TitleID,
		CompanyID:   d.CompanyID,
		Description: d.Description,
		TitleType:   string(d.Type),
		Amount:      d.Amount,
		DueDate:     d.DueDate,
		IsActive:    d.IsActive,
		PresetID:    NullString(d.PresetID),
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
	if d.Recurrence != nil {
		m.RecurrenceFrequency = NullString(string(d.Recurrence.Frequency))
		// Open-ended recurrences (zero occurrences) are stored as NULL.
		m.RecurrenceOccurrences = sql.NullInt32{Int32: int32(d.Recurrence.Occurrences), Valid: d.Recurrence.Occurrences > 0}
	}
	return m
}

// ToDomainTitle converts a model Title to a domain Title
func ToDomainTitle(m models.Title) domain.Title {
	d := domain.Title{
		TitleID:     m.TitleID,
		CompanyID:   m.CompanyID,
		Description: m.Description,
		Type:        domain.TitleType(m.TitleType),
		Amount:      m.Amount,
		DueDate:     m.DueDate,
		IsActive:    m.IsActive,
		PresetID:    FromNullString(m.PresetID),
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
	if m.RecurrenceFrequency.Valid {
		d.Recurrence = &domain.Recurrence{
			Frequency:   domain.RecurrenceFrequency(m.RecurrenceFrequency.String),
			Occurrences: int(m.RecurrenceOccurrences.Int32),
		}
	}
	return d
}
