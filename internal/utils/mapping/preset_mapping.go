package mapping

import (
	"github.com/SscSPs/accountflow_ledger/internal/core/domain"
	"github.com/SscSPs/accountflow_ledger/internal/models"
)

// ToModelPreset converts a domain Preset to a model Preset
func ToModelPreset(d domain.Preset) models.Preset {
	return models.Preset{
		PresetID:              d.PresetID,
		Name:                  d.Name,
		Description:           d.Description,
		PayableAccountID:      NullString(d.PayableAccountID),
		ReceivableAccountID:   NullString(d.ReceivableAccountID),
		RevenueAccountID:      NullString(d.RevenueAccountID),
		ExpenseAccountID:      NullString(d.ExpenseAccountID),
		PayableAccountName:    d.PayableAccountName,
		ReceivableAccountName: d.ReceivableAccountName,
		RevenueAccountName:    d.RevenueAccountName,
		ExpenseAccountName:    d.ExpenseAccountName,
		IsActive:              d.IsActive,
		AuditFields:           ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPreset converts a model Preset to a domain Preset
func ToDomainPreset(m models.Preset) domain.Preset {
	return domain.Preset{
		PresetID:              m.PresetID,
		Name:                  m.Name,
		Description:           m.Description,
		PayableAccountID:      FromNullString(m.PayableAccountID),
		ReceivableAccountID:   FromNullString(m.ReceivableAccountID),
		RevenueAccountID:      FromNullString(m.RevenueAccountID),
		ExpenseAccountID:      FromNullString(m.ExpenseAccountID),
		PayableAccountName:    m.PayableAccountName,
		ReceivableAccountName: m.ReceivableAccountName,
		RevenueAccountName:    m.RevenueAccountName,
		ExpenseAccountName:    m.ExpenseAccountName,
		IsActive:              m.IsActive,
		AuditFields:           ToDomainAuditFields(m.AuditFields),
	}
}
