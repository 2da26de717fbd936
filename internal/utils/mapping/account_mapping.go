package mapping

import (
	"github.com/SscSPs/accountflow_ledger/internal/core/domain"
	"github.com/SscSPs/accountflow_ledger/internal/models"
)

// ToModelAccount converts a domain Account to a model Account
func ToModelAccount(d domain.Account) models.Account {
	return models.Account{
		AccountID:       d.AccountID,
		PlanID:          d.PlanID,
		ParentAccountID: NullString(d.ParentAccountID),
		Name:            d.Name,
		Kind:            models.AccountKind(d.Kind),
		Code:            d.Code,
		Level:           d.Level,
		IsActive:        d.IsActive,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAccount converts a model Account to a domain Account
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID:       m.AccountID,
		PlanID:          m.PlanID,
		ParentAccountID: FromNullString(m.ParentAccountID),
		Name:            m.Name,
		Kind:            domain.AccountKind(m.Kind),
		Code:            m.Code,
		Level:           m.Level,
		IsActive:        m.IsActive,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainAccountSlice converts a slice of model Accounts to a slice of domain Accounts
func ToDomainAccountSlice(ms []models.Account) []domain.Account {
	ds := make([]domain.Account, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAccount(m)
	}
	return ds
}
