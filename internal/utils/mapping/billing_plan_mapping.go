package mapping

import (
	"github.com/SscSPs/accountflow_ledger/internal/core/domain"
	"github.com/SscSPs/accountflow_ledger/internal/models"
)

// ToModelBillingPlan converts a domain BillingPlan to a model BillingPlan
func ToModelBillingPlan(d domain.BillingPlan) models.BillingPlan {
	return models.BillingPlan{
		PlanID:                     d.PlanID,
		Name:                       d.Name,
		Description:                d.Description,
		ReceivableControlAccountID: NullString(d.ReceivableControlAccountID),
		PayableControlAccountID:    NullString(d.PayableControlAccountID),
		AuditFields:                ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainBillingPlan converts a model BillingPlan to a domain BillingPlan
func ToDomainBillingPlan(m models.BillingPlan) domain.BillingPlan {
	return domain.BillingPlan{
		PlanID:                     m.PlanID,
		Name:                       m.Name,
		Description:                m.Description,
		ReceivableControlAccountID: FromNullString(m.ReceivableControlAccountID),
		PayableControlAccountID:    FromNullString(m.PayableControlAccountID),
		AuditFields:                ToDomainAuditFields(m.AuditFields),
	}
}
