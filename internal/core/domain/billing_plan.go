package domain

// BillingPlan is the chart of accounts container of one organization.
type BillingPlan struct {
	PlanID                     string `json:"planID"`
	Name                       string `json:"name"`
	Description                string `json:"description"`
	ReceivableControlAccountID string `json:"receivableControlAccountID"` // Nullable, must be an analytic account of this plan
	PayableControlAccountID    string `json:"payableControlAccountID"`    // Nullable, must be an analytic account of this plan
	AuditFields
}

// ControlAccounts is the resolved pair used when posting titles and settlements.
// Either id may be empty when the plan is not fully configured.
type ControlAccounts struct {
	ReceivableAccountID string `json:"receivableAccountID"`
	PayableAccountID    string `json:"payableAccountID"`
}

// ForTitleType returns the control account used for titles of type t.
func (c ControlAccounts) ForTitleType(t TitleType) string {
	if t == Income {
		return c.ReceivableAccountID
	}
	return c.PayableAccountID
}
