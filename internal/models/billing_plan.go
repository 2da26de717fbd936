package models

import "database/sql"

// BillingPlan represents a row of the billing_plans table.
type BillingPlan struct {
	PlanID                     string         `db:"plan_id"`
	Name                       string         `db:"name"`
	Description                string         `db:"description"`
	ReceivableControlAccountID sql.NullString `db:"receivable_control_account_id"`
	PayableControlAccountID    sql.NullString `db:"payable_control_account_id"`
	AuditFields
}
