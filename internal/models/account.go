package models

import "database/sql"

// AccountKind is the stored form of domain.AccountKind.
type AccountKind string

// Account represents a row of the accounts table.
type Account struct {
	AccountID       string         `db:"account_id"`
	PlanID          string         `db:"plan_id"`
	ParentAccountID sql.NullString `db:"parent_account_id"` // NULL for roots
	Name            string         `db:"name"`
	Kind            AccountKind    `db:"kind"`
	Code            string         `db:"code"`
	Level           int            `db:"level"`
	IsActive        bool           `db:"is_active"`
	AuditFields
}
