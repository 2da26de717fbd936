package models

import "database/sql"

// Preset represents a row of the presets table. The *_name columns keep the
// account names captured when the references were last saved.
type Preset struct {
	PresetID              string         `db:"preset_id"`
	Name                  string         `db:"name"`
	Description           string         `db:"description"`
	PayableAccountID      sql.NullString `db:"payable_account_id"`
	ReceivableAccountID   sql.NullString `db:"receivable_account_id"`
	RevenueAccountID      sql.NullString `db:"revenue_account_id"`
	ExpenseAccountID      sql.NullString `db:"expense_account_id"`
	PayableAccountName    string         `db:"payable_account_name"`
	ReceivableAccountName string         `db:"receivable_account_name"`
	RevenueAccountName    string         `db:"revenue_account_name"`
	ExpenseAccountName    string         `db:"expense_account_name"`
	IsActive              bool           `db:"is_active"`
	AuditFields
}
