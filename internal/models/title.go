package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// Title represents a row of the titles table.
type Title struct {
	TitleID               string          `db:"title_id"`
	CompanyID             string          `db:"company_id"`
	Description           string          `db:"description"`
	TitleType             string          `db:"title_type"`
	Amount                decimal.Decimal `db:"amount"`
	DueDate               time.Time       `db:"due_date"`
	RecurrenceFrequency   sql.NullString  `db:"recurrence_frequency"`
	RecurrenceOccurrences sql.NullInt32   `db:"recurrence_occurrences"`
	IsActive              bool            `db:"is_active"`
	PresetID              sql.NullString  `db:"preset_id"`
	AuditFields
}
