package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Entry represents a row of the entries table.
type Entry struct {
	EntryID       string          `db:"entry_id"`
	TitleID       string          `db:"title_id"`
	Description   string          `db:"description"`
	Amount        decimal.Decimal `db:"amount"`
	PaidAt        time.Time       `db:"paid_at"`
	PaymentMethod string          `db:"payment_method"`
	AccountID     string          `db:"account_id"`
	Revision      int             `db:"revision"`
	AuditFields
}
