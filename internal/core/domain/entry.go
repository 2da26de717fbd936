package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod identifies how a settlement was paid.
type PaymentMethod string

const (
	PaymentPix    PaymentMethod = "PIX"
	PaymentCash   PaymentMethod = "CASH"
	PaymentDebit  PaymentMethod = "DEBIT"
	PaymentCredit PaymentMethod = "CREDIT"
)

// ValidPaymentMethod reports whether m is a known payment method.
func ValidPaymentMethod(m PaymentMethod) bool {
	switch m {
	case PaymentPix, PaymentCash, PaymentDebit, PaymentCredit:
		return true
	}
	return false
}

// Entry is a single settlement applied against a title.
type Entry struct {
	EntryID       string          `json:"entryID"`
	TitleID       string          `json:"titleID"` // FK -> titles.title_id
	Description   string          `json:"description"`
	Amount        decimal.Decimal `json:"amount"` // > 0, 2 decimal places
	PaidAt        time.Time       `json:"paidAt"`
	PaymentMethod PaymentMethod   `json:"paymentMethod"`
	AccountID     string          `json:"accountID"` // Settling analytic account (cash/bank)
	Revision      int             `json:"revision"`  // Bumped each time the settlement is re-posted
	AuditFields
}

// SettlementReference is the journal reference id of the entry's current settlement posting.
func (e Entry) SettlementReference() string {
	if e.Revision == 0 {
		return e.EntryID
	}
	return fmt.Sprintf("%s#%d", e.EntryID, e.Revision)
}

// ReversalReference is the journal reference id of the reversal of the current settlement posting.
func (e Entry) ReversalReference() string {
	return "settle-rev:" + e.SettlementReference()
}
