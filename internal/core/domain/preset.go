package domain

// Preset is a reusable posting configuration binding a title to specific analytic accounts.
// The account names are copies taken when the references are saved.
type Preset struct {
	PresetID              string `json:"presetID"`
	Name                  string `json:"name"`
	Description           string `json:"description"`
	PayableAccountID      string `json:"payableAccountID"`
	ReceivableAccountID   string `json:"receivableAccountID"`
	RevenueAccountID      string `json:"revenueAccountID"`
	ExpenseAccountID      string `json:"expenseAccountID"`
	PayableAccountName    string `json:"payableAccountName"`
	ReceivableAccountName string `json:"receivableAccountName"`
	RevenueAccountName    string `json:"revenueAccountName"`
	ExpenseAccountName    string `json:"expenseAccountName"`
	IsActive              bool   `json:"isActive"`
	AuditFields
}

// AccountIDs returns the non-empty account references in plan-resolution order:
// payable, receivable, revenue, expense.
func (p Preset) AccountIDs() []string {
	ids := make([]string, 0, 4)
	for _, id := range []string{p.PayableAccountID, p.ReceivableAccountID, p.RevenueAccountID, p.ExpenseAccountID} {
		if id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

// PostingAccountFor returns the revenue account for income titles and the expense account otherwise.
func (p Preset) PostingAccountFor(t TitleType) string {
	if t == Income {
		return p.RevenueAccountID
	}
	return p.ExpenseAccountID
}
