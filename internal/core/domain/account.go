package domain

// AccountKind separates aggregation nodes from the leaves that receive postings.
type AccountKind string

const (
	Synthetic AccountKind = "SYNTHETIC" // Aggregation only, may have children
	Analytic  AccountKind = "ANALYTIC"  // Leaf, receives postings and settlements
)

// MaxAccountLevel is the deepest level an account may sit at (root = 1).
const MaxAccountLevel = 5

// Account represents a node in a billing plan's chart of accounts.
type Account struct {
	AccountID       string      `json:"accountID"`       // Primary Key (UUID)
	PlanID          string      `json:"planID"`          // FK -> billing_plans.plan_id (NON-NULL)
	ParentAccountID string      `json:"parentAccountID"` // Nullable FK -> accounts.account_id, empty for roots
	Name            string      `json:"name"`
	Kind            AccountKind `json:"kind"`
	Code            string      `json:"code"`  // Hierarchical code, assigned once at creation
	Level           int         `json:"level"` // Cached depth, root = 1
	IsActive        bool        `json:"isActive"`
	AuditFields
}

// IsRoot reports whether the account has no parent.
func (a Account) IsRoot() bool {
	return a.ParentAccountID == ""
}

// IsAnalytic reports whether the account may receive postings.
func (a Account) IsAnalytic() bool {
	return a.Kind == Analytic
}

// ValidKind reports whether k is a known account kind.
func ValidKind(k AccountKind) bool {
	return k == Synthetic || k == Analytic
}
