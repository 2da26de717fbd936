package repositories

import (
	"context"

	"github.com/SscSPs/accountflow_ledger/internal/core/domain"
)

// AccountReader defines read operations for account data
type AccountReader interface {
	// FindAccountByID retrieves a specific account by its unique identifier.
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// FindAccountsByIDs retrieves multiple accounts by their IDs. Missing ids are absent from the map.
	FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error)

	// ListAccountsByPlan retrieves every account of a plan ordered by code.
	ListAccountsByPlan(ctx context.Context, planID string) ([]domain.Account, error)

	// ListChildAccounts retrieves the direct children of an account ordered by code.
	ListChildAccounts(ctx context.Context, parentAccountID string) ([]domain.Account, error)
}

// AccountWriter defines write operations for account data
type AccountWriter interface {
	// SaveAccount persists a new account. A duplicate (plan, code) returns apperrors.ErrDuplicate.
	SaveAccount(ctx context.Context, account domain.Account) error

	// UpdateAccount updates an existing account's name and active flag.
	UpdateAccount(ctx context.Context, account domain.Account) error

	// DeleteAccount removes an account. A foreign key still pointing at it returns apperrors.ErrAccountInUse.
	DeleteAccount(ctx context.Context, accountID string) error
}

// AccountTreeSupport defines the operations code generation and deletion checks rely on.
type AccountTreeSupport interface {
	// LockSiblingSet locks the parent account row, or the plan row for roots,
	// until the surrounding transaction ends.
	LockSiblingSet(ctx context.Context, planID string, parentAccountID string) error

	// ListSiblingCodes returns the codes of all accounts directly under parentAccountID
	// (plan roots when parentAccountID is empty).
	ListSiblingCodes(ctx context.Context, planID string, parentAccountID string) ([]string, error)

	// CountChildren counts the direct children of an account.
	CountChildren(ctx context.Context, accountID string) (int, error)

	// CountAccountReferences counts journal lines, entries, preset slots and plan control slots pointing at an account.
	CountAccountReferences(ctx context.Context, accountID string) (int, error)
}

// AccountRepositoryFacade combines all account-related repository interfaces
// This is a facade for clients that need access to all operations
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
	AccountTreeSupport
}
