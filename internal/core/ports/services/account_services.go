package services

import (
	"context"

	"github.com/SscSPs/accountflow_ledger/internal/core/domain"
	"github.com/SscSPs/accountflow_ledger/internal/dto"
)

// AccountReaderSvc defines read operations for account data
type AccountReaderSvc interface {
	// GetAccountByID retrieves a specific account by its unique identifier.
	GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// ListAccounts retrieves the chart of accounts of a plan ordered by code.
	ListAccounts(ctx context.Context, planID string) ([]domain.Account, error)

	// ListChildAccounts retrieves the direct children of an account.
	ListChildAccounts(ctx context.Context, accountID string) ([]domain.Account, error)

	// Level walks the parent chain of an account and returns its depth (root = 1).
	Level(ctx context.Context, accountID string) (int, error)
}

// AccountWriterSvc defines write operations for account data
type AccountWriterSvc interface {
	// CreateAccount validates the tree rules and assigns the account's code.
	CreateAccount(ctx context.Context, planID string, req dto.CreateAccountRequest, userID string) (*domain.Account, error)

	// UpdateAccount changes an account's name or active flag.
	UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest, userID string) (*domain.Account, error)

	// DeactivateAccount marks an account as inactive.
	DeactivateAccount(ctx context.Context, accountID string, userID string) (*domain.Account, error)

	// ReactivateAccount marks an account as active again.
	ReactivateAccount(ctx context.Context, accountID string, userID string) (*domain.Account, error)

	// DeleteAccount removes a childless, unreferenced account.
	DeleteAccount(ctx context.Context, accountID string, userID string) error
}

// AccountSvcFacade combines all account-related service interfaces
// This is a facade for clients that need access to all operations
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
}
