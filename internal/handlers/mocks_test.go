package handlers_test

import (
	"context"

	"github.com/SscSPs/accountflow_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/accountflow_ledger/internal/core/ports/services"
	"github.com/SscSPs/accountflow_ledger/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock AccountService ---
type MockAccountService struct {
	mock.Mock
}

var _ portssvc.AccountSvcFacade = (*MockAccountService)(nil)

func (m *MockAccountService) account(args mock.Arguments) (*domain.Account, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) accounts(args mock.Arguments) ([]domain.Account, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	return m.account(m.Called(ctx, accountID))
}

func (m *MockAccountService) ListAccounts(ctx context.Context, planID string) ([]domain.Account, error) {
	return m.accounts(m.Called(ctx, planID))
}

func (m *MockAccountService) ListChildAccounts(ctx context.Context, accountID string) ([]domain.Account, error) {
	return m.accounts(m.Called(ctx, accountID))
}

func (m *MockAccountService) Level(ctx context.Context, accountID string) (int, error) {
	args := m.Called(ctx, accountID)
	return args.Int(0), args.Error(1)
}

func (m *MockAccountService) CreateAccount(ctx context.Context, planID string, req dto.CreateAccountRequest, userID string) (*domain.Account, error) {
	return m.account(m.Called(ctx, planID, req, userID))
}

func (m *MockAccountService) UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest, userID string) (*domain.Account, error) {
	return m.account(m.Called(ctx, accountID, req, userID))
}

func (m *MockAccountService) DeactivateAccount(ctx context.Context, accountID string, userID string) (*domain.Account, error) {
	return m.account(m.Called(ctx, accountID, userID))
}

func (m *MockAccountService) ReactivateAccount(ctx context.Context, accountID string, userID string) (*domain.Account, error) {
	return m.account(m.Called(ctx, accountID, userID))
}

func (m *MockAccountService) DeleteAccount(ctx context.Context, accountID string, userID string) error {
	args := m.Called(ctx, accountID, userID)
	return args.Error(0)
}

// --- Mock TitleService ---
type MockTitleService struct {
	mock.Mock
}

var _ portssvc.TitleSvcFacade = (*MockTitleService)(nil)

func (m *MockTitleService) title(args mock.Arguments) (*domain.Title, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Title), args.Error(1)
}

func (m *MockTitleService) GetTitleByID(ctx context.Context, titleID string) (*domain.Title, error) {
	return m.title(m.Called(ctx, titleID))
}

func (m *MockTitleService) ListTitles(ctx context.Context, companyID string, limit int, offset int) ([]domain.Title, error) {
	args := m.Called(ctx, companyID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Title), args.Error(1)
}

func (m *MockTitleService) GetTitleBalance(ctx context.Context, titleID string) (*domain.TitleBalance, error) {
	args := m.Called(ctx, titleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TitleBalance), args.Error(1)
}

func (m *MockTitleService) CreateTitle(ctx context.Context, companyID string, req dto.CreateTitleRequest, userID string) (*domain.Title, error) {
	return m.title(m.Called(ctx, companyID, req, userID))
}

func (m *MockTitleService) UpdateTitle(ctx context.Context, titleID string, req dto.UpdateTitleRequest, userID string) (*domain.Title, error) {
	return m.title(m.Called(ctx, titleID, req, userID))
}

func (m *MockTitleService) UpdateTitleAmount(ctx context.Context, titleID string, req dto.UpdateTitleAmountRequest, userID string) (*domain.Title, error) {
	return m.title(m.Called(ctx, titleID, req, userID))
}

func (m *MockTitleService) RecomputeActive(ctx context.Context, titleID string, userID string) (*domain.Title, error) {
	return m.title(m.Called(ctx, titleID, userID))
}

// --- Mock EntryService ---
type MockEntryService struct {
	mock.Mock
}

var _ portssvc.EntrySvcFacade = (*MockEntryService)(nil)

func (m *MockEntryService) entry(args mock.Arguments) (*domain.Entry, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Entry), args.Error(1)
}

func (m *MockEntryService) GetEntryByID(ctx context.Context, entryID string) (*domain.Entry, error) {
	return m.entry(m.Called(ctx, entryID))
}

func (m *MockEntryService) ListEntries(ctx context.Context, titleID string) ([]domain.Entry, error) {
	args := m.Called(ctx, titleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Entry), args.Error(1)
}

func (m *MockEntryService) CreateEntry(ctx context.Context, titleID string, req dto.CreateEntryRequest, userID string) (*domain.Entry, error) {
	return m.entry(m.Called(ctx, titleID, req, userID))
}

func (m *MockEntryService) UpdateEntry(ctx context.Context, entryID string, req dto.UpdateEntryRequest, userID string) (*domain.Entry, error) {
	return m.entry(m.Called(ctx, entryID, req, userID))
}

func (m *MockEntryService) DeleteEntry(ctx context.Context, entryID string, userID string) error {
	args := m.Called(ctx, entryID, userID)
	return args.Error(0)
}
