package services_test

import (
	"context"
	"sync"

	"github.com/SscSPs/accountflow_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/accountflow_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/accountflow_ledger/internal/core/ports/services"
	"github.com/stretchr/testify/mock"
)

// --- Mock AccountRepository ---
type MockAccountRepository struct {
	mock.Mock
}

var _ portsrepo.AccountRepositoryFacade = (*MockAccountRepository)(nil)

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error) {
	args := m.Called(ctx, accountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccountsByPlan(ctx context.Context, planID string) ([]domain.Account, error) {
	args := m.Called(ctx, planID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListChildAccounts(ctx context.Context, parentAccountID string) ([]domain.Account, error) {
	args := m.Called(ctx, parentAccountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) DeleteAccount(ctx context.Context, accountID string) error {
	args := m.Called(ctx, accountID)
	return args.Error(0)
}

func (m *MockAccountRepository) LockSiblingSet(ctx context.Context, planID string, parentAccountID string) error {
	args := m.Called(ctx, planID, parentAccountID)
	return args.Error(0)
}

func (m *MockAccountRepository) ListSiblingCodes(ctx context.Context, planID string, parentAccountID string) ([]string, error) {
	args := m.Called(ctx, planID, parentAccountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockAccountRepository) CountChildren(ctx context.Context, accountID string) (int, error) {
	args := m.Called(ctx, accountID)
	return args.Int(0), args.Error(1)
}

func (m *MockAccountRepository) CountAccountReferences(ctx context.Context, accountID string) (int, error) {
	args := m.Called(ctx, accountID)
	return args.Int(0), args.Error(1)
}

// --- Mock BillingPlanRepository ---
type MockBillingPlanRepository struct {
	mock.Mock
}

var _ portsrepo.BillingPlanRepositoryFacade = (*MockBillingPlanRepository)(nil)

func (m *MockBillingPlanRepository) FindPlanByID(ctx context.Context, planID string) (*domain.BillingPlan, error) {
	args := m.Called(ctx, planID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BillingPlan), args.Error(1)
}

func (m *MockBillingPlanRepository) ListPlans(ctx context.Context, limit int, offset int) ([]domain.BillingPlan, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BillingPlan), args.Error(1)
}

func (m *MockBillingPlanRepository) SavePlan(ctx context.Context, plan domain.BillingPlan) error {
	args := m.Called(ctx, plan)
	return args.Error(0)
}

func (m *MockBillingPlanRepository) UpdatePlan(ctx context.Context, plan domain.BillingPlan) error {
	args := m.Called(ctx, plan)
	return args.Error(0)
}

// --- Mock JournalRepository ---
type MockJournalRepository struct {
	mock.Mock
}

var _ portsrepo.JournalRepositoryFacade = (*MockJournalRepository)(nil)

func (m *MockJournalRepository) FindJournalByID(ctx context.Context, journalID string) (*domain.Journal, error) {
	args := m.Called(ctx, journalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Journal), args.Error(1)
}

func (m *MockJournalRepository) FindJournalByReference(ctx context.Context, referenceType domain.ReferenceType, referenceID string) (*domain.Journal, error) {
	args := m.Called(ctx, referenceType, referenceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Journal), args.Error(1)
}

func (m *MockJournalRepository) ListJournalsByCompany(ctx context.Context, companyID string, limit int, offset int) ([]domain.Journal, error) {
	args := m.Called(ctx, companyID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Journal), args.Error(1)
}

func (m *MockJournalRepository) SaveJournal(ctx context.Context, journal domain.Journal) error {
	args := m.Called(ctx, journal)
	return args.Error(0)
}

// --- Mock PresetRepository ---
type MockPresetRepository struct {
	mock.Mock
}

var _ portsrepo.PresetRepositoryFacade = (*MockPresetRepository)(nil)

func (m *MockPresetRepository) FindPresetByID(ctx context.Context, presetID string) (*domain.Preset, error) {
	args := m.Called(ctx, presetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Preset), args.Error(1)
}

func (m *MockPresetRepository) ListPresets(ctx context.Context, limit int, offset int) ([]domain.Preset, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Preset), args.Error(1)
}

func (m *MockPresetRepository) SavePreset(ctx context.Context, preset domain.Preset) error {
	args := m.Called(ctx, preset)
	return args.Error(0)
}

func (m *MockPresetRepository) UpdatePreset(ctx context.Context, preset domain.Preset) error {
	args := m.Called(ctx, preset)
	return args.Error(0)
}

// --- Mock PresetReaderSvc ---
type MockPresetReader struct {
	mock.Mock
}

var _ portssvc.PresetReaderSvc = (*MockPresetReader)(nil)

func (m *MockPresetReader) GetPresetByID(ctx context.Context, presetID string) (*domain.Preset, error) {
	args := m.Called(ctx, presetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Preset), args.Error(1)
}

func (m *MockPresetReader) ListPresets(ctx context.Context, limit int, offset int) ([]domain.Preset, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Preset), args.Error(1)
}

func (m *MockPresetReader) ResolvePlan(ctx context.Context, presetID string) (string, error) {
	args := m.Called(ctx, presetID)
	return args.String(0), args.Error(1)
}

func (m *MockPresetReader) ResolvePresetPlan(ctx context.Context, presetID string) (*domain.Preset, string, error) {
	args := m.Called(ctx, presetID)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*domain.Preset), args.String(1), args.Error(2)
}

// --- Mock ControlAccountResolver ---
type MockControlResolver struct {
	mock.Mock
}

var _ portssvc.ControlAccountResolver = (*MockControlResolver)(nil)

func (m *MockControlResolver) ResolveControlAccounts(ctx context.Context, planID string) (domain.ControlAccounts, error) {
	args := m.Called(ctx, planID)
	return args.Get(0).(domain.ControlAccounts), args.Error(1)
}

// --- TransactionManager that records nesting ---
type txDepthKey struct{}

type depthTxManager struct {
	mu     sync.Mutex
	failed int
}

var _ portsrepo.TransactionManager = (*depthTxManager)(nil)

func (m *depthTxManager) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	depth, _ := ctx.Value(txDepthKey{}).(int)
	err := fn(context.WithValue(ctx, txDepthKey{}, depth+1))
	if err != nil {
		m.mu.Lock()
		m.failed++
		m.mu.Unlock()
	}
	return err
}

// txDepth matches a context carried n units of work deep.
func txDepth(n int) interface{} {
	return mock.MatchedBy(func(ctx context.Context) bool {
		depth, _ := ctx.Value(txDepthKey{}).(int)
		return depth == n
	})
}
