package memory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/accountflow_ledger/internal/apperrors"
	"github.com/SscSPs/accountflow_ledger/internal/core/domain"
	"github.com/SscSPs/accountflow_ledger/internal/repositories/database/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedPlan(t *testing.T, ctx context.Context, store *memory.Store) (string, string) {
	t.Helper()
	repos := memory.NewRepositoryProvider(store)
	require.NoError(t, repos.BillingPlanRepo.SavePlan(ctx, domain.BillingPlan{PlanID: "plan-1", Name: "Main"}))
	require.NoError(t, repos.AccountRepo.SaveAccount(ctx, domain.Account{
		AccountID: "root", PlanID: "plan-1", Name: "Assets", Kind: domain.Synthetic, Code: "1", Level: 1, IsActive: true,
	}))
	require.NoError(t, repos.AccountRepo.SaveAccount(ctx, domain.Account{
		AccountID: "bank", PlanID: "plan-1", ParentAccountID: "root", Name: "Bank", Kind: domain.Analytic, Code: "1.1", Level: 2, IsActive: true,
	}))
	return "plan-1", "bank"
}

func TestWithinTx_RollsBackOnError(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	repos := memory.NewRepositoryProvider(store)
	planID, _ := seedPlan(t, ctx, store)

	boom := errors.New("boom")
	err := store.WithinTx(ctx, func(ctx context.Context) error {
		require.NoError(t, repos.AccountRepo.SaveAccount(ctx, domain.Account{
			AccountID: "cash", PlanID: planID, ParentAccountID: "root", Name: "Cash", Kind: domain.Analytic, Code: "1.2", Level: 2,
		}))
		return boom
	})
	require.ErrorIs(t, err, boom)

	_, err = repos.AccountRepo.FindAccountByID(ctx, "cash")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestWithinTx_NestedJoinsOuter(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	repos := memory.NewRepositoryProvider(store)
	planID, _ := seedPlan(t, ctx, store)

	err := store.WithinTx(ctx, func(ctx context.Context) error {
		inner := store.WithinTx(ctx, func(ctx context.Context) error {
			return repos.AccountRepo.SaveAccount(ctx, domain.Account{
				AccountID: "cash", PlanID: planID, ParentAccountID: "root", Name: "Cash", Kind: domain.Analytic, Code: "1.2", Level: 2,
			})
		})
		require.NoError(t, inner)
		return errors.New("outer fails")
	})
	require.Error(t, err)

	_, err = repos.AccountRepo.FindAccountByID(ctx, "cash")
	assert.ErrorIs(t, err, apperrors.ErrNotFound, "inner write must roll back with the outer unit")
}

func TestWithinTx_NestedFailureKeepsOuterWrites(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	repos := memory.NewRepositoryProvider(store)
	planID, _ := seedPlan(t, ctx, store)

	err := store.WithinTx(ctx, func(ctx context.Context) error {
		if err := repos.AccountRepo.SaveAccount(ctx, domain.Account{
			AccountID: "cash", PlanID: planID, ParentAccountID: "root", Name: "Cash", Kind: domain.Analytic, Code: "1.2", Level: 2,
		}); err != nil {
			return err
		}
		inner := store.WithinTx(ctx, func(ctx context.Context) error {
			require.NoError(t, repos.AccountRepo.SaveAccount(ctx, domain.Account{
				AccountID: "petty", PlanID: planID, ParentAccountID: "root", Name: "Petty cash", Kind: domain.Analytic, Code: "1.3", Level: 2,
			}))
			return errors.New("inner fails")
		})
		require.Error(t, inner)

		// The unit stays usable after the nested failure.
		_, err := repos.AccountRepo.FindAccountByID(ctx, "cash")
		return err
	})
	require.NoError(t, err)

	_, err = repos.AccountRepo.FindAccountByID(ctx, "cash")
	assert.NoError(t, err)
	_, err = repos.AccountRepo.FindAccountByID(ctx, "petty")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestRead_WaitsForRunningUnit(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	repos := memory.NewRepositoryProvider(store)
	planID, _ := seedPlan(t, ctx, store)

	written := make(chan struct{})
	release := make(chan struct{})
	unitDone := make(chan error, 1)
	go func() {
		unitDone <- store.WithinTx(ctx, func(ctx context.Context) error {
			assert.NoError(t, repos.AccountRepo.SaveAccount(ctx, domain.Account{
				AccountID: "cash", PlanID: planID, ParentAccountID: "root", Name: "Cash", Kind: domain.Analytic, Code: "1.2", Level: 2,
			}))
			close(written)
			<-release
			return errors.New("rolled back")
		})
	}()

	<-written
	readDone := make(chan error, 1)
	go func() {
		_, err := repos.AccountRepo.FindAccountByID(ctx, "cash")
		readDone <- err
	}()

	select {
	case err := <-readDone:
		t.Fatalf("read finished while the unit was running: %v", err)
	case <-time.After(50 * time.Millisecond):
	}

	close(release)
	require.Error(t, <-unitDone)
	assert.ErrorIs(t, <-readDone, apperrors.ErrNotFound)
}

func TestAccountRepository_UniqueCodePerPlan(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	repos := memory.NewRepositoryProvider(store)
	planID, _ := seedPlan(t, ctx, store)

	err := repos.AccountRepo.SaveAccount(ctx, domain.Account{
		AccountID: "dup", PlanID: planID, ParentAccountID: "root", Name: "Dup", Kind: domain.Analytic, Code: "1.1", Level: 2,
	})
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)
}

func TestAccountRepository_ReferencesBlockDelete(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	repos := memory.NewRepositoryProvider(store)
	planID, bankID := seedPlan(t, ctx, store)

	plan, err := repos.BillingPlanRepo.FindPlanByID(ctx, planID)
	require.NoError(t, err)
	plan.ReceivableControlAccountID = bankID
	require.NoError(t, repos.BillingPlanRepo.UpdatePlan(ctx, *plan))

	n, err := repos.AccountRepo.CountAccountReferences(ctx, bankID)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	err = repos.AccountRepo.DeleteAccount(ctx, bankID)
	assert.ErrorIs(t, err, apperrors.ErrAccountInUse)
}

func TestJournalRepository_UniqueReference(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	repos := memory.NewRepositoryProvider(store)
	_, bankID := seedPlan(t, ctx, store)

	journal := domain.Journal{
		JournalID:     "j1",
		CompanyID:     "c1",
		JournalDate:   time.Now(),
		ReferenceType: domain.RefTitleCreation,
		ReferenceID:   "t1",
		Lines: []domain.JournalLine{
			{LineID: "l1", JournalID: "j1", AccountID: bankID, Debit: decimal.NewFromInt(1), Credit: decimal.Zero},
			{LineID: "l2", JournalID: "j1", AccountID: bankID, Debit: decimal.Zero, Credit: decimal.NewFromInt(1)},
		},
	}
	require.NoError(t, repos.JournalRepo.SaveJournal(ctx, journal))

	journal.JournalID = "j2"
	err := repos.JournalRepo.SaveJournal(ctx, journal)
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)

	found, err := repos.JournalRepo.FindJournalByReference(ctx, domain.RefTitleCreation, "t1")
	require.NoError(t, err)
	assert.Equal(t, "j1", found.JournalID)
	assert.Len(t, found.Lines, 2)

	_, err = repos.JournalRepo.FindJournalByReference(ctx, domain.RefTitleSettlement, "t1")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
