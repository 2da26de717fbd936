package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/SscSPs/accountflow_ledger/internal/apperrors"
	"github.com/SscSPs/accountflow_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/accountflow_ledger/internal/core/ports/repositories"
)

type accountRepository struct {
	store *Store
}

var _ portsrepo.AccountRepositoryFacade = (*accountRepository)(nil)

func sortByCode(accounts []domain.Account) {
	sort.Slice(accounts, func(i, j int) bool { return accounts[i].Code < accounts[j].Code })
}

func (r *accountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	var (
		acc domain.Account
		ok  bool
	)
	r.store.read(ctx, func(t *tables) { acc, ok = t.accounts[accountID] })
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &acc, nil
}

func (r *accountRepository) FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error) {
	out := make(map[string]domain.Account, len(accountIDs))
	r.store.read(ctx, func(t *tables) {
		for _, id := range accountIDs {
			if acc, ok := t.accounts[id]; ok {
				out[id] = acc
			}
		}
	})
	return out, nil
}

func (r *accountRepository) ListAccountsByPlan(ctx context.Context, planID string) ([]domain.Account, error) {
	var out []domain.Account
	r.store.read(ctx, func(t *tables) {
		for _, acc := range t.accounts {
			if acc.PlanID == planID {
				out = append(out, acc)
			}
		}
	})
	sortByCode(out)
	return out, nil
}

func (r *accountRepository) ListChildAccounts(ctx context.Context, parentAccountID string) ([]domain.Account, error) {
	var out []domain.Account
	r.store.read(ctx, func(t *tables) {
		for _, acc := range t.accounts {
			if acc.ParentAccountID == parentAccountID {
				out = append(out, acc)
			}
		}
	})
	sortByCode(out)
	return out, nil
}

func (r *accountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	return r.store.write(ctx, func(t *tables) error {
		if _, ok := t.accounts[account.AccountID]; ok {
			return fmt.Errorf("%w: account with ID %s already exists", apperrors.ErrDuplicate, account.AccountID)
		}
		if _, ok := t.plans[account.PlanID]; !ok {
			return fmt.Errorf("%w: plan %s", apperrors.ErrNotFound, account.PlanID)
		}
		if account.ParentAccountID != "" {
			if _, ok := t.accounts[account.ParentAccountID]; !ok {
				return fmt.Errorf("%w: parent account %s", apperrors.ErrNotFound, account.ParentAccountID)
			}
		}
		for _, other := range t.accounts {
			if other.PlanID == account.PlanID && other.Code == account.Code {
				return fmt.Errorf("%w: code %s already used in plan %s", apperrors.ErrDuplicate, account.Code, account.PlanID)
			}
		}
		t.accounts[account.AccountID] = account
		return nil
	})
}

func (r *accountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	return r.store.write(ctx, func(t *tables) error {
		current, ok := t.accounts[account.AccountID]
		if !ok {
			return apperrors.ErrNotFound
		}
		current.Name = account.Name
		current.IsActive = account.IsActive
		current.AuditFields = account.AuditFields
		t.accounts[account.AccountID] = current
		return nil
	})
}

func (r *accountRepository) DeleteAccount(ctx context.Context, accountID string) error {
	return r.store.write(ctx, func(t *tables) error {
		if _, ok := t.accounts[accountID]; !ok {
			return apperrors.ErrNotFound
		}
		if n := countReferences(t, accountID); n > 0 {
			return fmt.Errorf("%w: %d references", apperrors.ErrAccountInUse, n)
		}
		for _, acc := range t.accounts {
			if acc.ParentAccountID == accountID {
				return apperrors.ErrAccountHasChildren
			}
		}
		delete(t.accounts, accountID)
		return nil
	})
}

// LockSiblingSet is a no-op: units of work already run one at a time.
func (r *accountRepository) LockSiblingSet(ctx context.Context, _ string, _ string) error {
	return nil
}

func (r *accountRepository) ListSiblingCodes(ctx context.Context, planID string, parentAccountID string) ([]string, error) {
	var codes []string
	r.store.read(ctx, func(t *tables) {
		for _, acc := range t.accounts {
			if acc.PlanID == planID && acc.ParentAccountID == parentAccountID {
				codes = append(codes, acc.Code)
			}
		}
	})
	sort.Strings(codes)
	return codes, nil
}

func (r *accountRepository) CountChildren(ctx context.Context, accountID string) (int, error) {
	n := 0
	r.store.read(ctx, func(t *tables) {
		for _, acc := range t.accounts {
			if acc.ParentAccountID == accountID {
				n++
			}
		}
	})
	return n, nil
}

func (r *accountRepository) CountAccountReferences(ctx context.Context, accountID string) (int, error) {
	n := 0
	r.store.read(ctx, func(t *tables) { n = countReferences(t, accountID) })
	return n, nil
}

func countReferences(t *tables, accountID string) int {
	n := 0
	for _, j := range t.journals {
		for _, l := range j.Lines {
			if l.AccountID == accountID {
				n++
			}
		}
	}
	for _, e := range t.entries {
		if e.AccountID == accountID {
			n++
		}
	}
	for _, p := range t.presets {
		for _, id := range p.AccountIDs() {
			if id == accountID {
				n++
			}
		}
	}
	for _, p := range t.plans {
		if p.ReceivableControlAccountID == accountID {
			n++
		}
		if p.PayableControlAccountID == accountID {
			n++
		}
	}
	return n
}
