package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/SscSPs/accountflow_ledger/internal/apperrors"
	"github.com/SscSPs/accountflow_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/accountflow_ledger/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

type entryRepository struct {
	store *Store
}

var _ portsrepo.EntryRepositoryFacade = (*entryRepository)(nil)

func (r *entryRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.Entry, error) {
	var (
		entry domain.Entry
		ok    bool
	)
	r.store.read(ctx, func(t *tables) { entry, ok = t.entries[entryID] })
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &entry, nil
}

func (r *entryRepository) ListEntriesByTitle(ctx context.Context, titleID string) ([]domain.Entry, error) {
	var out []domain.Entry
	r.store.read(ctx, func(t *tables) {
		for _, e := range t.entries {
			if e.TitleID == titleID {
				out = append(out, e)
			}
		}
	})
	sort.Slice(out, func(i, j int) bool {
		if out[i].PaidAt.Equal(out[j].PaidAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].PaidAt.Before(out[j].PaidAt)
	})
	return out, nil
}

func (r *entryRepository) SumEntriesByTitle(ctx context.Context, titleID string, excludeEntryID string) (decimal.Decimal, error) {
	total := decimal.Zero
	r.store.read(ctx, func(t *tables) {
		for _, e := range t.entries {
			if e.TitleID == titleID && e.EntryID != excludeEntryID {
				total = total.Add(e.Amount)
			}
		}
	})
	return total, nil
}

func (r *entryRepository) CountEntriesByTitle(ctx context.Context, titleID string) (int, error) {
	n := 0
	r.store.read(ctx, func(t *tables) {
		for _, e := range t.entries {
			if e.TitleID == titleID {
				n++
			}
		}
	})
	return n, nil
}

func (r *entryRepository) SaveEntry(ctx context.Context, entry domain.Entry) error {
	return r.store.write(ctx, func(t *tables) error {
		if _, ok := t.entries[entry.EntryID]; ok {
			return fmt.Errorf("%w: entry with ID %s already exists", apperrors.ErrDuplicate, entry.EntryID)
		}
		if err := checkEntryRefs(t, entry); err != nil {
			return err
		}
		t.entries[entry.EntryID] = entry
		return nil
	})
}

func (r *entryRepository) UpdateEntry(ctx context.Context, entry domain.Entry) error {
	return r.store.write(ctx, func(t *tables) error {
		if _, ok := t.entries[entry.EntryID]; !ok {
			return apperrors.ErrNotFound
		}
		if err := checkEntryRefs(t, entry); err != nil {
			return err
		}
		t.entries[entry.EntryID] = entry
		return nil
	})
}

func (r *entryRepository) DeleteEntry(ctx context.Context, entryID string) error {
	return r.store.write(ctx, func(t *tables) error {
		if _, ok := t.entries[entryID]; !ok {
			return apperrors.ErrNotFound
		}
		delete(t.entries, entryID)
		return nil
	})
}

func checkEntryRefs(t *tables, entry domain.Entry) error {
	if _, ok := t.titles[entry.TitleID]; !ok {
		return fmt.Errorf("%w: title %s", apperrors.ErrNotFound, entry.TitleID)
	}
	if _, ok := t.accounts[entry.AccountID]; !ok {
		return fmt.Errorf("%w: account %s", apperrors.ErrNotFound, entry.AccountID)
	}
	return nil
}
