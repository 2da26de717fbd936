package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/SscSPs/accountflow_ledger/internal/apperrors"
	"github.com/SscSPs/accountflow_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/accountflow_ledger/internal/core/ports/repositories"
)

type journalRepository struct {
	store *Store
}

var _ portsrepo.JournalRepositoryFacade = (*journalRepository)(nil)

func (r *journalRepository) FindJournalByID(ctx context.Context, journalID string) (*domain.Journal, error) {
	var (
		journal domain.Journal
		ok      bool
	)
	r.store.read(ctx, func(t *tables) {
		journal, ok = t.journals[journalID]
		journal = copyJournal(journal)
	})
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &journal, nil
}

func (r *journalRepository) FindJournalByReference(ctx context.Context, referenceType domain.ReferenceType, referenceID string) (*domain.Journal, error) {
	var (
		journal domain.Journal
		ok      bool
	)
	r.store.read(ctx, func(t *tables) {
		var id string
		if id, ok = t.journalRefs[refKey{referenceType, referenceID}]; ok {
			journal = copyJournal(t.journals[id])
		}
	})
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &journal, nil
}

func (r *journalRepository) ListJournalsByCompany(ctx context.Context, companyID string, limit int, offset int) ([]domain.Journal, error) {
	var out []domain.Journal
	r.store.read(ctx, func(t *tables) {
		for _, j := range t.journals {
			if j.CompanyID == companyID {
				out = append(out, copyJournal(j))
			}
		}
	})
	sort.Slice(out, func(i, j int) bool {
		if out[i].JournalDate.Equal(out[j].JournalDate) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].JournalDate.After(out[j].JournalDate)
	})
	return page(out, limit, offset), nil
}

func (r *journalRepository) SaveJournal(ctx context.Context, journal domain.Journal) error {
	return r.store.write(ctx, func(t *tables) error {
		key := refKey{journal.ReferenceType, journal.ReferenceID}
		if _, ok := t.journalRefs[key]; ok {
			return fmt.Errorf("%w: journal for %s %s already exists", apperrors.ErrDuplicate, journal.ReferenceType, journal.ReferenceID)
		}
		if _, ok := t.journals[journal.JournalID]; ok {
			return fmt.Errorf("%w: journal with ID %s already exists", apperrors.ErrDuplicate, journal.JournalID)
		}
		for _, l := range journal.Lines {
			if _, ok := t.accounts[l.AccountID]; !ok {
				return fmt.Errorf("%w: account %s", apperrors.ErrNotFound, l.AccountID)
			}
		}
		t.journals[journal.JournalID] = copyJournal(journal)
		t.journalRefs[key] = journal.JournalID
		return nil
	})
}
