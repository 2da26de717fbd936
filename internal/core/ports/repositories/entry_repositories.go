package repositories

import (
	"context"

	"github.com/SscSPs/accountflow_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// EntryReader defines read operations for settlement data
type EntryReader interface {
	FindEntryByID(ctx context.Context, entryID string) (*domain.Entry, error)

	// ListEntriesByTitle retrieves a title's entries ordered by paid_at.
	ListEntriesByTitle(ctx context.Context, titleID string) ([]domain.Entry, error)

	// SumEntriesByTitle totals a title's entries, leaving out excludeEntryID when it is not empty.
	SumEntriesByTitle(ctx context.Context, titleID string, excludeEntryID string) (decimal.Decimal, error)

	// CountEntriesByTitle counts a title's entries.
	CountEntriesByTitle(ctx context.Context, titleID string) (int, error)
}

// EntryWriter defines write operations for settlement data
type EntryWriter interface {
	SaveEntry(ctx context.Context, entry domain.Entry) error
	UpdateEntry(ctx context.Context, entry domain.Entry) error
	DeleteEntry(ctx context.Context, entryID string) error
}

// EntryRepositoryFacade combines all entry-related repository interfaces
type EntryRepositoryFacade interface {
	EntryReader
	EntryWriter
}
