package repositories

import (
	"context"

	"github.com/SscSPs/accountflow_ledger/internal/core/domain"
)

// JournalReader defines read operations for journal data
type JournalReader interface {
	// FindJournalByID retrieves a journal and its lines.
	FindJournalByID(ctx context.Context, journalID string) (*domain.Journal, error)

	// FindJournalByReference retrieves the journal derived from one lifecycle event,
	// or apperrors.ErrNotFound when none was posted.
	FindJournalByReference(ctx context.Context, referenceType domain.ReferenceType, referenceID string) (*domain.Journal, error)

	// ListJournalsByCompany retrieves a company's journals with their lines, newest first.
	ListJournalsByCompany(ctx context.Context, companyID string, limit int, offset int) ([]domain.Journal, error)
}

// JournalWriter defines write operations for journal data
type JournalWriter interface {
	// SaveJournal persists the header, then its lines, then stamps the totals, all in one transaction.
	// A journal already posted for the same reference returns apperrors.ErrDuplicate.
	SaveJournal(ctx context.Context, journal domain.Journal) error
}

// JournalRepositoryFacade combines all journal-related repository interfaces
// This is a facade for clients that need access to all operations
type JournalRepositoryFacade interface {
	JournalReader
	JournalWriter
}
