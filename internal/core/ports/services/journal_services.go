package services

import (
	"context"

	"github.com/SscSPs/accountflow_ledger/internal/core/domain"
)

// JournalReaderSvc defines read operations for the derived journal
type JournalReaderSvc interface {
	GetJournalByID(ctx context.Context, journalID string) (*domain.Journal, error)
	ListJournals(ctx context.Context, companyID string, limit int, offset int) ([]domain.Journal, error)
	GetJournalByReference(ctx context.Context, referenceType domain.ReferenceType, referenceID string) (*domain.Journal, error)
}

// JournalPosterSvc derives journals from obligation lifecycle events.
// Each method returns a nil journal when posting was skipped because the ledger
// is not configured for the event; only storage failures are returned as errors.
type JournalPosterSvc interface {
	PostTitleCreation(ctx context.Context, title domain.Title, userID string) (*domain.Journal, error)
	PostTitleSettlement(ctx context.Context, title domain.Title, entry domain.Entry, userID string) (*domain.Journal, error)
	PostSettlementReversal(ctx context.Context, entry domain.Entry, userID string) (*domain.Journal, error)
}

// JournalSvcFacade combines all journal-related service interfaces
// This is a facade for clients that need access to all operations
type JournalSvcFacade interface {
	JournalReaderSvc
	JournalPosterSvc
}
