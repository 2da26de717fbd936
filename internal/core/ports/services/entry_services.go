package services

import (
	"context"

	"github.com/SscSPs/accountflow_ledger/internal/core/domain"
	"github.com/SscSPs/accountflow_ledger/internal/dto"
)

// EntryReaderSvc defines read operations for settlements
type EntryReaderSvc interface {
	GetEntryByID(ctx context.Context, entryID string) (*domain.Entry, error)
	ListEntries(ctx context.Context, titleID string) ([]domain.Entry, error)
}

// EntryWriterSvc defines write operations for settlements
type EntryWriterSvc interface {
	// CreateEntry settles part of a title and posts the settlement journal.
	CreateEntry(ctx context.Context, titleID string, req dto.CreateEntryRequest, userID string) (*domain.Entry, error)

	// UpdateEntry changes a settlement, re-posting it when amount, account, date or title change.
	UpdateEntry(ctx context.Context, entryID string, req dto.UpdateEntryRequest, userID string) (*domain.Entry, error)

	// DeleteEntry removes a settlement and posts the reversal of its settlement journal.
	DeleteEntry(ctx context.Context, entryID string, userID string) error
}

// EntrySvcFacade combines all entry-related service interfaces
type EntrySvcFacade interface {
	EntryReaderSvc
	EntryWriterSvc
}
