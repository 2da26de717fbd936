package repositories

import (
	"context"

	"github.com/SscSPs/accountflow_ledger/internal/core/domain"
)

// TitleReader defines read operations for title data
type TitleReader interface {
	FindTitleByID(ctx context.Context, titleID string) (*domain.Title, error)

	// FindTitleByIDForUpdate reads a title and locks its row until the surrounding transaction ends.
	FindTitleByIDForUpdate(ctx context.Context, titleID string) (*domain.Title, error)

	// ListTitlesByCompany retrieves a company's titles ordered by due date.
	ListTitlesByCompany(ctx context.Context, companyID string, limit int, offset int) ([]domain.Title, error)
}

// TitleWriter defines write operations for title data
type TitleWriter interface {
	SaveTitle(ctx context.Context, title domain.Title) error

	// UpdateTitle persists every mutable column, including amount and the derived active flag.
	UpdateTitle(ctx context.Context, title domain.Title) error
}

// TitleRepositoryFacade combines all title-related repository interfaces
type TitleRepositoryFacade interface {
	TitleReader
	TitleWriter
}
