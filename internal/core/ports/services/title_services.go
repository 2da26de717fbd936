package services

import (
	"context"

	"github.com/SscSPs/accountflow_ledger/internal/core/domain"
	"github.com/SscSPs/accountflow_ledger/internal/dto"
)

// TitleReaderSvc defines read operations for titles
type TitleReaderSvc interface {
	GetTitleByID(ctx context.Context, titleID string) (*domain.Title, error)
	ListTitles(ctx context.Context, companyID string, limit int, offset int) ([]domain.Title, error)
	GetTitleBalance(ctx context.Context, titleID string) (*domain.TitleBalance, error)
}

// TitleWriterSvc defines write operations for titles
type TitleWriterSvc interface {
	// CreateTitle records an obligation and posts its creation journal when the ledger is configured.
	CreateTitle(ctx context.Context, companyID string, req dto.CreateTitleRequest, userID string) (*domain.Title, error)

	// UpdateTitle changes description, due date or recurrence.
	UpdateTitle(ctx context.Context, titleID string, req dto.UpdateTitleRequest, userID string) (*domain.Title, error)

	// UpdateTitleAmount changes the face amount of a title that has no settlements yet.
	UpdateTitleAmount(ctx context.Context, titleID string, req dto.UpdateTitleAmountRequest, userID string) (*domain.Title, error)

	// RecomputeActive re-derives the active flag from the title's entries. No-op when unchanged.
	RecomputeActive(ctx context.Context, titleID string, userID string) (*domain.Title, error)
}

// TitleSvcFacade combines all title-related service interfaces
type TitleSvcFacade interface {
	TitleReaderSvc
	TitleWriterSvc
}
