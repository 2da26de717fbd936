package dto

import (
	"time"

	"github.com/SscSPs/accountflow_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RecurrenceRequest carries optional recurrence metadata of a title.
type RecurrenceRequest struct {
	Frequency   domain.RecurrenceFrequency `json:"frequency" binding:"required,oneof=WEEKLY MONTHLY YEARLY"`
	Occurrences int                        `json:"occurrences" binding:"min=0"`
}

// CreateTitleRequest defines the data needed to record an obligation.
type CreateTitleRequest struct {
	Description string             `json:"description" binding:"required,max=255"`
	Type        domain.TitleType   `json:"type" binding:"required,oneof=INCOME EXPENSE"`
	Amount      decimal.Decimal    `json:"amount" binding:"required,amount_gt0"`
	DueDate     time.Time          `json:"dueDate" binding:"required"`
	PresetID    *string            `json:"presetID"`
	Recurrence  *RecurrenceRequest `json:"recurrence"`
}

// UpdateTitleRequest changes descriptive fields of a title. The amount has its own request.
type UpdateTitleRequest struct {
	Description     *string            `json:"description" binding:"omitempty,min=1,max=255"`
	DueDate         *time.Time         `json:"dueDate"`
	Recurrence      *RecurrenceRequest `json:"recurrence"`
	ClearRecurrence bool               `json:"clearRecurrence"`
}

// UpdateTitleAmountRequest changes a title's face amount.
type UpdateTitleAmountRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required,amount_gt0"`
}

// TitleResponse defines the data returned for a title.
type TitleResponse struct {
	TitleID       string             `json:"titleID"`
	CompanyID     string             `json:"companyID"`
	Description   string             `json:"description"`
	Type          domain.TitleType   `json:"type"`
	Amount        decimal.Decimal    `json:"amount"`
	DueDate       time.Time          `json:"dueDate"`
	Recurrence    *domain.Recurrence `json:"recurrence,omitempty"`
	IsActive      bool               `json:"isActive"`
	PresetID      string             `json:"presetID"`
	CreatedAt     time.Time          `json:"createdAt"`
	CreatedBy     string             `json:"createdBy"`
	LastUpdatedAt time.Time          `json:"lastUpdatedAt"`
	LastUpdatedBy string             `json:"lastUpdatedBy"`
}

// TitleBalanceResponse reports how much of a title is settled.
type TitleBalanceResponse struct {
	TitleID   string          `json:"titleID"`
	Amount    decimal.Decimal `json:"amount"`
	Settled   decimal.Decimal `json:"settled"`
	Remaining decimal.Decimal `json:"remaining"`
	IsActive  bool            `json:"isActive"`
}

// ToRecurrence converts the request form into the domain value.
func (r *RecurrenceRequest) ToRecurrence() *domain.Recurrence {
	if r == nil {
		return nil
	}
	return &domain.Recurrence{Frequency: r.Frequency, Occurrences: r.Occurrences}
}

// ToTitleResponse converts a domain.Title to its DTO.
func ToTitleResponse(t *domain.Title) TitleResponse {
	return TitleResponse{
		TitleID:       t.TitleID,
		CompanyID:     t.CompanyID,
		Description:   t.Description,
		Type:          t.Type,
		Amount:        t.Amount,
		DueDate:       t.DueDate,
		Recurrence:    t.Recurrence,
		IsActive:      t.IsActive,
		PresetID:      t.PresetID,
		CreatedAt:     t.CreatedAt,
		CreatedBy:     t.CreatedBy,
		LastUpdatedAt: t.LastUpdatedAt,
		LastUpdatedBy: t.LastUpdatedBy,
	}
}

// ToListTitleResponse converts titles to DTOs.
func ToListTitleResponse(titles []domain.Title) []TitleResponse {
	res := make([]TitleResponse, len(titles))
	for i, t := range titles {
		res[i] = ToTitleResponse(&t)
	}
	return res
}

// ToTitleBalanceResponse converts a balance summary.
func ToTitleBalanceResponse(b *domain.TitleBalance) TitleBalanceResponse {
	return TitleBalanceResponse{
		TitleID:   b.TitleID,
		Amount:    b.Amount,
		Settled:   b.Settled,
		Remaining: b.Remaining,
		IsActive:  b.IsActive,
	}
}
