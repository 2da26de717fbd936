package dto

import (
	"time"

	"github.com/SscSPs/accountflow_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateEntryRequest defines a settlement against a title.
type CreateEntryRequest struct {
	Description   string               `json:"description" binding:"max=255"`
	Amount        decimal.Decimal      `json:"amount" binding:"required,amount_gt0"`
	PaidAt        time.Time            `json:"paidAt" binding:"required"`
	PaymentMethod domain.PaymentMethod `json:"paymentMethod" binding:"required,oneof=PIX CASH DEBIT CREDIT"`
	AccountID     string               `json:"accountID" binding:"required"`
}

// UpdateEntryRequest changes a settlement. Moving it to another title is allowed.
type UpdateEntryRequest struct {
	Description   *string               `json:"description" binding:"omitempty,max=255"`
	Amount        *decimal.Decimal      `json:"amount" binding:"omitempty,amount_gt0"`
	PaidAt        *time.Time            `json:"paidAt"`
	PaymentMethod *domain.PaymentMethod `json:"paymentMethod" binding:"omitempty,oneof=PIX CASH DEBIT CREDIT"`
	AccountID     *string               `json:"accountID" binding:"omitempty,min=1"`
	TitleID       *string               `json:"titleID" binding:"omitempty,min=1"`
}

// EntryResponse defines the data returned for an entry.
type EntryResponse struct {
	EntryID       string               `json:"entryID"`
	TitleID       string               `json:"titleID"`
	Description   string               `json:"description"`
	Amount        decimal.Decimal      `json:"amount"`
	PaidAt        time.Time            `json:"paidAt"`
	PaymentMethod domain.PaymentMethod `json:"paymentMethod"`
	AccountID     string               `json:"accountID"`
	CreatedAt     time.Time            `json:"createdAt"`
	CreatedBy     string               `json:"createdBy"`
	LastUpdatedAt time.Time            `json:"lastUpdatedAt"`
	LastUpdatedBy string               `json:"lastUpdatedBy"`
}

// ToEntryResponse converts a domain.Entry to its DTO.
func ToEntryResponse(e *domain.Entry) EntryResponse {
	return EntryResponse{
		EntryID:       e.EntryID,
		TitleID:       e.TitleID,
		Description:   e.Description,
		Amount:        e.Amount,
		PaidAt:        e.PaidAt,
		PaymentMethod: e.PaymentMethod,
		AccountID:     e.AccountID,
		CreatedAt:     e.CreatedAt,
		CreatedBy:     e.CreatedBy,
		LastUpdatedAt: e.LastUpdatedAt,
		LastUpdatedBy: e.LastUpdatedBy,
	}
}

// ToListEntryResponse converts entries to DTOs.
func ToListEntryResponse(entries []domain.Entry) []EntryResponse {
	res := make([]EntryResponse, len(entries))
	for i, e := range entries {
		res[i] = ToEntryResponse(&e)
	}
	return res
}
