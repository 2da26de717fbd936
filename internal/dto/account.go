package dto

import (
	"time"

	"github.com/SscSPs/accountflow_ledger/internal/core/domain"
)

// CreateAccountRequest defines the data needed to create a new account in a plan.
type CreateAccountRequest struct {
	Name            string             `json:"name" binding:"required,max=120"`
	Kind            domain.AccountKind `json:"kind" binding:"required,oneof=SYNTHETIC ANALYTIC"`
	ParentAccountID *string            `json:"parentAccountID"` // Optional, use pointer for nullability
}

// UpdateAccountRequest defines the data allowed for updating an account.
// Structure (parent, kind, code) never changes after creation.
type UpdateAccountRequest struct {
	Name     *string `json:"name" binding:"omitempty,min=1,max=120"`
	IsActive *bool   `json:"isActive"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID       string             `json:"accountID"`
	PlanID          string             `json:"planID"`
	ParentAccountID string             `json:"parentAccountID"` // Note: Empty string for roots
	Name            string             `json:"name"`
	Kind            domain.AccountKind `json:"kind"`
	Code            string             `json:"code"`
	Level           int                `json:"level"`
	IsActive        bool               `json:"isActive"`
	CreatedAt       time.Time          `json:"createdAt"`
	CreatedBy       string             `json:"createdBy"`
	LastUpdatedAt   time.Time          `json:"lastUpdatedAt"`
	LastUpdatedBy   string             `json:"lastUpdatedBy"`
}

// AccountLevelResponse is returned by the level endpoint.
type AccountLevelResponse struct {
	AccountID string `json:"accountID"`
	Level     int    `json:"level"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:       acc.AccountID,
		PlanID:          acc.PlanID,
		ParentAccountID: acc.ParentAccountID,
		Name:            acc.Name,
		Kind:            acc.Kind,
		Code:            acc.Code,
		Level:           acc.Level,
		IsActive:        acc.IsActive,
		CreatedAt:       acc.CreatedAt,
		CreatedBy:       acc.CreatedBy,
		LastUpdatedAt:   acc.LastUpdatedAt,
		LastUpdatedBy:   acc.LastUpdatedBy,
	}
}

// ToListAccountResponse converts a slice of domain.Account to a slice of AccountResponse DTOs
func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i, acc := range accounts {
		res[i] = ToAccountResponse(&acc)
	}
	return res
}
