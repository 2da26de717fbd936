package dto

import (
	"time"

	"github.com/SscSPs/accountflow_ledger/internal/core/domain"
)

// CreatePresetRequest defines a posting preset. Every account given must be analytic
// and all of them must belong to the same plan.
type CreatePresetRequest struct {
	Name                string  `json:"name" binding:"required,max=120"`
	Description         string  `json:"description" binding:"max=500"`
	PayableAccountID    *string `json:"payableAccountID"`
	ReceivableAccountID *string `json:"receivableAccountID"`
	RevenueAccountID    *string `json:"revenueAccountID"`
	ExpenseAccountID    *string `json:"expenseAccountID"`
}

// UpdatePresetRequest changes a preset. A nil field is left untouched;
// an empty account id clears that reference.
type UpdatePresetRequest struct {
	Name                *string `json:"name" binding:"omitempty,min=1,max=120"`
	Description         *string `json:"description" binding:"omitempty,max=500"`
	PayableAccountID    *string `json:"payableAccountID"`
	ReceivableAccountID *string `json:"receivableAccountID"`
	RevenueAccountID    *string `json:"revenueAccountID"`
	ExpenseAccountID    *string `json:"expenseAccountID"`
	IsActive            *bool   `json:"isActive"`
}

// PresetResponse defines the data returned for a preset.
type PresetResponse struct {
	PresetID              string    `json:"presetID"`
	Name                  string    `json:"name"`
	Description           string    `json:"description"`
	PayableAccountID      string    `json:"payableAccountID"`
	PayableAccountName    string    `json:"payableAccountName"`
	ReceivableAccountID   string    `json:"receivableAccountID"`
	ReceivableAccountName string    `json:"receivableAccountName"`
	RevenueAccountID      string    `json:"revenueAccountID"`
	RevenueAccountName    string    `json:"revenueAccountName"`
	ExpenseAccountID      string    `json:"expenseAccountID"`
	ExpenseAccountName    string    `json:"expenseAccountName"`
	IsActive              bool      `json:"isActive"`
	CreatedAt             time.Time `json:"createdAt"`
	CreatedBy             string    `json:"createdBy"`
	LastUpdatedAt         time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy         string    `json:"lastUpdatedBy"`
}

// PresetPlanResponse is returned when resolving the plan a preset posts into.
type PresetPlanResponse struct {
	PresetID string `json:"presetID"`
	PlanID   string `json:"planID"`
}

// ToPresetResponse converts a domain.Preset to its DTO.
func ToPresetResponse(p *domain.Preset) PresetResponse {
	return PresetResponse{
		PresetID:              p.PresetID,
		Name:                  p.Name,
		Description:           p.Description,
		PayableAccountID:      p.PayableAccountID,
		PayableAccountName:    p.PayableAccountName,
		ReceivableAccountID:   p.ReceivableAccountID,
		ReceivableAccountName: p.ReceivableAccountName,
		RevenueAccountID:      p.RevenueAccountID,
		RevenueAccountName:    p.RevenueAccountName,
		ExpenseAccountID:      p.ExpenseAccountID,
		ExpenseAccountName:    p.ExpenseAccountName,
		IsActive:              p.IsActive,
		CreatedAt:             p.CreatedAt,
		CreatedBy:             p.CreatedBy,
		LastUpdatedAt:         p.LastUpdatedAt,
		LastUpdatedBy:         p.LastUpdatedBy,
	}
}

// ToListPresetResponse converts presets to DTOs.
func ToListPresetResponse(presets []domain.Preset) []PresetResponse {
	res := make([]PresetResponse, len(presets))
	for i, p := range presets {
		res[i] = ToPresetResponse(&p)
	}
	return res
}
