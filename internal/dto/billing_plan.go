package dto

import (
	"time"

	"github.com/SscSPs/accountflow_ledger/internal/core/domain"
)

// CreateBillingPlanRequest defines the data needed to create a plan. Control accounts are set later.
type CreateBillingPlanRequest struct {
	Name        string `json:"name" binding:"required,max=120"`
	Description string `json:"description" binding:"max=500"`
}

// UpdateBillingPlanRequest defines the descriptive fields of a plan that may change.
type UpdateBillingPlanRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=120"`
	Description *string `json:"description" binding:"omitempty,max=500"`
}

// SetControlAccountsRequest binds the plan's receivable and payable control accounts.
type SetControlAccountsRequest struct {
	ReceivableAccountID string `json:"receivableAccountID" binding:"required"`
	PayableAccountID    string `json:"payableAccountID" binding:"required"`
}

// BillingPlanResponse defines the data returned for a plan.
type BillingPlanResponse struct {
	PlanID                     string    `json:"planID"`
	Name                       string    `json:"name"`
	Description                string    `json:"description"`
	ReceivableControlAccountID string    `json:"receivableControlAccountID"`
	PayableControlAccountID    string    `json:"payableControlAccountID"`
	CreatedAt                  time.Time `json:"createdAt"`
	CreatedBy                  string    `json:"createdBy"`
	LastUpdatedAt              time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy              string    `json:"lastUpdatedBy"`
}

// ControlAccountsResponse is the resolved receivable/payable pair of a plan.
type ControlAccountsResponse struct {
	PlanID              string `json:"planID"`
	ReceivableAccountID string `json:"receivableAccountID"`
	PayableAccountID    string `json:"payableAccountID"`
}

// ToBillingPlanResponse converts a domain.BillingPlan to its DTO.
func ToBillingPlanResponse(p *domain.BillingPlan) BillingPlanResponse {
	return BillingPlanResponse{
		PlanID:                     p.PlanID,
		Name:                       p.Name,
		Description:                p.Description,
		ReceivableControlAccountID: p.ReceivableControlAccountID,
		PayableControlAccountID:    p.PayableControlAccountID,
		CreatedAt:                  p.CreatedAt,
		CreatedBy:                  p.CreatedBy,
		LastUpdatedAt:              p.LastUpdatedAt,
		LastUpdatedBy:              p.LastUpdatedBy,
	}
}

// ToListBillingPlanResponse converts plans to DTOs.
func ToListBillingPlanResponse(plans []domain.BillingPlan) []BillingPlanResponse {
	res := make([]BillingPlanResponse, len(plans))
	for i, p := range plans {
		res[i] = ToBillingPlanResponse(&p)
	}
	return res
}

// ToControlAccountsResponse converts the resolved control accounts of planID.
func ToControlAccountsResponse(planID string, c domain.ControlAccounts) ControlAccountsResponse {
	return ControlAccountsResponse{
		PlanID:              planID,
		ReceivableAccountID: c.ReceivableAccountID,
		PayableAccountID:    c.PayableAccountID,
	}
}
