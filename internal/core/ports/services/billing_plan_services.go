package services

import (
	"context"

	"github.com/SscSPs/accountflow_ledger/internal/core/domain"
	"github.com/SscSPs/accountflow_ledger/internal/dto"
)

// ControlAccountResolver resolves the control accounts postings are made against.
type ControlAccountResolver interface {
	// ResolveControlAccounts returns the plan's receivable and payable control accounts.
	// Unset accounts come back empty and are not an error.
	ResolveControlAccounts(ctx context.Context, planID string) (domain.ControlAccounts, error)
}

// BillingPlanReaderSvc defines read operations for plans
type BillingPlanReaderSvc interface {
	GetPlanByID(ctx context.Context, planID string) (*domain.BillingPlan, error)
	ListPlans(ctx context.Context, limit int, offset int) ([]domain.BillingPlan, error)
	ControlAccountResolver
}

// BillingPlanWriterSvc defines write operations for plans
type BillingPlanWriterSvc interface {
	CreatePlan(ctx context.Context, req dto.CreateBillingPlanRequest, userID string) (*domain.BillingPlan, error)
	UpdatePlan(ctx context.Context, planID string, req dto.UpdateBillingPlanRequest, userID string) (*domain.BillingPlan, error)

	// SetControlAccounts binds both control accounts; each must be an analytic account of the plan.
	SetControlAccounts(ctx context.Context, planID string, req dto.SetControlAccountsRequest, userID string) (*domain.BillingPlan, error)
}

// BillingPlanSvcFacade combines all plan-related service interfaces
type BillingPlanSvcFacade interface {
	BillingPlanReaderSvc
	BillingPlanWriterSvc
}
