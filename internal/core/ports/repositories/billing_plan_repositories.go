package repositories

import (
	"context"

	"github.com/SscSPs/accountflow_ledger/internal/core/domain"
)

// BillingPlanReader defines read operations for plan data
type BillingPlanReader interface {
	FindPlanByID(ctx context.Context, planID string) (*domain.BillingPlan, error)
	ListPlans(ctx context.Context, limit int, offset int) ([]domain.BillingPlan, error)
}

// BillingPlanWriter defines write operations for plan data
type BillingPlanWriter interface {
	SavePlan(ctx context.Context, plan domain.BillingPlan) error

	// UpdatePlan persists name, description and both control account references.
	UpdatePlan(ctx context.Context, plan domain.BillingPlan) error
}

// BillingPlanRepositoryFacade combines all plan-related repository interfaces
type BillingPlanRepositoryFacade interface {
	BillingPlanReader
	BillingPlanWriter
}
