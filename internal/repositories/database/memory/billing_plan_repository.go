package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/SscSPs/accountflow_ledger/internal/apperrors"
	"github.com/SscSPs/accountflow_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/accountflow_ledger/internal/core/ports/repositories"
)

type billingPlanRepository struct {
	store *Store
}

var _ portsrepo.BillingPlanRepositoryFacade = (*billingPlanRepository)(nil)

func (r *billingPlanRepository) FindPlanByID(ctx context.Context, planID string) (*domain.BillingPlan, error) {
	var (
		plan domain.BillingPlan
		ok   bool
	)
	r.store.read(ctx, func(t *tables) { plan, ok = t.plans[planID] })
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &plan, nil
}

func (r *billingPlanRepository) ListPlans(ctx context.Context, limit int, offset int) ([]domain.BillingPlan, error) {
	var out []domain.BillingPlan
	r.store.read(ctx, func(t *tables) {
		for _, p := range t.plans {
			out = append(out, p)
		}
	})
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return page(out, limit, offset), nil
}

func (r *billingPlanRepository) SavePlan(ctx context.Context, plan domain.BillingPlan) error {
	return r.store.write(ctx, func(t *tables) error {
		if _, ok := t.plans[plan.PlanID]; ok {
			return fmt.Errorf("%w: plan with ID %s already exists", apperrors.ErrDuplicate, plan.PlanID)
		}
		t.plans[plan.PlanID] = plan
		return nil
	})
}

func (r *billingPlanRepository) UpdatePlan(ctx context.Context, plan domain.BillingPlan) error {
	return r.store.write(ctx, func(t *tables) error {
		if _, ok := t.plans[plan.PlanID]; !ok {
			return apperrors.ErrNotFound
		}
		for _, id := range []string{plan.ReceivableControlAccountID, plan.PayableControlAccountID} {
			if id == "" {
				continue
			}
			if _, ok := t.accounts[id]; !ok {
				return fmt.Errorf("%w: control account %s", apperrors.ErrNotFound, id)
			}
		}
		t.plans[plan.PlanID] = plan
		return nil
	})
}
