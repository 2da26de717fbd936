package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/accountflow_ledger/internal/apperrors"
	"github.com/SscSPs/accountflow_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/accountflow_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/accountflow_ledger/internal/core/ports/services"
	"github.com/SscSPs/accountflow_ledger/internal/dto"
	"github.com/google/uuid"
)

// LegacyControlLookup configures the name-based fallback used when a plan has no
// explicit control account. Matching is case-insensitive on substrings.
type LegacyControlLookup struct {
	Enabled           bool
	ReceivableHints   []string
	PayableHints      []string
	RevenueGroupHints []string
	ExpenseGroupHints []string
}

// DefaultLegacyControlLookup returns the hints historical charts of accounts were named with. Disabled.
func DefaultLegacyControlLookup() LegacyControlLookup {
	return LegacyControlLookup{
		ReceivableHints:   []string{"receb"},
		PayableHints:      []string{"pag"},
		RevenueGroupHints: []string{"Receitas"},
		ExpenseGroupHints: []string{"Despesas"},
	}
}

type billingPlanService struct {
	BaseService
	planRepo    portsrepo.BillingPlanRepositoryFacade
	accountRepo portsrepo.AccountReader
	legacy      LegacyControlLookup
}

// NewBillingPlanService creates a new plan service.
func NewBillingPlanService(planRepo portsrepo.BillingPlanRepositoryFacade, accountRepo portsrepo.AccountReader, legacy LegacyControlLookup, opts ...ServiceOption) portssvc.BillingPlanSvcFacade {
	return &billingPlanService{
		BaseService: newBaseService(opts...),
		planRepo:    planRepo,
		accountRepo: accountRepo,
		legacy:      legacy,
	}
}

var _ portssvc.BillingPlanSvcFacade = (*billingPlanService)(nil)

func (s *billingPlanService) CreatePlan(ctx context.Context, req dto.CreateBillingPlanRequest, userID string) (*domain.BillingPlan, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: plan name is required", apperrors.ErrValidation)
	}

	now := time.Now()
	plan := domain.BillingPlan{
		PlanID:      uuid.NewString(),
		Name:        name,
		Description: strings.TrimSpace(req.Description),
		AuditFields: domain.NewAuditFields(now, userID),
	}

	err := s.WithinTx(ctx, func(ctx context.Context) error {
		return s.planRepo.SavePlan(ctx, plan)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to create billing plan", slog.String("name", name))
		return nil, err
	}

	s.LogInfo(ctx, "Billing plan created", slog.String("plan_id", plan.PlanID))
	return &plan, nil
}

func (s *billingPlanService) GetPlanByID(ctx context.Context, planID string) (*domain.BillingPlan, error) {
	plan, err := s.planRepo.FindPlanByID(ctx, planID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find billing plan", slog.String("plan_id", planID))
		}
		return nil, err
	}
	return plan, nil
}

func (s *billingPlanService) ListPlans(ctx context.Context, limit int, offset int) ([]domain.BillingPlan, error) {
	plans, err := s.planRepo.ListPlans(ctx, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list billing plans")
		return nil, err
	}
	if plans == nil {
		return []domain.BillingPlan{}, nil
	}
	return plans, nil
}

func (s *billingPlanService) UpdatePlan(ctx context.Context, planID string, req dto.UpdateBillingPlanRequest, userID string) (*domain.BillingPlan, error) {
	var plan *domain.BillingPlan
	err := s.RunLocked(ctx, []string{planLockKey(planID)}, func(ctx context.Context) error {
		p, err := s.planRepo.FindPlanByID(ctx, planID)
		if err != nil {
			return err
		}
		if req.Name != nil {
			name := strings.TrimSpace(*req.Name)
			if name == "" {
				return fmt.Errorf("%w: plan name cannot be empty", apperrors.ErrValidation)
			}
			p.Name = name
		}
		if req.Description != nil {
			p.Description = strings.TrimSpace(*req.Description)
		}
		p.Touch(time.Now(), userID)
		if err := s.planRepo.UpdatePlan(ctx, *p); err != nil {
			return err
		}
		plan = p
		return nil
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrValidation) {
			s.LogError(ctx, err, "Failed to update billing plan", slog.String("plan_id", planID))
		}
		return nil, err
	}
	return plan, nil
}

func (s *billingPlanService) SetControlAccounts(ctx context.Context, planID string, req dto.SetControlAccountsRequest, userID string) (*domain.BillingPlan, error) {
	var plan *domain.BillingPlan
	err := s.RunLocked(ctx, []string{planLockKey(planID)}, func(ctx context.Context) error {
		p, err := s.planRepo.FindPlanByID(ctx, planID)
		if err != nil {
			return err
		}

		accounts, err := s.accountRepo.FindAccountsByIDs(ctx, []string{req.ReceivableAccountID, req.PayableAccountID})
		if err != nil {
			return err
		}
		for _, id := range []string{req.ReceivableAccountID, req.PayableAccountID} {
			acc, ok := accounts[id]
			if !ok {
				return fmt.Errorf("%w: account %s not found", apperrors.ErrInvalidControlAccount, id)
			}
			if acc.PlanID != planID {
				return fmt.Errorf("%w: account %s belongs to plan %s", apperrors.ErrInvalidControlAccount, id, acc.PlanID)
			}
			if !acc.IsAnalytic() {
				return fmt.Errorf("%w: account %s is not analytic", apperrors.ErrInvalidControlAccount, id)
			}
		}

		p.ReceivableControlAccountID = req.ReceivableAccountID
		p.PayableControlAccountID = req.PayableAccountID
		p.Touch(time.Now(), userID)
		if err := s.planRepo.UpdatePlan(ctx, *p); err != nil {
			return err
		}
		plan = p
		return nil
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) || errors.Is(err, apperrors.ErrNotFound) {
			s.LogWarn(ctx, "Control accounts rejected", slog.String("plan_id", planID), slog.String("error", err.Error()))
		} else {
			s.LogError(ctx, err, "Failed to set control accounts", slog.String("plan_id", planID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Control accounts set",
		slog.String("plan_id", planID),
		slog.String("receivable_account_id", plan.ReceivableControlAccountID),
		slog.String("payable_account_id", plan.PayableControlAccountID))
	return plan, nil
}

func (s *billingPlanService) ResolveControlAccounts(ctx context.Context, planID string) (domain.ControlAccounts, error) {
	plan, err := s.planRepo.FindPlanByID(ctx, planID)
	if err != nil {
		return domain.ControlAccounts{}, err
	}

	resolved := domain.ControlAccounts{
		ReceivableAccountID: plan.ReceivableControlAccountID,
		PayableAccountID:    plan.PayableControlAccountID,
	}
	if !s.legacy.Enabled || (resolved.ReceivableAccountID != "" && resolved.PayableAccountID != "") {
		return resolved, nil
	}

	accounts, err := s.accountRepo.ListAccountsByPlan(ctx, planID)
	if err != nil {
		return domain.ControlAccounts{}, err
	}
	if resolved.ReceivableAccountID == "" {
		resolved.ReceivableAccountID = legacyControlAccount(accounts, s.legacy.ReceivableHints, s.legacy.RevenueGroupHints)
		if resolved.ReceivableAccountID != "" {
			s.LogWarn(ctx, "Receivable control account resolved by name", slog.String("plan_id", planID), slog.String("account_id", resolved.ReceivableAccountID))
		}
	}
	if resolved.PayableAccountID == "" {
		resolved.PayableAccountID = legacyControlAccount(accounts, s.legacy.PayableHints, s.legacy.ExpenseGroupHints)
		if resolved.PayableAccountID != "" {
			s.LogWarn(ctx, "Payable control account resolved by name", slog.String("plan_id", planID), slog.String("account_id", resolved.PayableAccountID))
		}
	}
	return resolved, nil
}

// legacyControlAccount picks the first active analytic account named after one of hints,
// else the first analytic child of a synthetic account named after one of groupHints.
// accounts must be ordered by code.
func legacyControlAccount(accounts []domain.Account, hints, groupHints []string) string {
	for _, acc := range accounts {
		if acc.IsActive && acc.IsAnalytic() && nameMatches(acc.Name, hints) {
			return acc.AccountID
		}
	}

	groups := make(map[string]struct{})
	for _, acc := range accounts {
		if acc.Kind == domain.Synthetic && nameMatches(acc.Name, groupHints) {
			groups[acc.AccountID] = struct{}{}
		}
	}
	for _, acc := range accounts {
		if _, ok := groups[acc.ParentAccountID]; ok && acc.IsAnalytic() {
			return acc.AccountID
		}
	}
	return ""
}

func nameMatches(name string, hints []string) bool {
	lower := strings.ToLower(name)
	for _, h := range hints {
		h = strings.ToLower(strings.TrimSpace(h))
		if h != "" && strings.Contains(lower, h) {
			return true
		}
	}
	return false
}
