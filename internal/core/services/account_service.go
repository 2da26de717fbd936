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

// accountService implements the AccountSvcFacade interface
type accountService struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
	planRepo    portsrepo.BillingPlanReader
}

// NewAccountService creates a new account service with the provided options
func NewAccountService(accountRepo portsrepo.AccountRepositoryFacade, planRepo portsrepo.BillingPlanReader, opts ...ServiceOption) portssvc.AccountSvcFacade {
	return &accountService{
		BaseService: newBaseService(opts...),
		accountRepo: accountRepo,
		planRepo:    planRepo,
	}
}

// Ensure accountService implements the AccountSvcFacade interface
var _ portssvc.AccountSvcFacade = (*accountService)(nil)

func (s *accountService) CreateAccount(ctx context.Context, planID string, req dto.CreateAccountRequest, userID string) (*domain.Account, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: account name is required", apperrors.ErrValidation)
	}
	if !domain.ValidKind(req.Kind) {
		return nil, fmt.Errorf("%w: unknown account kind %q", apperrors.ErrValidation, req.Kind)
	}

	parentID := ""
	if req.ParentAccountID != nil {
		parentID = strings.TrimSpace(*req.ParentAccountID)
	}
	if req.Kind == domain.Analytic && parentID == "" {
		return nil, fmt.Errorf("%w: analytic accounts need a synthetic parent", apperrors.ErrInvalidParent)
	}

	if _, err := s.planRepo.FindPlanByID(ctx, planID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find plan for new account", slog.String("plan_id", planID))
		}
		return nil, err
	}

	var account domain.Account
	err := s.RunLocked(ctx, []string{siblingLockKey(planID, parentID)}, func(ctx context.Context) error {
		var parent *domain.Account
		if parentID != "" {
			p, err := s.accountRepo.FindAccountByID(ctx, parentID)
			if err != nil {
				if errors.Is(err, apperrors.ErrNotFound) {
					return fmt.Errorf("%w: parent account %s not found", apperrors.ErrInvalidParent, parentID)
				}
				return err
			}
			if p.PlanID != planID {
				return fmt.Errorf("%w: parent account %s belongs to plan %s", apperrors.ErrPlanMismatch, parentID, p.PlanID)
			}
			if p.IsAnalytic() {
				return fmt.Errorf("%w: analytic account %s cannot have children", apperrors.ErrInvalidParent, parentID)
			}
			parent = p
		}

		level := childLevel(parent)
		if level > domain.MaxAccountLevel {
			return fmt.Errorf("%w: level %d is deeper than %d", apperrors.ErrMaxDepthExceeded, level, domain.MaxAccountLevel)
		}

		if err := s.accountRepo.LockSiblingSet(ctx, planID, parentID); err != nil {
			return err
		}
		siblingCodes, err := s.accountRepo.ListSiblingCodes(ctx, planID, parentID)
		if err != nil {
			return err
		}

		parentCode := ""
		if parent != nil {
			parentCode = parent.Code
		}

		now := time.Now()
		account = domain.Account{
			AccountID:       uuid.NewString(),
			PlanID:          planID,
			ParentAccountID: parentID,
			Name:            name,
			Kind:            req.Kind,
			Code:            nextAccountCode(parentCode, level, siblingCodes),
			Level:           level,
			IsActive:        true,
			AuditFields:     domain.NewAuditFields(now, userID),
		}

		if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
			if errors.Is(err, apperrors.ErrDuplicate) {
				return fmt.Errorf("%w: account code %s was taken concurrently", apperrors.ErrConcurrentModification, account.Code)
			}
			return err
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) || errors.Is(err, apperrors.ErrConflict) {
			s.LogWarn(ctx, "Account rejected", slog.String("plan_id", planID), slog.String("parent_id", parentID), slog.String("error", err.Error()))
		} else {
			s.LogError(ctx, err, "Failed to create account", slog.String("plan_id", planID), slog.String("parent_id", parentID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Account created successfully",
		slog.String("account_id", account.AccountID),
		slog.String("plan_id", planID),
		slog.String("code", account.Code))
	return &account, nil
}

func (s *accountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find account by ID", slog.String("account_id", accountID))
		}
		return nil, err
	}
	return account, nil
}

func (s *accountService) ListAccounts(ctx context.Context, planID string) ([]domain.Account, error) {
	if _, err := s.planRepo.FindPlanByID(ctx, planID); err != nil {
		return nil, err
	}
	accounts, err := s.accountRepo.ListAccountsByPlan(ctx, planID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts", slog.String("plan_id", planID))
		return nil, fmt.Errorf("failed to list accounts for plan %s: %w", planID, err)
	}
	if accounts == nil {
		return []domain.Account{}, nil
	}
	return accounts, nil
}

func (s *accountService) ListChildAccounts(ctx context.Context, accountID string) ([]domain.Account, error) {
	if _, err := s.accountRepo.FindAccountByID(ctx, accountID); err != nil {
		return nil, err
	}
	children, err := s.accountRepo.ListChildAccounts(ctx, accountID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list child accounts", slog.String("account_id", accountID))
		return nil, err
	}
	if children == nil {
		return []domain.Account{}, nil
	}
	return children, nil
}

// Level walks up the parent chain. The walk is bounded so corrupt data cannot loop forever.
func (s *accountService) Level(ctx context.Context, accountID string) (int, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return 0, err
	}

	level := 1
	for account.ParentAccountID != "" {
		level++
		if level > domain.MaxAccountLevel+1 {
			err := fmt.Errorf("%w: parent chain of account %s is longer than %d", apperrors.ErrInternal, accountID, domain.MaxAccountLevel)
			s.LogError(ctx, err, "Corrupt account hierarchy", slog.String("account_id", accountID))
			return 0, err
		}
		account, err = s.accountRepo.FindAccountByID(ctx, account.ParentAccountID)
		if err != nil {
			s.LogError(ctx, err, "Failed to walk account hierarchy", slog.String("account_id", accountID))
			return 0, err
		}
	}
	return level, nil
}

func (s *accountService) UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest, userID string) (*domain.Account, error) {
	var name *string
	if req.Name != nil {
		trimmed := strings.TrimSpace(*req.Name)
		if trimmed == "" {
			return nil, fmt.Errorf("%w: account name cannot be empty", apperrors.ErrValidation)
		}
		name = &trimmed
	}
	return s.mutateAccount(ctx, accountID, userID, func(acc *domain.Account) bool {
		changed := false
		if name != nil && *name != acc.Name {
			acc.Name = *name
			changed = true
		}
		if req.IsActive != nil && *req.IsActive != acc.IsActive {
			acc.IsActive = *req.IsActive
			changed = true
		}
		return changed
	})
}

func (s *accountService) DeactivateAccount(ctx context.Context, accountID string, userID string) (*domain.Account, error) {
	return s.setActive(ctx, accountID, userID, false)
}

func (s *accountService) ReactivateAccount(ctx context.Context, accountID string, userID string) (*domain.Account, error) {
	return s.setActive(ctx, accountID, userID, true)
}

func (s *accountService) setActive(ctx context.Context, accountID, userID string, active bool) (*domain.Account, error) {
	return s.mutateAccount(ctx, accountID, userID, func(acc *domain.Account) bool {
		if acc.IsActive == active {
			return false
		}
		acc.IsActive = active
		return true
	})
}

// mutateAccount applies change under the account's lock and persists it when change reports a difference.
func (s *accountService) mutateAccount(ctx context.Context, accountID, userID string, change func(*domain.Account) bool) (*domain.Account, error) {
	var account *domain.Account
	err := s.RunLocked(ctx, []string{accountLockKey(accountID)}, func(ctx context.Context) error {
		acc, err := s.accountRepo.FindAccountByID(ctx, accountID)
		if err != nil {
			return err
		}
		if !change(acc) {
			account = acc
			return nil
		}
		acc.Touch(time.Now(), userID)
		if err := s.accountRepo.UpdateAccount(ctx, *acc); err != nil {
			return err
		}
		account = acc
		return nil
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to update account", slog.String("account_id", accountID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Account updated", slog.String("account_id", accountID), slog.Bool("is_active", account.IsActive))
	return account, nil
}

func (s *accountService) DeleteAccount(ctx context.Context, accountID string, userID string) error {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return err
	}

	// The child sibling set is locked as well so no child appears between the check and the delete.
	keys := []string{accountLockKey(accountID), siblingLockKey(account.PlanID, accountID)}
	err = s.RunLocked(ctx, keys, func(ctx context.Context) error {
		children, err := s.accountRepo.CountChildren(ctx, accountID)
		if err != nil {
			return err
		}
		if children > 0 {
			return fmt.Errorf("%w: %d child accounts", apperrors.ErrAccountHasChildren, children)
		}

		refs, err := s.accountRepo.CountAccountReferences(ctx, accountID)
		if err != nil {
			return err
		}
		if refs > 0 {
			return fmt.Errorf("%w: %d references", apperrors.ErrAccountInUse, refs)
		}

		return s.accountRepo.DeleteAccount(ctx, accountID)
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrConflict) || errors.Is(err, apperrors.ErrNotFound) {
			s.LogWarn(ctx, "Account delete rejected", slog.String("account_id", accountID), slog.String("error", err.Error()))
		} else {
			s.LogError(ctx, err, "Failed to delete account", slog.String("account_id", accountID))
		}
		return err
	}

	s.LogInfo(ctx, "Account deleted", slog.String("account_id", accountID), slog.String("deleted_by", userID))
	return nil
}
