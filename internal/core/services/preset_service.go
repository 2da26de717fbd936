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

type presetService struct {
	BaseService
	presetRepo  portsrepo.PresetRepositoryFacade
	accountRepo portsrepo.AccountReader
}

// NewPresetService creates a new preset service.
func NewPresetService(presetRepo portsrepo.PresetRepositoryFacade, accountRepo portsrepo.AccountReader, opts ...ServiceOption) portssvc.PresetSvcFacade {
	return &presetService{
		BaseService: newBaseService(opts...),
		presetRepo:  presetRepo,
		accountRepo: accountRepo,
	}
}

var _ portssvc.PresetSvcFacade = (*presetService)(nil)

func derefTrim(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}

func (s *presetService) CreatePreset(ctx context.Context, req dto.CreatePresetRequest, userID string) (*domain.Preset, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: preset name is required", apperrors.ErrValidation)
	}

	now := time.Now()
	preset := domain.Preset{
		PresetID:            uuid.NewString(),
		Name:                name,
		Description:         strings.TrimSpace(req.Description),
		PayableAccountID:    derefTrim(req.PayableAccountID),
		ReceivableAccountID: derefTrim(req.ReceivableAccountID),
		RevenueAccountID:    derefTrim(req.RevenueAccountID),
		ExpenseAccountID:    derefTrim(req.ExpenseAccountID),
		IsActive:            true,
		AuditFields:         domain.NewAuditFields(now, userID),
	}

	err := s.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.bindAccounts(ctx, &preset); err != nil {
			return err
		}
		return s.presetRepo.SavePreset(ctx, preset)
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			s.LogWarn(ctx, "Preset rejected", slog.String("name", name), slog.String("error", err.Error()))
		} else {
			s.LogError(ctx, err, "Failed to create preset", slog.String("name", name))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Preset created", slog.String("preset_id", preset.PresetID))
	return &preset, nil
}

func (s *presetService) UpdatePreset(ctx context.Context, presetID string, req dto.UpdatePresetRequest, userID string) (*domain.Preset, error) {
	var preset *domain.Preset
	err := s.RunLocked(ctx, []string{presetLockKey(presetID)}, func(ctx context.Context) error {
		p, err := s.presetRepo.FindPresetByID(ctx, presetID)
		if err != nil {
			return err
		}
		if req.Name != nil {
			name := strings.TrimSpace(*req.Name)
			if name == "" {
				return fmt.Errorf("%w: preset name cannot be empty", apperrors.ErrValidation)
			}
			p.Name = name
		}
		if req.Description != nil {
			p.Description = strings.TrimSpace(*req.Description)
		}
		if req.IsActive != nil {
			p.IsActive = *req.IsActive
		}

		refsChanged := false
		for _, ref := range []struct {
			in  *string
			out *string
		}{
			{req.PayableAccountID, &p.PayableAccountID},
			{req.ReceivableAccountID, &p.ReceivableAccountID},
			{req.RevenueAccountID, &p.RevenueAccountID},
			{req.ExpenseAccountID, &p.ExpenseAccountID},
		} {
			if ref.in == nil {
				continue
			}
			if v := strings.TrimSpace(*ref.in); v != *ref.out {
				*ref.out = v
				refsChanged = true
			}
		}
		if refsChanged {
			if err := s.bindAccounts(ctx, p); err != nil {
				return err
			}
		}

		p.Touch(time.Now(), userID)
		if err := s.presetRepo.UpdatePreset(ctx, *p); err != nil {
			return err
		}
		preset = p
		return nil
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) || errors.Is(err, apperrors.ErrNotFound) {
			s.LogWarn(ctx, "Preset update rejected", slog.String("preset_id", presetID), slog.String("error", err.Error()))
		} else {
			s.LogError(ctx, err, "Failed to update preset", slog.String("preset_id", presetID))
		}
		return nil, err
	}
	return preset, nil
}

// bindAccounts checks every referenced account is analytic and that they share one plan,
// then copies their current names onto the preset.
func (s *presetService) bindAccounts(ctx context.Context, p *domain.Preset) error {
	ids := p.AccountIDs()
	p.PayableAccountName, p.ReceivableAccountName, p.RevenueAccountName, p.ExpenseAccountName = "", "", "", ""
	if len(ids) == 0 {
		return nil
	}

	accounts, err := s.accountRepo.FindAccountsByIDs(ctx, ids)
	if err != nil {
		return err
	}

	planID := ""
	for _, id := range ids {
		acc, ok := accounts[id]
		if !ok {
			return fmt.Errorf("%w: account %s not found", apperrors.ErrValidation, id)
		}
		if !acc.IsAnalytic() {
			return fmt.Errorf("%w: account %s (%s)", apperrors.ErrNonAnalyticAccount, acc.Name, id)
		}
		if planID == "" {
			planID = acc.PlanID
		} else if acc.PlanID != planID {
			return fmt.Errorf("%w: preset accounts span plans %s and %s", apperrors.ErrPlanMismatch, planID, acc.PlanID)
		}
	}

	name := func(id string) string {
		if id == "" {
			return ""
		}
		return accounts[id].Name
	}
	p.PayableAccountName = name(p.PayableAccountID)
	p.ReceivableAccountName = name(p.ReceivableAccountID)
	p.RevenueAccountName = name(p.RevenueAccountID)
	p.ExpenseAccountName = name(p.ExpenseAccountID)
	return nil
}

func (s *presetService) GetPresetByID(ctx context.Context, presetID string) (*domain.Preset, error) {
	preset, err := s.presetRepo.FindPresetByID(ctx, presetID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find preset", slog.String("preset_id", presetID))
		}
		return nil, err
	}
	return preset, nil
}

func (s *presetService) ListPresets(ctx context.Context, limit int, offset int) ([]domain.Preset, error) {
	presets, err := s.presetRepo.ListPresets(ctx, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list presets")
		return nil, err
	}
	if presets == nil {
		return []domain.Preset{}, nil
	}
	return presets, nil
}

func (s *presetService) ResolvePlan(ctx context.Context, presetID string) (string, error) {
	_, planID, err := s.ResolvePresetPlan(ctx, presetID)
	return planID, err
}

func (s *presetService) ResolvePresetPlan(ctx context.Context, presetID string) (*domain.Preset, string, error) {
	preset, err := s.presetRepo.FindPresetByID(ctx, presetID)
	if err != nil {
		return nil, "", err
	}

	ids := preset.AccountIDs()
	if len(ids) == 0 {
		return preset, "", fmt.Errorf("%w: preset %s", apperrors.ErrUnboundPreset, presetID)
	}

	accounts, err := s.accountRepo.FindAccountsByIDs(ctx, ids)
	if err != nil {
		return nil, "", err
	}

	planID := ""
	for _, id := range ids {
		acc, ok := accounts[id]
		if !ok {
			continue
		}
		if planID == "" {
			planID = acc.PlanID
		} else if acc.PlanID != planID {
			return preset, "", fmt.Errorf("%w: preset %s accounts span plans %s and %s", apperrors.ErrPlanMismatch, presetID, planID, acc.PlanID)
		}
	}
	if planID == "" {
		return preset, "", fmt.Errorf("%w: preset %s accounts no longer exist", apperrors.ErrUnboundPreset, presetID)
	}
	return preset, planID, nil
}
