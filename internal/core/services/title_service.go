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

type titleService struct {
	BaseService
	titleRepo portsrepo.TitleRepositoryFacade
	entryRepo portsrepo.EntryReader
	presets   portssvc.PresetReaderSvc
	poster    portssvc.JournalPosterSvc
}

// NewTitleService creates the service owning title lifecycle and its creation posting.
func NewTitleService(
	titleRepo portsrepo.TitleRepositoryFacade,
	entryRepo portsrepo.EntryReader,
	presets portssvc.PresetReaderSvc,
	poster portssvc.JournalPosterSvc,
	opts ...ServiceOption,
) portssvc.TitleSvcFacade {
	return &titleService{
		BaseService: newBaseService(opts...),
		titleRepo:   titleRepo,
		entryRepo:   entryRepo,
		presets:     presets,
		poster:      poster,
	}
}

var _ portssvc.TitleSvcFacade = (*titleService)(nil)

func validateRecurrence(r *domain.Recurrence) error {
	if r == nil {
		return nil
	}
	switch r.Frequency {
	case domain.Weekly, domain.Monthly, domain.Yearly:
	default:
		return fmt.Errorf("%w: unknown recurrence frequency %q", apperrors.ErrValidation, r.Frequency)
	}
	if r.Occurrences < 0 {
		return fmt.Errorf("%w: recurrence occurrences cannot be negative", apperrors.ErrValidation)
	}
	return nil
}

func (s *titleService) CreateTitle(ctx context.Context, companyID string, req dto.CreateTitleRequest, userID string) (*domain.Title, error) {
	companyID = strings.TrimSpace(companyID)
	if companyID == "" {
		return nil, fmt.Errorf("%w: company is required", apperrors.ErrValidation)
	}
	description := strings.TrimSpace(req.Description)
	if description == "" {
		return nil, fmt.Errorf("%w: description is required", apperrors.ErrValidation)
	}
	if !domain.ValidTitleType(req.Type) {
		return nil, fmt.Errorf("%w: unknown title type %q", apperrors.ErrValidation, req.Type)
	}
	amount := domain.RoundMoney(req.Amount)
	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be greater than zero", apperrors.ErrValidation)
	}
	if req.DueDate.IsZero() {
		return nil, fmt.Errorf("%w: due date is required", apperrors.ErrValidation)
	}
	recurrence := req.Recurrence.ToRecurrence()
	if err := validateRecurrence(recurrence); err != nil {
		return nil, err
	}

	presetID := derefTrim(req.PresetID)
	if presetID != "" {
		if err := s.checkPreset(ctx, presetID); err != nil {
			return nil, err
		}
	}

	now := time.Now()
	title := domain.Title{
		TitleID:     uuid.NewString(),
		CompanyID:   companyID,
		Description: description,
		Type:        req.Type,
		Amount:      amount,
		DueDate:     req.DueDate,
		Recurrence:  recurrence,
		IsActive:    true,
		PresetID:    presetID,
		AuditFields: domain.NewAuditFields(now, userID),
	}

	err := s.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.titleRepo.SaveTitle(ctx, title); err != nil {
			return err
		}
		_, err := s.poster.PostTitleCreation(ctx, title, userID)
		return err
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to create title", slog.String("company_id", companyID))
		return nil, err
	}

	s.LogInfo(ctx, "Title created",
		slog.String("title_id", title.TitleID),
		slog.String("type", string(title.Type)),
		slog.String("amount", title.Amount.StringFixed(2)))
	return &title, nil
}

// checkPreset accepts an unbound preset; such titles are simply never posted.
func (s *titleService) checkPreset(ctx context.Context, presetID string) error {
	preset, _, err := s.presets.ResolvePresetPlan(ctx, presetID)
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		return fmt.Errorf("%w: preset %s not found", apperrors.ErrValidation, presetID)
	case errors.Is(err, apperrors.ErrUnboundPreset):
		s.LogWarn(ctx, "Title bound to a preset without accounts", slog.String("preset_id", presetID))
	case err != nil:
		return err
	}
	if preset != nil && !preset.IsActive {
		return fmt.Errorf("%w: preset %s is inactive", apperrors.ErrValidation, presetID)
	}
	return nil
}

func (s *titleService) GetTitleByID(ctx context.Context, titleID string) (*domain.Title, error) {
	title, err := s.titleRepo.FindTitleByID(ctx, titleID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find title", slog.String("title_id", titleID))
		}
		return nil, err
	}
	return title, nil
}

func (s *titleService) ListTitles(ctx context.Context, companyID string, limit int, offset int) ([]domain.Title, error) {
	titles, err := s.titleRepo.ListTitlesByCompany(ctx, companyID, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list titles", slog.String("company_id", companyID))
		return nil, err
	}
	if titles == nil {
		return []domain.Title{}, nil
	}
	return titles, nil
}

func (s *titleService) GetTitleBalance(ctx context.Context, titleID string) (*domain.TitleBalance, error) {
	title, err := s.titleRepo.FindTitleByID(ctx, titleID)
	if err != nil {
		return nil, err
	}
	settled, err := s.entryRepo.SumEntriesByTitle(ctx, titleID, "")
	if err != nil {
		s.LogError(ctx, err, "Failed to sum entries", slog.String("title_id", titleID))
		return nil, err
	}
	settled = domain.RoundMoney(settled)
	return &domain.TitleBalance{
		TitleID:   title.TitleID,
		Amount:    title.Amount,
		Settled:   settled,
		Remaining: domain.Remaining(title.Amount, settled),
		IsActive:  domain.IsActiveFor(title.Amount, settled),
	}, nil
}

func (s *titleService) UpdateTitle(ctx context.Context, titleID string, req dto.UpdateTitleRequest, userID string) (*domain.Title, error) {
	var recurrence *domain.Recurrence
	if req.Recurrence != nil {
		recurrence = req.Recurrence.ToRecurrence()
		if err := validateRecurrence(recurrence); err != nil {
			return nil, err
		}
	}

	var title *domain.Title
	err := s.RunLocked(ctx, []string{titleLockKey(titleID)}, func(ctx context.Context) error {
		t, err := s.titleRepo.FindTitleByIDForUpdate(ctx, titleID)
		if err != nil {
			return err
		}
		if req.Description != nil {
			d := strings.TrimSpace(*req.Description)
			if d == "" {
				return fmt.Errorf("%w: description cannot be empty", apperrors.ErrValidation)
			}
			t.Description = d
		}
		if req.DueDate != nil {
			if req.DueDate.IsZero() {
				return fmt.Errorf("%w: due date cannot be empty", apperrors.ErrValidation)
			}
			t.DueDate = *req.DueDate
		}
		if req.ClearRecurrence {
			t.Recurrence = nil
		} else if recurrence != nil {
			t.Recurrence = recurrence
		}
		t.Touch(time.Now(), userID)
		if err := s.titleRepo.UpdateTitle(ctx, *t); err != nil {
			return err
		}
		title = t
		return nil
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrValidation) {
			s.LogError(ctx, err, "Failed to update title", slog.String("title_id", titleID))
		}
		return nil, err
	}
	return title, nil
}

func (s *titleService) UpdateTitleAmount(ctx context.Context, titleID string, req dto.UpdateTitleAmountRequest, userID string) (*domain.Title, error) {
	amount := domain.RoundMoney(req.Amount)
	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be greater than zero", apperrors.ErrValidation)
	}

	var title *domain.Title
	err := s.RunLocked(ctx, []string{titleLockKey(titleID)}, func(ctx context.Context) error {
		t, err := s.titleRepo.FindTitleByIDForUpdate(ctx, titleID)
		if err != nil {
			return err
		}

		count, err := s.entryRepo.CountEntriesByTitle(ctx, titleID)
		if err != nil {
			return err
		}
		if count > 0 {
			return fmt.Errorf("%w: title %s has %d entries", apperrors.ErrImmutableAfterSettlement, titleID, count)
		}

		settled, err := s.entryRepo.SumEntriesByTitle(ctx, titleID, "")
		if err != nil {
			return err
		}
		settled = domain.RoundMoney(settled)
		if amount.LessThan(settled) {
			return &apperrors.BelowSettledTotalError{Settled: settled}
		}

		t.Amount = amount
		t.IsActive = domain.IsActiveFor(amount, settled)
		t.Touch(time.Now(), userID)
		if err := s.titleRepo.UpdateTitle(ctx, *t); err != nil {
			return err
		}
		title = t
		return nil
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrFinancialInvariant) || errors.Is(err, apperrors.ErrNotFound) {
			s.LogWarn(ctx, "Title amount change rejected", slog.String("title_id", titleID), slog.String("error", err.Error()))
		} else {
			s.LogError(ctx, err, "Failed to update title amount", slog.String("title_id", titleID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Title amount updated", slog.String("title_id", titleID), slog.String("amount", amount.StringFixed(2)))
	return title, nil
}

func (s *titleService) RecomputeActive(ctx context.Context, titleID string, userID string) (*domain.Title, error) {
	var title *domain.Title
	err := s.RunLocked(ctx, []string{titleLockKey(titleID)}, func(ctx context.Context) error {
		t, err := s.titleRepo.FindTitleByIDForUpdate(ctx, titleID)
		if err != nil {
			return err
		}
		if _, err := recomputeTitleActive(ctx, s.titleRepo, s.entryRepo, t, userID); err != nil {
			return err
		}
		title = t
		return nil
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to recompute title status", slog.String("title_id", titleID))
		}
		return nil, err
	}
	return title, nil
}

// recomputeTitleActive re-derives t.IsActive from the stored entries and persists it when it changed.
// The caller must hold the title's lock.
func recomputeTitleActive(ctx context.Context, titles portsrepo.TitleWriter, entries portsrepo.EntryReader, t *domain.Title, userID string) (bool, error) {
	settled, err := entries.SumEntriesByTitle(ctx, t.TitleID, "")
	if err != nil {
		return false, err
	}
	active := domain.IsActiveFor(t.Amount, settled)
	if active == t.IsActive {
		return false, nil
	}
	t.IsActive = active
	t.Touch(time.Now(), userID)
	if err := titles.UpdateTitle(ctx, *t); err != nil {
		return false, err
	}
	return true, nil
}
