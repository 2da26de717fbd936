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
	"github.com/shopspring/decimal"
)

type entryService struct {
	BaseService
	entryRepo   portsrepo.EntryRepositoryFacade
	titleRepo   portsrepo.TitleRepositoryFacade
	accountRepo portsrepo.AccountReader
	presets     portssvc.PresetReaderSvc
	poster      portssvc.JournalPosterSvc
}

// NewEntryService creates the service that settles titles and posts the settlements.
func NewEntryService(
	entryRepo portsrepo.EntryRepositoryFacade,
	titleRepo portsrepo.TitleRepositoryFacade,
	accountRepo portsrepo.AccountReader,
	presets portssvc.PresetReaderSvc,
	poster portssvc.JournalPosterSvc,
	opts ...ServiceOption,
) portssvc.EntrySvcFacade {
	return &entryService{
		BaseService: newBaseService(opts...),
		entryRepo:   entryRepo,
		titleRepo:   titleRepo,
		accountRepo: accountRepo,
		presets:     presets,
		poster:      poster,
	}
}

var _ portssvc.EntrySvcFacade = (*entryService)(nil)

func (s *entryService) GetEntryByID(ctx context.Context, entryID string) (*domain.Entry, error) {
	entry, err := s.entryRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find entry", slog.String("entry_id", entryID))
		}
		return nil, err
	}
	return entry, nil
}

func (s *entryService) ListEntries(ctx context.Context, titleID string) ([]domain.Entry, error) {
	if _, err := s.titleRepo.FindTitleByID(ctx, titleID); err != nil {
		return nil, err
	}
	entries, err := s.entryRepo.ListEntriesByTitle(ctx, titleID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list entries", slog.String("title_id", titleID))
		return nil, err
	}
	if entries == nil {
		return []domain.Entry{}, nil
	}
	return entries, nil
}

func (s *entryService) CreateEntry(ctx context.Context, titleID string, req dto.CreateEntryRequest, userID string) (*domain.Entry, error) {
	amount := domain.RoundMoney(req.Amount)
	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be greater than zero", apperrors.ErrValidation)
	}
	if req.PaidAt.IsZero() {
		return nil, fmt.Errorf("%w: paid at is required", apperrors.ErrValidation)
	}
	if !domain.ValidPaymentMethod(req.PaymentMethod) {
		return nil, fmt.Errorf("%w: unknown payment method %q", apperrors.ErrValidation, req.PaymentMethod)
	}
	accountID := strings.TrimSpace(req.AccountID)
	if accountID == "" {
		return nil, fmt.Errorf("%w: settling account is required", apperrors.ErrValidation)
	}

	var entry domain.Entry
	err := s.RunLocked(ctx, []string{titleLockKey(titleID)}, func(ctx context.Context) error {
		title, err := s.titleRepo.FindTitleByIDForUpdate(ctx, titleID)
		if err != nil {
			return err
		}
		if err := s.checkSettlingAccount(ctx, title, accountID); err != nil {
			return err
		}
		if err := s.checkOverpayment(ctx, title, "", amount); err != nil {
			return err
		}

		now := time.Now()
		entry = domain.Entry{
			EntryID:       uuid.NewString(),
			TitleID:       titleID,
			Description:   strings.TrimSpace(req.Description),
			Amount:        amount,
			PaidAt:        req.PaidAt,
			PaymentMethod: req.PaymentMethod,
			AccountID:     accountID,
			AuditFields:   domain.NewAuditFields(now, userID),
		}
		if err := s.entryRepo.SaveEntry(ctx, entry); err != nil {
			return err
		}
		if _, err := recomputeTitleActive(ctx, s.titleRepo, s.entryRepo, title, userID); err != nil {
			return err
		}
		_, err = s.poster.PostTitleSettlement(ctx, *title, entry, userID)
		return err
	})
	if err != nil {
		s.logRejection(ctx, err, "Entry rejected", slog.String("title_id", titleID))
		return nil, err
	}

	s.LogInfo(ctx, "Entry created",
		slog.String("entry_id", entry.EntryID),
		slog.String("title_id", titleID),
		slog.String("amount", amount.StringFixed(2)))
	return &entry, nil
}

func (s *entryService) UpdateEntry(ctx context.Context, entryID string, req dto.UpdateEntryRequest, userID string) (*domain.Entry, error) {
	current, err := s.entryRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	oldTitleID := current.TitleID
	newTitleID := oldTitleID
	if req.TitleID != nil && strings.TrimSpace(*req.TitleID) != "" {
		newTitleID = strings.TrimSpace(*req.TitleID)
	}

	var updated domain.Entry
	keys := []string{titleLockKey(oldTitleID), titleLockKey(newTitleID)}
	err = s.RunLocked(ctx, keys, func(ctx context.Context) error {
		entry, err := s.entryRepo.FindEntryByID(ctx, entryID)
		if err != nil {
			return err
		}
		if entry.TitleID != oldTitleID {
			return fmt.Errorf("%w: entry %s moved to another title", apperrors.ErrConcurrentModification, entryID)
		}
		previous := *entry

		newTitle, err := s.titleRepo.FindTitleByIDForUpdate(ctx, newTitleID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) && newTitleID != oldTitleID {
				return fmt.Errorf("%w: title %s not found", apperrors.ErrValidation, newTitleID)
			}
			return err
		}
		oldTitle := newTitle
		if oldTitleID != newTitleID {
			if oldTitle, err = s.titleRepo.FindTitleByIDForUpdate(ctx, oldTitleID); err != nil {
				return err
			}
		}

		if req.Description != nil {
			entry.Description = strings.TrimSpace(*req.Description)
		}
		if req.Amount != nil {
			entry.Amount = domain.RoundMoney(*req.Amount)
			if !entry.Amount.IsPositive() {
				return fmt.Errorf("%w: amount must be greater than zero", apperrors.ErrValidation)
			}
		}
		if req.PaidAt != nil {
			if req.PaidAt.IsZero() {
				return fmt.Errorf("%w: paid at cannot be empty", apperrors.ErrValidation)
			}
			entry.PaidAt = *req.PaidAt
		}
		if req.PaymentMethod != nil {
			if !domain.ValidPaymentMethod(*req.PaymentMethod) {
				return fmt.Errorf("%w: unknown payment method %q", apperrors.ErrValidation, *req.PaymentMethod)
			}
			entry.PaymentMethod = *req.PaymentMethod
		}
		if req.AccountID != nil {
			entry.AccountID = strings.TrimSpace(*req.AccountID)
		}
		entry.TitleID = newTitleID

		repost := !entry.Amount.Equal(previous.Amount) ||
			entry.AccountID != previous.AccountID ||
			entry.TitleID != previous.TitleID ||
			!entry.PaidAt.Equal(previous.PaidAt)

		if entry.AccountID != previous.AccountID || entry.TitleID != previous.TitleID {
			if err := s.checkSettlingAccount(ctx, newTitle, entry.AccountID); err != nil {
				return err
			}
		}
		if err := s.checkOverpayment(ctx, newTitle, entryID, entry.Amount); err != nil {
			return err
		}

		if repost {
			if _, err := s.poster.PostSettlementReversal(ctx, previous, userID); err != nil {
				return err
			}
			entry.Revision = previous.Revision + 1
		}
		entry.Touch(time.Now(), userID)
		if err := s.entryRepo.UpdateEntry(ctx, *entry); err != nil {
			return err
		}

		if _, err := recomputeTitleActive(ctx, s.titleRepo, s.entryRepo, newTitle, userID); err != nil {
			return err
		}
		if oldTitle != newTitle {
			if _, err := recomputeTitleActive(ctx, s.titleRepo, s.entryRepo, oldTitle, userID); err != nil {
				return err
			}
		}

		if repost {
			if _, err := s.poster.PostTitleSettlement(ctx, *newTitle, *entry, userID); err != nil {
				return err
			}
		}
		updated = *entry
		return nil
	})
	if err != nil {
		s.logRejection(ctx, err, "Entry update rejected", slog.String("entry_id", entryID))
		return nil, err
	}

	s.LogInfo(ctx, "Entry updated", slog.String("entry_id", entryID), slog.Int("revision", updated.Revision))
	return &updated, nil
}

func (s *entryService) DeleteEntry(ctx context.Context, entryID string, userID string) error {
	current, err := s.entryRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		return err
	}

	err = s.RunLocked(ctx, []string{titleLockKey(current.TitleID)}, func(ctx context.Context) error {
		entry, err := s.entryRepo.FindEntryByID(ctx, entryID)
		if err != nil {
			return err
		}
		if entry.TitleID != current.TitleID {
			return fmt.Errorf("%w: entry %s moved to another title", apperrors.ErrConcurrentModification, entryID)
		}
		title, err := s.titleRepo.FindTitleByIDForUpdate(ctx, entry.TitleID)
		if err != nil {
			return err
		}

		if err := s.entryRepo.DeleteEntry(ctx, entryID); err != nil {
			return err
		}
		if _, err := recomputeTitleActive(ctx, s.titleRepo, s.entryRepo, title, userID); err != nil {
			return err
		}
		_, err = s.poster.PostSettlementReversal(ctx, *entry, userID)
		return err
	})
	if err != nil {
		s.logRejection(ctx, err, "Entry delete rejected", slog.String("entry_id", entryID))
		return err
	}

	s.LogInfo(ctx, "Entry deleted", slog.String("entry_id", entryID), slog.String("title_id", current.TitleID))
	return nil
}

// checkSettlingAccount requires an active analytic account in the plan of the title's preset, if it has one.
func (s *entryService) checkSettlingAccount(ctx context.Context, title *domain.Title, accountID string) error {
	if accountID == "" {
		return fmt.Errorf("%w: settling account is required", apperrors.ErrValidation)
	}
	acc, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: account %s not found", apperrors.ErrValidation, accountID)
		}
		return err
	}
	if !acc.IsAnalytic() {
		return fmt.Errorf("%w: account %s (%s)", apperrors.ErrNonAnalyticAccount, acc.Name, accountID)
	}
	if !acc.IsActive {
		return fmt.Errorf("%w: account %s is inactive", apperrors.ErrValidation, accountID)
	}

	if title.PresetID == "" {
		return nil
	}
	_, planID, err := s.presets.ResolvePresetPlan(ctx, title.PresetID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnboundPreset) || errors.Is(err, apperrors.ErrNotFound) {
			return nil
		}
		return err
	}
	if acc.PlanID != planID {
		return fmt.Errorf("%w: account %s is not in plan %s of the title's preset", apperrors.ErrPlanMismatch, accountID, planID)
	}
	return nil
}

// checkOverpayment rejects amount when, added to the other entries of title, it exceeds the face amount.
func (s *entryService) checkOverpayment(ctx context.Context, title *domain.Title, excludeEntryID string, amount decimal.Decimal) error {
	settled, err := s.entryRepo.SumEntriesByTitle(ctx, title.TitleID, excludeEntryID)
	if err != nil {
		return err
	}
	settled = domain.RoundMoney(settled)
	if settled.Add(amount).GreaterThan(domain.RoundMoney(title.Amount)) {
		return apperrors.NewOverpaymentError(domain.Remaining(title.Amount, settled))
	}
	return nil
}

func (s *entryService) logRejection(ctx context.Context, err error, msg string, attrs ...any) {
	if errors.Is(err, apperrors.ErrValidation) || errors.Is(err, apperrors.ErrFinancialInvariant) ||
		errors.Is(err, apperrors.ErrConflict) || errors.Is(err, apperrors.ErrNotFound) {
		s.LogWarn(ctx, msg, append(attrs, slog.String("error", err.Error()))...)
		return
	}
	s.LogError(ctx, err, msg, attrs...)
}
