package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/accountflow_ledger/internal/apperrors"
	"github.com/SscSPs/accountflow_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/accountflow_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/accountflow_ledger/internal/core/ports/services"
	"github.com/SscSPs/accountflow_ledger/internal/utils/accounting"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// errPostingSkipped marks a posting the ledger is not configured for. Never leaves this file.
var errPostingSkipped = errors.New("posting skipped")

type journalService struct {
	BaseService
	journalRepo portsrepo.JournalRepositoryFacade
	accountRepo portsrepo.AccountReader
	presets     portssvc.PresetReaderSvc
	controls    portssvc.ControlAccountResolver
}

// NewJournalService creates the service that derives journals from title and entry events.
func NewJournalService(
	journalRepo portsrepo.JournalRepositoryFacade,
	accountRepo portsrepo.AccountReader,
	presets portssvc.PresetReaderSvc,
	controls portssvc.ControlAccountResolver,
	opts ...ServiceOption,
) portssvc.JournalSvcFacade {
	return &journalService{
		BaseService: newBaseService(opts...),
		journalRepo: journalRepo,
		accountRepo: accountRepo,
		presets:     presets,
		controls:    controls,
	}
}

var _ portssvc.JournalSvcFacade = (*journalService)(nil)

func (s *journalService) GetJournalByID(ctx context.Context, journalID string) (*domain.Journal, error) {
	journal, err := s.journalRepo.FindJournalByID(ctx, journalID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find journal", slog.String("journal_id", journalID))
		}
		return nil, err
	}
	return journal, nil
}

func (s *journalService) ListJournals(ctx context.Context, companyID string, limit int, offset int) ([]domain.Journal, error) {
	journals, err := s.journalRepo.ListJournalsByCompany(ctx, companyID, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list journals", slog.String("company_id", companyID))
		return nil, err
	}
	if journals == nil {
		return []domain.Journal{}, nil
	}
	return journals, nil
}

func (s *journalService) GetJournalByReference(ctx context.Context, referenceType domain.ReferenceType, referenceID string) (*domain.Journal, error) {
	if !domain.ValidReferenceType(referenceType) {
		return nil, fmt.Errorf("%w: unknown reference type %q", apperrors.ErrValidation, referenceType)
	}
	return s.journalRepo.FindJournalByReference(ctx, referenceType, referenceID)
}

// PostTitleCreation books the face amount of a title against its preset and the plan's control account.
func (s *journalService) PostTitleCreation(ctx context.Context, title domain.Title, userID string) (*domain.Journal, error) {
	logAttrs := []any{slog.String("title_id", title.TitleID), slog.String("reference_type", string(domain.RefTitleCreation))}

	preset, planID, err := s.titlePresetPlan(ctx, title)
	if err != nil {
		return s.skipped(ctx, err, logAttrs)
	}
	if preset == nil {
		return s.skipped(ctx, fmt.Errorf("%w: title has no preset", errPostingSkipped), logAttrs)
	}

	controls, err := s.controls.ResolveControlAccounts(ctx, planID)
	if err != nil {
		return s.skipped(ctx, err, logAttrs)
	}

	var debitID, creditID string
	if title.Type == domain.Income {
		debitID, creditID = controls.ReceivableAccountID, preset.RevenueAccountID
	} else {
		debitID, creditID = preset.ExpenseAccountID, controls.PayableAccountID
	}
	if err := s.requirePostable(ctx, debitID, creditID); err != nil {
		return s.skipped(ctx, err, logAttrs)
	}

	amount := domain.RoundMoney(title.Amount)
	draft := domain.Journal{
		CompanyID:     title.CompanyID,
		JournalDate:   title.CreatedAt,
		Description:   title.Description,
		ReferenceType: domain.RefTitleCreation,
		ReferenceID:   title.TitleID,
		Lines: []domain.JournalLine{
			{AccountID: debitID, Debit: amount, Credit: decimal.Zero, Memo: title.Description},
			{AccountID: creditID, Debit: decimal.Zero, Credit: amount, Memo: title.Description},
		},
	}
	journal, err := s.createJournal(ctx, draft, userID)
	if err != nil {
		return s.skipped(ctx, err, logAttrs)
	}
	return journal, nil
}

// PostTitleSettlement books one entry against the control account of the preset's plan.
func (s *journalService) PostTitleSettlement(ctx context.Context, title domain.Title, entry domain.Entry, userID string) (*domain.Journal, error) {
	logAttrs := []any{
		slog.String("title_id", title.TitleID),
		slog.String("entry_id", entry.EntryID),
		slog.String("reference_type", string(domain.RefTitleSettlement)),
	}

	// Without a preset the creation was not posted either, so the control account is left alone.
	preset, planID, err := s.titlePresetPlan(ctx, title)
	if err != nil {
		return s.skipped(ctx, err, logAttrs)
	}
	if preset == nil {
		return s.skipped(ctx, fmt.Errorf("%w: title has no preset", errPostingSkipped), logAttrs)
	}

	controls, err := s.controls.ResolveControlAccounts(ctx, planID)
	if err != nil {
		return s.skipped(ctx, err, logAttrs)
	}

	var debitID, creditID string
	if title.Type == domain.Income {
		debitID, creditID = entry.AccountID, controls.ReceivableAccountID
	} else {
		debitID, creditID = controls.PayableAccountID, entry.AccountID
	}
	if err := s.requirePostable(ctx, debitID, creditID); err != nil {
		return s.skipped(ctx, err, logAttrs)
	}

	amount := domain.RoundMoney(entry.Amount)
	memo := entry.Description
	if memo == "" {
		memo = title.Description
	}
	draft := domain.Journal{
		CompanyID:     title.CompanyID,
		JournalDate:   entry.PaidAt,
		Description:   memo,
		ReferenceType: domain.RefTitleSettlement,
		ReferenceID:   entry.SettlementReference(),
		Lines: []domain.JournalLine{
			{AccountID: debitID, Debit: amount, Credit: decimal.Zero, Memo: memo},
			{AccountID: creditID, Debit: decimal.Zero, Credit: amount, Memo: memo},
		},
	}
	journal, err := s.createJournal(ctx, draft, userID)
	if err != nil {
		return s.skipped(ctx, err, logAttrs)
	}
	return journal, nil
}

// PostSettlementReversal mirrors the entry's current settlement journal, if one was posted.
// The reversal is dated like the payment it undoes.
func (s *journalService) PostSettlementReversal(ctx context.Context, entry domain.Entry, userID string) (*domain.Journal, error) {
	original, err := s.journalRepo.FindJournalByReference(ctx, domain.RefTitleSettlement, entry.SettlementReference())
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogDebug(ctx, "No settlement journal to reverse", slog.String("entry_id", entry.EntryID))
			return nil, nil
		}
		return nil, err
	}

	lines := make([]domain.JournalLine, len(original.Lines))
	for i, l := range original.Lines {
		lines[i] = l.Swapped()
	}
	draft := domain.Journal{
		CompanyID:     original.CompanyID,
		JournalDate:   entry.PaidAt,
		Description:   "Reversal of " + original.Description,
		ReferenceType: domain.RefTitleSettlementReversal,
		ReferenceID:   entry.ReversalReference(),
		Lines:         lines,
	}
	journal, err := s.createJournal(ctx, draft, userID)
	if err != nil {
		return s.skipped(ctx, err, []any{slog.String("entry_id", entry.EntryID), slog.String("reference_type", string(domain.RefTitleSettlementReversal))})
	}
	return journal, nil
}

// createJournal persists draft unless a journal for the same reference exists, in which case
// the existing one is returned. Header, lines and totals are written in one unit of work.
func (s *journalService) createJournal(ctx context.Context, draft domain.Journal, userID string) (*domain.Journal, error) {
	var result *domain.Journal
	err := s.WithinTx(ctx, func(ctx context.Context) error {
		existing, err := s.journalRepo.FindJournalByReference(ctx, draft.ReferenceType, draft.ReferenceID)
		if err == nil {
			result = existing
			return nil
		}
		if !errors.Is(err, apperrors.ErrNotFound) {
			return err
		}

		journal, err := buildJournal(draft, userID, time.Now())
		if err != nil {
			return err
		}

		// The save runs as a nested unit so a unique violation leaves the outer one usable.
		err = s.WithinTx(ctx, func(ctx context.Context) error {
			return s.journalRepo.SaveJournal(ctx, *journal)
		})
		if err != nil {
			if errors.Is(err, apperrors.ErrDuplicate) {
				existing, findErr := s.journalRepo.FindJournalByReference(ctx, draft.ReferenceType, draft.ReferenceID)
				if findErr != nil {
					return findErr
				}
				result = existing
				return nil
			}
			return err
		}
		result = journal
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Journal posted",
		slog.String("journal_id", result.JournalID),
		slog.String("reference_type", string(result.ReferenceType)),
		slog.String("reference_id", result.ReferenceID))
	return result, nil
}

// buildJournal assigns ids and totals to draft, rejecting it unless it balances with positive totals.
func buildJournal(draft domain.Journal, userID string, now time.Time) (*domain.Journal, error) {
	lines := accounting.RoundLines(draft.Lines)
	debits, credits, err := accounting.ValidateJournalBalance(lines)
	if err != nil {
		return nil, err
	}

	journal := draft
	journal.JournalID = uuid.NewString()
	journal.AuditFields = domain.NewAuditFields(now, userID)
	if journal.JournalDate.IsZero() {
		journal.JournalDate = now
	}
	for i := range lines {
		lines[i].LineID = uuid.NewString()
		lines[i].JournalID = journal.JournalID
	}
	journal.Lines = lines
	journal.TotalDebits = debits
	journal.TotalCredits = credits
	return &journal, nil
}

// titlePresetPlan loads the title's preset and the plan it posts into.
// A title without a preset yields a nil preset and no error.
func (s *journalService) titlePresetPlan(ctx context.Context, title domain.Title) (*domain.Preset, string, error) {
	if title.PresetID == "" {
		return nil, "", nil
	}
	preset, planID, err := s.presets.ResolvePresetPlan(ctx, title.PresetID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, "", fmt.Errorf("%w: preset %s not found", errPostingSkipped, title.PresetID)
		}
		return preset, "", err
	}
	return preset, planID, nil
}

// requirePostable checks both accounts are set, exist and are analytic.
func (s *journalService) requirePostable(ctx context.Context, debitID, creditID string) error {
	if debitID == "" || creditID == "" {
		return fmt.Errorf("%w: control or preset account not configured", errPostingSkipped)
	}
	accounts, err := s.accountRepo.FindAccountsByIDs(ctx, []string{debitID, creditID})
	if err != nil {
		return err
	}
	for _, id := range []string{debitID, creditID} {
		acc, ok := accounts[id]
		if !ok {
			return fmt.Errorf("%w: account %s not found", errPostingSkipped, id)
		}
		if !acc.IsAnalytic() {
			return fmt.Errorf("%w: account %s", apperrors.ErrNonAnalyticAccount, id)
		}
	}
	return nil
}

// skipped turns configuration gaps into a logged no-op and passes storage failures through.
func (s *journalService) skipped(ctx context.Context, err error, attrs []any) (*domain.Journal, error) {
	if errors.Is(err, errPostingSkipped) || errors.Is(err, apperrors.ErrValidation) || errors.Is(err, apperrors.ErrNotFound) {
		s.LogWarn(ctx, "Journal posting skipped", append(attrs, slog.String("reason", err.Error()))...)
		return nil, nil
	}
	s.LogError(ctx, err, "Journal posting failed", attrs...)
	return nil, err
}
