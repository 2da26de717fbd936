package services

import (
	portsrepo "github.com/SscSPs/accountflow_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/accountflow_ledger/internal/core/ports/services"
	"github.com/SscSPs/accountflow_ledger/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, locker portsrepo.Locker) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	opts := []ServiceOption{
		WithTransactionManager(repos.TxManager),
		WithLocker(locker),
	}

	legacy := DefaultLegacyControlLookup()
	if cfg != nil {
		legacy.Enabled = cfg.LegacyControlAccountLookup
		if len(cfg.LegacyReceivableHints) > 0 {
			legacy.ReceivableHints = cfg.LegacyReceivableHints
		}
		if len(cfg.LegacyPayableHints) > 0 {
			legacy.PayableHints = cfg.LegacyPayableHints
		}
		if len(cfg.LegacyRevenueGroupHints) > 0 {
			legacy.RevenueGroupHints = cfg.LegacyRevenueGroupHints
		}
		if len(cfg.LegacyExpenseGroupHints) > 0 {
			legacy.ExpenseGroupHints = cfg.LegacyExpenseGroupHints
		}
	}

	// Tree and plan first: presets and postings read from both
	container.Account = NewAccountService(repos.AccountRepo, repos.BillingPlanRepo, opts...)
	container.BillingPlan = NewBillingPlanService(repos.BillingPlanRepo, repos.AccountRepo, legacy, opts...)
	container.Preset = NewPresetService(repos.PresetRepo, repos.AccountRepo, opts...)

	container.Journal = NewJournalService(repos.JournalRepo, repos.AccountRepo, container.Preset, container.BillingPlan, opts...)

	container.Title = NewTitleService(repos.TitleRepo, repos.EntryRepo, container.Preset, container.Journal, opts...)
	container.Entry = NewEntryService(repos.EntryRepo, repos.TitleRepo, repos.AccountRepo, container.Preset, container.Journal, opts...)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.AccountSvcFacade     = (*accountService)(nil)
	_ portssvc.BillingPlanSvcFacade = (*billingPlanService)(nil)
	_ portssvc.PresetSvcFacade      = (*presetService)(nil)
	_ portssvc.TitleSvcFacade       = (*titleService)(nil)
	_ portssvc.EntrySvcFacade       = (*entryService)(nil)
	_ portssvc.JournalSvcFacade     = (*journalService)(nil)
)
