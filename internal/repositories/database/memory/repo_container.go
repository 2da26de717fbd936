package memory

import (
	portsrepo "github.com/SscSPs/accountflow_ledger/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every repository to one shared store.
func NewRepositoryProvider(store *Store) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo:     &accountRepository{store: store},
		BillingPlanRepo: &billingPlanRepository{store: store},
		PresetRepo:      &presetRepository{store: store},
		TitleRepo:       &titleRepository{store: store},
		EntryRepo:       &entryRepository{store: store},
		JournalRepo:     &journalRepository{store: store},
		TxManager:       store,
	}
}
