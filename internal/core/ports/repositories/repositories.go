package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	AccountRepo     AccountRepositoryFacade
	BillingPlanRepo BillingPlanRepositoryFacade
	PresetRepo      PresetRepositoryFacade
	TitleRepo       TitleRepositoryFacade
	EntryRepo       EntryRepositoryFacade
	JournalRepo     JournalRepositoryFacade
	TxManager       TransactionManager
}
