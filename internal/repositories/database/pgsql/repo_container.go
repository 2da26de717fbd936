package pgsql

import (
	portsrepo "github.com/SscSPs/accountflow_ledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires the Postgres repositories around one pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo:     newPgxAccountRepository(dbPool),
		BillingPlanRepo: newPgxBillingPlanRepository(dbPool),
		PresetRepo:      newPgxPresetRepository(dbPool),
		TitleRepo:       newPgxTitleRepository(dbPool),
		EntryRepo:       newPgxEntryRepository(dbPool),
		JournalRepo:     newPgxJournalRepository(dbPool),
		TxManager:       &BaseRepository{Pool: dbPool},
	}
}
