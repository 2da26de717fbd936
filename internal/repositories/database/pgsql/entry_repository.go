package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/accountflow_ledger/internal/apperrors"
	"github.com/SscSPs/accountflow_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/accountflow_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/accountflow_ledger/internal/models"
	"github.com/SscSPs/accountflow_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxEntryRepository struct {
	BaseRepository
}

func newPgxEntryRepository(pool *pgxpool.Pool) portsrepo.EntryRepositoryFacade {
	return &PgxEntryRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.EntryRepositoryFacade = (*PgxEntryRepository)(nil)

const entryColumns = `entry_id, title_id, description, amount, paid_at, payment_method, account_id, revision,
	created_at, created_by, last_updated_at, last_updated_by`

func scanEntry(row pgx.Row) (models.Entry, error) {
	var m models.Entry
	err := row.Scan(
		&m.EntryID,
		&m.TitleID,
		&m.Description,
		&m.Amount,
		&m.PaidAt,
		&m.PaymentMethod,
		&m.AccountID,
		&m.Revision,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxEntryRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.Entry, error) {
	query := `SELECT ` + entryColumns + ` FROM entries WHERE entry_id = $1;`
	m, err := scanEntry(r.db(ctx).QueryRow(ctx, query, entryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find entry %s: %w", entryID, err)
	}
	entry := mapping.ToDomainEntry(m)
	return &entry, nil
}

// ListEntriesByTitle uses the (title_id, paid_at) index.
func (r *PgxEntryRepository) ListEntriesByTitle(ctx context.Context, titleID string) ([]domain.Entry, error) {
	query := `SELECT ` + entryColumns + ` FROM entries WHERE title_id = $1 ORDER BY paid_at, created_at;`
	rows, err := r.db(ctx).Query(ctx, query, titleID)
	if err != nil {
		return nil, fmt.Errorf("failed to list entries for title %s: %w", titleID, err)
	}
	defer rows.Close()

	var entries []domain.Entry
	for rows.Next() {
		m, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan entry row: %w", err)
		}
		entries = append(entries, mapping.ToDomainEntry(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating entry rows: %w", err)
	}
	return entries, nil
}

func (r *PgxEntryRepository) SumEntriesByTitle(ctx context.Context, titleID string, excludeEntryID string) (decimal.Decimal, error) {
	query := `SELECT COALESCE(SUM(amount), 0) FROM entries WHERE title_id = $1 AND entry_id <> $2;`
	var total decimal.Decimal
	if err := r.db(ctx).QueryRow(ctx, query, titleID, excludeEntryID).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum entries for title %s: %w", titleID, err)
	}
	return total, nil
}

func (r *PgxEntryRepository) CountEntriesByTitle(ctx context.Context, titleID string) (int, error) {
	var n int
	if err := r.db(ctx).QueryRow(ctx, `SELECT COUNT(*) FROM entries WHERE title_id = $1;`, titleID).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count entries for title %s: %w", titleID, err)
	}
	return n, nil
}

func (r *PgxEntryRepository) SaveEntry(ctx context.Context, entry domain.Entry) error {
	m := mapping.ToModelEntry(entry)
	query := `INSERT INTO entries (` + entryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);`
	_, err := r.db(ctx).Exec(ctx, query,
		m.EntryID,
		m.TitleID,
		m.Description,
		m.Amount,
		m.PaidAt,
		m.PaymentMethod,
		m.AccountID,
		m.Revision,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return translateWriteError(err, "entry "+m.EntryID)
	}
	return nil
}

func (r *PgxEntryRepository) UpdateEntry(ctx context.Context, entry domain.Entry) error {
	m := mapping.ToModelEntry(entry)
	query := `
		UPDATE entries
		SET title_id = $2, description = $3, amount = $4, paid_at = $5, payment_method = $6, account_id = $7,
			revision = $8, last_updated_at = $9, last_updated_by = $10
		WHERE entry_id = $1;
	`
	tag, err := r.db(ctx).Exec(ctx, query,
		m.EntryID,
		m.TitleID,
		m.Description,
		m.Amount,
		m.PaidAt,
		m.PaymentMethod,
		m.AccountID,
		m.Revision,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return translateWriteError(err, "entry "+m.EntryID)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxEntryRepository) DeleteEntry(ctx context.Context, entryID string) error {
	tag, err := r.db(ctx).Exec(ctx, `DELETE FROM entries WHERE entry_id = $1;`, entryID)
	if err != nil {
		return fmt.Errorf("failed to delete entry %s: %w", entryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
