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

type PgxJournalRepository struct {
	BaseRepository
}

// newPgxJournalRepository creates a new repository for journals and their lines.
func newPgxJournalRepository(pool *pgxpool.Pool) portsrepo.JournalRepositoryFacade {
	return &PgxJournalRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxJournalRepository implements portsrepo.JournalRepositoryFacade
var _ portsrepo.JournalRepositoryFacade = (*PgxJournalRepository)(nil)

const journalColumns = `journal_id, company_id, journal_date, description, reference_type, reference_id,
	total_debits, total_credits, created_at, created_by, last_updated_at, last_updated_by`

const journalLineColumns = `line_id, journal_id, line_no, account_id, debit, credit, memo`

func scanJournal(row pgx.Row) (models.Journal, error) {
	var m models.Journal
	err := row.Scan(
		&m.JournalID,
		&m.CompanyID,
		&m.JournalDate,
		&m.Description,
		&m.ReferenceType,
		&m.ReferenceID,
		&m.TotalDebits,
		&m.TotalCredits,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveJournal writes the header with zero totals, then the lines in one batch, then stamps the totals.
func (r *PgxJournalRepository) SaveJournal(ctx context.Context, journal domain.Journal) error {
	return r.WithinTx(ctx, func(ctx context.Context) error {
		q := r.db(ctx)
		m := mapping.ToModelJournal(journal)

		headerQuery := `INSERT INTO journals (` + journalColumns + `)
			VALUES ($1, $2, $3, $4, $5, $6, 0, 0, $7, $8, $9, $10);`
		_, err := q.Exec(ctx, headerQuery,
			m.JournalID,
			m.CompanyID,
			m.JournalDate,
			m.Description,
			m.ReferenceType,
			m.ReferenceID,
			m.CreatedAt,
			m.CreatedBy,
			m.LastUpdatedAt,
			m.LastUpdatedBy,
		)
		if err != nil {
			return translateWriteError(err, fmt.Sprintf("journal for %s %s", m.ReferenceType, m.ReferenceID))
		}

		batch := &pgx.Batch{}
		lineQuery := `INSERT INTO journal_lines (` + journalLineColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7);`
		debits, credits := decimal.Zero, decimal.Zero
		for i, l := range journal.Lines {
			ml := mapping.ToModelJournalLine(l, i+1)
			batch.Queue(lineQuery, ml.LineID, m.JournalID, ml.LineNo, ml.AccountID, ml.Debit, ml.Credit, ml.Memo)
			debits = debits.Add(ml.Debit)
			credits = credits.Add(ml.Credit)
		}
		br := q.SendBatch(ctx, batch)
		if err := br.Close(); err != nil { // Close surfaces the first failed statement
			return translateWriteError(err, "journal lines of "+m.JournalID)
		}

		totalsQuery := `UPDATE journals SET total_debits = $2, total_credits = $3 WHERE journal_id = $1;`
		if _, err := q.Exec(ctx, totalsQuery, m.JournalID, debits, credits); err != nil {
			return translateWriteError(err, "journal totals of "+m.JournalID)
		}
		return nil
	})
}

func (r *PgxJournalRepository) findJournal(ctx context.Context, where string, args ...any) (*domain.Journal, error) {
	query := `SELECT ` + journalColumns + ` FROM journals WHERE ` + where + `;`
	m, err := scanJournal(r.db(ctx).QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find journal: %w", err)
	}
	lines, err := r.linesFor(ctx, []string{m.JournalID})
	if err != nil {
		return nil, err
	}
	journal := mapping.ToDomainJournal(m, lines[m.JournalID])
	return &journal, nil
}

func (r *PgxJournalRepository) FindJournalByID(ctx context.Context, journalID string) (*domain.Journal, error) {
	return r.findJournal(ctx, `journal_id = $1`, journalID)
}

func (r *PgxJournalRepository) FindJournalByReference(ctx context.Context, referenceType domain.ReferenceType, referenceID string) (*domain.Journal, error) {
	return r.findJournal(ctx, `reference_type = $1 AND reference_id = $2`, string(referenceType), referenceID)
}

func (r *PgxJournalRepository) ListJournalsByCompany(ctx context.Context, companyID string, limit int, offset int) ([]domain.Journal, error) {
	query := `SELECT ` + journalColumns + ` FROM journals WHERE company_id = $1
		ORDER BY journal_date DESC, created_at DESC LIMIT $2 OFFSET $3;`
	rows, err := r.db(ctx).Query(ctx, query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list journals for company %s: %w", companyID, err)
	}
	defer rows.Close()

	var headers []models.Journal
	for rows.Next() {
		m, err := scanJournal(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan journal row: %w", err)
		}
		headers = append(headers, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating journal rows: %w", err)
	}
	rows.Close()

	ids := make([]string, len(headers))
	for i, h := range headers {
		ids[i] = h.JournalID
	}
	lines, err := r.linesFor(ctx, ids)
	if err != nil {
		return nil, err
	}

	journals := make([]domain.Journal, len(headers))
	for i, h := range headers {
		journals[i] = mapping.ToDomainJournal(h, lines[h.JournalID])
	}
	return journals, nil
}

// linesFor loads the lines of every journal in ids, keyed by journal and ordered by line number.
func (r *PgxJournalRepository) linesFor(ctx context.Context, ids []string) (map[string][]models.JournalLine, error) {
	out := make(map[string][]models.JournalLine, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	query := `SELECT ` + journalLineColumns + ` FROM journal_lines WHERE journal_id = ANY($1) ORDER BY journal_id, line_no;`
	rows, err := r.db(ctx).Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to query journal lines: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var l models.JournalLine
		if err := rows.Scan(&l.LineID, &l.JournalID, &l.LineNo, &l.AccountID, &l.Debit, &l.Credit, &l.Memo); err != nil {
			return nil, fmt.Errorf("failed to scan journal line: %w", err)
		}
		out[l.JournalID] = append(out[l.JournalID], l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating journal lines: %w", err)
	}
	return out, nil
}
