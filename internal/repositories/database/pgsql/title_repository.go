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
)

type PgxTitleRepository struct {
	BaseRepository
}

func newPgxTitleRepository(pool *pgxpool.Pool) portsrepo.TitleRepositoryFacade {
	return &PgxTitleRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.TitleRepositoryFacade = (*PgxTitleRepository)(nil)

const titleColumns = `title_id, company_id, description, title_type, amount, due_date,
	recurrence_frequency, recurrence_occurrences, is_active, preset_id,
	created_at, created_by, last_updated_at, last_updated_by`

func scanTitle(row pgx.Row) (models.Title, error) {
	var m models.Title
	err := row.Scan(
		&m.TitleID,
		&m.CompanyID,
		&m.Description,
		&m.TitleType,
		&m.Amount,
		&m.DueDate,
		&m.RecurrenceFrequency,
		&m.RecurrenceOccurrences,
		&m.IsActive,
		&m.PresetID,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxTitleRepository) findTitle(ctx context.Context, query, titleID string) (*domain.Title, error) {
	m, err := scanTitle(r.db(ctx).QueryRow(ctx, query, titleID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find title %s: %w", titleID, err)
	}
	title := mapping.ToDomainTitle(m)
	return &title, nil
}

func (r *PgxTitleRepository) FindTitleByID(ctx context.Context, titleID string) (*domain.Title, error) {
	return r.findTitle(ctx, `SELECT `+titleColumns+` FROM titles WHERE title_id = $1;`, titleID)
}

// FindTitleByIDForUpdate must run inside a unit of work; the row lock is held until it ends.
func (r *PgxTitleRepository) FindTitleByIDForUpdate(ctx context.Context, titleID string) (*domain.Title, error) {
	return r.findTitle(ctx, `SELECT `+titleColumns+` FROM titles WHERE title_id = $1 FOR UPDATE;`, titleID)
}

func (r *PgxTitleRepository) ListTitlesByCompany(ctx context.Context, companyID string, limit int, offset int) ([]domain.Title, error) {
	query := `SELECT ` + titleColumns + ` FROM titles WHERE company_id = $1 ORDER BY due_date, title_id LIMIT $2 OFFSET $3;`
	rows, err := r.db(ctx).Query(ctx, query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list titles for company %s: %w", companyID, err)
	}
	defer rows.Close()

	var titles []domain.Title
	for rows.Next() {
		m, err := scanTitle(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan title row: %w", err)
		}
		titles = append(titles, mapping.ToDomainTitle(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating title rows: %w", err)
	}
	return titles, nil
}

func (r *PgxTitleRepository) SaveTitle(ctx context.Context, title domain.Title) error {
	m := mapping.ToModelTitle(title)
	query := `INSERT INTO titles (` + titleColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);`
	_, err := r.db(ctx).Exec(ctx, query,
		m.TitleID,
		m.CompanyID,
		m.Description,
		m.TitleType,
		m.Amount,
		m.DueDate,
		m.RecurrenceFrequency,
		m.RecurrenceOccurrences,
		m.IsActive,
		m.PresetID,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return translateWriteError(err, "title "+m.TitleID)
	}
	return nil
}

func (r *PgxTitleRepository) UpdateTitle(ctx context.Context, title domain.Title) error {
	m := mapping.ToModelTitle(title)
	query := `
		UPDATE titles
		SET description = $2, amount = $3, due_date = $4, recurrence_frequency = $5, recurrence_occurrences = $6,
			is_active = $7, last_updated_at = $8, last_updated_by = $9
		WHERE title_id = $1;
	`
	tag, err := r.db(ctx).Exec(ctx, query,
		m.TitleID,
		m.Description,
		m.Amount,
		m.DueDate,
		m.RecurrenceFrequency,
		m.RecurrenceOccurrences,
		m.IsActive,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return translateWriteError(err, "title "+m.TitleID)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
