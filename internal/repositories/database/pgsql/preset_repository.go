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

type PgxPresetRepository struct {
	BaseRepository
}

func newPgxPresetRepository(pool *pgxpool.Pool) portsrepo.PresetRepositoryFacade {
	return &PgxPresetRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PresetRepositoryFacade = (*PgxPresetRepository)(nil)

const presetColumns = `preset_id, name, description,
	payable_account_id, receivable_account_id, revenue_account_id, expense_account_id,
	payable_account_name, receivable_account_name, revenue_account_name, expense_account_name,
	is_active, created_at, created_by, last_updated_at, last_updated_by`

func scanPreset(row pgx.Row) (models.Preset, error) {
	var m models.Preset
	err := row.Scan(
		&m.PresetID,
		&m.Name,
		&m.Description,
		&m.PayableAccountID,
		&m.ReceivableAccountID,
		&m.RevenueAccountID,
		&m.ExpenseAccountID,
		&m.PayableAccountName,
		&m.ReceivableAccountName,
		&m.RevenueAccountName,
		&m.ExpenseAccountName,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func presetArgs(m models.Preset) []any {
	return []any{
		m.PresetID,
		m.Name,
		m.Description,
		m.PayableAccountID,
		m.ReceivableAccountID,
		m.RevenueAccountID,
		m.ExpenseAccountID,
		m.PayableAccountName,
		m.ReceivableAccountName,
		m.RevenueAccountName,
		m.ExpenseAccountName,
		m.IsActive,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	}
}

func (r *PgxPresetRepository) SavePreset(ctx context.Context, preset domain.Preset) error {
	m := mapping.ToModelPreset(preset)
	query := `INSERT INTO presets (` + presetColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);`
	if _, err := r.db(ctx).Exec(ctx, query, presetArgs(m)...); err != nil {
		return translateWriteError(err, "preset "+m.PresetID)
	}
	return nil
}

func (r *PgxPresetRepository) UpdatePreset(ctx context.Context, preset domain.Preset) error {
	m := mapping.ToModelPreset(preset)
	query := `
		UPDATE presets
		SET name = $2, description = $3,
			payable_account_id = $4, receivable_account_id = $5, revenue_account_id = $6, expense_account_id = $7,
			payable_account_name = $8, receivable_account_name = $9, revenue_account_name = $10, expense_account_name = $11,
			is_active = $12, last_updated_at = $13, last_updated_by = $14
		WHERE preset_id = $1;
	`
	tag, err := r.db(ctx).Exec(ctx, query,
		m.PresetID,
		m.Name,
		m.Description,
		m.PayableAccountID,
		m.ReceivableAccountID,
		m.RevenueAccountID,
		m.ExpenseAccountID,
		m.PayableAccountName,
		m.ReceivableAccountName,
		m.RevenueAccountName,
		m.ExpenseAccountName,
		m.IsActive,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return translateWriteError(err, "preset "+m.PresetID)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxPresetRepository) FindPresetByID(ctx context.Context, presetID string) (*domain.Preset, error) {
	query := `SELECT ` + presetColumns + ` FROM presets WHERE preset_id = $1;`
	m, err := scanPreset(r.db(ctx).QueryRow(ctx, query, presetID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find preset %s: %w", presetID, err)
	}
	preset := mapping.ToDomainPreset(m)
	return &preset, nil
}

func (r *PgxPresetRepository) ListPresets(ctx context.Context, limit int, offset int) ([]domain.Preset, error) {
	query := `SELECT ` + presetColumns + ` FROM presets ORDER BY name, preset_id LIMIT $1 OFFSET $2;`
	rows, err := r.db(ctx).Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list presets: %w", err)
	}
	defer rows.Close()

	var presets []domain.Preset
	for rows.Next() {
		m, err := scanPreset(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan preset row: %w", err)
		}
		presets = append(presets, mapping.ToDomainPreset(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating preset rows: %w", err)
	}
	return presets, nil
}
