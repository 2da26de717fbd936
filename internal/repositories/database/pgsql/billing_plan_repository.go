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

type PgxBillingPlanRepository struct {
	BaseRepository
}

func newPgxBillingPlanRepository(pool *pgxpool.Pool) portsrepo.BillingPlanRepositoryFacade {
	return &PgxBillingPlanRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.BillingPlanRepositoryFacade = (*PgxBillingPlanRepository)(nil)

const planColumns = `plan_id, name, description, receivable_control_account_id, payable_control_account_id, created_at, created_by, last_updated_at, last_updated_by`

func scanPlan(row pgx.Row) (models.BillingPlan, error) {
	var m models.BillingPlan
	err := row.Scan(
		&m.PlanID,
		&m.Name,
		&m.Description,
		&m.ReceivableControlAccountID,
		&m.PayableControlAccountID,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxBillingPlanRepository) SavePlan(ctx context.Context, plan domain.BillingPlan) error {
	m := mapping.ToModelBillingPlan(plan)
	query := `INSERT INTO billing_plans (` + planColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);`
	_, err := r.db(ctx).Exec(ctx, query,
		m.PlanID,
		m.Name,
		m.Description,
		m.ReceivableControlAccountID,
		m.PayableControlAccountID,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return translateWriteError(err, "billing plan "+m.PlanID)
	}
	return nil
}

func (r *PgxBillingPlanRepository) FindPlanByID(ctx context.Context, planID string) (*domain.BillingPlan, error) {
	query := `SELECT ` + planColumns + ` FROM billing_plans WHERE plan_id = $1;`
	m, err := scanPlan(r.db(ctx).QueryRow(ctx, query, planID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find billing plan %s: %w", planID, err)
	}
	plan := mapping.ToDomainBillingPlan(m)
	return &plan, nil
}

func (r *PgxBillingPlanRepository) ListPlans(ctx context.Context, limit int, offset int) ([]domain.BillingPlan, error) {
	query := `SELECT ` + planColumns + ` FROM billing_plans ORDER BY name, plan_id LIMIT $1 OFFSET $2;`
	rows, err := r.db(ctx).Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list billing plans: %w", err)
	}
	defer rows.Close()

	var plans []domain.BillingPlan
	for rows.Next() {
		m, err := scanPlan(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan billing plan row: %w", err)
		}
		plans = append(plans, mapping.ToDomainBillingPlan(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating billing plan rows: %w", err)
	}
	return plans, nil
}

func (r *PgxBillingPlanRepository) UpdatePlan(ctx context.Context, plan domain.BillingPlan) error {
	m := mapping.ToModelBillingPlan(plan)
	query := `
		UPDATE billing_plans
		SET name = $2, description = $3, receivable_control_account_id = $4, payable_control_account_id = $5,
			last_updated_at = $6, last_updated_by = $7
		WHERE plan_id = $1;
	`
	tag, err := r.db(ctx).Exec(ctx, query,
		m.PlanID,
		m.Name,
		m.Description,
		m.ReceivableControlAccountID,
		m.PayableControlAccountID,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return translateWriteError(err, "billing plan "+m.PlanID)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
