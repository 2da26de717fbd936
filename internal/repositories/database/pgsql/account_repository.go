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

type PgxAccountRepository struct {
	BaseRepository
}

// newPgxAccountRepository creates a new repository for account data.
func newPgxAccountRepository(pool *pgxpool.Pool) portsrepo.AccountRepositoryFacade {
	return &PgxAccountRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxAccountRepository implements portsrepo.AccountRepositoryFacade
var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

const accountColumns = `account_id, plan_id, parent_account_id, name, kind, code, level, is_active, created_at, created_by, last_updated_at, last_updated_by`

func scanAccount(row pgx.Row) (models.Account, error) {
	var m models.Account
	err := row.Scan(
		&m.AccountID,
		&m.PlanID,
		&m.ParentAccountID,
		&m.Name,
		&m.Kind,
		&m.Code,
		&m.Level,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func collectAccounts(rows pgx.Rows) ([]domain.Account, error) {
	defer rows.Close()
	var accounts []domain.Account
	for rows.Next() {
		m, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		accounts = append(accounts, mapping.ToDomainAccount(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account rows: %w", err)
	}
	return accounts, nil
}

// SaveAccount inserts a new account. The (plan_id, code) unique constraint is the last guard against duplicate codes.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	m := mapping.ToModelAccount(account)
	query := `
		INSERT INTO accounts (` + accountColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.db(ctx).Exec(ctx, query,
		m.AccountID,
		m.PlanID,
		m.ParentAccountID,
		m.Name,
		m.Kind,
		m.Code,
		m.Level,
		m.IsActive,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return translateWriteError(err, fmt.Sprintf("account %s (code %s)", m.AccountID, m.Code))
	}
	return nil
}

// FindAccountByID retrieves an account by its ID.
func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE account_id = $1;`
	m, err := scanAccount(r.db(ctx).QueryRow(ctx, query, accountID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find account by ID %s: %w", accountID, err)
	}
	acc := mapping.ToDomainAccount(m)
	return &acc, nil
}

// FindAccountsByIDs retrieves multiple accounts by their IDs.
func (r *PgxAccountRepository) FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error) {
	if len(accountIDs) == 0 {
		return map[string]domain.Account{}, nil
	}
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE account_id = ANY($1);`
	rows, err := r.db(ctx).Query(ctx, query, accountIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts by IDs: %w", err)
	}
	accounts, err := collectAccounts(rows)
	if err != nil {
		return nil, err
	}
	accountsMap := make(map[string]domain.Account, len(accounts))
	for _, acc := range accounts {
		accountsMap[acc.AccountID] = acc
	}
	return accountsMap, nil
}

// ListAccountsByPlan retrieves the chart of accounts of a plan ordered by code.
func (r *PgxAccountRepository) ListAccountsByPlan(ctx context.Context, planID string) ([]domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE plan_id = $1 ORDER BY code;`
	rows, err := r.db(ctx).Query(ctx, query, planID)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts for plan %s: %w", planID, err)
	}
	return collectAccounts(rows)
}

// ListChildAccounts retrieves the direct children of an account ordered by code.
func (r *PgxAccountRepository) ListChildAccounts(ctx context.Context, parentAccountID string) ([]domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE parent_account_id = $1 ORDER BY code;`
	rows, err := r.db(ctx).Query(ctx, query, parentAccountID)
	if err != nil {
		return nil, fmt.Errorf("failed to list children of account %s: %w", parentAccountID, err)
	}
	return collectAccounts(rows)
}

// UpdateAccount updates the mutable columns of an account.
func (r *PgxAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	query := `
		UPDATE accounts
		SET name = $2, is_active = $3, last_updated_at = $4, last_updated_by = $5
		WHERE account_id = $1;
	`
	tag, err := r.db(ctx).Exec(ctx, query,
		account.AccountID,
		account.Name,
		account.IsActive,
		account.LastUpdatedAt,
		account.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update account %s: %w", account.AccountID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteAccount removes an account; foreign keys pointing at it reject the delete.
func (r *PgxAccountRepository) DeleteAccount(ctx context.Context, accountID string) error {
	tag, err := r.db(ctx).Exec(ctx, `DELETE FROM accounts WHERE account_id = $1;`, accountID)
	if err != nil {
		if pgErrorCode(err) == pgForeignKeyViolation {
			return fmt.Errorf("%w: account %s", apperrors.ErrAccountInUse, accountID)
		}
		return fmt.Errorf("failed to delete account %s: %w", accountID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// LockSiblingSet takes a row lock on the parent account, or on the plan for roots.
func (r *PgxAccountRepository) LockSiblingSet(ctx context.Context, planID string, parentAccountID string) error {
	var (
		query string
		arg   string
	)
	if parentAccountID == "" {
		query, arg = `SELECT plan_id FROM billing_plans WHERE plan_id = $1 FOR UPDATE;`, planID
	} else {
		query, arg = `SELECT account_id FROM accounts WHERE account_id = $1 FOR UPDATE;`, parentAccountID
	}
	var locked string
	if err := r.db(ctx).QueryRow(ctx, query, arg).Scan(&locked); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("failed to lock sibling set of %s/%s: %w", planID, parentAccountID, err)
	}
	return nil
}

// ListSiblingCodes returns the codes directly under parentAccountID, or the plan roots.
func (r *PgxAccountRepository) ListSiblingCodes(ctx context.Context, planID string, parentAccountID string) ([]string, error) {
	query := `SELECT code FROM accounts WHERE plan_id = $1 AND parent_account_id = $2 ORDER BY code;`
	args := []any{planID, parentAccountID}
	if parentAccountID == "" {
		query = `SELECT code FROM accounts WHERE plan_id = $1 AND parent_account_id IS NULL ORDER BY code;`
		args = args[:1]
	}
	rows, err := r.db(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list sibling codes: %w", err)
	}
	codes, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("failed to scan sibling codes: %w", err)
	}
	return codes, nil
}

// CountChildren counts the direct children of an account.
func (r *PgxAccountRepository) CountChildren(ctx context.Context, accountID string) (int, error) {
	var n int
	err := r.db(ctx).QueryRow(ctx, `SELECT COUNT(*) FROM accounts WHERE parent_account_id = $1;`, accountID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count children of account %s: %w", accountID, err)
	}
	return n, nil
}

// CountAccountReferences counts journal lines, entries, preset slots and plan control slots pointing at an account.
func (r *PgxAccountRepository) CountAccountReferences(ctx context.Context, accountID string) (int, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM journal_lines WHERE account_id = $1) +
			(SELECT COUNT(*) FROM entries WHERE account_id = $1) +
			(SELECT COUNT(*) FROM presets
				WHERE payable_account_id = $1 OR receivable_account_id = $1
				   OR revenue_account_id = $1 OR expense_account_id = $1) +
			(SELECT COUNT(*) FROM billing_plans
				WHERE receivable_control_account_id = $1 OR payable_control_account_id = $1);
	`
	var n int
	if err := r.db(ctx).QueryRow(ctx, query, accountID).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count references to account %s: %w", accountID, err)
	}
	return n, nil
}
