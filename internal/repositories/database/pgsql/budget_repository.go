package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/moliya-app/moliya-backend/internal/apperrors"
	"github.com/moliya-app/moliya-backend/internal/core/domain"
	portsrepo "github.com/moliya-app/moliya-backend/internal/core/ports/repositories"
	"github.com/moliya-app/moliya-backend/internal/models"
	"github.com/moliya-app/moliya-backend/internal/utils/mapping"
)

type PgxBudgetRepository struct {
	pool *pgxpool.Pool
}

func newPgxBudgetRepository(pool *pgxpool.Pool) portsrepo.BudgetRepository {
	return &PgxBudgetRepository{pool: pool}
}

var _ portsrepo.BudgetRepository = (*PgxBudgetRepository)(nil)

const budgetColumns = `budget_id, user_id, category_id, type, month, year, planned_amount`

func scanBudget(row pgx.Row) (models.Budget, error) {
	var m models.Budget
	err := row.Scan(
		&m.BudgetID,
		&m.UserID,
		&m.CategoryID,
		&m.Type,
		&m.Month,
		&m.Year,
		&m.PlannedAmount,
	)
	return m, err
}

// SaveBudget inserts a new budget. The unique constraint over
// (user, category, type, month, year) keeps one budget per period.
func (r *PgxBudgetRepository) SaveBudget(ctx context.Context, budget domain.Budget) error {
	modelBudget := mapping.ToModelBudget(budget)
	query := `
		INSERT INTO budgets (` + budgetColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.pool.Exec(ctx, query,
		modelBudget.BudgetID,
		modelBudget.UserID,
		modelBudget.CategoryID,
		modelBudget.Type,
		modelBudget.Month,
		modelBudget.Year,
		modelBudget.PlannedAmount,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: budget for this category and period already exists", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save budget %s: %w", modelBudget.BudgetID, err)
	}
	return nil
}

// FindBudgetByID retrieves one of the user's budgets by id.
func (r *PgxBudgetRepository) FindBudgetByID(ctx context.Context, userID string, budgetID string) (*domain.Budget, error) {
	query := `SELECT ` + budgetColumns + ` FROM budgets WHERE budget_id = $1 AND user_id = $2;`

	m, err := scanBudget(r.pool.QueryRow(ctx, query, budgetID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find budget by ID %s: %w", budgetID, err)
	}

	domainBudget := mapping.ToDomainBudget(m)
	return &domainBudget, nil
}

// ListBudgets retrieves the user's budgets for one month.
func (r *PgxBudgetRepository) ListBudgets(ctx context.Context, userID string, month int, year int) ([]domain.Budget, error) {
	query := `
		SELECT ` + budgetColumns + `
		FROM budgets
		WHERE user_id = $1 AND month = $2 AND year = $3
		ORDER BY type, category_id NULLS FIRST;
	`
	rows, err := r.pool.Query(ctx, query, userID, month, year)
	if err != nil {
		return nil, fmt.Errorf("failed to query budgets for user %s: %w", userID, err)
	}
	defer rows.Close()

	budgets := []models.Budget{}
	for rows.Next() {
		m, err := scanBudget(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan budget row: %w", err)
		}
		budgets = append(budgets, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating budget rows: %w", err)
	}

	return mapping.ToDomainBudgetSlice(budgets), nil
}

// UpdateBudget rewrites the planned amount of a budget.
func (r *PgxBudgetRepository) UpdateBudget(ctx context.Context, budget domain.Budget) error {
	modelBudget := mapping.ToModelBudget(budget)
	query := `
		UPDATE budgets
		SET planned_amount = $3
		WHERE budget_id = $1 AND user_id = $2;
	`
	cmdTag, err := r.pool.Exec(ctx, query,
		modelBudget.BudgetID,
		modelBudget.UserID,
		modelBudget.PlannedAmount,
	)
	if err != nil {
		return fmt.Errorf("failed to execute update budget %s: %w", modelBudget.BudgetID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteBudget removes a budget.
func (r *PgxBudgetRepository) DeleteBudget(ctx context.Context, userID string, budgetID string) error {
	query := `DELETE FROM budgets WHERE budget_id = $1 AND user_id = $2;`

	cmdTag, err := r.pool.Exec(ctx, query, budgetID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete budget %s: %w", budgetID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
