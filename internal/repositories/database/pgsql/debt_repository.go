package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/moliya-app/moliya-backend/internal/apperrors"
	"github.com/moliya-app/moliya-backend/internal/core/domain"
	portsrepo "github.com/moliya-app/moliya-backend/internal/core/ports/repositories"
	"github.com/moliya-app/moliya-backend/internal/models"
	"github.com/moliya-app/moliya-backend/internal/utils/mapping"
)

type PgxDebtRepository struct {
	pool *pgxpool.Pool
}

func newPgxDebtRepository(pool *pgxpool.Pool) portsrepo.DebtRepository {
	return &PgxDebtRepository{pool: pool}
}

var _ portsrepo.DebtRepository = (*PgxDebtRepository)(nil)

const debtColumns = `debt_id, user_id, type, person_name, amount, currency, description, status, due_date, created_at`

func scanDebt(row pgx.Row) (models.Debt, error) {
	var m models.Debt
	err := row.Scan(
		&m.DebtID,
		&m.UserID,
		&m.Type,
		&m.PersonName,
		&m.Amount,
		&m.Currency,
		&m.Description,
		&m.Status,
		&m.DueDate,
		&m.CreatedAt,
	)
	return m, err
}

// SaveDebt inserts a new debt record.
func (r *PgxDebtRepository) SaveDebt(ctx context.Context, debt domain.Debt) error {
	modelDebt := mapping.ToModelDebt(debt)
	query := `
		INSERT INTO debts (` + debtColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.pool.Exec(ctx, query,
		modelDebt.DebtID,
		modelDebt.UserID,
		modelDebt.Type,
		modelDebt.PersonName,
		modelDebt.Amount,
		modelDebt.Currency,
		modelDebt.Description,
		modelDebt.Status,
		modelDebt.DueDate,
		modelDebt.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save debt %s: %w", modelDebt.DebtID, err)
	}
	return nil
}

// FindDebtByID retrieves one of the user's debts by id.
func (r *PgxDebtRepository) FindDebtByID(ctx context.Context, userID string, debtID string) (*domain.Debt, error) {
	query := `SELECT ` + debtColumns + ` FROM debts WHERE debt_id = $1 AND user_id = $2;`

	m, err := scanDebt(r.pool.QueryRow(ctx, query, debtID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find debt by ID %s: %w", debtID, err)
	}

	domainDebt := mapping.ToDomainDebt(m)
	return &domainDebt, nil
}

// ListDebts retrieves the user's debts, optionally filtered by status.
func (r *PgxDebtRepository) ListDebts(ctx context.Context, userID string, status *domain.DebtStatus) ([]domain.Debt, error) {
	query := `SELECT ` + debtColumns + ` FROM debts WHERE user_id = $1`
	args := []any{userID}
	if status != nil {
		args = append(args, string(*status))
		query += ` AND status = $2`
	}
	query += ` ORDER BY created_at DESC;`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query debts for user %s: %w", userID, err)
	}
	defer rows.Close()

	debts := []models.Debt{}
	for rows.Next() {
		m, err := scanDebt(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan debt row: %w", err)
		}
		debts = append(debts, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating debt rows: %w", err)
	}

	return mapping.ToDomainDebtSlice(debts), nil
}

// UpdateDebt rewrites the mutable fields of a debt, including its status.
func (r *PgxDebtRepository) UpdateDebt(ctx context.Context, debt domain.Debt) error {
	modelDebt := mapping.ToModelDebt(debt)
	query := `
		UPDATE debts
		SET person_name = $3, amount = $4, description = $5, status = $6, due_date = $7
		WHERE debt_id = $1 AND user_id = $2;
	`
	cmdTag, err := r.pool.Exec(ctx, query,
		modelDebt.DebtID,
		modelDebt.UserID,
		modelDebt.PersonName,
		modelDebt.Amount,
		modelDebt.Description,
		modelDebt.Status,
		modelDebt.DueDate,
	)
	if err != nil {
		return fmt.Errorf("failed to execute update debt %s: %w", modelDebt.DebtID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteDebt removes a debt record.
func (r *PgxDebtRepository) DeleteDebt(ctx context.Context, userID string, debtID string) error {
	query := `DELETE FROM debts WHERE debt_id = $1 AND user_id = $2;`

	cmdTag, err := r.pool.Exec(ctx, query, debtID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete debt %s: %w", debtID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
