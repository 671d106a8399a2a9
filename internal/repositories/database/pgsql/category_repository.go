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

type PgxCategoryRepository struct {
	pool *pgxpool.Pool
}

func newPgxCategoryRepository(pool *pgxpool.Pool) portsrepo.CategoryRepository {
	return &PgxCategoryRepository{pool: pool}
}

var _ portsrepo.CategoryRepository = (*PgxCategoryRepository)(nil)

const categoryColumns = `category_id, user_id, name, type, icon, color, is_default`

const insertCategoryQuery = `
	INSERT INTO categories (` + categoryColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7);
`

func scanCategory(row pgx.Row) (models.Category, error) {
	var m models.Category
	err := row.Scan(
		&m.CategoryID,
		&m.UserID,
		&m.Name,
		&m.Type,
		&m.Icon,
		&m.Color,
		&m.IsDefault,
	)
	return m, err
}

func insertCategoryArgs(m models.Category) []any {
	return []any{
		m.CategoryID,
		m.UserID,
		m.Name,
		m.Type,
		m.Icon,
		m.Color,
		m.IsDefault,
	}
}

// SaveCategory inserts a single category.
func (r *PgxCategoryRepository) SaveCategory(ctx context.Context, category domain.Category) error {
	modelCat := mapping.ToModelCategory(category)
	_, err := r.pool.Exec(ctx, insertCategoryQuery, insertCategoryArgs(modelCat)...)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: category %q already exists", apperrors.ErrDuplicate, modelCat.Name)
		}
		return fmt.Errorf("failed to save category %s: %w", modelCat.CategoryID, err)
	}
	return nil
}

// SaveCategories batch-inserts categories, used for the default set seeded at
// registration.
func (r *PgxCategoryRepository) SaveCategories(ctx context.Context, categories []domain.Category) error {
	if len(categories) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, cat := range categories {
		batch.Queue(insertCategoryQuery, insertCategoryArgs(mapping.ToModelCategory(cat))...)
	}

	br := r.pool.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return fmt.Errorf("failed to execute category insert batch: %w", err)
	}
	return nil
}

// FindCategoryByID retrieves one of the user's categories by id.
func (r *PgxCategoryRepository) FindCategoryByID(ctx context.Context, userID string, categoryID string) (*domain.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE category_id = $1 AND user_id = $2;`

	m, err := scanCategory(r.pool.QueryRow(ctx, query, categoryID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find category by ID %s: %w", categoryID, err)
	}

	domainCat := mapping.ToDomainCategory(m)
	return &domainCat, nil
}

// ListCategories retrieves the user's categories, optionally filtered by type.
func (r *PgxCategoryRepository) ListCategories(ctx context.Context, userID string, categoryType *domain.CategoryType) ([]domain.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE user_id = $1`
	args := []any{userID}
	if categoryType != nil {
		args = append(args, string(*categoryType))
		query += ` AND type = $2`
	}
	query += ` ORDER BY name;`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories for user %s: %w", userID, err)
	}
	defer rows.Close()

	categories := []models.Category{}
	for rows.Next() {
		m, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan category row: %w", err)
		}
		categories = append(categories, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating category rows: %w", err)
	}

	return mapping.ToDomainCategorySlice(categories), nil
}
