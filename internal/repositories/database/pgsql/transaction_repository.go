package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/moliya-app/moliya-backend/internal/apperrors"
	"github.com/moliya-app/moliya-backend/internal/core/domain"
	portsrepo "github.com/moliya-app/moliya-backend/internal/core/ports/repositories"
	"github.com/moliya-app/moliya-backend/internal/models"
	"github.com/moliya-app/moliya-backend/internal/utils/mapping"
	"github.com/moliya-app/moliya-backend/internal/utils/pagination"
	"github.com/shopspring/decimal"
)

// PgxTransactionRepository is the ledger store. Every mutating method runs a
// single database transaction that locks the affected account rows (ascending
// account_id, FOR UPDATE), applies the balance deltas implied by the rows'
// signed amounts, and writes the rows.
type PgxTransactionRepository struct {
	BaseRepository
	accountRepo portsrepo.AccountLedgerAccess
}

// newPgxTransactionRepository creates a new repository for ledger rows.
func newPgxTransactionRepository(pool *pgxpool.Pool, accountRepo portsrepo.AccountLedgerAccess) *PgxTransactionRepository {
	return &PgxTransactionRepository{
		BaseRepository: BaseRepository{Pool: pool},
		accountRepo:    accountRepo,
	}
}

var _ portsrepo.TransactionRepository = (*PgxTransactionRepository)(nil)

const txnColumns = `transaction_id, user_id, account_id, category_id, type, amount, description, date, related_transaction_id, transfer_direction, created_at`

const insertTxnQuery = `
	INSERT INTO transactions (` + txnColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
`

func scanTransaction(row pgx.Row) (models.Transaction, error) {
	var m models.Transaction
	err := row.Scan(
		&m.TransactionID,
		&m.UserID,
		&m.AccountID,
		&m.CategoryID,
		&m.Type,
		&m.Amount,
		&m.Description,
		&m.Date,
		&m.RelatedTransactionID,
		&m.Direction,
		&m.CreatedAt,
	)
	return m, err
}

func insertTxnArgs(m models.Transaction) []any {
	return []any{
		m.TransactionID,
		m.UserID,
		m.AccountID,
		m.CategoryID,
		m.Type,
		m.Amount,
		m.Description,
		m.Date,
		m.RelatedTransactionID,
		m.Direction,
		m.CreatedAt,
	}
}

// lockAndApply locks the delta accounts and applies the balance deltas inside
// the open transaction. It is the only path through which balances change.
func (r *PgxTransactionRepository) lockAndApply(ctx context.Context, tx pgx.Tx, deltas map[string]decimal.Decimal) error {
	accountIDs := make([]string, 0, len(deltas))
	for accID := range deltas {
		accountIDs = append(accountIDs, accID)
	}
	if _, err := r.accountRepo.FindAccountsByIDsForUpdate(ctx, tx, accountIDs); err != nil {
		return err
	}
	return r.accountRepo.ApplyBalanceDeltasInTx(ctx, tx, deltas)
}

// SaveTransaction inserts a single ledger row and applies its signed amount to
// the owning account's balance, atomically.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	deltas := map[string]decimal.Decimal{txn.AccountID: txn.SignedAmount()}
	if err := r.lockAndApply(ctx, tx, deltas); err != nil {
		return err
	}

	modelTxn := mapping.ToModelTransaction(txn)
	if _, err := tx.Exec(ctx, insertTxnQuery, insertTxnArgs(modelTxn)...); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: transaction %s already exists", apperrors.ErrDuplicate, modelTxn.TransactionID)
		}
		return fmt.Errorf("failed to insert transaction %s: %w", modelTxn.TransactionID, err)
	}

	return r.Commit(ctx, tx)
}

// UpdateTransaction rewrites a ledger row and applies the delta between the
// old and the new signed amount, possibly across two accounts when the row
// moved, all in one atomic unit.
func (r *PgxTransactionRepository) UpdateTransaction(ctx context.Context, old domain.Transaction, updated domain.Transaction) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	deltas := map[string]decimal.Decimal{}
	deltas[old.AccountID] = old.SignedAmount().Neg()
	deltas[updated.AccountID] = deltas[updated.AccountID].Add(updated.SignedAmount())
	if err := r.lockAndApply(ctx, tx, deltas); err != nil {
		return err
	}

	modelTxn := mapping.ToModelTransaction(updated)
	query := `
		UPDATE transactions
		SET account_id = $3, category_id = $4, type = $5, amount = $6, description = $7, date = $8
		WHERE transaction_id = $1 AND user_id = $2;
	`
	cmdTag, err := tx.Exec(ctx, query,
		modelTxn.TransactionID,
		modelTxn.UserID,
		modelTxn.AccountID,
		modelTxn.CategoryID,
		modelTxn.Type,
		modelTxn.Amount,
		modelTxn.Description,
		modelTxn.Date,
	)
	if err != nil {
		return fmt.Errorf("failed to update transaction %s: %w", modelTxn.TransactionID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return r.Commit(ctx, tx)
}

// DeleteTransaction reverses the row's balance contribution and removes it.
func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, txn domain.Transaction) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	deltas := map[string]decimal.Decimal{txn.AccountID: txn.SignedAmount().Neg()}
	if err := r.lockAndApply(ctx, tx, deltas); err != nil {
		return err
	}

	query := `DELETE FROM transactions WHERE transaction_id = $1 AND user_id = $2;`
	cmdTag, err := tx.Exec(ctx, query, txn.TransactionID, txn.UserID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction %s: %w", txn.TransactionID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return r.Commit(ctx, tx)
}

// SaveTransferPair inserts both legs of a transfer and applies both balance
// deltas. Both legs commit or neither does; a partial pair can never be
// observed.
func (r *PgxTransactionRepository) SaveTransferPair(ctx context.Context, outgoing domain.Transaction, incoming domain.Transaction) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	deltas := map[string]decimal.Decimal{
		outgoing.AccountID: outgoing.SignedAmount(),
		incoming.AccountID: incoming.SignedAmount(),
	}
	if err := r.lockAndApply(ctx, tx, deltas); err != nil {
		return err
	}

	batch := &pgx.Batch{}
	batch.Queue(insertTxnQuery, insertTxnArgs(mapping.ToModelTransaction(outgoing))...)
	batch.Queue(insertTxnQuery, insertTxnArgs(mapping.ToModelTransaction(incoming))...)

	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: transfer legs already exist", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to insert transfer legs %s/%s: %w", outgoing.TransactionID, incoming.TransactionID, err)
	}

	return r.Commit(ctx, tx)
}

// DeleteTransferPair reverses both legs' balance contributions and removes
// both rows atomically. A leg vanishing between lookup and delete surfaces as
// an integrity error; the pair is never left half-deleted.
func (r *PgxTransactionRepository) DeleteTransferPair(ctx context.Context, outgoing domain.Transaction, incoming domain.Transaction) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	deltas := map[string]decimal.Decimal{
		outgoing.AccountID: outgoing.SignedAmount().Neg(),
		incoming.AccountID: incoming.SignedAmount().Neg(),
	}
	if err := r.lockAndApply(ctx, tx, deltas); err != nil {
		return err
	}

	query := `DELETE FROM transactions WHERE transaction_id = ANY($1) AND user_id = $2;`
	cmdTag, err := tx.Exec(ctx, query, []string{outgoing.TransactionID, incoming.TransactionID}, outgoing.UserID)
	if err != nil {
		return fmt.Errorf("failed to delete transfer legs %s/%s: %w", outgoing.TransactionID, incoming.TransactionID, err)
	}
	switch cmdTag.RowsAffected() {
	case 2:
	case 0:
		return apperrors.ErrNotFound
	default:
		return fmt.Errorf("%w: transfer pair %s/%s is missing a leg", apperrors.ErrIntegrity, outgoing.TransactionID, incoming.TransactionID)
	}

	return r.Commit(ctx, tx)
}

// FindTransactionByID retrieves one of the user's transactions by id.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, userID string, transactionID string) (*domain.Transaction, error) {
	query := `SELECT ` + txnColumns + ` FROM transactions WHERE transaction_id = $1 AND user_id = $2;`

	m, err := scanTransaction(r.Pool.QueryRow(ctx, query, transactionID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction by ID %s: %w", transactionID, err)
	}

	domainTxn := mapping.ToDomainTransaction(m)
	return &domainTxn, nil
}

// ListTransactions retrieves a paginated page of the user's transactions using
// token-based pagination, ordered by (date desc, created_at desc).
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, userID string, filter portsrepo.TransactionFilter, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	// One extra row tells us whether a next page exists.
	fetchLimit := limit + 1

	query := `SELECT ` + txnColumns + ` FROM transactions WHERE user_id = $1`
	args := []any{userID}

	addArg := func(clause string, value any) {
		args = append(args, value)
		query += " AND " + clause + "$" + strconv.Itoa(len(args))
	}
	if filter.DateFrom != nil {
		addArg("date >= ", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		addArg("date <= ", *filter.DateTo)
	}
	if filter.CategoryID != "" {
		addArg("category_id = ", filter.CategoryID)
	}
	if filter.Type != "" {
		addArg("type = ", string(filter.Type))
	}
	if filter.AccountID != "" {
		addArg("account_id = ", filter.AccountID)
	}

	if nextToken != nil && *nextToken != "" {
		lastDate, lastCreatedAt, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, fmt.Errorf("%w: invalid nextToken", apperrors.ErrValidation)
		}
		args = append(args, lastDate, lastCreatedAt)
		query += fmt.Sprintf(" AND (date, created_at) < ($%d, $%d)", len(args)-1, len(args))
	}

	args = append(args, fetchLimit)
	query += " ORDER BY date DESC, created_at DESC LIMIT $" + strconv.Itoa(len(args)) + ";"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query transactions for user %s: %w", userID, err)
	}
	defer rows.Close()

	txns := make([]models.Transaction, 0, fetchLimit)
	for rows.Next() {
		m, err := scanTransaction(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		txns = append(txns, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating transaction rows: %w", err)
	}

	var nextTokenVal *string
	results := txns
	if len(txns) > limit {
		last := txns[limit-1]
		token := pagination.EncodeToken(last.Date, last.CreatedAt)
		nextTokenVal = &token
		results = txns[:limit]
	}

	return mapping.ToDomainTransactionSlice(results), nextTokenVal, nil
}
