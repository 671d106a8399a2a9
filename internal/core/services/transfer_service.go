package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/moliya-app/moliya-backend/internal/apperrors"
	"github.com/moliya-app/moliya-backend/internal/core/domain"
	portsrepo "github.com/moliya-app/moliya-backend/internal/core/ports/repositories"
	portssvc "github.com/moliya-app/moliya-backend/internal/core/ports/services"
	"github.com/moliya-app/moliya-backend/internal/dto"
	"github.com/moliya-app/moliya-backend/internal/middleware"
	"github.com/moliya-app/moliya-backend/internal/utils/guard"
)

type transferService struct {
	transactionRepo portsrepo.TransactionRepository
	accountRepo     portsrepo.AccountRepository
	locks           *guard.AccountLocks
	idempotency     *guard.IdempotencyCache[domain.TransferPair]
}

// NewTransferService creates the coordinator for two-sided transfers. Legs
// are only ever created and destroyed in pairs; the repository commits both
// in one atomic unit.
func NewTransferService(
	transactionRepo portsrepo.TransactionRepository,
	accountRepo portsrepo.AccountRepository,
	locks *guard.AccountLocks,
	idempotency *guard.IdempotencyCache[domain.TransferPair],
) portssvc.TransferSvcFacade {
	return &transferService{
		transactionRepo: transactionRepo,
		accountRepo:     accountRepo,
		locks:           locks,
		idempotency:     idempotency,
	}
}

var _ portssvc.TransferSvcFacade = (*transferService)(nil)

func (s *transferService) CreateTransfer(ctx context.Context, userID string, req dto.CreateTransferRequest, idempotencyKey string) (*domain.TransferPair, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := validateAmount(req.Amount); err != nil {
		return nil, err
	}
	if req.FromAccountID == req.ToAccountID {
		return nil, fmt.Errorf("%w: cannot transfer to the same account", apperrors.ErrValidation)
	}
	date, err := time.Parse(dto.DateLayout, req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date", apperrors.ErrValidation)
	}
	if _, err := s.accountRepo.FindAccountByID(ctx, userID, req.FromAccountID); err != nil {
		return nil, fmt.Errorf("source account: %w", err)
	}
	if _, err := s.accountRepo.FindAccountByID(ctx, userID, req.ToAccountID); err != nil {
		return nil, fmt.Errorf("destination account: %w", err)
	}

	// The idempotency key scopes per user so two users can never collide.
	cacheKey := ""
	if idempotencyKey != "" {
		cacheKey = userID + ":" + idempotencyKey
	}

	pair, replayed, err := s.idempotency.Do(cacheKey, func() (domain.TransferPair, error) {
		return s.applyTransfer(ctx, userID, req, date)
	})
	if err != nil {
		return nil, err
	}
	if replayed {
		logger.Info("transfer replayed from idempotency cache",
			slog.String("outgoing_id", pair.Outgoing.TransactionID))
	}
	return &pair, nil
}

// applyTransfer builds both legs and commits them through the ledger store
// under the guard locks for both accounts.
func (s *transferService) applyTransfer(ctx context.Context, userID string, req dto.CreateTransferRequest, date time.Time) (domain.TransferPair, error) {
	now := time.Now().UTC()
	outgoingID := uuid.NewString()
	incomingID := uuid.NewString()

	outgoingDesc := req.Description
	if outgoingDesc == "" {
		outgoingDesc = "Transfer out"
	}
	incomingDesc := req.Description
	if incomingDesc == "" {
		incomingDesc = "Transfer in"
	}

	outgoing := domain.Transaction{
		TransactionID:        outgoingID,
		UserID:               userID,
		AccountID:            req.FromAccountID,
		Type:                 domain.Transfer,
		Amount:               req.Amount,
		Description:          outgoingDesc,
		Date:                 date,
		RelatedTransactionID: &incomingID,
		Direction:            domain.TransferOut,
		CreatedAt:            now,
	}
	incoming := domain.Transaction{
		TransactionID:        incomingID,
		UserID:               userID,
		AccountID:            req.ToAccountID,
		Type:                 domain.Transfer,
		Amount:               req.Amount,
		Description:          incomingDesc,
		Date:                 date,
		RelatedTransactionID: &outgoingID,
		Direction:            domain.TransferIn,
		CreatedAt:            now,
	}

	unlock := s.locks.Lock(req.FromAccountID, req.ToAccountID)
	defer unlock()

	if err := s.transactionRepo.SaveTransferPair(ctx, outgoing, incoming); err != nil {
		return domain.TransferPair{}, err
	}
	return domain.TransferPair{Outgoing: outgoing, Incoming: incoming}, nil
}

// DeleteTransferPair removes both legs of the pair containing the given
// transaction. Either leg's id may be supplied.
func (s *transferService) DeleteTransferPair(ctx context.Context, userID string, transactionID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	leg, err := s.transactionRepo.FindTransactionByID(ctx, userID, transactionID)
	if err != nil {
		return err
	}
	if !leg.IsTransferLeg() {
		return fmt.Errorf("%w: transaction %s is not a transfer leg", apperrors.ErrValidation, transactionID)
	}
	if leg.RelatedTransactionID == nil {
		logger.Error("transfer leg has no related transaction",
			slog.String("transaction_id", leg.TransactionID))
		return fmt.Errorf("%w: transfer leg %s has no paired transaction", apperrors.ErrIntegrity, leg.TransactionID)
	}

	other, err := s.transactionRepo.FindTransactionByID(ctx, userID, *leg.RelatedTransactionID)
	if err != nil {
		logger.Error("paired transfer leg is missing",
			slog.String("transaction_id", leg.TransactionID),
			slog.String("related_transaction_id", *leg.RelatedTransactionID))
		return fmt.Errorf("%w: paired transaction %s for transfer leg %s is missing", apperrors.ErrIntegrity, *leg.RelatedTransactionID, leg.TransactionID)
	}

	outgoing, incoming := *leg, *other
	if leg.Direction != domain.TransferOut {
		outgoing, incoming = *other, *leg
	}

	unlock := s.locks.Lock(outgoing.AccountID, incoming.AccountID)
	defer unlock()

	return s.transactionRepo.DeleteTransferPair(ctx, outgoing, incoming)
}
