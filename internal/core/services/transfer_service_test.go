package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/moliya-app/moliya-backend/internal/apperrors"
	"github.com/moliya-app/moliya-backend/internal/core/domain"
	portssvc "github.com/moliya-app/moliya-backend/internal/core/ports/services"
	"github.com/moliya-app/moliya-backend/internal/core/services"
	"github.com/moliya-app/moliya-backend/internal/dto"
	"github.com/moliya-app/moliya-backend/internal/utils/guard"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type TransferServiceTestSuite struct {
	suite.Suite
	mockTxnRepo     *MockTransactionRepository
	mockAccountRepo *MockAccountRepository
	service         portssvc.TransferSvcFacade
	userID          string
	fromAccount     domain.Account
	toAccount       domain.Account
}

func (suite *TransferServiceTestSuite) SetupTest() {
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.service = services.NewTransferService(
		suite.mockTxnRepo,
		suite.mockAccountRepo,
		guard.NewAccountLocks(),
		guard.NewIdempotencyCache[domain.TransferPair](16, time.Minute),
	)

	suite.userID = uuid.NewString()
	suite.fromAccount = domain.Account{
		AccountID: uuid.NewString(),
		UserID:    suite.userID,
		Name:      "Main card",
		Type:      domain.Card,
		Currency:  "UZS",
		Balance:   decimal.NewFromInt(60),
	}
	suite.toAccount = domain.Account{
		AccountID: uuid.NewString(),
		UserID:    suite.userID,
		Name:      "Savings",
		Type:      domain.Bank,
		Currency:  "UZS",
		Balance:   decimal.Zero,
	}
}

func (suite *TransferServiceTestSuite) expectAccountLookups() {
	ctx := context.Background()
	suite.mockAccountRepo.On("FindAccountByID", ctx, suite.userID, suite.fromAccount.AccountID).Return(&suite.fromAccount, nil)
	suite.mockAccountRepo.On("FindAccountByID", ctx, suite.userID, suite.toAccount.AccountID).Return(&suite.toAccount, nil)
}

func (suite *TransferServiceTestSuite) TestCreateTransfer_Success() {
	ctx := context.Background()
	req := dto.CreateTransferRequest{
		FromAccountID: suite.fromAccount.AccountID,
		ToAccountID:   suite.toAccount.AccountID,
		Amount:        decimal.NewFromInt(25),
		Date:          "2025-03-10",
	}

	suite.expectAccountLookups()
	suite.mockTxnRepo.On("SaveTransferPair", ctx, mock.AnythingOfType("domain.Transaction"), mock.AnythingOfType("domain.Transaction")).Return(nil).Once()

	pair, err := suite.service.CreateTransfer(ctx, suite.userID, req, "")

	suite.Require().NoError(err)
	suite.Require().NotNil(pair)

	out, in := pair.Outgoing, pair.Incoming
	suite.Equal(domain.Transfer, out.Type)
	suite.Equal(domain.Transfer, in.Type)
	suite.Equal(domain.TransferOut, out.Direction)
	suite.Equal(domain.TransferIn, in.Direction)
	suite.Equal(suite.fromAccount.AccountID, out.AccountID)
	suite.Equal(suite.toAccount.AccountID, in.AccountID)

	// Legs reference each other.
	suite.Require().NotNil(out.RelatedTransactionID)
	suite.Require().NotNil(in.RelatedTransactionID)
	suite.Equal(in.TransactionID, *out.RelatedTransactionID)
	suite.Equal(out.TransactionID, *in.RelatedTransactionID)

	// Amounts stay positive; signs come from the direction.
	suite.True(out.Amount.Equal(decimal.NewFromInt(25)))
	suite.True(out.SignedAmount().Equal(decimal.NewFromInt(-25)))
	suite.True(in.SignedAmount().Equal(decimal.NewFromInt(25)))

	suite.Equal("Transfer out", out.Description)
	suite.Equal("Transfer in", in.Description)

	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *TransferServiceTestSuite) TestCreateTransfer_SameAccount() {
	ctx := context.Background()
	req := dto.CreateTransferRequest{
		FromAccountID: suite.fromAccount.AccountID,
		ToAccountID:   suite.fromAccount.AccountID,
		Amount:        decimal.NewFromInt(25),
		Date:          "2025-03-10",
	}

	_, err := suite.service.CreateTransfer(ctx, suite.userID, req, "")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "FindAccountByID", mock.Anything, mock.Anything, mock.Anything)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransferPair", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransferServiceTestSuite) TestCreateTransfer_NonPositiveAmount() {
	ctx := context.Background()
	req := dto.CreateTransferRequest{
		FromAccountID: suite.fromAccount.AccountID,
		ToAccountID:   suite.toAccount.AccountID,
		Amount:        decimal.NewFromInt(-5),
		Date:          "2025-03-10",
	}

	_, err := suite.service.CreateTransfer(ctx, suite.userID, req, "")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransferPair", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransferServiceTestSuite) TestCreateTransfer_DestinationMissing() {
	ctx := context.Background()
	req := dto.CreateTransferRequest{
		FromAccountID: suite.fromAccount.AccountID,
		ToAccountID:   suite.toAccount.AccountID,
		Amount:        decimal.NewFromInt(25),
		Date:          "2025-03-10",
	}

	suite.mockAccountRepo.On("FindAccountByID", ctx, suite.userID, suite.fromAccount.AccountID).Return(&suite.fromAccount, nil).Once()
	suite.mockAccountRepo.On("FindAccountByID", ctx, suite.userID, suite.toAccount.AccountID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.CreateTransfer(ctx, suite.userID, req, "")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	assert.Contains(suite.T(), err.Error(), "destination account")
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransferPair", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransferServiceTestSuite) TestCreateTransfer_IdempotentReplay() {
	ctx := context.Background()
	req := dto.CreateTransferRequest{
		FromAccountID: suite.fromAccount.AccountID,
		ToAccountID:   suite.toAccount.AccountID,
		Amount:        decimal.NewFromInt(25),
		Date:          "2025-03-10",
	}

	suite.expectAccountLookups()
	suite.mockTxnRepo.On("SaveTransferPair", ctx, mock.Anything, mock.Anything).Return(nil).Once()

	first, err := suite.service.CreateTransfer(ctx, suite.userID, req, "client-key-1")
	suite.Require().NoError(err)

	second, err := suite.service.CreateTransfer(ctx, suite.userID, req, "client-key-1")
	suite.Require().NoError(err)

	// Same committed pair, no second write.
	suite.Equal(first.Outgoing.TransactionID, second.Outgoing.TransactionID)
	suite.Equal(first.Incoming.TransactionID, second.Incoming.TransactionID)
	suite.mockTxnRepo.AssertNumberOfCalls(suite.T(), "SaveTransferPair", 1)
}

func (suite *TransferServiceTestSuite) TestCreateTransfer_FailureNotCached() {
	ctx := context.Background()
	req := dto.CreateTransferRequest{
		FromAccountID: suite.fromAccount.AccountID,
		ToAccountID:   suite.toAccount.AccountID,
		Amount:        decimal.NewFromInt(25),
		Date:          "2025-03-10",
	}

	suite.expectAccountLookups()
	suite.mockTxnRepo.On("SaveTransferPair", ctx, mock.Anything, mock.Anything).Return(assert.AnError).Once()
	suite.mockTxnRepo.On("SaveTransferPair", ctx, mock.Anything, mock.Anything).Return(nil).Once()

	_, err := suite.service.CreateTransfer(ctx, suite.userID, req, "client-key-2")
	suite.Require().Error(err)

	// The retry after a rolled-back attempt must run for real.
	pair, err := suite.service.CreateTransfer(ctx, suite.userID, req, "client-key-2")
	suite.Require().NoError(err)
	suite.Require().NotNil(pair)
	suite.mockTxnRepo.AssertNumberOfCalls(suite.T(), "SaveTransferPair", 2)
}

func (suite *TransferServiceTestSuite) TestDeleteTransferPair_ByIncomingLeg() {
	ctx := context.Background()
	outID := uuid.NewString()
	inID := uuid.NewString()
	outgoing := domain.Transaction{
		TransactionID:        outID,
		UserID:               suite.userID,
		AccountID:            suite.fromAccount.AccountID,
		Type:                 domain.Transfer,
		Amount:               decimal.NewFromInt(25),
		Direction:            domain.TransferOut,
		RelatedTransactionID: &inID,
	}
	incoming := domain.Transaction{
		TransactionID:        inID,
		UserID:               suite.userID,
		AccountID:            suite.toAccount.AccountID,
		Type:                 domain.Transfer,
		Amount:               decimal.NewFromInt(25),
		Direction:            domain.TransferIn,
		RelatedTransactionID: &outID,
	}

	suite.mockTxnRepo.On("FindTransactionByID", ctx, suite.userID, inID).Return(&incoming, nil).Once()
	suite.mockTxnRepo.On("FindTransactionByID", ctx, suite.userID, outID).Return(&outgoing, nil).Once()
	suite.mockTxnRepo.On("DeleteTransferPair", ctx, outgoing, incoming).Return(nil).Once()

	err := suite.service.DeleteTransferPair(ctx, suite.userID, inID)

	suite.Require().NoError(err)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *TransferServiceTestSuite) TestDeleteTransferPair_NotATransferLeg() {
	ctx := context.Background()
	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		UserID:        suite.userID,
		AccountID:     suite.fromAccount.AccountID,
		Type:          domain.Expense,
		Amount:        decimal.NewFromInt(10),
	}

	suite.mockTxnRepo.On("FindTransactionByID", ctx, suite.userID, txn.TransactionID).Return(&txn, nil).Once()

	err := suite.service.DeleteTransferPair(ctx, suite.userID, txn.TransactionID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "DeleteTransferPair", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransferServiceTestSuite) TestDeleteTransferPair_MissingPairedLeg() {
	ctx := context.Background()
	outID := uuid.NewString()
	inID := uuid.NewString()
	outgoing := domain.Transaction{
		TransactionID:        outID,
		UserID:               suite.userID,
		AccountID:            suite.fromAccount.AccountID,
		Type:                 domain.Transfer,
		Amount:               decimal.NewFromInt(25),
		Direction:            domain.TransferOut,
		RelatedTransactionID: &inID,
	}

	suite.mockTxnRepo.On("FindTransactionByID", ctx, suite.userID, outID).Return(&outgoing, nil).Once()
	suite.mockTxnRepo.On("FindTransactionByID", ctx, suite.userID, inID).Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.DeleteTransferPair(ctx, suite.userID, outID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrIntegrity)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "DeleteTransferPair", mock.Anything, mock.Anything, mock.Anything)
}

func TestTransferService(t *testing.T) {
	suite.Run(t, new(TransferServiceTestSuite))
}
