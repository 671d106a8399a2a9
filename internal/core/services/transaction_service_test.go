package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/moliya-app/moliya-backend/internal/apperrors"
	"github.com/moliya-app/moliya-backend/internal/core/domain"
	portsrepo "github.com/moliya-app/moliya-backend/internal/core/ports/repositories"
	portssvc "github.com/moliya-app/moliya-backend/internal/core/ports/services"
	"github.com/moliya-app/moliya-backend/internal/core/services"
	"github.com/moliya-app/moliya-backend/internal/dto"
	"github.com/moliya-app/moliya-backend/internal/utils/guard"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock TransactionRepository ---
type MockTransactionRepository struct {
	mock.Mock
}

var _ portsrepo.TransactionRepository = (*MockTransactionRepository)(nil)

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) UpdateTransaction(ctx context.Context, old domain.Transaction, updated domain.Transaction) error {
	args := m.Called(ctx, old, updated)
	return args.Error(0)
}

func (m *MockTransactionRepository) DeleteTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) SaveTransferPair(ctx context.Context, outgoing domain.Transaction, incoming domain.Transaction) error {
	args := m.Called(ctx, outgoing, incoming)
	return args.Error(0)
}

func (m *MockTransactionRepository) DeleteTransferPair(ctx context.Context, outgoing domain.Transaction, incoming domain.Transaction) error {
	args := m.Called(ctx, outgoing, incoming)
	return args.Error(0)
}

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, userID string, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, userID, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactions(ctx context.Context, userID string, filter portsrepo.TransactionFilter, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	args := m.Called(ctx, userID, filter, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var returnedNextToken *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		returnedNextToken = &tokenVal
	}
	return args.Get(0).([]domain.Transaction), returnedNextToken, args.Error(2)
}

// --- Mock AccountRepository ---
type MockAccountRepository struct {
	mock.Mock
}

var _ portsrepo.AccountRepository = (*MockAccountRepository)(nil)

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, userID string, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, userID, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context, userID string) ([]domain.Account, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) DeleteAccount(ctx context.Context, userID string, accountID string) error {
	args := m.Called(ctx, userID, accountID)
	return args.Error(0)
}

// --- Mock CategoryRepository ---
type MockCategoryRepository struct {
	mock.Mock
}

var _ portsrepo.CategoryRepository = (*MockCategoryRepository)(nil)

func (m *MockCategoryRepository) SaveCategory(ctx context.Context, category domain.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) SaveCategories(ctx context.Context, categories []domain.Category) error {
	args := m.Called(ctx, categories)
	return args.Error(0)
}

func (m *MockCategoryRepository) FindCategoryByID(ctx context.Context, userID string, categoryID string) (*domain.Category, error) {
	args := m.Called(ctx, userID, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) ListCategories(ctx context.Context, userID string, categoryType *domain.CategoryType) ([]domain.Category, error) {
	args := m.Called(ctx, userID, categoryType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

// --- Test Suite Setup ---
type TransactionServiceTestSuite struct {
	suite.Suite
	mockTxnRepo      *MockTransactionRepository
	mockAccountRepo  *MockAccountRepository
	mockCategoryRepo *MockCategoryRepository
	service          portssvc.TransactionSvcFacade
	userID           string
	account          domain.Account
	expenseCategory  domain.Category
	incomeCategory   domain.Category
}

func (suite *TransactionServiceTestSuite) SetupTest() {
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockCategoryRepo = new(MockCategoryRepository)
	suite.service = services.NewTransactionService(
		suite.mockTxnRepo,
		suite.mockAccountRepo,
		suite.mockCategoryRepo,
		guard.NewAccountLocks(),
	)

	suite.userID = uuid.NewString()
	suite.account = domain.Account{
		AccountID: uuid.NewString(),
		UserID:    suite.userID,
		Name:      "Main card",
		Type:      domain.Card,
		Currency:  "UZS",
		Balance:   decimal.NewFromInt(100),
	}
	suite.expenseCategory = domain.Category{
		CategoryID: uuid.NewString(),
		UserID:     suite.userID,
		Name:       "Food",
		Type:       domain.CategoryExpense,
	}
	suite.incomeCategory = domain.Category{
		CategoryID: uuid.NewString(),
		UserID:     suite.userID,
		Name:       "Salary",
		Type:       domain.CategoryIncome,
	}
}

// --- Test Cases ---

func (suite *TransactionServiceTestSuite) TestCreateTransaction_Success() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		AccountID:   suite.account.AccountID,
		CategoryID:  &suite.expenseCategory.CategoryID,
		Type:        domain.Expense,
		Amount:      decimal.NewFromInt(40),
		Description: "Lunch",
		Date:        "2025-03-10",
	}

	suite.mockAccountRepo.On("FindAccountByID", ctx, suite.userID, suite.account.AccountID).Return(&suite.account, nil).Once()
	suite.mockCategoryRepo.On("FindCategoryByID", ctx, suite.userID, suite.expenseCategory.CategoryID).Return(&suite.expenseCategory, nil).Once()
	suite.mockTxnRepo.On("SaveTransaction", ctx, mock.AnythingOfType("domain.Transaction")).Return(nil).Once()

	txn, err := suite.service.CreateTransaction(ctx, suite.userID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(txn)
	suite.NotEmpty(txn.TransactionID)
	suite.Equal(domain.Expense, txn.Type)
	suite.True(txn.Amount.Equal(decimal.NewFromInt(40)))
	suite.True(txn.SignedAmount().Equal(decimal.NewFromInt(-40)))
	suite.Equal("2025-03-10", txn.Date.Format(dto.DateLayout))

	suite.mockAccountRepo.AssertExpectations(suite.T())
	suite.mockCategoryRepo.AssertExpectations(suite.T())
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_NonPositiveAmount() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		AccountID: suite.account.AccountID,
		Type:      domain.Expense,
		Amount:    decimal.Zero,
		Date:      "2025-03-10",
	}

	_, err := suite.service.CreateTransaction(ctx, suite.userID, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "FindAccountByID", mock.Anything, mock.Anything, mock.Anything)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_AccountNotFound() {
	ctx := context.Background()
	missingID := uuid.NewString()
	req := dto.CreateTransactionRequest{
		AccountID: missingID,
		Type:      domain.Income,
		Amount:    decimal.NewFromInt(10),
		Date:      "2025-03-10",
	}

	suite.mockAccountRepo.On("FindAccountByID", ctx, suite.userID, missingID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.CreateTransaction(ctx, suite.userID, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockAccountRepo.AssertExpectations(suite.T())
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_CategorySideMismatch() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		AccountID:  suite.account.AccountID,
		CategoryID: &suite.incomeCategory.CategoryID,
		Type:       domain.Expense,
		Amount:     decimal.NewFromInt(10),
		Date:       "2025-03-10",
	}

	suite.mockAccountRepo.On("FindAccountByID", ctx, suite.userID, suite.account.AccountID).Return(&suite.account, nil).Once()
	suite.mockCategoryRepo.On("FindCategoryByID", ctx, suite.userID, suite.incomeCategory.CategoryID).Return(&suite.incomeCategory, nil).Once()

	_, err := suite.service.CreateTransaction(ctx, suite.userID, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_InvalidDate() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		AccountID: suite.account.AccountID,
		Type:      domain.Income,
		Amount:    decimal.NewFromInt(10),
		Date:      "10/03/2025",
	}

	_, err := suite.service.CreateTransaction(ctx, suite.userID, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestUpdateTransaction_RejectsTransferLeg() {
	ctx := context.Background()
	relatedID := uuid.NewString()
	leg := domain.Transaction{
		TransactionID:        uuid.NewString(),
		UserID:               suite.userID,
		AccountID:            suite.account.AccountID,
		Type:                 domain.Transfer,
		Amount:               decimal.NewFromInt(25),
		Direction:            domain.TransferOut,
		RelatedTransactionID: &relatedID,
	}
	newDesc := "edited"

	suite.mockTxnRepo.On("FindTransactionByID", ctx, suite.userID, leg.TransactionID).Return(&leg, nil).Once()

	_, err := suite.service.UpdateTransaction(ctx, suite.userID, leg.TransactionID, dto.UpdateTransactionRequest{Description: &newDesc})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "UpdateTransaction", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestUpdateTransaction_MoveToOtherAccount() {
	ctx := context.Background()
	otherAccount := domain.Account{
		AccountID: uuid.NewString(),
		UserID:    suite.userID,
		Name:      "Cash",
		Type:      domain.Cash,
		Currency:  "UZS",
	}
	existing := domain.Transaction{
		TransactionID: uuid.NewString(),
		UserID:        suite.userID,
		AccountID:     suite.account.AccountID,
		Type:          domain.Expense,
		Amount:        decimal.NewFromInt(40),
		Date:          time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
	}

	suite.mockTxnRepo.On("FindTransactionByID", ctx, suite.userID, existing.TransactionID).Return(&existing, nil).Once()
	suite.mockAccountRepo.On("FindAccountByID", ctx, suite.userID, otherAccount.AccountID).Return(&otherAccount, nil).Once()
	suite.mockTxnRepo.On("UpdateTransaction", ctx, existing, mock.AnythingOfType("domain.Transaction")).Return(nil).Once()

	updated, err := suite.service.UpdateTransaction(ctx, suite.userID, existing.TransactionID, dto.UpdateTransactionRequest{AccountID: &otherAccount.AccountID})

	suite.Require().NoError(err)
	suite.Require().NotNil(updated)
	suite.Equal(otherAccount.AccountID, updated.AccountID)
	suite.True(updated.Amount.Equal(existing.Amount))

	suite.mockTxnRepo.AssertExpectations(suite.T())
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestDeleteTransaction_RejectsTransferLeg() {
	ctx := context.Background()
	relatedID := uuid.NewString()
	leg := domain.Transaction{
		TransactionID:        uuid.NewString(),
		UserID:               suite.userID,
		AccountID:            suite.account.AccountID,
		Type:                 domain.Transfer,
		Amount:               decimal.NewFromInt(25),
		Direction:            domain.TransferIn,
		RelatedTransactionID: &relatedID,
	}

	suite.mockTxnRepo.On("FindTransactionByID", ctx, suite.userID, leg.TransactionID).Return(&leg, nil).Once()

	err := suite.service.DeleteTransaction(ctx, suite.userID, leg.TransactionID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "DeleteTransaction", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestDeleteTransaction_Success() {
	ctx := context.Background()
	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		UserID:        suite.userID,
		AccountID:     suite.account.AccountID,
		Type:          domain.Income,
		Amount:        decimal.NewFromInt(15),
	}

	suite.mockTxnRepo.On("FindTransactionByID", ctx, suite.userID, txn.TransactionID).Return(&txn, nil).Once()
	suite.mockTxnRepo.On("DeleteTransaction", ctx, txn).Return(nil).Once()

	err := suite.service.DeleteTransaction(ctx, suite.userID, txn.TransactionID)

	suite.Require().NoError(err)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestListTransactions_InvalidDateFrom() {
	ctx := context.Background()

	_, err := suite.service.ListTransactions(ctx, suite.userID, dto.ListTransactionsParams{DateFrom: "notadate", Limit: 20})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "ListTransactions", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestListTransactions_PassesFilterAndToken() {
	ctx := context.Background()
	token := "opaque-cursor"
	returned := []domain.Transaction{
		{TransactionID: uuid.NewString(), UserID: suite.userID, AccountID: suite.account.AccountID, Type: domain.Expense, Amount: decimal.NewFromInt(5), Date: time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC)},
	}

	suite.mockTxnRepo.On("ListTransactions", ctx, suite.userID, mock.MatchedBy(func(f portsrepo.TransactionFilter) bool {
		return f.AccountID == suite.account.AccountID && f.Type == domain.Expense
	}), 20, &token).Return(returned, nil, nil).Once()

	resp, err := suite.service.ListTransactions(ctx, suite.userID, dto.ListTransactionsParams{
		AccountID: suite.account.AccountID,
		Type:      "EXPENSE",
		Limit:     20,
		NextToken: token,
	})

	suite.Require().NoError(err)
	suite.Require().NotNil(resp)
	assert.Len(suite.T(), resp.Transactions, 1)
	suite.Nil(resp.NextToken)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

// --- Run Test Suite ---
func TestTransactionService(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}
