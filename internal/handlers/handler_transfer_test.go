package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/moliya-app/moliya-backend/internal/apperrors"
	"github.com/moliya-app/moliya-backend/internal/core/domain"
	portssvc "github.com/moliya-app/moliya-backend/internal/core/ports/services"
	"github.com/moliya-app/moliya-backend/internal/dto"
	"github.com/moliya-app/moliya-backend/internal/middleware"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock TransferService ---
type MockTransferService struct {
	mock.Mock
}

var _ portssvc.TransferSvcFacade = (*MockTransferService)(nil)

func (m *MockTransferService) CreateTransfer(ctx context.Context, userID string, req dto.CreateTransferRequest, idempotencyKey string) (*domain.TransferPair, error) {
	args := m.Called(ctx, userID, req, idempotencyKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TransferPair), args.Error(1)
}

func (m *MockTransferService) DeleteTransferPair(ctx context.Context, userID string, transactionID string) error {
	args := m.Called(ctx, userID, transactionID)
	return args.Error(0)
}

// --- Test Suite ---
type TransferHandlerTestSuite struct {
	suite.Suite
	router              *gin.Engine
	mockTransferService *MockTransferService
	jwtSecret           string
	userID              string
}

func (suite *TransferHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "moliya-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *TransferHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.userID = uuid.NewString()

	suite.mockTransferService = new(MockTransferService)

	api := suite.router.Group("/api", middleware.AuthMiddleware(suite.jwtSecret))
	registerTransferRoutes(api, suite.mockTransferService)
}

func (suite *TransferHandlerTestSuite) postTransfer(body any, headers map[string]string) *httptest.ResponseRecorder {
	raw, err := json.Marshal(body)
	suite.Require().NoError(err)

	req, _ := http.NewRequest(http.MethodPost, "/api/transfers", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(suite.userID))
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *TransferHandlerTestSuite) TestCreateTransfer_Success() {
	fromID := uuid.NewString()
	toID := uuid.NewString()
	outID := uuid.NewString()
	inID := uuid.NewString()
	pair := &domain.TransferPair{
		Outgoing: domain.Transaction{
			TransactionID:        outID,
			AccountID:            fromID,
			Type:                 domain.Transfer,
			Amount:               decimal.NewFromInt(25),
			Direction:            domain.TransferOut,
			RelatedTransactionID: &inID,
			Date:                 time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		},
		Incoming: domain.Transaction{
			TransactionID:        inID,
			AccountID:            toID,
			Type:                 domain.Transfer,
			Amount:               decimal.NewFromInt(25),
			Direction:            domain.TransferIn,
			RelatedTransactionID: &outID,
			Date:                 time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		},
	}

	suite.mockTransferService.On("CreateTransfer",
		mock.Anything,
		suite.userID,
		mock.MatchedBy(func(r dto.CreateTransferRequest) bool {
			return r.FromAccountID == fromID && r.ToAccountID == toID
		}),
		"retry-key-1",
	).Return(pair, nil).Once()

	w := suite.postTransfer(dto.CreateTransferRequest{
		FromAccountID: fromID,
		ToAccountID:   toID,
		Amount:        decimal.NewFromInt(25),
		Date:          "2025-03-10",
	}, map[string]string{"Idempotency-Key": "retry-key-1"})

	suite.Equal(http.StatusCreated, w.Code)

	var resp dto.TransferResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(outID, resp.Outgoing.TransactionID)
	suite.Equal(inID, resp.Incoming.TransactionID)

	suite.mockTransferService.AssertExpectations(suite.T())
}

func (suite *TransferHandlerTestSuite) TestCreateTransfer_ValidationErrorIs400() {
	suite.mockTransferService.On("CreateTransfer", mock.Anything, suite.userID, mock.Anything, "").
		Return(nil, apperrors.ErrValidation).Once()

	sameID := uuid.NewString()
	w := suite.postTransfer(dto.CreateTransferRequest{
		FromAccountID: sameID,
		ToAccountID:   sameID,
		Amount:        decimal.NewFromInt(25),
		Date:          "2025-03-10",
	}, nil)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *TransferHandlerTestSuite) TestCreateTransfer_MissingToken() {
	raw, _ := json.Marshal(dto.CreateTransferRequest{
		FromAccountID: uuid.NewString(),
		ToAccountID:   uuid.NewString(),
		Amount:        decimal.NewFromInt(25),
		Date:          "2025-03-10",
	})
	req, _ := http.NewRequest(http.MethodPost, "/api/transfers", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockTransferService.AssertNotCalled(suite.T(), "CreateTransfer", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransferHandlerTestSuite) TestDeleteTransfer_Success() {
	transactionID := uuid.NewString()
	suite.mockTransferService.On("DeleteTransferPair", mock.Anything, suite.userID, transactionID).Return(nil).Once()

	req, _ := http.NewRequest(http.MethodDelete, "/api/transfers/"+transactionID, nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(suite.userID))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNoContent, w.Code)
	suite.mockTransferService.AssertExpectations(suite.T())
}

func (suite *TransferHandlerTestSuite) TestDeleteTransfer_NotFound() {
	transactionID := uuid.NewString()
	suite.mockTransferService.On("DeleteTransferPair", mock.Anything, suite.userID, transactionID).Return(apperrors.ErrNotFound).Once()

	req, _ := http.NewRequest(http.MethodDelete, "/api/transfers/"+transactionID, nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(suite.userID))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
}

// --- Run Test Suite ---
func TestTransferHandler(t *testing.T) {
	suite.Run(t, new(TransferHandlerTestSuite))
}
