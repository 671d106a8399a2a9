package services_test

import (
	"context"
	"strings"
	"testing"

	"github.com/moliya-app/moliya-backend/internal/apperrors"
	"github.com/moliya-app/moliya-backend/internal/core/domain"
	portssvc "github.com/moliya-app/moliya-backend/internal/core/ports/services"
	"github.com/moliya-app/moliya-backend/internal/core/services"
	"github.com/moliya-app/moliya-backend/internal/dto"
	"github.com/moliya-app/moliya-backend/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// --- Mock CategorySvcFacade ---
type MockCategoryService struct {
	mock.Mock
}

var _ portssvc.CategorySvcFacade = (*MockCategoryService)(nil)

func (m *MockCategoryService) CreateCategory(ctx context.Context, userID string, req dto.CreateCategoryRequest) (*domain.Category, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryService) ListCategories(ctx context.Context, userID string, categoryType *domain.CategoryType) ([]domain.Category, error) {
	args := m.Called(ctx, userID, categoryType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *MockCategoryService) SeedDefaultCategories(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type UserServiceTestSuite struct {
	suite.Suite
	mockUserRepo    *MockUserRepository
	mockCategorySvc *MockCategoryService
	service         portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.mockCategorySvc = new(MockCategoryService)
	suite.service = services.NewUserService(suite.mockUserRepo, suite.mockCategorySvc)
}

func (suite *UserServiceTestSuite) TestRegister_SeedsDefaultCategories() {
	ctx := context.Background()
	req := dto.RegisterRequest{
		Email:    "someone@example.com",
		Password: "correct-horse",
		FullName: "Someone",
	}

	suite.mockUserRepo.On("SaveUser", ctx, mock.AnythingOfType("domain.User")).Return(nil).Once()
	suite.mockCategorySvc.On("SeedDefaultCategories", ctx, mock.AnythingOfType("string")).Return(nil).Once()

	user, err := suite.service.Register(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(user)
	suite.NotEmpty(user.UserID)
	suite.Equal(req.Email, user.Email)
	suite.NotEqual(req.Password, user.HashedPassword)
	suite.True(utils.CheckPasswordHash(req.Password, user.HashedPassword))

	suite.mockUserRepo.AssertExpectations(suite.T())
	suite.mockCategorySvc.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestRegister_UnhashablePassword() {
	ctx := context.Background()
	// bcrypt rejects input beyond 72 bytes.
	req := dto.RegisterRequest{
		Email:    "someone@example.com",
		Password: strings.Repeat("x", 80),
		FullName: "Someone",
	}

	user, err := suite.service.Register(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInternal)
	suite.Nil(user)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestRegister_DuplicateEmail() {
	ctx := context.Background()
	req := dto.RegisterRequest{
		Email:    "taken@example.com",
		Password: "correct-horse",
		FullName: "Someone",
	}

	suite.mockUserRepo.On("SaveUser", ctx, mock.AnythingOfType("domain.User")).Return(apperrors.ErrDuplicate).Once()

	_, err := suite.service.Register(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockCategorySvc.AssertNotCalled(suite.T(), "SeedDefaultCategories", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestAuthenticate_Success() {
	ctx := context.Background()
	password := "correct-horse"
	hashed, err := utils.HashPassword(password)
	suite.Require().NoError(err)

	stored := domain.User{
		UserID:         "user-1",
		Email:          "someone@example.com",
		HashedPassword: hashed,
	}
	suite.mockUserRepo.On("FindUserByEmail", ctx, stored.Email).Return(&stored, nil).Once()

	user, err := suite.service.Authenticate(ctx, dto.LoginRequest{Email: stored.Email, Password: password})

	suite.Require().NoError(err)
	suite.Equal(stored.UserID, user.UserID)
}

func (suite *UserServiceTestSuite) TestAuthenticate_WrongPassword() {
	ctx := context.Background()
	hashed, err := utils.HashPassword("the-real-password")
	suite.Require().NoError(err)

	stored := domain.User{
		UserID:         "user-1",
		Email:          "someone@example.com",
		HashedPassword: hashed,
	}
	suite.mockUserRepo.On("FindUserByEmail", ctx, stored.Email).Return(&stored, nil).Once()

	_, err = suite.service.Authenticate(ctx, dto.LoginRequest{Email: stored.Email, Password: "wrong"})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *UserServiceTestSuite) TestAuthenticate_UnknownEmailIndistinguishable() {
	ctx := context.Background()
	suite.mockUserRepo.On("FindUserByEmail", ctx, "nobody@example.com").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.Authenticate(ctx, dto.LoginRequest{Email: "nobody@example.com", Password: "whatever"})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	assert.NotErrorIs(suite.T(), err, apperrors.ErrNotFound)
}

func TestUserService(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
