package services

import (
	"context"
	"errors"
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
	"github.com/moliya-app/moliya-backend/internal/utils"
)

type userService struct {
	userRepo    portsrepo.UserRepository
	categorySvc portssvc.CategorySvcFacade
}

// NewUserService creates a new user service. The category service seeds each
// new user's default category set at registration.
func NewUserService(userRepo portsrepo.UserRepository, categorySvc portssvc.CategorySvcFacade) portssvc.UserSvcFacade {
	return &userService{
		userRepo:    userRepo,
		categorySvc: categorySvc,
	}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

func (s *userService) Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		logger.Error("failed to hash password", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: failed to hash password", apperrors.ErrInternal)
	}

	user := domain.User{
		UserID:         uuid.NewString(),
		Email:          req.Email,
		HashedPassword: hashed,
		FullName:       req.FullName,
		CreatedAt:      time.Now().UTC(),
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		return nil, err
	}

	if err := s.categorySvc.SeedDefaultCategories(ctx, user.UserID); err != nil {
		logger.Error("failed to seed default categories for new user",
			slog.String("user_id", user.UserID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to seed default categories: %w", err)
	}

	logger.Info("user registered", slog.String("user_id", user.UserID))
	return &user, nil
}

func (s *userService) Authenticate(ctx context.Context, req dto.LoginRequest) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: invalid email or password", apperrors.ErrUnauthorized)
		}
		return nil, err
	}

	if !utils.CheckPasswordHash(req.Password, user.HashedPassword) {
		return nil, fmt.Errorf("%w: invalid email or password", apperrors.ErrUnauthorized)
	}

	return user, nil
}

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return s.userRepo.FindUserByID(ctx, userID)
}
