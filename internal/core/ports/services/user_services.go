package services

import (
	"context"

	"github.com/moliya-app/moliya-backend/internal/core/domain"
	"github.com/moliya-app/moliya-backend/internal/dto"
)

// UserSvcFacade exposes user registration and authentication.
type UserSvcFacade interface {
	Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)
	Authenticate(ctx context.Context, req dto.LoginRequest) (*domain.User, error)
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
}
