package repositories

import (
	"context"

	"github.com/moliya-app/moliya-backend/internal/core/domain"
)

// UserRepository persists application users.
type UserRepository interface {
	SaveUser(ctx context.Context, user domain.User) error
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
}
