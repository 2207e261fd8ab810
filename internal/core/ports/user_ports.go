package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/nthusa/voting/internal/core/domain"
)

type UserRepository interface {
	GetByStudentID(ctx context.Context, studentID string) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) error
}

type UserService interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}
