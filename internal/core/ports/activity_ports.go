package ports

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/nthusa/voting/internal/core/domain"
)

type ActivityRepository interface {
	Save(ctx context.Context, activity *domain.Activity) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Activity, error)
	GetAll(ctx context.Context) ([]*domain.Activity, error)
	Update(ctx context.Context, activity *domain.Activity) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type CreateActivityInput struct {
	Name        string
	Type        string
	Description string
	Rule        domain.Rule
	OpenFrom    time.Time
	OpenTo      time.Time
}

type UpdateActivityInput struct {
	Name        string
	Type        string
	Description string
	Rule        domain.Rule
	OpenFrom    time.Time
	OpenTo      time.Time
}

type ActivityService interface {
	Create(ctx context.Context, input CreateActivityInput) (*domain.Activity, error)
	Get(ctx context.Context, id string) (*domain.Activity, error)
	List(ctx context.Context) ([]*domain.Activity, error)
	Update(ctx context.Context, id string, input UpdateActivityInput) (*domain.Activity, error)
	Delete(ctx context.Context, id string) error
}
