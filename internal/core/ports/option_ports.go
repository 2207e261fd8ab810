package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/nthusa/voting/internal/core/domain"
)

type OptionRepository interface {
	Save(ctx context.Context, option *domain.Option) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Option, error)
	ListForActivity(ctx context.Context, activityID uuid.UUID) ([]*domain.Option, error)
	Update(ctx context.Context, option *domain.Option) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type CreateOptionInput struct {
	ActivityID string
	Label      string
	Candidate  domain.Candidate
	Vice       []domain.Candidate
}

type UpdateOptionInput struct {
	Label     string
	Candidate domain.Candidate
	Vice      []domain.Candidate
}

type OptionService interface {
	Create(ctx context.Context, input CreateOptionInput) (*domain.Option, error)
	ListForActivity(ctx context.Context, activityID string) ([]*domain.Option, error)
	Update(ctx context.Context, id string, input UpdateOptionInput) (*domain.Option, error)
	Delete(ctx context.Context, id string) error
}
