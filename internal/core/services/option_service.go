package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/nthusa/voting/internal/core/domain"
	"github.com/nthusa/voting/internal/core/ports"
)

type optionService struct {
	activityRepo ports.ActivityRepository
	optionRepo   ports.OptionRepository
}

func NewOptionService(activityRepo ports.ActivityRepository, optionRepo ports.OptionRepository) ports.OptionService {
	return &optionService{
		activityRepo: activityRepo,
		optionRepo:   optionRepo,
	}
}

func (s *optionService) Create(ctx context.Context, input ports.CreateOptionInput) (*domain.Option, error) {
	activityID, err := uuid.Parse(input.ActivityID)
	if err != nil {
		return nil, domain.ErrInvalidActivityID
	}
	if input.Candidate.Name == "" {
		return nil, domain.ErrMissingField
	}

	// The owning activity must exist before an option can point at it.
	if _, err := s.activityRepo.GetByID(ctx, activityID); err != nil {
		return nil, err
	}

	now := time.Now()
	option := &domain.Option{
		ID:         uuid.New(),
		ActivityID: activityID,
		Label:      input.Label,
		Candidate:  input.Candidate,
		Vice:       input.Vice,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.optionRepo.Save(ctx, option); err != nil {
		return nil, err
	}

	return option, nil
}

func (s *optionService) ListForActivity(ctx context.Context, activityID string) ([]*domain.Option, error) {
	id, err := uuid.Parse(activityID)
	if err != nil {
		return nil, domain.ErrInvalidActivityID
	}
	return s.optionRepo.ListForActivity(ctx, id)
}

func (s *optionService) Update(ctx context.Context, id string, input ports.UpdateOptionInput) (*domain.Option, error) {
	optionID, err := uuid.Parse(id)
	if err != nil {
		return nil, domain.ErrInvalidOptionID
	}
	if input.Candidate.Name == "" {
		return nil, domain.ErrMissingField
	}

	option, err := s.optionRepo.GetByID(ctx, optionID)
	if err != nil {
		return nil, err
	}

	option.Label = input.Label
	option.Candidate = input.Candidate
	option.Vice = input.Vice
	option.UpdatedAt = time.Now()

	if err := s.optionRepo.Update(ctx, option); err != nil {
		return nil, err
	}

	return option, nil
}

func (s *optionService) Delete(ctx context.Context, id string) error {
	optionID, err := uuid.Parse(id)
	if err != nil {
		return domain.ErrInvalidOptionID
	}
	return s.optionRepo.Delete(ctx, optionID)
}
