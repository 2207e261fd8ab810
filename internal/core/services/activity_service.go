package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/nthusa/voting/internal/core/domain"
	"github.com/nthusa/voting/internal/core/ports"
)

type activityService struct {
	repo ports.ActivityRepository
}

func NewActivityService(repo ports.ActivityRepository) ports.ActivityService {
	return &activityService{
		repo: repo,
	}
}

func (s *activityService) Create(ctx context.Context, input ports.CreateActivityInput) (*domain.Activity, error) {
	if input.Name == "" {
		return nil, domain.ErrMissingField
	}
	if !input.Rule.Valid() {
		return nil, domain.ErrInvalidRule
	}
	if err := validateWindow(input.OpenFrom, input.OpenTo); err != nil {
		return nil, err
	}

	now := time.Now()
	activity := &domain.Activity{
		ID:          uuid.New(),
		Name:        input.Name,
		Type:        input.Type,
		Description: input.Description,
		Rule:        input.Rule,
		OpenFrom:    input.OpenFrom,
		OpenTo:      input.OpenTo,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Save(ctx, activity); err != nil {
		return nil, err
	}

	return activity, nil
}

func (s *activityService) Get(ctx context.Context, id string) (*domain.Activity, error) {
	activityID, err := uuid.Parse(id)
	if err != nil {
		return nil, domain.ErrInvalidActivityID
	}
	return s.repo.GetByID(ctx, activityID)
}

func (s *activityService) List(ctx context.Context) ([]*domain.Activity, error) {
	return s.repo.GetAll(ctx)
}

// Update applies admin edits. The rule is locked once any vote exists:
// historical Vote records carry the rule they were cast under, and changing
// the activity's rule would desynchronize them.
func (s *activityService) Update(ctx context.Context, id string, input ports.UpdateActivityInput) (*domain.Activity, error) {
	activity, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name == "" {
		return nil, domain.ErrMissingField
	}
	if !input.Rule.Valid() {
		return nil, domain.ErrInvalidRule
	}
	if err := validateWindow(input.OpenFrom, input.OpenTo); err != nil {
		return nil, err
	}
	if input.Rule != activity.Rule && len(activity.Voters) > 0 {
		return nil, domain.ErrRuleLocked
	}

	activity.Name = input.Name
	activity.Type = input.Type
	activity.Description = input.Description
	activity.Rule = input.Rule
	activity.OpenFrom = input.OpenFrom
	activity.OpenTo = input.OpenTo
	activity.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, activity); err != nil {
		return nil, err
	}

	return activity, nil
}

// Delete removes the activity and cascades to its options. Vote records are
// intentionally retained; ballots are final even when the election is gone.
func (s *activityService) Delete(ctx context.Context, id string) error {
	activityID, err := uuid.Parse(id)
	if err != nil {
		return domain.ErrInvalidActivityID
	}
	return s.repo.Delete(ctx, activityID)
}

func validateWindow(openFrom, openTo time.Time) error {
	if openFrom.IsZero() || openTo.IsZero() {
		return domain.ErrMissingField
	}
	if !openFrom.Before(openTo) {
		return domain.ErrInvalidDateRange
	}
	return nil
}
