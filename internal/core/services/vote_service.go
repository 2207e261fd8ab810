package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/nthusa/voting/internal/core/domain"
	"github.com/nthusa/voting/internal/core/ports"
)

type voteService struct {
	activityRepo ports.ActivityRepository
	voteRepo     ports.VoteRepository
	now          func() time.Time
}

func NewVoteService(activityRepo ports.ActivityRepository, voteRepo ports.VoteRepository) ports.VoteService {
	return &voteService{
		activityRepo: activityRepo,
		voteRepo:     voteRepo,
		now:          time.Now,
	}
}

// CastVote turns a validated ballot into a persisted anonymous vote. Every
// check runs before any mutation; the only write is the repository's
// voter-add + vote-insert transaction, so a submission that loses the race
// for the voter set leaves no record behind.
func (s *voteService) CastVote(ctx context.Context, input ports.CastVoteInput) (*domain.Vote, error) {
	activityID, err := uuid.Parse(input.ActivityID)
	if err != nil {
		return nil, domain.ErrInvalidActivityID
	}

	activity, err := s.activityRepo.GetByID(ctx, activityID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	if now.Before(activity.OpenFrom) {
		return nil, domain.ErrVoteNotStarted
	}
	if now.After(activity.OpenTo) {
		return nil, domain.ErrVoteEnded
	}

	if activity.HasVoted(input.StudentID) {
		return nil, domain.ErrAlreadyVoted
	}

	if err := ValidateBallot(activity, input); err != nil {
		return nil, err
	}

	vote := &domain.Vote{
		Token:      uuid.NewString(),
		ActivityID: activity.ID,
		Rule:       activity.Rule,
		CreatedAt:  now,
	}
	switch activity.Rule {
	case domain.RuleChooseOne:
		optionID, err := uuid.Parse(input.ChooseOne)
		if err != nil {
			return nil, domain.ErrInvalidOptions
		}
		vote.ChooseOne = &optionID
	case domain.RuleChooseAll:
		vote.ChooseAll = input.ChooseAll
	}

	won, err := s.voteRepo.SaveVote(ctx, vote, input.StudentID)
	if err != nil {
		return nil, err
	}
	if !won {
		// A concurrent submission from the same student got there first.
		return nil, domain.ErrAlreadyVoted
	}

	return vote, nil
}

func (s *voteService) GetByToken(ctx context.Context, token string) (*domain.Vote, error) {
	if token == "" {
		return nil, domain.ErrVoteNotFound
	}
	return s.voteRepo.GetByToken(ctx, token)
}
