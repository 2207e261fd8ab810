package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/nthusa/voting/internal/core/domain"
	"github.com/nthusa/voting/internal/core/ports"
)

type resultService struct {
	activityRepo ports.ActivityRepository
	resultRepo   ports.ResultRepository
}

func NewResultService(activityRepo ports.ActivityRepository, resultRepo ports.ResultRepository) ports.ResultService {
	return &resultService{
		activityRepo: activityRepo,
		resultRepo:   resultRepo,
	}
}

// ActivityResults returns the summarized tallies for one activity. The ballot
// total comes from the voter set, so percentages stay meaningful for
// choose_all where every ballot touches every option.
func (s *resultService) ActivityResults(ctx context.Context, activityID string) (*ports.ActivityResults, error) {
	id, err := uuid.Parse(activityID)
	if err != nil {
		return nil, domain.ErrInvalidActivityID
	}

	activity, err := s.activityRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	tallies, err := s.resultRepo.GetActivityTallies(ctx, activity.ID)
	if err != nil {
		return nil, err
	}

	total := int64(len(activity.Voters))
	results := make([]ports.OptionResult, 0, len(tallies))
	for _, t := range tallies {
		percentage := 0.0
		if total > 0 {
			percentage = float64(t.VoteCount) / float64(total) * 100
		}
		results = append(results, ports.OptionResult{
			OptionID:   t.OptionID,
			Remark:     t.Remark,
			VoteCount:  t.VoteCount,
			Percentage: percentage,
		})
	}

	return &ports.ActivityResults{
		ActivityID:   activity.ID,
		Rule:         activity.Rule,
		TotalBallots: total,
		Results:      results,
	}, nil
}
