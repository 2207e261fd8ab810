package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/nthusa/voting/internal/core/ports"
)

type summaryService struct {
	activityRepo ports.ActivityRepository
	resultRepo   ports.ResultRepository
}

func NewSummaryService(activityRepo ports.ActivityRepository, resultRepo ports.ResultRepository) ports.SummaryService {
	return &summaryService{
		activityRepo: activityRepo,
		resultRepo:   resultRepo,
	}
}

// SummarizeAllVotes refreshes the tally rows of every activity, one goroutine
// per activity. Each activity's upsert is independent so partial progress is
// harmless; the first error wins.
func (s *summaryService) SummarizeAllVotes(ctx context.Context) error {
	activities, err := s.activityRepo.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch all activities: %w", err)
	}

	var wg sync.WaitGroup
	errChan := make(chan error, len(activities))

	for _, activity := range activities {
		wg.Add(1)
		go func(aID uuid.UUID) {
			defer wg.Done()
			if err := s.resultRepo.SummarizeVotes(ctx, aID); err != nil {
				errChan <- fmt.Errorf("failed to summarize activity %s: %w", aID, err)
			}
		}(activity.ID)
	}

	wg.Wait()
	close(errChan)

	for err := range errChan {
		if err != nil {
			return err
		}
	}

	return nil
}
