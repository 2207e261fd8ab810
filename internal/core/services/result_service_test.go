package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nthusa/voting/internal/core/domain"
)

type fakeResultRepo struct {
	mu         sync.Mutex
	tallies    map[uuid.UUID][]domain.OptionTally
	summarized map[uuid.UUID]int
}

func newFakeResultRepo() *fakeResultRepo {
	return &fakeResultRepo{
		tallies:    make(map[uuid.UUID][]domain.OptionTally),
		summarized: make(map[uuid.UUID]int),
	}
}

func (r *fakeResultRepo) SummarizeVotes(_ context.Context, activityID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.summarized[activityID]++
	return nil
}

func (r *fakeResultRepo) GetActivityTallies(_ context.Context, activityID uuid.UUID) ([]domain.OptionTally, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.tallies[activityID], nil
}

func TestActivityResults(t *testing.T) {
	optionA := uuid.New()
	optionB := uuid.New()
	activity := &domain.Activity{
		ID:      uuid.New(),
		Rule:    domain.RuleChooseOne,
		Options: []uuid.UUID{optionA, optionB},
		Voters:  []string{"s1", "s2", "s3", "s4"},
	}

	resultRepo := newFakeResultRepo()
	resultRepo.tallies[activity.ID] = []domain.OptionTally{
		{ActivityID: activity.ID, OptionID: optionA, VoteCount: 3},
		{ActivityID: activity.ID, OptionID: optionB, VoteCount: 1},
	}

	svc := NewResultService(newFakeActivityRepo(activity), resultRepo)

	results, err := svc.ActivityResults(context.Background(), activity.ID.String())
	require.NoError(t, err)

	assert.Equal(t, activity.ID, results.ActivityID)
	assert.Equal(t, domain.RuleChooseOne, results.Rule)
	assert.Equal(t, int64(4), results.TotalBallots)
	require.Len(t, results.Results, 2)
	assert.Equal(t, int64(3), results.Results[0].VoteCount)
	assert.InDelta(t, 75.0, results.Results[0].Percentage, 0.01)
	assert.InDelta(t, 25.0, results.Results[1].Percentage, 0.01)
}

func TestActivityResultsNoBallots(t *testing.T) {
	activity := &domain.Activity{ID: uuid.New(), Rule: domain.RuleChooseAll}
	svc := NewResultService(newFakeActivityRepo(activity), newFakeResultRepo())

	results, err := svc.ActivityResults(context.Background(), activity.ID.String())
	require.NoError(t, err)
	assert.Equal(t, int64(0), results.TotalBallots)
	assert.Empty(t, results.Results)
}

func TestActivityResultsErrors(t *testing.T) {
	svc := NewResultService(newFakeActivityRepo(), newFakeResultRepo())

	_, err := svc.ActivityResults(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, domain.ErrInvalidActivityID)

	_, err = svc.ActivityResults(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrActivityNotFound)
}

func TestSummarizeAllVotes(t *testing.T) {
	now := time.Now()
	first := &domain.Activity{ID: uuid.New(), Name: "A", Rule: domain.RuleChooseOne, OpenFrom: now, OpenTo: now.Add(time.Hour)}
	second := &domain.Activity{ID: uuid.New(), Name: "B", Rule: domain.RuleChooseAll, OpenFrom: now, OpenTo: now.Add(time.Hour)}

	resultRepo := newFakeResultRepo()
	svc := NewSummaryService(newFakeActivityRepo(first, second), resultRepo)

	require.NoError(t, svc.SummarizeAllVotes(context.Background()))

	assert.Equal(t, 1, resultRepo.summarized[first.ID])
	assert.Equal(t, 1, resultRepo.summarized[second.ID])
}
