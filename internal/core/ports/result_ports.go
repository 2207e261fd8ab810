package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/nthusa/voting/internal/core/domain"
)

type ResultRepository interface {
	// SummarizeVotes folds the activity's vote records into upserted
	// per-option (and per-remark, for choose_all) tally rows.
	SummarizeVotes(ctx context.Context, activityID uuid.UUID) error
	GetActivityTallies(ctx context.Context, activityID uuid.UUID) ([]domain.OptionTally, error)
}

type SummaryService interface {
	SummarizeAllVotes(ctx context.Context) error
}

// OptionResult is one row of the admin-facing results view. Percentage is the
// share of cast ballots; for choose_all it is the share holding that remark.
type OptionResult struct {
	OptionID   uuid.UUID     `json:"option_id"`
	Remark     domain.Remark `json:"remark,omitempty"`
	VoteCount  int64         `json:"vote_count"`
	Percentage float64       `json:"percentage"`
}

type ActivityResults struct {
	ActivityID   uuid.UUID      `json:"activity_id"`
	Rule         domain.Rule    `json:"rule"`
	TotalBallots int64          `json:"total_ballots"`
	Results      []OptionResult `json:"results"`
}

type ResultService interface {
	ActivityResults(ctx context.Context, activityID string) (*ActivityResults, error)
}
