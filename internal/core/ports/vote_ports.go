package ports

import (
	"context"

	"github.com/nthusa/voting/internal/core/domain"
)

type VoteRepository interface {
	// SaveVote registers the student in the activity's voter set and stores
	// the ballot as a single transaction. It reports false, without storing
	// anything, when the student is already registered; the losing side of
	// two concurrent submissions observes this deterministically.
	SaveVote(ctx context.Context, vote *domain.Vote, studentID string) (bool, error)
	GetByToken(ctx context.Context, token string) (*domain.Vote, error)
}

// CastVoteInput is a submitted ballot plus the authenticated caller. The
// student id is used only for the eligibility check and the voter set; it
// never reaches the stored Vote.
type CastVoteInput struct {
	ActivityID string
	StudentID  string
	Rule       domain.Rule
	ChooseOne  string
	ChooseAll  []domain.Choice
}

type VoteService interface {
	CastVote(ctx context.Context, input CastVoteInput) (*domain.Vote, error)
	GetByToken(ctx context.Context, token string) (*domain.Vote, error)
}
