package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/nthusa/voting/internal/core/domain"
	"github.com/nthusa/voting/internal/core/ports"
)

type resultRepository struct {
	db *sql.DB
}

func NewResultRepository(db *sql.DB) ports.ResultRepository {
	return &resultRepository{
		db: db,
	}
}

// SummarizeVotes recomputes the tally rows for one activity from the vote
// records. choose_one ballots tally per option with an empty remark;
// choose_all ballots tally per (option, remark). Both folds are idempotent
// upserts, so re-running the job only moves counts forward.
func (r *resultRepository) SummarizeVotes(ctx context.Context, activityID uuid.UUID) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	queryChooseOne := `
		INSERT INTO activity_results (activity_id, option_id, remark, vote_count, last_updated_at)
		SELECT activity_id, choose_one, '', COUNT(*), NOW()
		FROM votes
		WHERE activity_id = $1 AND choose_one IS NOT NULL
		GROUP BY activity_id, choose_one
		ON CONFLICT (activity_id, option_id, remark) DO UPDATE
		SET vote_count = EXCLUDED.vote_count,
		    last_updated_at = NOW();
	`
	if _, err := tx.ExecContext(ctx, queryChooseOne, activityID); err != nil {
		return fmt.Errorf("failed to summarize choose_one votes for activity %s: %w", activityID, err)
	}

	queryChooseAll := `
		INSERT INTO activity_results (activity_id, option_id, remark, vote_count, last_updated_at)
		SELECT v.activity_id, c.option_id, c.remark, COUNT(*), NOW()
		FROM votes v
		JOIN vote_choices c ON c.vote_token = v.token
		WHERE v.activity_id = $1
		GROUP BY v.activity_id, c.option_id, c.remark
		ON CONFLICT (activity_id, option_id, remark) DO UPDATE
		SET vote_count = EXCLUDED.vote_count,
		    last_updated_at = NOW();
	`
	if _, err := tx.ExecContext(ctx, queryChooseAll, activityID); err != nil {
		return fmt.Errorf("failed to summarize choose_all votes for activity %s: %w", activityID, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (r *resultRepository) GetActivityTallies(ctx context.Context, activityID uuid.UUID) ([]domain.OptionTally, error) {
	query := `
		SELECT activity_id, option_id, remark, vote_count, last_updated_at
		FROM activity_results
		WHERE activity_id = $1
		ORDER BY option_id, remark
	`

	rows, err := r.db.QueryContext(ctx, query, activityID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch tallies: %w", err)
	}
	defer rows.Close()

	var tallies []domain.OptionTally
	for rows.Next() {
		var t domain.OptionTally
		if err := rows.Scan(&t.ActivityID, &t.OptionID, &t.Remark, &t.VoteCount, &t.LastUpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan tally: %w", err)
		}
		tallies = append(tallies, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tallies: %w", err)
	}
	return tallies, nil
}
