package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/nthusa/voting/internal/core/domain"
	"github.com/nthusa/voting/internal/core/ports"
)

type voteRepository struct {
	db *sql.DB
}

func NewVoteRepository(db *sql.DB) ports.VoteRepository {
	return &voteRepository{
		db: db,
	}
}

// SaveVote performs the exactly-once commit. The conditional insert into
// activity_voters is the serialization point: ON CONFLICT DO NOTHING makes
// the primary key (activity_id, student_id) decide the race, and only the
// winning transaction goes on to insert the vote row. Both writes commit or
// roll back together, so a voter is never registered without a retrievable
// vote.
func (r *voteRepository) SaveVote(ctx context.Context, vote *domain.Vote, studentID string) (bool, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	queryVoter := `
		INSERT INTO activity_voters (activity_id, student_id)
		VALUES ($1, $2)
		ON CONFLICT (activity_id, student_id) DO NOTHING
	`
	res, err := tx.ExecContext(ctx, queryVoter, vote.ActivityID, studentID)
	if err != nil {
		return false, fmt.Errorf("failed to register voter: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %w", err)
	}
	if affected == 0 {
		return false, nil
	}

	var chooseOne uuid.NullUUID
	if vote.ChooseOne != nil {
		chooseOne = uuid.NullUUID{UUID: *vote.ChooseOne, Valid: true}
	}

	queryVote := `
		INSERT INTO votes (token, activity_id, rule, choose_one, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err = tx.ExecContext(ctx, queryVote, vote.Token, vote.ActivityID, vote.Rule, chooseOne, vote.CreatedAt)
	if err != nil {
		return false, fmt.Errorf("failed to insert vote: %w", err)
	}

	if len(vote.ChooseAll) > 0 {
		queryChoice := `
			INSERT INTO vote_choices (vote_token, option_id, remark, position)
			VALUES ($1, $2, $3, $4)
		`
		stmt, err := tx.PrepareContext(ctx, queryChoice)
		if err != nil {
			return false, fmt.Errorf("failed to prepare choice statement: %w", err)
		}
		defer stmt.Close()

		for i, choice := range vote.ChooseAll {
			if _, err := stmt.ExecContext(ctx, vote.Token, choice.OptionID, choice.Remark, i); err != nil {
				return false, fmt.Errorf("failed to insert choice: %w", err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return true, nil
}

func (r *voteRepository) GetByToken(ctx context.Context, token string) (*domain.Vote, error) {
	// Tokens are UUID strings; anything else cannot match a stored vote.
	if _, err := uuid.Parse(token); err != nil {
		return nil, domain.ErrVoteNotFound
	}

	queryVote := `
		SELECT token, activity_id, rule, choose_one, created_at
		FROM votes
		WHERE token = $1
	`

	var vote domain.Vote
	var chooseOne uuid.NullUUID
	err := r.db.QueryRowContext(ctx, queryVote, token).Scan(
		&vote.Token, &vote.ActivityID, &vote.Rule, &chooseOne, &vote.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrVoteNotFound
		}
		return nil, fmt.Errorf("failed to get vote: %w", err)
	}
	if chooseOne.Valid {
		vote.ChooseOne = &chooseOne.UUID
	}

	if vote.Rule == domain.RuleChooseAll {
		choices, err := r.fetchChoices(ctx, vote.Token)
		if err != nil {
			return nil, err
		}
		vote.ChooseAll = choices
	}

	return &vote, nil
}

func (r *voteRepository) fetchChoices(ctx context.Context, token string) ([]domain.Choice, error) {
	query := `
		SELECT option_id, remark
		FROM vote_choices
		WHERE vote_token = $1
		ORDER BY position
	`
	rows, err := r.db.QueryContext(ctx, query, token)
	if err != nil {
		return nil, fmt.Errorf("failed to get vote choices: %w", err)
	}
	defer rows.Close()

	var choices []domain.Choice
	for rows.Next() {
		var c domain.Choice
		if err := rows.Scan(&c.OptionID, &c.Remark); err != nil {
			return nil, fmt.Errorf("failed to scan choice: %w", err)
		}
		choices = append(choices, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating choices: %w", err)
	}
	return choices, nil
}
