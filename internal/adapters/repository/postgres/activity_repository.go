package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/nthusa/voting/internal/core/domain"
	"github.com/nthusa/voting/internal/core/ports"
)

type activityRepository struct {
	db *sql.DB
}

func NewActivityRepository(db *sql.DB) ports.ActivityRepository {
	return &activityRepository{
		db: db,
	}
}

func (r *activityRepository) Save(ctx context.Context, activity *domain.Activity) error {
	query := `
		INSERT INTO activities (id, name, type, description, rule, open_from, open_to)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.ExecContext(ctx, query,
		activity.ID, activity.Name, activity.Type, activity.Description,
		activity.Rule, activity.OpenFrom, activity.OpenTo,
	)
	if err != nil {
		return fmt.Errorf("failed to insert activity: %w", err)
	}
	return nil
}

func (r *activityRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Activity, error) {
	query := `
		SELECT id, name, type, description, rule, open_from, open_to, created_at, updated_at
		FROM activities
		WHERE id = $1
	`

	var activity domain.Activity
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&activity.ID, &activity.Name, &activity.Type, &activity.Description,
		&activity.Rule, &activity.OpenFrom, &activity.OpenTo,
		&activity.CreatedAt, &activity.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrActivityNotFound
		}
		return nil, fmt.Errorf("failed to get activity: %w", err)
	}

	options, err := r.fetchOptionIDs(ctx, activity.ID)
	if err != nil {
		return nil, err
	}
	activity.Options = options

	voters, err := r.fetchVoters(ctx, activity.ID)
	if err != nil {
		return nil, err
	}
	activity.Voters = voters

	return &activity, nil
}

func (r *activityRepository) GetAll(ctx context.Context) ([]*domain.Activity, error) {
	query := `
		SELECT id, name, type, description, rule, open_from, open_to, created_at, updated_at
		FROM activities
		ORDER BY open_from DESC
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get all activities: %w", err)
	}
	defer rows.Close()

	var activities []*domain.Activity
	for rows.Next() {
		var activity domain.Activity
		if err := rows.Scan(
			&activity.ID, &activity.Name, &activity.Type, &activity.Description,
			&activity.Rule, &activity.OpenFrom, &activity.OpenTo,
			&activity.CreatedAt, &activity.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan activity: %w", err)
		}

		options, err := r.fetchOptionIDs(ctx, activity.ID)
		if err != nil {
			return nil, err
		}
		activity.Options = options

		voters, err := r.fetchVoters(ctx, activity.ID)
		if err != nil {
			return nil, err
		}
		activity.Voters = voters

		activities = append(activities, &activity)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating activities: %w", err)
	}
	return activities, nil
}

func (r *activityRepository) Update(ctx context.Context, activity *domain.Activity) error {
	query := `
		UPDATE activities
		SET name = $2, type = $3, description = $4, rule = $5,
		    open_from = $6, open_to = $7, updated_at = NOW()
		WHERE id = $1
	`
	res, err := r.db.ExecContext(ctx, query,
		activity.ID, activity.Name, activity.Type, activity.Description,
		activity.Rule, activity.OpenFrom, activity.OpenTo,
	)
	if err != nil {
		return fmt.Errorf("failed to update activity: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrActivityNotFound
	}
	return nil
}

// Delete removes the activity; its options and voter rows go with it via
// ON DELETE CASCADE. Vote records have no foreign key on purpose and stay.
func (r *activityRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM activities WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete activity: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrActivityNotFound
	}
	return nil
}

func (r *activityRepository) fetchOptionIDs(ctx context.Context, activityID uuid.UUID) ([]uuid.UUID, error) {
	query := `
		SELECT id
		FROM options
		WHERE activity_id = $1
		ORDER BY created_at
	`
	rows, err := r.db.QueryContext(ctx, query, activityID)
	if err != nil {
		return nil, fmt.Errorf("failed to get activity options: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan option id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating option ids: %w", err)
	}
	return ids, nil
}

func (r *activityRepository) fetchVoters(ctx context.Context, activityID uuid.UUID) ([]string, error) {
	query := `
		SELECT student_id
		FROM activity_voters
		WHERE activity_id = $1
	`
	rows, err := r.db.QueryContext(ctx, query, activityID)
	if err != nil {
		return nil, fmt.Errorf("failed to get activity voters: %w", err)
	}
	defer rows.Close()

	var voters []string
	for rows.Next() {
		var studentID string
		if err := rows.Scan(&studentID); err != nil {
			return nil, fmt.Errorf("failed to scan voter: %w", err)
		}
		voters = append(voters, studentID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating voters: %w", err)
	}
	return voters, nil
}
