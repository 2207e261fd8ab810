package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/nthusa/voting/internal/core/domain"
	"github.com/nthusa/voting/internal/core/ports"
)

type optionRepository struct {
	db *sql.DB
}

func NewOptionRepository(db *sql.DB) ports.OptionRepository {
	return &optionRepository{
		db: db,
	}
}

// Candidate records are stored as JSONB: they are value types with no
// identity, always read and written whole with their option.
func (r *optionRepository) Save(ctx context.Context, option *domain.Option) error {
	candidate, vice, err := marshalCandidates(option)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO options (id, activity_id, label, candidate, vice)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err = r.db.ExecContext(ctx, query, option.ID, option.ActivityID, option.Label, candidate, vice)
	if err != nil {
		return fmt.Errorf("failed to insert option: %w", err)
	}
	return nil
}

func (r *optionRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Option, error) {
	query := `
		SELECT id, activity_id, label, candidate, vice, created_at, updated_at
		FROM options
		WHERE id = $1
	`

	option, err := scanOption(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrOptionNotFound
		}
		return nil, fmt.Errorf("failed to get option: %w", err)
	}
	return option, nil
}

func (r *optionRepository) ListForActivity(ctx context.Context, activityID uuid.UUID) ([]*domain.Option, error) {
	query := `
		SELECT id, activity_id, label, candidate, vice, created_at, updated_at
		FROM options
		WHERE activity_id = $1
		ORDER BY created_at
	`
	rows, err := r.db.QueryContext(ctx, query, activityID)
	if err != nil {
		return nil, fmt.Errorf("failed to list options: %w", err)
	}
	defer rows.Close()

	var options []*domain.Option
	for rows.Next() {
		option, err := scanOption(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan option: %w", err)
		}
		options = append(options, option)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating options: %w", err)
	}
	return options, nil
}

func (r *optionRepository) Update(ctx context.Context, option *domain.Option) error {
	candidate, vice, err := marshalCandidates(option)
	if err != nil {
		return err
	}

	query := `
		UPDATE options
		SET label = $2, candidate = $3, vice = $4, updated_at = NOW()
		WHERE id = $1
	`
	res, err := r.db.ExecContext(ctx, query, option.ID, option.Label, candidate, vice)
	if err != nil {
		return fmt.Errorf("failed to update option: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrOptionNotFound
	}
	return nil
}

func (r *optionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM options WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete option: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrOptionNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOption(row rowScanner) (*domain.Option, error) {
	var option domain.Option
	var candidate, vice []byte
	if err := row.Scan(
		&option.ID, &option.ActivityID, &option.Label,
		&candidate, &vice, &option.CreatedAt, &option.UpdatedAt,
	); err != nil {
		return nil, err
	}

	if err := json.Unmarshal(candidate, &option.Candidate); err != nil {
		return nil, fmt.Errorf("failed to decode candidate: %w", err)
	}
	if err := json.Unmarshal(vice, &option.Vice); err != nil {
		return nil, fmt.Errorf("failed to decode vice candidates: %w", err)
	}
	return &option, nil
}

func marshalCandidates(option *domain.Option) ([]byte, []byte, error) {
	candidate, err := json.Marshal(option.Candidate)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to encode candidate: %w", err)
	}
	viceList := option.Vice
	if viceList == nil {
		viceList = []domain.Candidate{}
	}
	vice, err := json.Marshal(viceList)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to encode vice candidates: %w", err)
	}
	return candidate, vice, nil
}
