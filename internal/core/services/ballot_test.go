package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/nthusa/voting/internal/core/domain"
	"github.com/nthusa/voting/internal/core/ports"
)

func TestValidateBallotChooseOne(t *testing.T) {
	optionA := uuid.New()
	optionB := uuid.New()
	activity := &domain.Activity{
		ID:      uuid.New(),
		Rule:    domain.RuleChooseOne,
		Options: []uuid.UUID{optionA, optionB},
	}

	tests := []struct {
		name    string
		input   ports.CastVoteInput
		wantErr error
	}{
		{
			name:  "valid single choice",
			input: ports.CastVoteInput{Rule: domain.RuleChooseOne, ChooseOne: optionA.String()},
		},
		{
			name:    "missing option id",
			input:   ports.CastVoteInput{Rule: domain.RuleChooseOne},
			wantErr: domain.ErrMissingField,
		},
		{
			name:    "malformed option id",
			input:   ports.CastVoteInput{Rule: domain.RuleChooseOne, ChooseOne: "not-a-uuid"},
			wantErr: domain.ErrInvalidOptions,
		},
		{
			name:    "option from another activity",
			input:   ports.CastVoteInput{Rule: domain.RuleChooseOne, ChooseOne: uuid.NewString()},
			wantErr: domain.ErrInvalidOptions,
		},
		{
			name:    "unknown rule",
			input:   ports.CastVoteInput{Rule: "choose_some", ChooseOne: optionA.String()},
			wantErr: domain.ErrInvalidRule,
		},
		{
			name: "rule does not match activity",
			input: ports.CastVoteInput{
				Rule:      domain.RuleChooseAll,
				ChooseAll: []domain.Choice{{OptionID: optionA, Remark: domain.RemarkSupport}},
			},
			wantErr: domain.ErrRuleMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateBallot(activity, tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateBallotChooseAll(t *testing.T) {
	optionA := uuid.New()
	optionB := uuid.New()
	activity := &domain.Activity{
		ID:      uuid.New(),
		Rule:    domain.RuleChooseAll,
		Options: []uuid.UUID{optionA, optionB},
	}

	tests := []struct {
		name    string
		choices []domain.Choice
		wantErr error
	}{
		{
			name: "stance on every option",
			choices: []domain.Choice{
				{OptionID: optionA, Remark: domain.RemarkSupport},
				{OptionID: optionB, Remark: domain.RemarkOppose},
			},
		},
		{
			name: "order does not matter",
			choices: []domain.Choice{
				{OptionID: optionB, Remark: domain.RemarkNoOpinion},
				{OptionID: optionA, Remark: domain.RemarkNoOpinion},
			},
		},
		{
			name: "missing an option",
			choices: []domain.Choice{
				{OptionID: optionA, Remark: domain.RemarkSupport},
			},
			wantErr: domain.ErrInvalidOptions,
		},
		{
			name: "duplicate option",
			choices: []domain.Choice{
				{OptionID: optionA, Remark: domain.RemarkSupport},
				{OptionID: optionA, Remark: domain.RemarkOppose},
			},
			wantErr: domain.ErrInvalidOptions,
		},
		{
			name: "stance on a foreign option",
			choices: []domain.Choice{
				{OptionID: optionA, Remark: domain.RemarkSupport},
				{OptionID: uuid.New(), Remark: domain.RemarkOppose},
			},
			wantErr: domain.ErrInvalidOptions,
		},
		{
			name: "unknown remark",
			choices: []domain.Choice{
				{OptionID: optionA, Remark: "abstain"},
				{OptionID: optionB, Remark: domain.RemarkSupport},
			},
			wantErr: domain.ErrInvalidRemark,
		},
		{
			name:    "empty ballot",
			choices: nil,
			wantErr: domain.ErrInvalidOptions,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := ports.CastVoteInput{Rule: domain.RuleChooseAll, ChooseAll: tt.choices}
			err := ValidateBallot(activity, input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateBallotOptionlessChooseAll(t *testing.T) {
	// An activity with no options accepts only the empty choose_all ballot.
	activity := &domain.Activity{ID: uuid.New(), Rule: domain.RuleChooseAll}

	err := ValidateBallot(activity, ports.CastVoteInput{Rule: domain.RuleChooseAll})
	assert.NoError(t, err)

	err = ValidateBallot(activity, ports.CastVoteInput{
		Rule:      domain.RuleChooseAll,
		ChooseAll: []domain.Choice{{OptionID: uuid.New(), Remark: domain.RemarkSupport}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidOptions)
}
