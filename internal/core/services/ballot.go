package services

import (
	"github.com/google/uuid"
	"github.com/nthusa/voting/internal/core/domain"
	"github.com/nthusa/voting/internal/core/ports"
)

// ValidateBallot decides accept/reject for a submitted ballot against the
// activity's rule and option roster. It is a pure function of its inputs and
// performs no I/O.
//
// choose_one requires exactly one option id that belongs to the activity.
// choose_all requires a stance on every option of the activity: the submitted
// option-id set must equal the activity's option-id set, with no duplicates,
// and every remark must be one of the canonical values.
func ValidateBallot(activity *domain.Activity, input ports.CastVoteInput) error {
	if !input.Rule.Valid() {
		return domain.ErrInvalidRule
	}
	if input.Rule != activity.Rule {
		return domain.ErrRuleMismatch
	}

	switch activity.Rule {
	case domain.RuleChooseOne:
		if input.ChooseOne == "" {
			return domain.ErrMissingField
		}
		optionID, err := uuid.Parse(input.ChooseOne)
		if err != nil {
			return domain.ErrInvalidOptions
		}
		if !activity.HasOption(optionID) {
			return domain.ErrInvalidOptions
		}

	case domain.RuleChooseAll:
		if len(input.ChooseAll) != len(activity.Options) {
			return domain.ErrInvalidOptions
		}
		seen := make(map[uuid.UUID]bool, len(activity.Options))
		for _, choice := range input.ChooseAll {
			if !activity.HasOption(choice.OptionID) || seen[choice.OptionID] {
				return domain.ErrInvalidOptions
			}
			if !choice.Remark.Valid() {
				return domain.ErrInvalidRemark
			}
			seen[choice.OptionID] = true
		}
	}

	return nil
}
