package domain

import "errors"

var (
	ErrActivityNotFound  = errors.New("activity not found")
	ErrOptionNotFound    = errors.New("option not found")
	ErrVoteNotFound      = errors.New("vote not found")
	ErrUserNotFound      = errors.New("user not found")
	ErrInvalidActivityID = errors.New("invalid activity id")
	ErrInvalidOptionID   = errors.New("invalid option id")
	ErrVoteNotStarted    = errors.New("voting has not started yet")
	ErrVoteEnded         = errors.New("voting has ended")
	ErrAlreadyVoted      = errors.New("student has already voted")
	ErrRuleMismatch      = errors.New("ballot rule does not match activity rule")
	ErrMissingField      = errors.New("missing required field")
	ErrInvalidOptions    = errors.New("invalid options for this activity")
	ErrInvalidRemark     = errors.New("invalid remark in choose_all ballot")
	ErrInvalidRule       = errors.New("invalid voting rule")
	ErrInvalidDateRange  = errors.New("open_from must be before open_to")
	ErrRuleLocked        = errors.New("rule cannot be changed after votes were cast")
)
