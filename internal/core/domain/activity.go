package domain

import (
	"time"

	"github.com/google/uuid"
)

type Rule string

const (
	RuleChooseOne Rule = "choose_one"
	RuleChooseAll Rule = "choose_all"
)

func (r Rule) Valid() bool {
	return r == RuleChooseOne || r == RuleChooseAll
}

type ActivityStatus string

const (
	StatusUpcoming ActivityStatus = "upcoming"
	StatusActive   ActivityStatus = "active"
	StatusEnded    ActivityStatus = "ended"
)

// Activity is a single election: a set of options voted on under one rule
// within a time window. Voters holds the student ids that already cast a
// ballot; it is the only place identity and participation are linked and is
// never serialized to clients.
type Activity struct {
	ID          uuid.UUID   `json:"id"`
	Name        string      `json:"name"`
	Type        string      `json:"type"`
	Description string      `json:"description,omitempty"`
	Rule        Rule        `json:"rule"`
	OpenFrom    time.Time   `json:"open_from"`
	OpenTo      time.Time   `json:"open_to"`
	Options     []uuid.UUID `json:"options"`
	Voters      []string    `json:"-"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

func (a *Activity) HasVoted(studentID string) bool {
	for _, v := range a.Voters {
		if v == studentID {
			return true
		}
	}
	return false
}

func (a *Activity) HasOption(optionID uuid.UUID) bool {
	for _, id := range a.Options {
		if id == optionID {
			return true
		}
	}
	return false
}

// Status reports where now falls relative to the voting window. Both window
// bounds are inclusive.
func (a *Activity) Status(now time.Time) ActivityStatus {
	switch {
	case now.Before(a.OpenFrom):
		return StatusUpcoming
	case now.After(a.OpenTo):
		return StatusEnded
	default:
		return StatusActive
	}
}
