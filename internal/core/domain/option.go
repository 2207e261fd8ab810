package domain

import (
	"time"

	"github.com/google/uuid"
)

// Candidate is a value type embedded in an Option; it has no identity of its
// own.
type Candidate struct {
	Name                string   `json:"name"`
	Department          string   `json:"department,omitempty"`
	College             string   `json:"college,omitempty"`
	AvatarURL           string   `json:"avatar_url,omitempty"`
	PersonalExperiences []string `json:"personal_experiences,omitempty"`
	PoliticalOpinions   []string `json:"political_opinions,omitempty"`
}

// Option is one ballot entry of an activity: a primary candidate plus any
// number of running mates.
type Option struct {
	ID         uuid.UUID   `json:"id"`
	ActivityID uuid.UUID   `json:"activity_id"`
	Label      string      `json:"label,omitempty"`
	Candidate  Candidate   `json:"candidate"`
	Vice       []Candidate `json:"vice,omitempty"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}
