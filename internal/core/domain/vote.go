package domain

import (
	"time"

	"github.com/google/uuid"
)

type Remark string

const (
	RemarkSupport   Remark = "support"
	RemarkOppose    Remark = "oppose"
	RemarkNoOpinion Remark = "no-opinion"
)

func (r Remark) Valid() bool {
	return r == RemarkSupport || r == RemarkOppose || r == RemarkNoOpinion
}

// Choice is one entry of a choose_all ballot: a stance on a single option.
type Choice struct {
	OptionID uuid.UUID `json:"option_id"`
	Remark   Remark    `json:"remark"`
}

// Vote is an anonymized, immutable ballot record. The random token is the
// only handle to it; no field identifies the student who cast it.
type Vote struct {
	Token      string     `json:"token"`
	ActivityID uuid.UUID  `json:"activity_id"`
	Rule       Rule       `json:"rule"`
	ChooseOne  *uuid.UUID `json:"choose_one,omitempty"`
	ChooseAll  []Choice   `json:"choose_all,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}
