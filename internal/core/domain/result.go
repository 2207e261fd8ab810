package domain

import (
	"time"

	"github.com/google/uuid"
)

// OptionTally is one aggregated row of an activity's results. Remark is empty
// for choose_one activities; for choose_all there is one row per
// (option, remark) pair.
type OptionTally struct {
	ActivityID    uuid.UUID `json:"activity_id"`
	OptionID      uuid.UUID `json:"option_id"`
	Remark        Remark    `json:"remark,omitempty"`
	VoteCount     int64     `json:"vote_count"`
	LastUpdatedAt time.Time `json:"last_updated_at"`
}
