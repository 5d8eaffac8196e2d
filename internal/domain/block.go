package domain

import (
	"time"

	"github.com/edmarkin/DCM-ScheduleService/pkg/types"
)

// Block represents an administratively blocked interval in a provider's day:
// lunch, surgery, training, leave. A block has no patient and is always
// active; removing it is a plain delete.
type Block struct {
	ID         int64
	ProviderID int64
	BlockDate  time.Time
	TimeFrom   types.TimeString
	TimeTo     types.TimeString
	Reason     *string

	CreatedAt time.Time
}

// IsWholeDay returns true for the whole-day sentinel [00:00, 23:59]
func (b *Block) IsWholeDay() bool {
	return b.TimeFrom == WholeDayFrom && b.TimeTo == WholeDayTo
}
