// Package scheduling implements the pure availability and interval-conflict
// engine: slot generation from a provider's work schedule, half-open overlap
// testing against committed intervals, and week-window computation for the
// calendar. Everything here is a synchronous function of its arguments with
// no I/O and no hidden state; answers are consistent only for the snapshot
// of committed intervals passed in.
package scheduling

import (
	"github.com/edmarkin/DCM-ScheduleService/internal/domain"
	"github.com/edmarkin/DCM-ScheduleService/pkg/types"
)

// minutesPerDay верхняя граница целодневного интервала [0, 1440)
const minutesPerDay = 24 * 60

// Interval is a half-open [start, end) time range within one day, expressed
// in minutes since midnight
type Interval struct {
	StartMin int
	EndMin   int
}

// NewInterval builds an interval from two wall-clock times
func NewInterval(from, to types.TimeString) Interval {
	return Interval{StartMin: from.Minutes(), EndMin: to.Minutes()}
}

// From returns the start boundary as a TimeString
func (i Interval) From() types.TimeString {
	return types.NewTimeStringFromMinutes(i.StartMin)
}

// To returns the end boundary as a TimeString.
// The whole-day interval reports its stored sentinel end 23:59.
func (i Interval) To() types.TimeString {
	if i.EndMin >= minutesPerDay {
		return domain.WholeDayTo
	}
	return types.NewTimeStringFromMinutes(i.EndMin)
}

// IsEmpty returns true for intervals that occupy no time
func (i Interval) IsEmpty() bool {
	return i.EndMin <= i.StartMin
}

// Overlaps reports whether two half-open intervals share any time.
// Строгие неравенства: интервалы, граничащие точно по краю
// (A.end == B.start), пересечением НЕ считаются — слоты впритык допустимы.
func (i Interval) Overlaps(other Interval) bool {
	return i.StartMin < other.EndMin && other.StartMin < i.EndMin
}

// AppointmentInterval returns the interval occupied by an appointment
func AppointmentInterval(a *domain.Appointment) Interval {
	start := a.StartTime.Minutes()
	return Interval{StartMin: start, EndMin: start + a.DurationMinutes}
}

// BlockInterval returns the interval occupied by a block.
// The whole-day sentinel [00:00, 23:59] collapses to [0, 1440) so that it
// covers every slot of the day, including one ending exactly at 23:59+.
func BlockInterval(b *domain.Block) Interval {
	if b.IsWholeDay() {
		return Interval{StartMin: 0, EndMin: minutesPerDay}
	}
	return NewInterval(b.TimeFrom, b.TimeTo)
}

// CollectCommitted builds the committed-interval set for one provider and one
// date: every active appointment plus every block. Cancelled appointments and
// no-shows are dropped here and never reach overlap computations.
func CollectCommitted(appointments []*domain.Appointment, blocks []*domain.Block) []Interval {
	committed := make([]Interval, 0, len(appointments)+len(blocks))

	for _, a := range appointments {
		if !a.IsActive() {
			continue
		}
		committed = append(committed, AppointmentInterval(a))
	}

	for _, b := range blocks {
		committed = append(committed, BlockInterval(b))
	}

	return committed
}
