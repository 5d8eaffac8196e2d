package domain

import (
	"time"

	"github.com/edmarkin/DCM-ScheduleService/pkg/types"
)

// ProviderSchedule is a provider's recurring weekly availability template:
// working-day range, daily open/close time, slot duration and per-slot fee.
// One record per provider, changed only by administrative update; the
// scheduling engine reads it and never mutates it.
type ProviderSchedule struct {
	ID                  int64
	ProviderID          int64
	WorkDaysFrom        Weekday
	WorkDaysTo          Weekday
	WorkTimeFrom        types.TimeString
	WorkTimeTo          types.TimeString
	SlotDurationMinutes int
	AppointmentFee      float64
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// IsWorkingDay reports whether the provider works on the given day.
// The working-day range is circular over the week, so Friday..Monday covers
// the weekend.
func (s *ProviderSchedule) IsWorkingDay(day Weekday) bool {
	return day.InRange(s.WorkDaysFrom, s.WorkDaysTo)
}

// IsDegenerate returns true for schedules that can produce no slots
// (non-positive duration or open time at/after close time). A degenerate
// schedule is a valid "no availability" state, not an error.
func (s *ProviderSchedule) IsDegenerate() bool {
	return s.SlotDurationMinutes <= 0 || !s.WorkTimeFrom.IsBefore(s.WorkTimeTo)
}
