package scheduling

import (
	"github.com/edmarkin/DCM-ScheduleService/pkg/types"
)

// SlotAvailability is one generated slot together with its availability
// verdict for the snapshot of committed intervals it was resolved against
type SlotAvailability struct {
	StartTime       types.TimeString
	DurationMinutes int
	Available       bool
}

// ResolveDay помечает каждый слот-кандидат занятым, если интервал
// [start, start+duration) пересекается хотя бы с одним закоммиченным
// интервалом. Функция чистая и идемпотентная: одинаковый вход даёт
// одинаковый результат.
func ResolveDay(slots []types.TimeString, durationMinutes int, committed []Interval) []SlotAvailability {
	result := make([]SlotAvailability, len(slots))

	for i, start := range slots {
		result[i] = SlotAvailability{
			StartTime:       start,
			DurationMinutes: durationMinutes,
			Available:       IsSlotFree(start, durationMinutes, committed),
		}
	}

	return result
}

// IsSlotFree is the point availability query: true iff a candidate interval
// [start, start+duration) overlaps no committed interval. Used on its own
// when validating a single requested start time at submission.
func IsSlotFree(start types.TimeString, durationMinutes int, committed []Interval) bool {
	startMin := start.Minutes()
	candidate := Interval{StartMin: startMin, EndMin: startMin + durationMinutes}

	for _, interval := range committed {
		if candidate.Overlaps(interval) {
			return false
		}
	}
	return true
}
