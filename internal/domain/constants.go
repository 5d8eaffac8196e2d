package domain

import "github.com/edmarkin/DCM-ScheduleService/pkg/types"

// Default schedule values
const (
	DefaultSlotDurationMinutes = 30
	DefaultAppointmentFee      = 0.0
)

// Business validation constants
const (
	MinSlotDurationMinutes      = 5
	MaxSlotDurationMinutes      = 480 // 8 hours
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
	MaxBlockReasonLength        = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Whole-day block sentinel boundaries. A block stored as [00:00, 23:59]
// means the entire day is blocked; availability computations collapse it to
// [0, 1440) minutes so it covers every slot.
const (
	WholeDayFrom types.TimeString = "00:00"
	WholeDayTo   types.TimeString = "23:59"
)

// InactiveStatuses список статусов приёмов, не занимающих время врача.
// Используется при фильтрации для подсчёта доступных слотов.
var InactiveStatuses = []AppointmentStatus{
	StatusCancelledByPatient,
	StatusCancelledByClinic,
	StatusNoShow,
}

// ActiveStatuses список статусов приёмов, занимающих время врача
var ActiveStatuses = []AppointmentStatus{
	StatusScheduled,
	StatusCompleted,
}
