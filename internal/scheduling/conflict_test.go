package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edmarkin/DCM-ScheduleService/internal/domain"
)

func TestFindConflict_RejectsOverlap(t *testing.T) {
	// Предлагаемая блокировка 10:00-11:00 при существующем приёме 10:30-11:00
	appointments := []*domain.Appointment{
		{StartTime: "10:30", DurationMinutes: 30, Status: domain.StatusScheduled},
	}
	committed := CollectCommitted(appointments, nil)

	conflict := FindConflict(interval("10:00", "11:00"), committed)

	require.NotNil(t, conflict)
	// Границы конфликтующего интервала возвращаются для сообщения пользователю
	assert.Equal(t, "10:30", conflict.Existing.From().String())
	assert.Equal(t, "11:00", conflict.Existing.To().String())
}

func TestFindConflict_AcceptsFreeInterval(t *testing.T) {
	committed := []Interval{interval("09:00", "09:30"), interval("14:00", "15:00")}

	assert.Nil(t, FindConflict(interval("10:00", "11:00"), committed))
	// Впритык к обоим соседям — принимается
	assert.Nil(t, FindConflict(interval("09:30", "10:00"), committed))
	assert.Nil(t, FindConflict(interval("13:00", "14:00"), committed))
}

func TestFindConflict_IgnoresCancelledAppointments(t *testing.T) {
	appointments := []*domain.Appointment{
		{StartTime: "10:00", DurationMinutes: 60, Status: domain.StatusCancelledByPatient},
	}
	committed := CollectCommitted(appointments, nil)

	assert.Nil(t, FindConflict(interval("10:00", "11:00"), committed))
}

func TestFindConflict_AgainstWholeDayBlock(t *testing.T) {
	blocks := []*domain.Block{
		{TimeFrom: domain.WholeDayFrom, TimeTo: domain.WholeDayTo},
	}
	committed := CollectCommitted(nil, blocks)

	conflict := FindConflict(interval("16:00", "16:30"), committed)
	require.NotNil(t, conflict)
	assert.Equal(t, "00:00", conflict.Existing.From().String())
}

func TestFindConflict_EmptyProposedAccepted(t *testing.T) {
	committed := []Interval{interval("09:00", "18:00")}
	assert.Nil(t, FindConflict(interval("10:00", "10:00"), committed))
}
