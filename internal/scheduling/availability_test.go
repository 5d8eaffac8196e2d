package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edmarkin/DCM-ScheduleService/internal/domain"
)

func TestResolveDay_BookedSlotUnavailable(t *testing.T) {
	date := time.Date(2024, 3, 1, 0, 0, 0, 0, time.Local)
	appointments := []*domain.Appointment{
		{
			ProviderID:      1,
			AppointmentDate: date,
			StartTime:       "09:00",
			DurationMinutes: 30,
			Status:          domain.StatusScheduled,
		},
	}

	slots := GenerateSlots(mustTime("09:00"), mustTime("12:00"), 30)
	result := ResolveDay(slots, 30, CollectCommitted(appointments, nil))

	require.Len(t, result, 6)
	assert.Equal(t, "09:00", result[0].StartTime.String())
	assert.False(t, result[0].Available, "занятый слот")
	// Слот 09:30 граничит с приёмом 09:00-09:30 впритык и остаётся свободным
	assert.Equal(t, "09:30", result[1].StartTime.String())
	assert.True(t, result[1].Available)
}

func TestResolveDay_CancelledAppointmentFreesSlot(t *testing.T) {
	appointments := []*domain.Appointment{
		{StartTime: "09:00", DurationMinutes: 30, Status: domain.StatusCancelledByClinic},
	}

	result := ResolveDay(
		GenerateSlots(mustTime("09:00"), mustTime("10:00"), 30),
		30,
		CollectCommitted(appointments, nil),
	)

	for _, slot := range result {
		assert.True(t, slot.Available, "slot %s", slot.StartTime)
	}
}

func TestResolveDay_WholeDayBlock(t *testing.T) {
	blocks := []*domain.Block{
		{TimeFrom: domain.WholeDayFrom, TimeTo: domain.WholeDayTo},
	}

	result := ResolveDay(
		GenerateSlots(mustTime("09:00"), mustTime("18:00"), 30),
		30,
		CollectCommitted(nil, blocks),
	)

	require.NotEmpty(t, result)
	for _, slot := range result {
		assert.False(t, slot.Available, "slot %s", slot.StartTime)
	}
}

func TestResolveDay_PartialBlock(t *testing.T) {
	// Блокировка 13:00-14:00 (обед) выбивает два получасовых слота
	blocks := []*domain.Block{
		{TimeFrom: "13:00", TimeTo: "14:00"},
	}

	result := ResolveDay(
		GenerateSlots(mustTime("12:00"), mustTime("15:00"), 30),
		30,
		CollectCommitted(nil, blocks),
	)

	byStart := map[string]bool{}
	for _, slot := range result {
		byStart[slot.StartTime.String()] = slot.Available
	}

	assert.True(t, byStart["12:00"])
	assert.True(t, byStart["12:30"])
	assert.False(t, byStart["13:00"])
	assert.False(t, byStart["13:30"])
	assert.True(t, byStart["14:00"])
	assert.True(t, byStart["14:30"])
}

func TestResolveDay_Idempotent(t *testing.T) {
	appointments := []*domain.Appointment{
		{StartTime: "10:00", DurationMinutes: 45, Status: domain.StatusScheduled},
	}
	committed := CollectCommitted(appointments, nil)
	slots := GenerateSlots(mustTime("09:00"), mustTime("13:00"), 45)

	first := ResolveDay(slots, 45, committed)
	second := ResolveDay(slots, 45, committed)
	assert.Equal(t, first, second)
}

func TestIsSlotFree_PointQuery(t *testing.T) {
	committed := []Interval{interval("10:30", "11:00")}

	// Предлагаемая блокировка 10:00-11:00 пересекается с приёмом 10:30-11:00
	assert.False(t, IsSlotFree(mustTime("10:00"), 60, committed))
	assert.True(t, IsSlotFree(mustTime("09:00"), 60, committed))
	// Впритык к началу приёма — свободно
	assert.True(t, IsSlotFree(mustTime("09:30"), 60, committed))
}
