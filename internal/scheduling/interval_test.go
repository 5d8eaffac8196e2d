package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/edmarkin/DCM-ScheduleService/internal/domain"
	"github.com/edmarkin/DCM-ScheduleService/pkg/ptr"
)

func interval(from, to string) Interval {
	return NewInterval(mustTime(from), mustTime(to))
}

func TestOverlaps_Symmetry(t *testing.T) {
	cases := []struct {
		a, b Interval
		want bool
	}{
		{interval("09:00", "10:00"), interval("09:30", "10:30"), true},
		{interval("09:00", "10:00"), interval("10:00", "11:00"), false}, // впритык
		{interval("09:00", "12:00"), interval("10:00", "10:30"), true},  // вложенный
		{interval("09:00", "09:30"), interval("11:00", "11:30"), false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.a.Overlaps(tc.b), "%v vs %v", tc.a, tc.b)
		assert.Equal(t, tc.want, tc.b.Overlaps(tc.a), "symmetry %v vs %v", tc.b, tc.a)
	}
}

func TestOverlaps_SelfOverlap(t *testing.T) {
	i := interval("09:00", "09:30")
	assert.True(t, i.Overlaps(i))
}

func TestOverlaps_AbuttingNeverOverlap(t *testing.T) {
	a := interval("09:00", "09:30")
	b := interval("09:30", "10:00")
	assert.False(t, a.Overlaps(b))
	assert.False(t, b.Overlaps(a))
}

func TestBlockInterval_WholeDay(t *testing.T) {
	block := &domain.Block{
		ProviderID: 1,
		BlockDate:  time.Date(2024, 3, 1, 0, 0, 0, 0, time.Local),
		TimeFrom:   domain.WholeDayFrom,
		TimeTo:     domain.WholeDayTo,
	}

	got := BlockInterval(block)
	assert.Equal(t, Interval{StartMin: 0, EndMin: 1440}, got)

	// Целодневная блокировка накрывает любой слот, включая последний
	assert.True(t, got.Overlaps(interval("23:30", "23:59")))
	assert.True(t, got.Overlaps(interval("00:00", "00:30")))
}

func TestCollectCommitted_SkipsInactiveAppointments(t *testing.T) {
	appointments := []*domain.Appointment{
		{StartTime: "09:00", DurationMinutes: 30, Status: domain.StatusScheduled},
		{StartTime: "10:00", DurationMinutes: 30, Status: domain.StatusCancelledByPatient},
		{StartTime: "11:00", DurationMinutes: 30, Status: domain.StatusNoShow},
	}
	blocks := []*domain.Block{
		{TimeFrom: "13:00", TimeTo: "14:00", Reason: ptr.Ptr("lunch")},
	}

	committed := CollectCommitted(appointments, blocks)

	assert.Equal(t, []Interval{
		{StartMin: 9 * 60, EndMin: 9*60 + 30},
		{StartMin: 13 * 60, EndMin: 14 * 60},
	}, committed)
}
