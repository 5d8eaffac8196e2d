package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestWeekOf_MidWeek(t *testing.T) {
	// Среда 19 июня 2024 → неделя с понедельника 17 по воскресенье 23
	week := WeekOf(date(2024, time.June, 19))

	assert.Equal(t, date(2024, time.June, 17), week[0])
	assert.Equal(t, date(2024, time.June, 23), week[6])

	for i := 1; i < 7; i++ {
		assert.Equal(t, week[i-1].AddDate(0, 0, 1), week[i])
	}
}

func TestWeekOf_MondayIsItsOwnWeekStart(t *testing.T) {
	monday := date(2024, time.June, 17)
	week := WeekOf(monday)
	assert.Equal(t, monday, week[0])
}

func TestWeekOf_SundayBelongsToPrecedingMonday(t *testing.T) {
	// Go нумерует воскресенье нулём; проверяем, что оно не открывает
	// новую неделю, а замыкает текущую
	sunday := date(2024, time.June, 23)
	week := WeekOf(sunday)
	assert.Equal(t, date(2024, time.June, 17), week[0])
	assert.Equal(t, sunday, week[6])
}

func TestWeekOf_TimeOfDayIgnored(t *testing.T) {
	late := time.Date(2024, time.June, 19, 23, 45, 0, 0, time.Local)
	week := WeekOf(late)
	require.Equal(t, date(2024, time.June, 17), week[0])
}

func TestFormatWeekRange_SameMonth(t *testing.T) {
	week := WeekOf(date(2025, time.June, 4))
	assert.Equal(t, "2 – 8 June 2025", FormatWeekRange(week))
}

func TestFormatWeekRange_MonthBoundary(t *testing.T) {
	// Неделя 30 июня - 6 июля 2025
	week := WeekOf(date(2025, time.July, 2))
	assert.Equal(t, "30 June – 6 July 2025", FormatWeekRange(week))
}

func TestFormatWeekRange_YearBoundary(t *testing.T) {
	// Неделя 29 декабря 2025 - 4 января 2026
	week := WeekOf(date(2025, time.December, 31))
	assert.Equal(t, "29 December 2025 – 4 January 2026", FormatWeekRange(week))
}
