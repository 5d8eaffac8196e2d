package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWeekday(t *testing.T) {
	cases := map[string]Weekday{
		"Monday":    Monday,
		"mon":       Monday,
		"FRIDAY":    Friday,
		"Fri":       Friday,
		"sunday":    Sunday,
		" Saturday": Saturday,
	}

	for input, want := range cases {
		got, err := ParseWeekday(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got, input)
	}

	_, err := ParseWeekday("someday")
	assert.Error(t, err)
}

func TestWeekdayFromTime_SundayFirstConversion(t *testing.T) {
	// time.Weekday нумерует с воскресенья (Sunday=0), наш Weekday — с
	// понедельника. Преобразование фиксируем явно по всем семи дням.
	assert.Equal(t, Monday, WeekdayFromTime(time.Monday))
	assert.Equal(t, Tuesday, WeekdayFromTime(time.Tuesday))
	assert.Equal(t, Wednesday, WeekdayFromTime(time.Wednesday))
	assert.Equal(t, Thursday, WeekdayFromTime(time.Thursday))
	assert.Equal(t, Friday, WeekdayFromTime(time.Friday))
	assert.Equal(t, Saturday, WeekdayFromTime(time.Saturday))
	assert.Equal(t, Sunday, WeekdayFromTime(time.Sunday))
}

func TestInRange_PlainRange(t *testing.T) {
	// Mon..Fri: суббота и воскресенье вне диапазона
	assert.True(t, Monday.InRange(Monday, Friday))
	assert.True(t, Wednesday.InRange(Monday, Friday))
	assert.True(t, Friday.InRange(Monday, Friday))
	assert.False(t, Saturday.InRange(Monday, Friday))
	assert.False(t, Sunday.InRange(Monday, Friday))
}

func TestInRange_WrappingRange(t *testing.T) {
	// Fri..Mon заворачивается через границу недели
	assert.True(t, Friday.InRange(Friday, Monday))
	assert.True(t, Saturday.InRange(Friday, Monday))
	assert.True(t, Sunday.InRange(Friday, Monday))
	assert.True(t, Monday.InRange(Friday, Monday))
	assert.False(t, Tuesday.InRange(Friday, Monday))
	assert.False(t, Thursday.InRange(Friday, Monday))
}

func TestInRange_SingleDay(t *testing.T) {
	assert.True(t, Wednesday.InRange(Wednesday, Wednesday))
	assert.False(t, Thursday.InRange(Wednesday, Wednesday))
}

func TestProviderSchedule_IsWorkingDay(t *testing.T) {
	schedule := &ProviderSchedule{WorkDaysFrom: Monday, WorkDaysTo: Friday}
	assert.True(t, schedule.IsWorkingDay(Tuesday))
	assert.False(t, schedule.IsWorkingDay(Saturday))
}
