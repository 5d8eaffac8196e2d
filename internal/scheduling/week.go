package scheduling

import (
	"fmt"
	"time"

	"github.com/edmarkin/DCM-ScheduleService/internal/domain"
	"github.com/edmarkin/DCM-ScheduleService/pkg/types"
)

// WeekOf returns the Monday-aligned 7-day span containing date,
// Monday..Sunday, each entry truncated to midnight.
func WeekOf(date time.Time) [7]time.Time {
	day := types.DateOnly(date)

	// Индекс дня внутри ISO-недели (Monday=0..Sunday=6). Go нумерует дни
	// с воскресенья, поэтому преобразование выполняется явно через
	// domain.Weekday, а не арифметикой по time.Weekday.
	offset := int(domain.WeekdayOfDate(day))
	monday := day.AddDate(0, 0, -offset)

	var week [7]time.Time
	for i := range week {
		week[i] = monday.AddDate(0, 0, i)
	}
	return week
}

// FormatWeekRange renders a human label spanning the first to last day of the
// week, collapsing repeated month/year parts:
//
//	"2 – 8 June 2025"                   same month
//	"28 June – 3 July 2025"             month boundary
//	"29 December 2025 – 4 January 2026" year boundary
func FormatWeekRange(week [7]time.Time) string {
	first, last := week[0], week[6]

	switch {
	case first.Year() != last.Year():
		return fmt.Sprintf("%d %s %d – %d %s %d",
			first.Day(), first.Month(), first.Year(),
			last.Day(), last.Month(), last.Year())
	case first.Month() != last.Month():
		return fmt.Sprintf("%d %s – %d %s %d",
			first.Day(), first.Month(),
			last.Day(), last.Month(), last.Year())
	default:
		return fmt.Sprintf("%d – %d %s %d",
			first.Day(), last.Day(), last.Month(), last.Year())
	}
}
