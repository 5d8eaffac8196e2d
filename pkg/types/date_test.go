package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateFromTimestamp_PlainDate(t *testing.T) {
	got, err := DateFromTimestamp("2024-03-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.Local), got)
}

func TestDateFromTimestamp_LocalTimestamp(t *testing.T) {
	got, err := DateFromTimestamp("2024-03-01T14:30:00")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.Local), got)
}

func TestDateFromTimestamp_ZoneAwareNearMidnight(t *testing.T) {
	// Дата берётся из локальных компонентов разобранного времени, а не
	// срезом строки до "T": около полуночи срез сдвигает дату.
	restore := time.Local
	time.Local = time.FixedZone("UTC+2", 2*60*60)
	defer func() { time.Local = restore }()

	// 23:30 UTC 29 февраля = 01:30 следующего дня в UTC+2
	got, err := DateFromTimestamp("2024-02-29T23:30:00Z")
	require.NoError(t, err)
	assert.Equal(t, 2024, got.Year())
	assert.Equal(t, time.March, got.Month())
	assert.Equal(t, 1, got.Day())
}

func TestDateFromTimestamp_Unsupported(t *testing.T) {
	_, err := DateFromTimestamp("01.03.2024")
	assert.Error(t, err)
}

func TestDateOnly(t *testing.T) {
	full := time.Date(2024, 3, 1, 18, 45, 12, 999, time.Local)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.Local), DateOnly(full))
}

func TestSameDay(t *testing.T) {
	morning := time.Date(2024, 3, 1, 8, 0, 0, 0, time.Local)
	evening := time.Date(2024, 3, 1, 22, 0, 0, 0, time.Local)
	nextDay := time.Date(2024, 3, 2, 0, 0, 0, 0, time.Local)

	assert.True(t, SameDay(morning, evening))
	assert.False(t, SameDay(evening, nextDay))
}
