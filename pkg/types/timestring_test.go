package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString_Strict(t *testing.T) {
	got, err := NewTimeStringFromString("09:30")
	require.NoError(t, err)
	assert.Equal(t, TimeString("09:30"), got)

	// Однозначный час нормализуется
	got, err = NewTimeStringFromString("9:05")
	require.NoError(t, err)
	assert.Equal(t, TimeString("09:05"), got)

	for _, bad := range []string{"", "10", "10:60", "24:00", "-1:00", "aa:bb", "10:00:00"} {
		_, err := NewTimeStringFromString(bad)
		assert.ErrorIs(t, err, ErrInvalidTimeString, "input %q", bad)
	}
}

func TestParseTimeLenient(t *testing.T) {
	cases := map[string]TimeString{
		"09:00":    "09:00",
		"9:0":      "09:00",
		"9:5":      "09:05",
		"09:00:00": "09:00", // секунды отбрасываются
		"14:30:59": "14:30",
		"7:45pm":   "07:45", // мусор в группе минут вычищается
		"garbage":  "00:00",
		"":         "00:00",
		"25:10":    "00:10", // невосстановимый час деградирует к 00
		"10:99":    "10:00", // невосстановимые минуты деградируют к 00
	}

	for input, want := range cases {
		assert.Equal(t, want, ParseTimeLenient(input), "input %q", input)
	}
}

func TestTimeString_Compare(t *testing.T) {
	a := TimeString("09:00")
	b := TimeString("09:30")

	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 1, b.Compare(a))
	assert.Equal(t, 0, a.Compare(a))
	assert.True(t, a.IsBefore(b))
	assert.True(t, b.IsAfter(a))
	assert.False(t, a.IsAfter(a))
}

func TestTimeString_AddMinutes(t *testing.T) {
	assert.Equal(t, TimeString("10:15"), TimeString("09:45").AddMinutes(30))
	// Переход через полночь заворачивается по модулю суток;
	// отслеживание смены дня — забота вызывающего
	assert.Equal(t, TimeString("00:30"), TimeString("23:45").AddMinutes(45))
	assert.Equal(t, TimeString("23:30"), TimeString("00:15").AddMinutes(-45))
}

func TestTimeString_Minutes(t *testing.T) {
	assert.Equal(t, 0, TimeString("00:00").Minutes())
	assert.Equal(t, 9*60+30, TimeString("09:30").Minutes())
	assert.Equal(t, 23*60+59, TimeString("23:59").Minutes())
	// Некорректное значение деградирует к нулю, не паникует
	assert.Equal(t, 0, TimeString("bogus").Minutes())
}

func TestTimeString_Validate(t *testing.T) {
	assert.NoError(t, TimeString("08:05").Validate())
	// Неканоничная форма отвергается, даже если парсится
	assert.Error(t, TimeString("8:05").Validate())
	assert.Error(t, TimeString("").Validate())
}
