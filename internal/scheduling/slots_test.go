package scheduling

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edmarkin/DCM-ScheduleService/pkg/types"
)

func mustTime(s string) types.TimeString {
	t, err := types.NewTimeStringFromString(s)
	if err != nil {
		panic(fmt.Sprintf("bad test time %q: %v", s, err))
	}
	return t
}

func slotStrings(slots []types.TimeString) []string {
	out := make([]string, len(slots))
	for i, s := range slots {
		out[i] = s.String()
	}
	return out
}

func TestGenerateSlots_Basic(t *testing.T) {
	slots := GenerateSlots(mustTime("09:00"), mustTime("12:00"), 30)

	// 12:00 никогда не становится стартом: последний допустимый старт 11:30,
	// так как 11:30+30 = 12:00 <= close
	assert.Equal(t,
		[]string{"09:00", "09:30", "10:00", "10:30", "11:00", "11:30"},
		slotStrings(slots))
}

func TestGenerateSlots_TrailingPartialPeriodDropped(t *testing.T) {
	// Окно 09:00-10:50 не делится на 30 минут нацело: хвост 10:30-10:50
	// короче слота и молча отбрасывается
	slots := GenerateSlots(mustTime("09:00"), mustTime("10:50"), 30)
	assert.Equal(t, []string{"09:00", "09:30", "10:00"}, slotStrings(slots))
}

func TestGenerateSlots_SlotCount(t *testing.T) {
	// Для duration > 0 и open < close: ровно floor((close-open)/duration)
	// слотов, и конец последнего не выходит за close
	cases := []struct {
		open, close string
		duration    int
	}{
		{"09:00", "12:00", 30},
		{"08:00", "17:00", 45},
		{"10:15", "11:00", 20},
		{"00:00", "23:59", 60},
	}

	for _, tc := range cases {
		slots := GenerateSlots(mustTime(tc.open), mustTime(tc.close), tc.duration)

		window := mustTime(tc.close).Minutes() - mustTime(tc.open).Minutes()
		require.Len(t, slots, window/tc.duration, "open=%s close=%s d=%d", tc.open, tc.close, tc.duration)

		for _, s := range slots {
			end := s.Minutes() + tc.duration
			assert.LessOrEqual(t, end, mustTime(tc.close).Minutes())
		}
	}
}

func TestGenerateSlots_DegenerateSchedules(t *testing.T) {
	// Вырожденное расписание — пустой список, не ошибка
	assert.Empty(t, GenerateSlots(mustTime("09:00"), mustTime("12:00"), 0))
	assert.Empty(t, GenerateSlots(mustTime("09:00"), mustTime("12:00"), -15))
	assert.Empty(t, GenerateSlots(mustTime("12:00"), mustTime("09:00"), 30))
	assert.Empty(t, GenerateSlots(mustTime("09:00"), mustTime("09:00"), 30))
}

func TestGenerateSlots_WindowShorterThanSlot(t *testing.T) {
	assert.Empty(t, GenerateSlots(mustTime("09:00"), mustTime("09:20"), 30))
}

func TestGenerateSlots_Restartable(t *testing.T) {
	// Чистая функция: повторный вызов с теми же аргументами даёт тот же результат
	first := GenerateSlots(mustTime("09:00"), mustTime("18:00"), 25)
	second := GenerateSlots(mustTime("09:00"), mustTime("18:00"), 25)
	assert.Equal(t, first, second)
}
