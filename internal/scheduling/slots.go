package scheduling

import (
	"github.com/edmarkin/DCM-ScheduleService/internal/domain"
	"github.com/edmarkin/DCM-ScheduleService/pkg/types"
)

// GenerateSlots возвращает упорядоченный список времён начала слотов для
// рабочего дня [open, close) с фиксированным шагом durationMinutes.
//
// Слот попадает в результат, только если целиком помещается до закрытия:
// последний допустимый старт t удовлетворяет t+duration <= close. Неполный
// хвост короче одного слота молча отбрасывается и никогда не выдаётся как
// укороченный слот.
//
// Вырожденное расписание (duration <= 0 или open >= close) даёт пустой
// список. Это штатный результат "нет доступных слотов", а не ошибка —
// вызывающий обязан трактовать его как полную недоступность дня.
func GenerateSlots(open, close types.TimeString, durationMinutes int) []types.TimeString {
	slots := make([]types.TimeString, 0)

	if durationMinutes <= 0 {
		return slots
	}

	openMin := open.Minutes()
	closeMin := close.Minutes()

	for start := openMin; start+durationMinutes <= closeMin; start += durationMinutes {
		slots = append(slots, types.NewTimeStringFromMinutes(start))
	}

	return slots
}

// GenerateScheduleSlots генерирует слоты по расписанию врача
func GenerateScheduleSlots(schedule *domain.ProviderSchedule) []types.TimeString {
	return GenerateSlots(schedule.WorkTimeFrom, schedule.WorkTimeTo, schedule.SlotDurationMinutes)
}
