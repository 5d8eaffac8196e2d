package get_day_schedule

import (
	"time"

	"github.com/edmarkin/DCM-ScheduleService/pkg/types"
)

// Request модель запроса на получение расписания дня
type Request struct {
	ProviderID int64     // ID врача
	Date       time.Time // Дата, на которую запрашивается расписание (без времени)
}

// Response модель ответа с расписанием дня
type Response struct {
	Date         time.Time // Дата, на которую запрашивалось расписание
	ProviderID   int64     // ID врача
	ProviderName string    // ФИО врача
	IsWorkingDay bool      // Рабочий ли это день по расписанию врача
	Slots        []Slot    // Слоты дня; пустой список для нерабочего дня
}

// Slot модель временного слота
type Slot struct {
	StartTime       types.TimeString // Время начала слота (например, "10:00")
	DurationMinutes int              // Длительность слота в минутах
	Available       bool             // Свободен ли слот
}
