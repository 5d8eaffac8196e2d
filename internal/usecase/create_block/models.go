package create_block

import (
	"time"

	"github.com/edmarkin/DCM-ScheduleService/pkg/types"
)

// Request модель запроса на создание блокировки.
// TimeFrom/TimeTo равные nil означают блокировку всего дня.
type Request struct {
	ProviderID int64             // ID врача
	Date       time.Time         // Дата блокировки (без времени)
	TimeFrom   *types.TimeString // Начало интервала (nil — весь день)
	TimeTo     *types.TimeString // Конец интервала (nil — весь день)
	Reason     *string           // Причина блокировки (опционально)
}

// Response модель ответа с созданной блокировкой
type Response struct {
	ID         int64
	ProviderID int64
	BlockDate  time.Time
	TimeFrom   types.TimeString
	TimeTo     types.TimeString
	WholeDay   bool
	Reason     *string
	CreatedAt  time.Time
}