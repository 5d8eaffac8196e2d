package create_appointment

import (
	"time"

	"github.com/edmarkin/DCM-ScheduleService/pkg/types"
)

// Request модель запроса на создание приёма
type Request struct {
	PatientID  int64            // ID пациента (из заголовка авторизации)
	ProviderID int64            // ID врача
	Date       time.Time        // Дата приёма (без времени)
	StartTime  types.TimeString // Время начала, должно лежать на сетке слотов
	Notes      *string          // Жалобы / комментарий пациента (опционально)
}

// Response модель ответа с созданным приёмом
type Response struct {
	ID              int64
	ProviderID      int64
	PatientID       int64
	AppointmentDate time.Time
	StartTime       types.TimeString
	EndTime         types.TimeString
	DurationMinutes int
	Status          string
	PaymentStatus   string
	PatientName     string
	PatientPhone    *string
	Fee             float64
	Notes           *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
