package models

import (
	"time"

	"github.com/edmarkin/DCM-ScheduleService/internal/domain"
	"github.com/edmarkin/DCM-ScheduleService/pkg/types"
)

// Request модели

// UpsertScheduleRequest запрос на создание или обновление расписания врача.
// Расписание одно на врача, повторный запрос перезаписывает существующее.
type UpsertScheduleRequest struct {
	UserID              int64   `json:"userId"`
	ProviderID          int64   `json:"providerId"`
	WorkDaysFrom        string  `json:"workDaysFrom"`        // "Monday"
	WorkDaysTo          string  `json:"workDaysTo"`          // "Friday"
	WorkTimeFrom        string  `json:"workTimeFrom"`        // "09:00"
	WorkTimeTo          string  `json:"workTimeTo"`          // "18:00"
	SlotDurationMinutes int     `json:"slotDurationMinutes"` // 15, 30, 60, etc.
	AppointmentFee      float64 `json:"appointmentFee"`
}

// ToDomainSchedule конвертирует request в domain модель со строгим парсингом
// дней недели и времён
func (r *UpsertScheduleRequest) ToDomainSchedule() (*domain.ProviderSchedule, error) {
	daysFrom, err := domain.ParseWeekday(r.WorkDaysFrom)
	if err != nil {
		return nil, err
	}

	daysTo, err := domain.ParseWeekday(r.WorkDaysTo)
	if err != nil {
		return nil, err
	}

	timeFrom, err := types.NewTimeStringFromString(r.WorkTimeFrom)
	if err != nil {
		return nil, err
	}

	timeTo, err := types.NewTimeStringFromString(r.WorkTimeTo)
	if err != nil {
		return nil, err
	}

	return &domain.ProviderSchedule{
		ProviderID:          r.ProviderID,
		WorkDaysFrom:        daysFrom,
		WorkDaysTo:          daysTo,
		WorkTimeFrom:        timeFrom,
		WorkTimeTo:          timeTo,
		SlotDurationMinutes: r.SlotDurationMinutes,
		AppointmentFee:      r.AppointmentFee,
	}, nil
}

// Response модели

// ScheduleResponse ответ с данными расписания врача
type ScheduleResponse struct {
	ID                  int64     `json:"id"`
	ProviderID          int64     `json:"providerId"`
	WorkDaysFrom        string    `json:"workDaysFrom"`
	WorkDaysTo          string    `json:"workDaysTo"`
	WorkTimeFrom        string    `json:"workTimeFrom"`
	WorkTimeTo          string    `json:"workTimeTo"`
	SlotDurationMinutes int       `json:"slotDurationMinutes"`
	AppointmentFee      float64   `json:"appointmentFee"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

// FromDomainSchedule конвертирует domain модель в DTO
func FromDomainSchedule(s *domain.ProviderSchedule) *ScheduleResponse {
	if s == nil {
		return nil
	}

	return &ScheduleResponse{
		ID:                  s.ID,
		ProviderID:          s.ProviderID,
		WorkDaysFrom:        s.WorkDaysFrom.String(),
		WorkDaysTo:          s.WorkDaysTo.String(),
		WorkTimeFrom:        s.WorkTimeFrom.String(),
		WorkTimeTo:          s.WorkTimeTo.String(),
		SlotDurationMinutes: s.SlotDurationMinutes,
		AppointmentFee:      s.AppointmentFee,
		CreatedAt:           s.CreatedAt,
		UpdatedAt:           s.UpdatedAt,
	}
}
