package update_provider_schedule

import (
	"github.com/edmarkin/DCM-ScheduleService/internal/service/schedule/models"
)

// UpdateScheduleRequest HTTP request model
type UpdateScheduleRequest struct {
	WorkDaysFrom        string  `json:"workDaysFrom"`
	WorkDaysTo          string  `json:"workDaysTo"`
	WorkTimeFrom        string  `json:"workTimeFrom"`
	WorkTimeTo          string  `json:"workTimeTo"`
	SlotDurationMinutes int     `json:"slotDurationMinutes"`
	AppointmentFee      float64 `json:"appointmentFee"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса.
// ProviderID берётся из пути, UserID из контекста авторизации.
func (r *UpdateScheduleRequest) ToServiceRequest(providerID, userID int64) *models.UpsertScheduleRequest {
	return &models.UpsertScheduleRequest{
		UserID:              userID,
		ProviderID:          providerID,
		WorkDaysFrom:        r.WorkDaysFrom,
		WorkDaysTo:          r.WorkDaysTo,
		WorkTimeFrom:        r.WorkTimeFrom,
		WorkTimeTo:          r.WorkTimeTo,
		SlotDurationMinutes: r.SlotDurationMinutes,
		AppointmentFee:      r.AppointmentFee,
	}
}
