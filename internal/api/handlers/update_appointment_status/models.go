package update_appointment_status

import (
	"github.com/edmarkin/DCM-ScheduleService/internal/service/appointments/models"
)

// UpdateStatusRequest HTTP request model
type UpdateStatusRequest struct {
	Status string `json:"status"` // "completed" или "no_show"
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса.
// UserID берётся из заголовка авторизации.
func (r *UpdateStatusRequest) ToServiceRequest(userID int64) *models.UpdateStatusRequest {
	return &models.UpdateStatusRequest{
		UserID: userID,
		Status: r.Status,
	}
}
