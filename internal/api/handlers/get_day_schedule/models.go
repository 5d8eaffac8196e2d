package get_day_schedule

import (
	"github.com/edmarkin/DCM-ScheduleService/internal/domain"
	getDaySchedule "github.com/edmarkin/DCM-ScheduleService/internal/usecase/get_day_schedule"
)

// DayScheduleResponse HTTP response model
type DayScheduleResponse struct {
	Date         string         `json:"date"` // "2025-06-04"
	ProviderID   int64          `json:"providerId"`
	ProviderName string         `json:"providerName"`
	IsWorkingDay bool           `json:"isWorkingDay"`
	Slots        []SlotResponse `json:"slots"`
}

// SlotResponse HTTP модель одного слота
type SlotResponse struct {
	StartTime       string `json:"startTime"` // "10:00"
	DurationMinutes int    `json:"durationMinutes"`
	Available       bool   `json:"available"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getDaySchedule.Response) *DayScheduleResponse {
	slots := make([]SlotResponse, len(resp.Slots))
	for i, s := range resp.Slots {
		slots[i] = SlotResponse{
			StartTime:       s.StartTime.String(),
			DurationMinutes: s.DurationMinutes,
			Available:       s.Available,
		}
	}

	return &DayScheduleResponse{
		Date:         resp.Date.Format(domain.DateFormat),
		ProviderID:   resp.ProviderID,
		ProviderName: resp.ProviderName,
		IsWorkingDay: resp.IsWorkingDay,
		Slots:        slots,
	}
}
