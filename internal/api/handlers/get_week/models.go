package get_week

import (
	"github.com/edmarkin/DCM-ScheduleService/internal/domain"
	getWeekOverview "github.com/edmarkin/DCM-ScheduleService/internal/usecase/get_week_overview"
)

// WeekOverviewResponse HTTP response model
type WeekOverviewResponse struct {
	ProviderID int64         `json:"providerId"`
	WeekStart  string        `json:"weekStart"` // "2025-06-02"
	WeekEnd    string        `json:"weekEnd"`   // "2025-06-08"
	Label      string        `json:"label"`     // "2 – 8 June 2025"
	Days       []DayResponse `json:"days"`
}

// DayResponse HTTP модель одного дня недели
type DayResponse struct {
	Date             string `json:"date"`
	Weekday          string `json:"weekday"`
	IsWorkingDay     bool   `json:"isWorkingDay"`
	AppointmentCount int    `json:"appointmentCount"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getWeekOverview.Response) *WeekOverviewResponse {
	days := make([]DayResponse, len(resp.Days))
	for i, d := range resp.Days {
		days[i] = DayResponse{
			Date:             d.Date.Format(domain.DateFormat),
			Weekday:          d.Weekday,
			IsWorkingDay:     d.IsWorkingDay,
			AppointmentCount: d.AppointmentCount,
		}
	}

	return &WeekOverviewResponse{
		ProviderID: resp.ProviderID,
		WeekStart:  resp.WeekStart.Format(domain.DateFormat),
		WeekEnd:    resp.WeekEnd.Format(domain.DateFormat),
		Label:      resp.Label,
		Days:       days,
	}
}
