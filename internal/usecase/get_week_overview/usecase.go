package get_week_overview

import (
	"context"
	"errors"
	"fmt"

	"github.com/edmarkin/DCM-ScheduleService/internal/domain"
	scheduleRepo "github.com/edmarkin/DCM-ScheduleService/internal/infra/storage/schedule"
	staffClient "github.com/edmarkin/DCM-ScheduleService/internal/integrations/staffservice"
	"github.com/edmarkin/DCM-ScheduleService/internal/scheduling"
)

// UseCase use case для получения недельного обзора календаря врача
type UseCase struct {
	appointmentRepo AppointmentRepository
	scheduleRepo    ScheduleRepository
	staffClient     StaffServiceClient
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	scheduleRepo ScheduleRepository,
	staffClient StaffServiceClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		scheduleRepo:    scheduleRepo,
		staffClient:     staffClient,
		logger:          logger,
	}
}

// Execute выполняет use case получения обзора недели.
// Неделя выравнивается по понедельнику: любая дата внутри недели даёт один и
// тот же диапазон из 7 дней.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetWeekOverview: provider=%d, date=%s", req.ProviderID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetWeekOverview: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем, что врач существует и активен
	if _, err := uc.staffClient.GetProvider(ctx, req.ProviderID); err != nil {
		if errors.Is(err, staffClient.ErrProviderNotFound) {
			uc.logger.Warn("GetWeekOverview: provider id=%d not found", req.ProviderID)
			return nil, ErrProviderNotFound
		}
		if errors.Is(err, staffClient.ErrProviderInactive) {
			uc.logger.Warn("GetWeekOverview: provider id=%d is inactive", req.ProviderID)
			return nil, ErrProviderInactive
		}
		uc.logger.Error("GetWeekOverview: failed to get provider id=%d: %v", req.ProviderID, err)
		return nil, fmt.Errorf("%w: failed to get provider: %v", ErrInternal, err)
	}

	// 3. Получаем расписание врача
	schedule, err := uc.scheduleRepo.GetByProviderID(ctx, req.ProviderID)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			uc.logger.Warn("GetWeekOverview: provider id=%d has no schedule", req.ProviderID)
			return nil, ErrScheduleNotFound
		}
		uc.logger.Error("GetWeekOverview: failed to get schedule for provider id=%d: %v", req.ProviderID, err)
		return nil, fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
	}

	// 4. Вычисляем окно недели и счётчики активных приёмов одним запросом
	week := scheduling.WeekOf(req.Date)

	counts, err := uc.appointmentRepo.CountByProviderBetweenDates(ctx, req.ProviderID, week[0], week[6])
	if err != nil {
		uc.logger.Error("GetWeekOverview: failed to count appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to count appointments: %v", ErrInternal, err)
	}

	days := make([]Day, 0, len(week))
	for _, date := range week {
		weekday := domain.WeekdayOfDate(date)
		days = append(days, Day{
			Date:             date,
			Weekday:          weekday.String(),
			IsWorkingDay:     schedule.IsWorkingDay(weekday),
			AppointmentCount: counts[date.Format(domain.DateFormat)],
		})
	}

	uc.logger.Info("GetWeekOverview: provider=%d, week %s", req.ProviderID, scheduling.FormatWeekRange(week))

	return &Response{
		ProviderID: req.ProviderID,
		WeekStart:  week[0],
		WeekEnd:    week[6],
		Label:      scheduling.FormatWeekRange(week),
		Days:       days,
	}, nil
}
