package get_day_schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/edmarkin/DCM-ScheduleService/internal/domain"
	scheduleRepo "github.com/edmarkin/DCM-ScheduleService/internal/infra/storage/schedule"
	staffClient "github.com/edmarkin/DCM-ScheduleService/internal/integrations/staffservice"
	"github.com/edmarkin/DCM-ScheduleService/internal/scheduling"
	"github.com/edmarkin/DCM-ScheduleService/pkg/ptr"
)

// UseCase use case для получения расписания дня врача
type UseCase struct {
	appointmentRepo AppointmentRepository
	blockRepo       BlockRepository
	scheduleRepo    ScheduleRepository
	staffClient     StaffServiceClient
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	blockRepo BlockRepository,
	scheduleRepo ScheduleRepository,
	staffClient StaffServiceClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		blockRepo:       blockRepo,
		scheduleRepo:    scheduleRepo,
		staffClient:     staffClient,
		logger:          logger,
	}
}

// Execute выполняет use case получения расписания дня
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetDaySchedule: provider=%d, date=%s", req.ProviderID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetDaySchedule: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем, что врач существует и активен
	provider, err := uc.staffClient.GetProvider(ctx, req.ProviderID)
	if err != nil {
		if errors.Is(err, staffClient.ErrProviderNotFound) {
			uc.logger.Warn("GetDaySchedule: provider id=%d not found", req.ProviderID)
			return nil, ErrProviderNotFound
		}
		if errors.Is(err, staffClient.ErrProviderInactive) {
			uc.logger.Warn("GetDaySchedule: provider id=%d is inactive", req.ProviderID)
			return nil, ErrProviderInactive
		}
		uc.logger.Error("GetDaySchedule: failed to get provider id=%d: %v", req.ProviderID, err)
		return nil, fmt.Errorf("%w: failed to get provider: %v", ErrInternal, err)
	}

	// 3. Получаем расписание врача
	schedule, err := uc.scheduleRepo.GetByProviderID(ctx, req.ProviderID)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			uc.logger.Warn("GetDaySchedule: provider id=%d has no schedule", req.ProviderID)
			return nil, ErrScheduleNotFound
		}
		uc.logger.Error("GetDaySchedule: failed to get schedule for provider id=%d: %v", req.ProviderID, err)
		return nil, fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
	}

	isWorkingDay := schedule.IsWorkingDay(domain.WeekdayOfDate(req.Date))

	// Нерабочий день: слоты не генерируем, фронт отрисовывает день как выходной
	if !isWorkingDay {
		uc.logger.Info("GetDaySchedule: provider id=%d is off on %s", req.ProviderID, req.Date.Format(domain.DateFormat))
		return &Response{
			Date:         req.Date,
			ProviderID:   req.ProviderID,
			ProviderName: provider.FullName,
			IsWorkingDay: false,
			Slots:        []Slot{},
		}, nil
	}

	// 4. Генерируем сетку слотов по расписанию.
	// Вырожденное расписание (конец <= начала) даёт пустую сетку, это не ошибка.
	grid := scheduling.GenerateScheduleSlots(schedule)
	if len(grid) == 0 {
		uc.logger.Warn("GetDaySchedule: provider id=%d has degenerate working hours %s-%s",
			req.ProviderID, schedule.WorkTimeFrom, schedule.WorkTimeTo)
		return &Response{
			Date:         req.Date,
			ProviderID:   req.ProviderID,
			ProviderName: provider.FullName,
			IsWorkingDay: isWorkingDay,
			Slots:        []Slot{},
		}, nil
	}

	// 5. Получаем активные приёмы и блокировки на эту дату
	filter := domain.ProviderAppointmentsFilter{
		ProviderID:      req.ProviderID,
		StartDate:       ptr.Ptr(req.Date),
		EndDate:         ptr.Ptr(req.Date),
		IncludeInactive: false,
	}

	appointments, err := uc.appointmentRepo.GetByProviderWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetDaySchedule: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	blocks, err := uc.blockRepo.GetByProviderAndDate(ctx, req.ProviderID, req.Date)
	if err != nil {
		uc.logger.Error("GetDaySchedule: failed to get blocks: %v", err)
		return nil, fmt.Errorf("%w: failed to get blocks: %v", ErrInternal, err)
	}

	// 6. Вычисляем доступность каждого слота относительно занятых интервалов
	committed := scheduling.CollectCommitted(appointments, blocks)
	resolved := scheduling.ResolveDay(grid, schedule.SlotDurationMinutes, committed)

	slots := make([]Slot, 0, len(resolved))
	for _, s := range resolved {
		slots = append(slots, Slot{
			StartTime:       s.StartTime,
			DurationMinutes: s.DurationMinutes,
			Available:       s.Available,
		})
	}

	uc.logger.Info("GetDaySchedule: provider=%d, date=%s, slots=%d, busy intervals=%d",
		req.ProviderID, req.Date.Format(domain.DateFormat), len(slots), len(committed))

	return &Response{
		Date:         req.Date,
		ProviderID:   req.ProviderID,
		ProviderName: provider.FullName,
		IsWorkingDay: isWorkingDay,
		Slots:        slots,
	}, nil
}
