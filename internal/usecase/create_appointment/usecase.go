package create_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/edmarkin/DCM-ScheduleService/internal/domain"
	scheduleRepo "github.com/edmarkin/DCM-ScheduleService/internal/infra/storage/schedule"
	patientClient "github.com/edmarkin/DCM-ScheduleService/internal/integrations/patientservice"
	staffClient "github.com/edmarkin/DCM-ScheduleService/internal/integrations/staffservice"
	"github.com/edmarkin/DCM-ScheduleService/internal/scheduling"
	"github.com/edmarkin/DCM-ScheduleService/pkg/ptr"
)

// UseCase use case для создания приёма
type UseCase struct {
	appointmentRepo AppointmentRepository
	blockRepo       BlockRepository
	scheduleRepo    ScheduleRepository
	staffClient     StaffServiceClient
	patientClient   PatientServiceClient
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	blockRepo BlockRepository,
	scheduleRepo ScheduleRepository,
	staffClient StaffServiceClient,
	patientClient PatientServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		blockRepo:       blockRepo,
		scheduleRepo:    scheduleRepo,
		staffClient:     staffClient,
		patientClient:   patientClient,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания приёма.
// Использует сериализуемую транзакцию для предотвращения гонки данных:
// интервалы дня перечитываются с блокировкой строк уже внутри транзакции,
// предварительная проверка доступности слота не является авторитетной.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: patient=%d, provider=%d, date=%s, time=%s",
		req.PatientID, req.ProviderID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Проверяем, что врач существует и активен
	if _, err := uc.staffClient.GetProvider(ctx, req.ProviderID); err != nil {
		if errors.Is(err, staffClient.ErrProviderNotFound) {
			uc.logger.Warn("CreateAppointment: provider id=%d not found", req.ProviderID)
			return nil, ErrProviderNotFound
		}
		if errors.Is(err, staffClient.ErrProviderInactive) {
			uc.logger.Warn("CreateAppointment: provider id=%d is inactive", req.ProviderID)
			return nil, ErrProviderInactive
		}
		uc.logger.Error("CreateAppointment: failed to get provider id=%d: %v", req.ProviderID, err)
		return nil, fmt.Errorf("%w: failed to get provider: %v", ErrInternal, err)
	}

	// 4. Получаем пациента для денормализации имени и телефона
	patient, err := uc.patientClient.GetPatient(ctx, req.PatientID)
	if err != nil {
		if errors.Is(err, patientClient.ErrPatientNotFound) {
			uc.logger.Warn("CreateAppointment: patient id=%d not found", req.PatientID)
			return nil, ErrPatientNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get patient id=%d: %v", req.PatientID, err)
		return nil, fmt.Errorf("%w: failed to get patient: %v", ErrInternal, err)
	}

	// Переменная для хранения результата
	var result *domain.Appointment

	// 5. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Получаем расписание врача
		schedule, err := uc.scheduleRepo.GetByProviderID(txCtx, req.ProviderID)
		if err != nil {
			if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
				uc.logger.Warn("CreateAppointment: provider id=%d has no schedule", req.ProviderID)
				return ErrScheduleNotFound
			}
			uc.logger.Error("CreateAppointment: failed to get schedule: %v", err)
			return fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
		}

		// 5.2. Валидация даты
		if err := validateDate(req.Date, now); err != nil {
			uc.logger.Warn("CreateAppointment: date validation failed: %v", err)
			return err
		}

		// 5.3. Проверяем, что день рабочий
		if !schedule.IsWorkingDay(domain.WeekdayOfDate(req.Date)) {
			uc.logger.Warn("CreateAppointment: provider id=%d is off on %s",
				req.ProviderID, req.Date.Format(domain.DateFormat))
			return ErrProviderDayOff
		}

		// 5.4. Время начала должно лежать на сетке слотов.
		// Вырожденное расписание даёт пустую сетку, любой старт отклоняется.
		grid := scheduling.GenerateScheduleSlots(schedule)
		if err := validateOnGrid(req.StartTime, grid); err != nil {
			uc.logger.Warn("CreateAppointment: time %s is off the slot grid for provider id=%d",
				req.StartTime, req.ProviderID)
			return err
		}

		// 5.5. Перечитываем занятые интервалы дня с блокировкой строк (FOR UPDATE)
		filter := domain.ProviderAppointmentsFilter{
			ProviderID:      req.ProviderID,
			StartDate:       ptr.Ptr(req.Date),
			EndDate:         ptr.Ptr(req.Date),
			IncludeInactive: false,
		}

		appointments, err := uc.appointmentRepo.GetByProviderWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to get appointments: %v", err)
			return fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
		}

		blocks, err := uc.blockRepo.GetByProviderAndDate(txCtx, req.ProviderID, req.Date)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to get blocks: %v", err)
			return fmt.Errorf("%w: failed to get blocks: %v", ErrInternal, err)
		}

		// 5.6. Авторитетная проверка конфликта по свежему снимку
		startMin := req.StartTime.Minutes()
		proposed := scheduling.Interval{StartMin: startMin, EndMin: startMin + schedule.SlotDurationMinutes}
		committed := scheduling.CollectCommitted(appointments, blocks)

		if conflict := scheduling.FindConflict(proposed, committed); conflict != nil {
			uc.logger.Warn("CreateAppointment: slot %s not available, overlaps [%s, %s)",
				req.StartTime, conflict.Existing.From(), conflict.Existing.To())
			return ErrSlotNotAvailable
		}

		// 5.7. Создаем приём с денормализацией данных пациента
		appointment := &domain.Appointment{
			ProviderID:      req.ProviderID,
			PatientID:       req.PatientID,
			AppointmentDate: req.Date,
			StartTime:       req.StartTime,
			DurationMinutes: schedule.SlotDurationMinutes,
			Status:          domain.StatusScheduled,
			PaymentStatus:   domain.PaymentUnpaid,
			// Денормализация данных пациента
			PatientName:  patient.FullName,
			PatientPhone: patient.Phone,
			// Стоимость фиксируется на момент записи
			Fee:   schedule.AppointmentFee,
			Notes: req.Notes,
		}

		created, err := uc.appointmentRepo.Create(txCtx, appointment)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%d", result.ID)

	// Конвертируем в response
	return &Response{
		ID:              result.ID,
		ProviderID:      result.ProviderID,
		PatientID:       result.PatientID,
		AppointmentDate: result.AppointmentDate,
		StartTime:       result.StartTime,
		EndTime:         result.EndTime(),
		DurationMinutes: result.DurationMinutes,
		Status:          string(result.Status),
		PaymentStatus:   string(result.PaymentStatus),
		PatientName:     result.PatientName,
		PatientPhone:    result.PatientPhone,
		Fee:             result.Fee,
		Notes:           result.Notes,
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
	}, nil
}
