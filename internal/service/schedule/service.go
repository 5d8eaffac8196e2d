package schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/edmarkin/DCM-ScheduleService/internal/domain"
	scheduleRepo "github.com/edmarkin/DCM-ScheduleService/internal/infra/storage/schedule"
	staffClient "github.com/edmarkin/DCM-ScheduleService/internal/integrations/staffservice"
	"github.com/edmarkin/DCM-ScheduleService/internal/service/schedule/models"
)

// Service сервис для работы с расписаниями врачей
type Service struct {
	scheduleRepo ScheduleRepository
	staffClient  StaffServiceClient
	logger       Logger
}

// NewService создает новый экземпляр сервиса расписаний
func NewService(
	scheduleRepo ScheduleRepository,
	staffClient StaffServiceClient,
	logger Logger,
) *Service {
	return &Service{
		scheduleRepo: scheduleRepo,
		staffClient:  staffClient,
		logger:       logger,
	}
}

// GetByProvider получает расписание врача
// Публичный метод - доступен всем
func (s *Service) GetByProvider(ctx context.Context, providerID int64) (*models.ScheduleResponse, error) {
	s.logger.Info("GetByProvider: fetching schedule for provider=%d", providerID)

	schedule, err := s.scheduleRepo.GetByProviderID(ctx, providerID)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			s.logger.Warn("GetByProvider: schedule for provider=%d not found", providerID)
			return nil, ErrScheduleNotFound
		}
		s.logger.Error("GetByProvider: repository error for provider=%d: %v", providerID, err)
		return nil, fmt.Errorf("%w: GetByProvider - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByProvider: successfully fetched schedule id=%d", schedule.ID)
	return models.FromDomainSchedule(schedule), nil
}

// Upsert создает или перезаписывает расписание врача
// Доступно только сотрудникам клиники
func (s *Service) Upsert(ctx context.Context, req *models.UpsertScheduleRequest) (*models.ScheduleResponse, error) {
	s.logger.Info("Upsert: upserting schedule for provider=%d by user=%d", req.ProviderID, req.UserID)

	// 1. Проверяем права доступа (только сотрудник клиники)
	if err := s.checkStaffAccess(ctx, req.UserID); err != nil {
		return nil, err
	}

	// 2. Проверяем, что врач существует и активен
	if _, err := s.staffClient.GetProvider(ctx, req.ProviderID); err != nil {
		if errors.Is(err, staffClient.ErrProviderNotFound) || errors.Is(err, staffClient.ErrProviderInactive) {
			s.logger.Warn("Upsert: provider id=%d not found or inactive", req.ProviderID)
			return nil, ErrProviderNotFound
		}
		s.logger.Error("Upsert: failed to get provider id=%d: %v", req.ProviderID, err)
		return nil, fmt.Errorf("%w: failed to get provider: %v", ErrInternal, err)
	}

	// 3. Конвертируем request со строгим парсингом дней и времён
	domainSchedule, err := req.ToDomainSchedule()
	if err != nil {
		s.logger.Warn("Upsert: invalid schedule data for provider=%d: %v", req.ProviderID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// 4. Валидируем параметры расписания
	if err := s.validateScheduleData(domainSchedule); err != nil {
		s.logger.Warn("Upsert: validation failed for provider=%d: %v", req.ProviderID, err)
		return nil, err
	}

	// 5. Сохраняем расписание (insert или overwrite)
	saved, err := s.scheduleRepo.Upsert(ctx, domainSchedule)
	if err != nil {
		s.logger.Error("Upsert: repository error for provider=%d: %v", req.ProviderID, err)
		return nil, fmt.Errorf("%w: Upsert - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Upsert: successfully upserted schedule id=%d for provider=%d", saved.ID, req.ProviderID)
	return models.FromDomainSchedule(saved), nil
}

// Вспомогательные методы

// validateScheduleData валидирует параметры расписания.
// Равные времена открытия и закрытия допустимы: такое расписание даёт ноль
// слотов и трактуется движком как полная недоступность, а не ошибка.
func (s *Service) validateScheduleData(schedule *domain.ProviderSchedule) error {
	if schedule.SlotDurationMinutes < domain.MinSlotDurationMinutes ||
		schedule.SlotDurationMinutes > domain.MaxSlotDurationMinutes {
		return fmt.Errorf("%w: slotDurationMinutes must be between %d and %d",
			ErrInvalidInput, domain.MinSlotDurationMinutes, domain.MaxSlotDurationMinutes)
	}

	if schedule.AppointmentFee < 0 {
		return fmt.Errorf("%w: appointmentFee must not be negative", ErrInvalidInput)
	}

	if schedule.WorkTimeFrom.IsAfter(schedule.WorkTimeTo) {
		return fmt.Errorf("%w: workTimeFrom must not be after workTimeTo", ErrInvalidInput)
	}

	return nil
}

// checkStaffAccess проверяет, что пользователь является действующим
// сотрудником клиники по данным StaffService
func (s *Service) checkStaffAccess(ctx context.Context, userID int64) error {
	if _, err := s.staffClient.GetProvider(ctx, userID); err != nil {
		if errors.Is(err, staffClient.ErrProviderNotFound) || errors.Is(err, staffClient.ErrProviderInactive) {
			s.logger.Warn("checkStaffAccess: user=%d is not an active staff member", userID)
			return ErrAccessDenied
		}
		s.logger.Error("checkStaffAccess: failed to check user=%d: %v", userID, err)
		return fmt.Errorf("%w: checkStaffAccess - failed to get staff member: %v", ErrInternal, err)
	}

	return nil
}
