package blocks

import (
	"context"
	"errors"
	"fmt"

	blockRepo "github.com/edmarkin/DCM-ScheduleService/internal/infra/storage/block"
	staffClient "github.com/edmarkin/DCM-ScheduleService/internal/integrations/staffservice"
)

// Service сервис для работы с блокировками времени врачей
type Service struct {
	blockRepo   BlockRepository
	staffClient StaffServiceClient
	logger      Logger
}

// NewService создает новый экземпляр сервиса блокировок
func NewService(
	blockRepo BlockRepository,
	staffClient StaffServiceClient,
	logger Logger,
) *Service {
	return &Service{
		blockRepo:   blockRepo,
		staffClient: staffClient,
		logger:      logger,
	}
}

// Delete снимает блокировку по ID
// Доступно только сотрудникам клиники. Блокировка удаляется физически:
// истории по снятым блокировкам не ведётся.
func (s *Service) Delete(ctx context.Context, id int64, userID int64) error {
	s.logger.Info("Delete: deleting block id=%d by user=%d", id, userID)

	// 1. Проверяем права доступа (только сотрудник клиники)
	if err := s.checkStaffAccess(ctx, userID); err != nil {
		return err
	}

	// 2. Проверяем существование блокировки
	if _, err := s.blockRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, blockRepo.ErrBlockNotFound) {
			s.logger.Warn("Delete: block id=%d not found", id)
			return ErrBlockNotFound
		}
		s.logger.Error("Delete: repository error for block id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	// 3. Удаляем блокировку
	if err := s.blockRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, blockRepo.ErrBlockNotFound) {
			s.logger.Warn("Delete: block id=%d not found during deletion", id)
			return ErrBlockNotFound
		}
		s.logger.Error("Delete: repository error for block id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted block id=%d", id)
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
