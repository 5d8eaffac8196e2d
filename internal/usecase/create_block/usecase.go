package create_block

import (
	"context"
	"errors"
	"fmt"

	"github.com/edmarkin/DCM-ScheduleService/internal/domain"
	staffClient "github.com/edmarkin/DCM-ScheduleService/internal/integrations/staffservice"
	"github.com/edmarkin/DCM-ScheduleService/internal/scheduling"
	"github.com/edmarkin/DCM-ScheduleService/pkg/ptr"
)

// UseCase use case для создания блокировки времени врача
type UseCase struct {
	appointmentRepo AppointmentRepository
	blockRepo       BlockRepository
	staffClient     StaffServiceClient
	txManager       TransactionManager
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	blockRepo BlockRepository,
	staffClient StaffServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		blockRepo:       blockRepo,
		staffClient:     staffClient,
		txManager:       txManager,
		logger:          logger,
	}
}

// Execute выполняет use case создания блокировки.
// Блокировка проходит ту же авторитетную проверку конфликтов, что и приём:
// занятые интервалы дня перечитываются в сериализуемой транзакции с
// блокировкой строк непосредственно перед вставкой.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBlock: provider=%d, date=%s", req.ProviderID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBlock: validation failed: %v", err)
		return nil, err
	}

	// 2. Определяем границы интервала; отсутствие времён означает весь день
	timeFrom, timeTo, err := resolveBoundaries(req)
	if err != nil {
		uc.logger.Warn("CreateBlock: invalid interval: %v", err)
		return nil, err
	}

	// 3. Проверяем, что врач существует и активен
	if _, err := uc.staffClient.GetProvider(ctx, req.ProviderID); err != nil {
		if errors.Is(err, staffClient.ErrProviderNotFound) {
			uc.logger.Warn("CreateBlock: provider id=%d not found", req.ProviderID)
			return nil, ErrProviderNotFound
		}
		if errors.Is(err, staffClient.ErrProviderInactive) {
			uc.logger.Warn("CreateBlock: provider id=%d is inactive", req.ProviderID)
			return nil, ErrProviderInactive
		}
		uc.logger.Error("CreateBlock: failed to get provider id=%d: %v", req.ProviderID, err)
		return nil, fmt.Errorf("%w: failed to get provider: %v", ErrInternal, err)
	}

	// Переменная для хранения результата
	var result *domain.Block

	// 4. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Перечитываем занятые интервалы дня с блокировкой строк (FOR UPDATE)
		filter := domain.ProviderAppointmentsFilter{
			ProviderID:      req.ProviderID,
			StartDate:       ptr.Ptr(req.Date),
			EndDate:         ptr.Ptr(req.Date),
			IncludeInactive: false,
		}

		appointments, err := uc.appointmentRepo.GetByProviderWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateBlock: failed to get appointments: %v", err)
			return fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
		}

		blocks, err := uc.blockRepo.GetByProviderAndDate(txCtx, req.ProviderID, req.Date)
		if err != nil {
			uc.logger.Error("CreateBlock: failed to get blocks: %v", err)
			return fmt.Errorf("%w: failed to get blocks: %v", ErrInternal, err)
		}

		// 4.2. Проверяем конфликт по свежему снимку. Пересечение с другой
		// блокировкой тоже отклоняется: повторная блокировка того же
		// времени — ошибка оператора.
		proposed := scheduling.BlockInterval(&domain.Block{TimeFrom: timeFrom, TimeTo: timeTo})
		committed := scheduling.CollectCommitted(appointments, blocks)

		if conflict := scheduling.FindConflict(proposed, committed); conflict != nil {
			uc.logger.Warn("CreateBlock: interval [%s, %s) overlaps committed [%s, %s)",
				timeFrom, timeTo, conflict.Existing.From(), conflict.Existing.To())
			return fmt.Errorf("%w: occupied [%s, %s)", ErrIntervalConflict,
				conflict.Existing.From(), conflict.Existing.To())
		}

		// 4.3. Сохраняем блокировку
		block := &domain.Block{
			ProviderID: req.ProviderID,
			BlockDate:  req.Date,
			TimeFrom:   timeFrom,
			TimeTo:     timeTo,
			Reason:     req.Reason,
		}

		created, err := uc.blockRepo.Create(txCtx, block)
		if err != nil {
			uc.logger.Error("CreateBlock: failed to create block: %v", err)
			return fmt.Errorf("%w: failed to create block: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBlock: successfully created block id=%d", result.ID)

	return &Response{
		ID:         result.ID,
		ProviderID: result.ProviderID,
		BlockDate:  result.BlockDate,
		TimeFrom:   result.TimeFrom,
		TimeTo:     result.TimeTo,
		WholeDay:   result.IsWholeDay(),
		Reason:     result.Reason,
		CreatedAt:  result.CreatedAt,
	}, nil
}
