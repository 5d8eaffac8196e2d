package schedule

import (
	"context"

	"github.com/edmarkin/DCM-ScheduleService/internal/domain"
	"github.com/edmarkin/DCM-ScheduleService/internal/integrations/staffservice"
)

// ScheduleRepository интерфейс репозитория расписаний врачей
type ScheduleRepository interface {
	GetByProviderID(ctx context.Context, providerID int64) (*domain.ProviderSchedule, error)
	Upsert(ctx context.Context, sched *domain.ProviderSchedule) (*domain.ProviderSchedule, error)
}

// StaffServiceClient интерфейс клиента для StaffService
type StaffServiceClient interface {
	GetProvider(ctx context.Context, providerID int64) (*staffservice.Provider, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
