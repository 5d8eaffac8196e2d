package blocks

import (
	"context"

	"github.com/edmarkin/DCM-ScheduleService/internal/domain"
	"github.com/edmarkin/DCM-ScheduleService/internal/integrations/staffservice"
)

// BlockRepository интерфейс репозитория блокировок
type BlockRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Block, error)
	Delete(ctx context.Context, id int64) error
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
