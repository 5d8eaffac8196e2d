package create_block

import (
	"fmt"

	"github.com/edmarkin/DCM-ScheduleService/internal/domain"
	"github.com/edmarkin/DCM-ScheduleService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ProviderID <= 0 {
		return fmt.Errorf("%w: providerID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// Границы интервала указываются либо обе, либо ни одной
	if (req.TimeFrom == nil) != (req.TimeTo == nil) {
		return fmt.Errorf("%w: timeFrom and timeTo must be provided together", ErrInvalidInput)
	}

	if req.Reason != nil && len(*req.Reason) > domain.MaxBlockReasonLength {
		return fmt.Errorf("%w: reason must not exceed %d characters", ErrInvalidInput, domain.MaxBlockReasonLength)
	}

	return nil
}

// resolveBoundaries возвращает границы блокировки: отсутствующие времена
// означают блокировку всего дня и заменяются сентинелом [00:00, 23:59]
func resolveBoundaries(req *Request) (from, to types.TimeString, err error) {
	if req.TimeFrom == nil && req.TimeTo == nil {
		return domain.WholeDayFrom, domain.WholeDayTo, nil
	}

	from, to = *req.TimeFrom, *req.TimeTo

	if !from.IsBefore(to) {
		return "", "", fmt.Errorf("%w: timeFrom %s must be before timeTo %s", ErrInvalidInterval, from, to)
	}

	return from, to, nil
}
