package get_day_schedule

import "errors"

var (
	// ErrProviderNotFound возвращается, когда врач не найден
	ErrProviderNotFound = errors.New("get_day_schedule: provider not found")

	// ErrProviderInactive возвращается, когда врач деактивирован
	ErrProviderInactive = errors.New("get_day_schedule: provider is inactive")

	// ErrScheduleNotFound возвращается, когда у врача нет расписания
	ErrScheduleNotFound = errors.New("get_day_schedule: provider has no schedule")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_day_schedule: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_day_schedule: internal error")
)
