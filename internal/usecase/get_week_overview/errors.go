package get_week_overview

import "errors"

var (
	// ErrProviderNotFound возвращается, когда врач не найден
	ErrProviderNotFound = errors.New("get_week_overview: provider not found")

	// ErrProviderInactive возвращается, когда врач деактивирован
	ErrProviderInactive = errors.New("get_week_overview: provider is inactive")

	// ErrScheduleNotFound возвращается, когда у врача нет расписания
	ErrScheduleNotFound = errors.New("get_week_overview: provider has no schedule")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_week_overview: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_week_overview: internal error")
)
