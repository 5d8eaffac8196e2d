package create_block

import "errors"

var (
	// ErrProviderNotFound возвращается, когда врач не найден
	ErrProviderNotFound = errors.New("create_block: provider not found")

	// ErrProviderInactive возвращается, когда врач деактивирован
	ErrProviderInactive = errors.New("create_block: provider is inactive")

	// ErrIntervalConflict возвращается, когда интервал блокировки пересекается
	// с существующим приёмом или блокировкой
	ErrIntervalConflict = errors.New("create_block: interval overlaps a committed interval")

	// ErrInvalidInterval возвращается при некорректном интервале (конец раньше начала)
	ErrInvalidInterval = errors.New("create_block: invalid time interval")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_block: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_block: internal error")
)
