package create_appointment

import "errors"

var (
	// ErrProviderNotFound возвращается, когда врач не найден
	ErrProviderNotFound = errors.New("create_appointment: provider not found")

	// ErrProviderInactive возвращается, когда врач деактивирован
	ErrProviderInactive = errors.New("create_appointment: provider is inactive")

	// ErrPatientNotFound возвращается, когда пациент не найден
	ErrPatientNotFound = errors.New("create_appointment: patient not found")

	// ErrScheduleNotFound возвращается, когда у врача нет расписания
	ErrScheduleNotFound = errors.New("create_appointment: provider has no schedule")

	// ErrInvalidDate возвращается при дате приёма в прошлом
	ErrInvalidDate = errors.New("create_appointment: invalid appointment date")

	// ErrProviderDayOff возвращается, когда врач не работает в указанный день
	ErrProviderDayOff = errors.New("create_appointment: provider does not work on this day")

	// ErrInvalidTimeSlot возвращается, когда время не совпадает с сеткой слотов
	ErrInvalidTimeSlot = errors.New("create_appointment: time does not match the slot grid")

	// ErrSlotNotAvailable возвращается, когда слот пересекается с занятым интервалом
	ErrSlotNotAvailable = errors.New("create_appointment: slot is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)
