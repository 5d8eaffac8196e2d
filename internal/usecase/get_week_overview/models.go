package get_week_overview

import "time"

// Request модель запроса на получение обзора недели
type Request struct {
	ProviderID int64     // ID врача
	Date       time.Time // Любая дата внутри интересующей недели
}

// Response модель ответа с обзором недели
type Response struct {
	ProviderID int64     // ID врача
	WeekStart  time.Time // Понедельник недели
	WeekEnd    time.Time // Воскресенье недели
	Label      string    // Человекочитаемый диапазон, например "2 – 8 June 2025"
	Days       []Day     // Ровно 7 дней, понедельник..воскресенье
}

// Day сводка одного дня недели
type Day struct {
	Date             time.Time // Дата дня
	Weekday          string    // Название дня недели
	IsWorkingDay     bool      // Рабочий ли день по расписанию врача
	AppointmentCount int       // Количество активных приёмов
}
