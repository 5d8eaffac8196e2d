package staffservice

// Provider модель врача из StaffService
type Provider struct {
	ID         int64  `json:"id"`
	FullName   string `json:"full_name"`
	Speciality string `json:"speciality"`
	IsActive   bool   `json:"is_active"`
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// ErrorResponse модель ошибки от StaffService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
