package bookingservice

// ConflictResponse ответ BookingService на проверку пересечения бронирований
type ConflictResponse struct {
	ProfessionalID int64 `json:"professionalId"`
	HasConflict    bool  `json:"hasConflict"`
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
