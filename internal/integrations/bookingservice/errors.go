package bookingservice

import "errors"

var (
	// ErrProfessionalNotFound возвращается, когда BookingService не знает специалиста
	ErrProfessionalNotFound = errors.New("bookingservice client: professional not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("bookingservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("bookingservice client: invalid response")
)
