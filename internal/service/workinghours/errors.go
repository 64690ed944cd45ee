package workinghours

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrSpecialDateNotFound возвращается, когда особая дата не найдена
	ErrSpecialDateNotFound = errors.New("special date not found")

	// ErrSpecialDateExists возвращается при попытке создать вторую особую дату
	// на тот же календарный день
	ErrSpecialDateExists = errors.New("special date already exists for this date")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
