package coverage

import "errors"

var (
	// ErrInvalidInput некорректные входные данные
	ErrInvalidInput = errors.New("invalid input")

	// ErrCityNotFound город не найден
	ErrCityNotFound = errors.New("city not found")

	// ErrCityAlreadyExists город с таким именем уже существует
	ErrCityAlreadyExists = errors.New("city already exists")

	// ErrInternal внутренняя ошибка сервиса
	ErrInternal = errors.New("internal service error")
)
