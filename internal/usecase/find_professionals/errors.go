package find_professionals

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("find_professionals: invalid input data")

	// ErrCityNotFound возвращается, когда город не найден в справочнике
	ErrCityNotFound = errors.New("find_professionals: city not found")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("find_professionals: internal error")
)
