package citydistance

import "errors"

var (
	// ErrCityNotFound возвращается, когда город не найден
	ErrCityNotFound = errors.New("citydistance.repository: city not found")

	// ErrCityAlreadyExists возвращается при попытке создать город с существующим именем
	ErrCityAlreadyExists = errors.New("citydistance.repository: city already exists")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("citydistance.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("citydistance.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("citydistance.repository: failed to scan row")
)
