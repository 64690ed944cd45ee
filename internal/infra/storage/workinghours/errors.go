package workinghours

import "errors"

var (
	// ErrSpecialDateNotFound возвращается, когда особая дата не найдена
	ErrSpecialDateNotFound = errors.New("workinghours.repository: special date not found")

	// ErrInvalidTimeFormat возвращается при записи времени не в формате HH:mm.
	// Время валидируется на записи, резолвер читает данные без проверок.
	ErrInvalidTimeFormat = errors.New("workinghours.repository: invalid time format")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("workinghours.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("workinghours.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("workinghours.repository: failed to scan row")
)
