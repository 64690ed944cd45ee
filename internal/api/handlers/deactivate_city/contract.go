package deactivate_city

import "context"

type CoverageService interface {
	DeactivateCity(ctx context.Context, userID int64, name string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
