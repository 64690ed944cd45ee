package delete_special_date

import "context"

type WorkingHoursService interface {
	DeleteSpecialDate(ctx context.Context, userID int64, id string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
